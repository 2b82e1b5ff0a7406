package queries

import (
	"errors"

	"cargo/internal/core/domain/model/container"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var ErrGetShipManifestQueryIsNotConstructed = errors.New(
	"GetShipManifestQuery must be created via NewGetShipManifestQuery constructor",
)

// GetShipManifestQuery lists the containers carried by one ship.
type GetShipManifestQuery struct {
	shipID kernel.UUID
	guard  guard.ConstructorGuard
}

func NewGetShipManifestQuery(shipID kernel.UUID) (GetShipManifestQuery, error) {
	if err := shipID.Validate(); err != nil {
		return GetShipManifestQuery{}, errs.NewValueIsRequiredErrorWithCause("ship id", err)
	}

	return GetShipManifestQuery{
		shipID: shipID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetShipManifestQuery) Validate() error {
	return q.guard.Validate(ErrGetShipManifestQueryIsNotConstructed)
}

func (q GetShipManifestQuery) ShipID() kernel.UUID {
	return q.shipID
}

// GetShipManifestQueryResponse describes a ship and its containers in
// loading order.
type GetShipManifestQueryResponse struct {
	ShipID     kernel.UUID
	ShipName   string
	Summary    string
	Containers []ManifestEntry
}

// ManifestEntry is the read model of one carried container.
type ManifestEntry struct {
	SerialNumber kernel.SerialNumber
	Kind         container.Kind
	CurrentLoad  kernel.Mass
	MaxLoad      kernel.Mass
	TareWeight   kernel.Mass
	// Hazardous is set for kinds that raise hazard notifications.
	Hazardous    bool
	Description  string
}
