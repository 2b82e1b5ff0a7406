package queries

import (
	"context"

	"cargo/internal/core/domain/model/container"
	"cargo/internal/core/ports"
)

type GetShipManifestQueryHandler struct {
	ships ports.ShipRepository
}

func NewGetShipManifestQueryHandler(ships ports.ShipRepository) GetShipManifestQueryHandler {
	return GetShipManifestQueryHandler{ships: ships}
}

// Handle returns *errs.ObjectNotFoundError when the ship is unknown.
func (h GetShipManifestQueryHandler) Handle(
	ctx context.Context,
	query GetShipManifestQuery,
) (GetShipManifestQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipManifestQueryResponse{}, err
	}

	s, err := h.ships.Get(ctx, query.ShipID())
	if err != nil {
		return GetShipManifestQueryResponse{}, err
	}

	carried := s.Containers()
	response := GetShipManifestQueryResponse{
		ShipID:     s.ID(),
		ShipName:   s.Name(),
		Summary:    s.Summary().String(),
		Containers: make([]ManifestEntry, 0, len(carried)),
	}

	for _, c := range carried {
		response.Containers = append(response.Containers, ManifestEntry{
			SerialNumber: c.SerialNumber(),
			Kind:         c.Kind(),
			CurrentLoad:  c.CurrentLoad(),
			MaxLoad:      c.MaxLoad(),
			TareWeight:   c.TareWeight(),
			Hazardous:    container.IsHazardous(c),
			Description:  c.String(),
		})
	}

	return response, nil
}
