// Package containerrepo maps containers to the containers table.
// Ships store their cargo through the same DTO, so the mapping functions are
// exported for shiprepo.
package containerrepo

import (
	"log/slog"

	"cargo/internal/core/domain/model/container"
	"cargo/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// ContainerDTO is one row of the containers table. Masses are stored as
// decimal text so that no precision is lost.
type ContainerDTO struct {
	SerialNumber string          `gorm:"type:text;primaryKey"`
	Kind         int             `gorm:"not null"`
	MaxLoad      decimal.Decimal `gorm:"type:text;not null"`
	TareWeight   decimal.Decimal `gorm:"type:text;not null"`
	Height       float64         `gorm:"not null"`
	Depth        float64         `gorm:"not null"`
	CurrentLoad  decimal.Decimal `gorm:"type:text;not null"`

	Product        string
	MinTemperature float64
	Hazardous      bool
	Pressure       float64

	// ShipID is nil while the container is ashore.
	ShipID *string `gorm:"type:text;index"`
	// Position is the loading order aboard ShipID.
	Position int
}

func (ContainerDTO) TableName() string {
	return "containers"
}

// FromDomain converts c to its row. position only matters while c is aboard.
func FromDomain(c container.Container, position int) ContainerDTO {
	variant := container.VariantOf(c)

	dto := ContainerDTO{
		SerialNumber:   c.SerialNumber().String(),
		Kind:           int(c.Kind()),
		MaxLoad:        c.MaxLoad().Decimal(),
		TareWeight:     c.TareWeight().Decimal(),
		Height:         c.Height(),
		Depth:          c.Depth(),
		CurrentLoad:    c.CurrentLoad().Decimal(),
		Product:        variant.Product,
		MinTemperature: variant.MinTemperature,
		Hazardous:      variant.Hazardous,
		Pressure:       variant.Pressure,
	}

	if owner, aboard := c.Owner(); aboard {
		id := owner.String()
		dto.ShipID = &id
		dto.Position = position
	}

	return dto
}

// ToDomain rebuilds the container stored in dto. logger receives the hazard
// notifications of liquid and gas containers.
func ToDomain(dto ContainerDTO, logger *slog.Logger) (container.Container, error) {
	serial, err := kernel.ParseSerialNumber(dto.SerialNumber)
	if err != nil {
		return nil, err
	}

	maxLoad, err := kernel.MassFromDecimal(dto.MaxLoad)
	if err != nil {
		return nil, err
	}
	tareWeight, err := kernel.MassFromDecimal(dto.TareWeight)
	if err != nil {
		return nil, err
	}
	currentLoad, err := kernel.MassFromDecimal(dto.CurrentLoad)
	if err != nil {
		return nil, err
	}

	var owner *kernel.UUID
	if dto.ShipID != nil {
		id, err := kernel.UUIDFromString(*dto.ShipID)
		if err != nil {
			return nil, err
		}
		owner = &id
	}

	return container.Restore(
		container.Kind(dto.Kind),
		serial,
		container.Dimensions{
			MaxLoad:    maxLoad,
			TareWeight: tareWeight,
			Height:     dto.Height,
			Depth:      dto.Depth,
		},
		container.Variant{
			Product:        dto.Product,
			MinTemperature: dto.MinTemperature,
			Hazardous:      dto.Hazardous,
			Pressure:       dto.Pressure,
		},
		currentLoad,
		owner,
		logger,
	)
}
