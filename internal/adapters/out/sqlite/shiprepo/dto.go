// Package shiprepo maps ship aggregates to the ships table. The carried
// containers live in the containers table, ordered by position.
package shiprepo

import (
	"log/slog"

	"cargo/internal/adapters/out/sqlite/containerrepo"
	"cargo/internal/core/domain/model/container"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/ship"

	"github.com/shopspring/decimal"
)

// ShipDTO is one row of the ships table.
type ShipDTO struct {
	ID            string          `gorm:"type:text;primaryKey"`
	Name          string          `gorm:"type:text;not null"`
	MaxContainers int             `gorm:"not null"`
	MaxWeight     decimal.Decimal `gorm:"type:text;not null"`
	MaxSpeed      float64         `gorm:"not null"`

	Containers []containerrepo.ContainerDTO `gorm:"foreignKey:ShipID"`
}

func (ShipDTO) TableName() string {
	return "ships"
}

func fromDomain(s *ship.Ship) ShipDTO {
	carried := s.Containers()
	containers := make([]containerrepo.ContainerDTO, 0, len(carried))
	for i, c := range carried {
		containers = append(containers, containerrepo.FromDomain(c, i))
	}

	return ShipDTO{
		ID:            s.ID().String(),
		Name:          s.Name(),
		MaxContainers: s.MaxContainers(),
		MaxWeight:     s.MaxWeight().Decimal(),
		MaxSpeed:      s.MaxSpeed(),
		Containers:    containers,
	}
}

// toDomain expects dto.Containers sorted by position.
func toDomain(dto ShipDTO, logger *slog.Logger) (*ship.Ship, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	maxWeight, err := kernel.MassFromDecimal(dto.MaxWeight)
	if err != nil {
		return nil, err
	}

	containers := make([]container.Container, 0, len(dto.Containers))
	for _, cdto := range dto.Containers {
		c, err := containerrepo.ToDomain(cdto, logger)
		if err != nil {
			return nil, err
		}
		containers = append(containers, c)
	}

	return ship.RestoreShip(id, dto.Name, dto.MaxContainers, maxWeight, dto.MaxSpeed, containers)
}
