package queries

import (
	"context"

	"cargo/internal/core/ports"
)

// GetFleetQueryHandler reads ships in the order they were registered.
type GetFleetQueryHandler struct {
	ships ports.ShipRepository
}

func NewGetFleetQueryHandler(ships ports.ShipRepository) GetFleetQueryHandler {
	return GetFleetQueryHandler{ships: ships}
}

func (h GetFleetQueryHandler) Handle(ctx context.Context, query GetFleetQuery) ([]GetFleetQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ships, err := h.ships.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	fleet := make([]GetFleetQueryResponse, 0, len(ships))
	for _, s := range ships {
		fleet = append(fleet, GetFleetQueryResponse{
			ID:             s.ID(),
			Name:           s.Name(),
			ContainerCount: s.Summary().ContainerCount,
			MaxContainers:  s.MaxContainers(),
			TotalWeight:    s.TotalWeight(),
			MaxWeight:      s.MaxWeight(),
			MaxSpeed:       s.MaxSpeed(),
		})
	}

	return fleet, nil
}
