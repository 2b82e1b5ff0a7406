// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for display.
package queries

import (
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var ErrGetFleetQueryIsNotConstructed = errors.New(
	"GetFleetQuery must be created via NewGetFleetQuery constructor",
)

// GetFleetQuery retrieves an overview of every ship.
//
// Example:
//
//	query := NewGetFleetQuery()
//	handler := NewGetFleetQueryHandler(shipRepo)
//
//	fleet, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve fleet: %w", err)
//	}
//
//	for _, s := range fleet {
//	    fmt.Printf("%s: %d containers, %s / %s\n", s.Name, s.ContainerCount, s.TotalWeight, s.MaxWeight)
//	}
type GetFleetQuery struct {
	guard guard.ConstructorGuard
}

func NewGetFleetQuery() GetFleetQuery {
	return GetFleetQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetFleetQuery) Validate() error {
	return q.guard.Validate(ErrGetFleetQueryIsNotConstructed)
}

// GetFleetQueryResponse is the read model of one ship.
type GetFleetQueryResponse struct {
	ID             kernel.UUID
	Name           string
	ContainerCount int
	MaxContainers  int
	TotalWeight    kernel.Mass
	MaxWeight      kernel.Mass
	MaxSpeed       float64
}
