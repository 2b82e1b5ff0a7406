// Package ports defines repository interfaces for the cargo domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/ship"
)

// ShipRepository defines the persistence contract for ship aggregates.
type ShipRepository interface {
	// Add stores a new ship. The ship must be valid and not already stored.
	Add(ctx context.Context, aggregate *ship.Ship) error

	// Update stores changes to a ship that was added before.
	Update(ctx context.Context, aggregate *ship.Ship) error

	// Get retrieves a ship by its identifier.
	// Returns *errs.ObjectNotFoundError when no ship has that identifier.
	Get(ctx context.Context, id kernel.UUID) (*ship.Ship, error)

	// GetAll retrieves every ship in the order they were added.
	GetAll(ctx context.Context) ([]*ship.Ship, error)
}
