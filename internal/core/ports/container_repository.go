package ports

import (
	"context"

	"cargo/internal/core/domain/model/container"
	"cargo/internal/core/domain/model/kernel"
)

// ContainerRepository defines the persistence contract for containers,
// whether they are ashore or aboard a ship.
type ContainerRepository interface {
	// Add stores a new container. Its serial number must not be stored yet.
	Add(ctx context.Context, c container.Container) error

	// Update stores changes to a container that was added before.
	Update(ctx context.Context, c container.Container) error

	// Get retrieves a container by serial number.
	// Returns *errs.ObjectNotFoundError when no container has that serial number.
	Get(ctx context.Context, serial kernel.SerialNumber) (container.Container, error)

	// GetAll retrieves every container in the order they were added.
	GetAll(ctx context.Context) ([]container.Container, error)
}
