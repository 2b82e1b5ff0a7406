package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new transaction. It blocks while another unit of work
	// is in progress and gives up when ctx is done.
	Begin(ctx context.Context) error

	// Commit makes the changes of the current transaction visible.
	// Returns error if no transaction is active.
	Commit(ctx context.Context) error

	// Rollback discards the changes of the current transaction.
	// Returns error if no transaction is active.
	Rollback(ctx context.Context) error

	// ShipRepository returns a ShipRepository bound to the current transaction.
	ShipRepository() ShipRepository

	// ContainerRepository returns a ContainerRepository bound to the current transaction.
	ContainerRepository() ContainerRepository
}
