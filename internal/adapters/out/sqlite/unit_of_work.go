// Package sqlite provides a GORM-based Unit of Work over an in-memory SQLite
// database.
//
// Units of work run one at a time: Begin waits until the previous unit of
// work commits or rolls back, and gives up when ctx is done. Repositories of
// an active unit of work write inside its transaction, so Rollback discards
// every change, including changes made by aggregates loaded in it.
//
// Basic transaction management:
//
//	factory := sqlite.NewUnitOfWorkFactory(database, logger)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.ShipRepository().Add(ctx, s); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package sqlite

import (
	"context"
	"log/slog"

	"cargo/internal/adapters/out/sqlite/containerrepo"
	"cargo/internal/adapters/out/sqlite/shiprepo"
	"cargo/internal/core/domain/model/container"
	"cargo/internal/core/domain/model/ship"
	"cargo/internal/core/ports"

	"gorm.io/gorm"
)

// TrackedAggregate is an aggregate written during a unit of work.
type TrackedAggregate struct {
	ID        string
	Aggregate any
}

type UnitOfWorkFactory struct {
	database *Database
	logger   *slog.Logger
}

// NewUnitOfWorkFactory creates a factory for units of work over database.
func NewUnitOfWorkFactory(database *Database) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{
		database: database,
		logger:   database.logger.With("component", "unit_of_work"),
	}
}

// Create produces a new UnitOfWork. Each instance keeps its own transaction
// and tracked aggregates.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{
		db:              f.database.db,
		logger:          f.logger,
		containerLogger: f.database.containerLogger(),
	}
}

// UnitOfWork implements ports.UnitOfWork. Without Begin its repositories
// write straight to the database.
type UnitOfWork struct {
	db              *gorm.DB
	tx              *gorm.DB
	logger          *slog.Logger
	containerLogger *slog.Logger
	tracked         []TrackedAggregate
}

// Begin starts a transaction bound to ctx: when ctx is cancelled the
// transaction is rolled back and later statements fail. Calling Begin on an
// active unit of work does nothing.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	uow.tracked = nil
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	for _, t := range uow.tracked {
		uow.logger.Debug("aggregate committed", "id", t.ID, "type", aggregateType(t.Aggregate))
	}
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	if len(uow.tracked) > 0 {
		uow.logger.Debug("changes rolled back", "aggregates", len(uow.tracked))
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *UnitOfWork) ShipRepository() ports.ShipRepository {
	return shiprepo.NewRepository(uow.conn(), uow, uow.containerLogger)
}

func (uow *UnitOfWork) ContainerRepository() ports.ContainerRepository {
	return containerrepo.NewRepository(uow.conn(), uow, uow.containerLogger)
}

// TrackAggregate registers an aggregate written within this unit of work.
// Repositories call it on every Add and Update.
func (uow *UnitOfWork) TrackAggregate(id string, aggregate any) {
	if uow.tx == nil {
		return
	}
	uow.tracked = append(uow.tracked, TrackedAggregate{ID: id, Aggregate: aggregate})
}

// GetTrackedAggregates returns the aggregates written since the last Begin,
// including after Commit or Rollback.
func (uow *UnitOfWork) GetTrackedAggregates() []TrackedAggregate {
	return uow.tracked
}

func (uow *UnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func aggregateType(aggregate any) string {
	switch a := aggregate.(type) {
	case *ship.Ship:
		return "ship"
	case container.Container:
		return a.Kind().String() + " container"
	default:
		return "unknown"
	}
}
