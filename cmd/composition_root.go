package cmd

import (
	"context"
	"log/slog"

	"cargo/internal/adapters/in/manifest"
	"cargo/internal/adapters/out/sqlite"
	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/application/usecases/queries"
	"cargo/internal/core/domain/model/container"
	"cargo/internal/core/domain/model/kernel"
)

type CompositionRoot struct {
	database   *sqlite.Database
	uowFactory *sqlite.UnitOfWorkFactory
	factory    *container.Factory
	logger     *slog.Logger
}

// NewCompositionRoot opens a fresh in-memory database. SQL statements are
// traced when config.LogLevel is debug. Close releases the database.
func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger) (*CompositionRoot, error) {
	database, err := sqlite.Open(ctx, logger, config.LogLevel)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		database:   database,
		uowFactory: sqlite.NewUnitOfWorkFactory(database),
		factory:    container.NewFactory(kernel.NewSequence(), logger),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) Close() error {
	return c.database.Close()
}

func (c *CompositionRoot) CreateCreateShipCommandHandler() commands.CreateShipCommandHandler {
	return commands.NewCreateShipCommandHandler(c.shipUoWFactory())
}

func (c *CompositionRoot) CreateCreateContainerCommandHandler() commands.CreateContainerCommandHandler {
	return commands.NewCreateContainerCommandHandler(c.containerUoWFactory(), c.factory)
}

func (c *CompositionRoot) CreateLoadCargoCommandHandler() commands.LoadCargoCommandHandler {
	return commands.NewLoadCargoCommandHandler(c.containerUoWFactory())
}

func (c *CompositionRoot) CreateEmptyCargoCommandHandler() commands.EmptyCargoCommandHandler {
	return commands.NewEmptyCargoCommandHandler(c.containerUoWFactory())
}

func (c *CompositionRoot) CreateLoadContainerCommandHandler() commands.LoadContainerCommandHandler {
	return commands.NewLoadContainerCommandHandler(c.fleetUoWFactory())
}

func (c *CompositionRoot) CreateRemoveContainerCommandHandler() commands.RemoveContainerCommandHandler {
	return commands.NewRemoveContainerCommandHandler(c.fleetUoWFactory())
}

func (c *CompositionRoot) CreateReplaceContainerCommandHandler() commands.ReplaceContainerCommandHandler {
	return commands.NewReplaceContainerCommandHandler(c.fleetUoWFactory())
}

func (c *CompositionRoot) CreateTransferContainerCommandHandler() commands.TransferContainerCommandHandler {
	return commands.NewTransferContainerCommandHandler(c.fleetUoWFactory())
}

func (c *CompositionRoot) CreateUnloadContainerCommandHandler() commands.UnloadContainerCommandHandler {
	return commands.NewUnloadContainerCommandHandler(c.fleetUoWFactory())
}

func (c *CompositionRoot) CreateGetFleetQueryHandler() queries.GetFleetQueryHandler {
	return queries.NewGetFleetQueryHandler(c.database.ShipRepository())
}

func (c *CompositionRoot) CreateGetShipManifestQueryHandler() queries.GetShipManifestQueryHandler {
	return queries.NewGetShipManifestQueryHandler(c.database.ShipRepository())
}

func (c *CompositionRoot) CreateManifestRunner() *manifest.Runner {
	return manifest.NewRunner(manifest.Handlers{
		CreateShip:        c.CreateCreateShipCommandHandler(),
		CreateContainer:   c.CreateCreateContainerCommandHandler(),
		LoadCargo:         c.CreateLoadCargoCommandHandler(),
		EmptyCargo:        c.CreateEmptyCargoCommandHandler(),
		LoadContainer:     c.CreateLoadContainerCommandHandler(),
		RemoveContainer:   c.CreateRemoveContainerCommandHandler(),
		ReplaceContainer:  c.CreateReplaceContainerCommandHandler(),
		TransferContainer: c.CreateTransferContainerCommandHandler(),
		UnloadContainer:   c.CreateUnloadContainerCommandHandler(),
		GetFleet:          c.CreateGetFleetQueryHandler(),
		GetShipManifest:   c.CreateGetShipManifestQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) shipUoWFactory() commands.ShipUoWFactory {
	return FuncShipUoWFactory(func() commands.ShipUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) containerUoWFactory() commands.ContainerUoWFactory {
	return FuncContainerUoWFactory(func() commands.ContainerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fleetUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncShipUoWFactory func() commands.ShipUoW

func (f FuncShipUoWFactory) Create() commands.ShipUoW {
	return f()
}

type FuncContainerUoWFactory func() commands.ContainerUoW

func (f FuncContainerUoWFactory) Create() commands.ContainerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
