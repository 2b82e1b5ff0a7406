package manifest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/application/usecases/queries"
	"cargo/internal/core/domain/model/container"
	"cargo/internal/core/domain/model/kernel"
)

// ErrNotCreated is returned for steps that refer to a ship or container whose
// creation failed.
var ErrNotCreated = errors.New("referenced object was not created")

// Handlers are the use cases a Runner drives.
type Handlers struct {
	CreateShip        commands.CreateShipCommandHandler
	CreateContainer   commands.CreateContainerCommandHandler
	LoadCargo         commands.LoadCargoCommandHandler
	EmptyCargo        commands.EmptyCargoCommandHandler
	LoadContainer     commands.LoadContainerCommandHandler
	RemoveContainer   commands.RemoveContainerCommandHandler
	ReplaceContainer  commands.ReplaceContainerCommandHandler
	TransferContainer commands.TransferContainerCommandHandler
	UnloadContainer   commands.UnloadContainerCommandHandler

	GetFleet        queries.GetFleetQueryHandler
	GetShipManifest queries.GetShipManifestQueryHandler
}

// Report is the outcome of a run.
type Report struct {
	// Ships maps ship names to their IDs.
	Ships map[string]kernel.UUID
	// Containers maps container refs to their serial numbers.
	Containers map[string]kernel.SerialNumber
	Succeeded  int
	Failed     int
	Fleet      []queries.GetFleetQueryResponse
	Manifests  []queries.GetShipManifestQueryResponse
}

// Runner replays manifests. A failed step is logged and the run goes on.
type Runner struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewRunner(handlers Handlers, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		handlers: handlers,
		logger:   logger.With("component", "manifest_runner"),
	}
}

// Run creates the declared ships and containers, executes every step and
// reads back the resulting fleet. The returned error joins every failure;
// the report is complete even when it is not nil. Run stops early only when
// ctx is done.
func (r *Runner) Run(ctx context.Context, m Manifest) (Report, error) {
	report := Report{
		Ships:      make(map[string]kernel.UUID, len(m.Ships)),
		Containers: make(map[string]kernel.SerialNumber, len(m.Containers)),
	}
	var failures []error

	fail := func(err error) {
		report.Failed++
		failures = append(failures, err)
	}

	for _, s := range m.Ships {
		id, err := r.createShip(ctx, s)
		if err != nil {
			r.logger.WarnContext(ctx, "ship not created", "ship", s.Name, "error", err)
			fail(fmt.Errorf("ship %q: %w", s.Name, err))
			continue
		}
		report.Ships[s.Name] = id
		r.logger.DebugContext(ctx, "ship created", "ship", s.Name, "id", id.String())
	}

	for _, c := range m.Containers {
		serial, err := r.createContainer(ctx, c)
		if err != nil {
			r.logger.WarnContext(ctx, "container not created", "ref", c.Ref, "error", err)
			fail(fmt.Errorf("container %q: %w", c.Ref, err))
			continue
		}
		report.Containers[c.Ref] = serial
		r.logger.DebugContext(ctx, "container created", "ref", c.Ref, "serial_number", serial.String())
	}

	for i, step := range m.Steps {
		if err := ctx.Err(); err != nil {
			failures = append(failures, err)
			break
		}

		if err := r.runStep(ctx, step, report); err != nil {
			r.logger.WarnContext(ctx, "step failed", "step", i, "action", string(step.Action), "detail", step.String(), "error", err)
			fail(fmt.Errorf("steps[%d] (%s): %w", i, step, err))
			continue
		}
		report.Succeeded++
		r.logger.InfoContext(ctx, "step completed", "step", i, "action", string(step.Action), "detail", step.String())
	}

	if err := r.readFleet(ctx, &report); err != nil {
		failures = append(failures, err)
	}

	r.logger.InfoContext(ctx, "manifest finished", "succeeded", report.Succeeded, "failed", report.Failed)
	return report, errors.Join(failures...)
}

func (r *Runner) createShip(ctx context.Context, s Ship) (kernel.UUID, error) {
	maxWeight, err := parseMass(s.MaxWeight)
	if err != nil {
		return kernel.UUID{}, err
	}

	cmd, err := commands.NewCreateShipCommand(s.Name, s.MaxContainers, maxWeight, s.MaxSpeed)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = r.handlers.CreateShip.Handle(ctx, cmd); err != nil {
		return kernel.UUID{}, err
	}
	return cmd.ShipID(), nil
}

func (r *Runner) createContainer(ctx context.Context, c Container) (kernel.SerialNumber, error) {
	kind, err := container.ParseKind(c.Kind)
	if err != nil {
		return kernel.SerialNumber{}, err
	}

	maxLoad, maxLoadErr := parseMass(c.MaxLoad)
	tare, tareErr := parseMass(c.TareWeight)
	if err = errors.Join(maxLoadErr, tareErr); err != nil {
		return kernel.SerialNumber{}, err
	}

	cmd, err := commands.NewCreateContainerCommand(
		kind,
		container.Dimensions{MaxLoad: maxLoad, TareWeight: tare, Height: c.Height, Depth: c.Depth},
		commands.ContainerOptions{
			Product:        c.Product,
			MinTemperature: c.MinTemperature,
			Hazardous:      c.Hazardous,
			Pressure:       c.Pressure,
		},
	)
	if err != nil {
		return kernel.SerialNumber{}, err
	}

	return r.handlers.CreateContainer.Handle(ctx, cmd)
}

func (r *Runner) runStep(ctx context.Context, step Step, report Report) error {
	switch step.Action {
	case ActionLoad:
		serial, err := resolve(report.Containers, step.Container)
		if err != nil {
			return err
		}
		amount, err := parseMass(step.Amount)
		if err != nil {
			return err
		}
		cmd, err := commands.NewLoadCargoCommand(serial, amount, step.Product, step.Temperature)
		if err != nil {
			return err
		}
		return r.handlers.LoadCargo.Handle(ctx, cmd)

	case ActionEmpty:
		serial, err := resolve(report.Containers, step.Container)
		if err != nil {
			return err
		}
		cmd, err := commands.NewEmptyCargoCommand(serial)
		if err != nil {
			return err
		}
		return r.handlers.EmptyCargo.Handle(ctx, cmd)

	case ActionBoard:
		shipID, serial, err := resolvePair(report, step.Ship, step.Container)
		if err != nil {
			return err
		}
		cmd, err := commands.NewLoadContainerCommand(shipID, serial)
		if err != nil {
			return err
		}
		return r.handlers.LoadContainer.Handle(ctx, cmd)

	case ActionRemove:
		shipID, serial, err := resolvePair(report, step.Ship, step.Container)
		if err != nil {
			return err
		}
		cmd, err := commands.NewRemoveContainerCommand(shipID, serial)
		if err != nil {
			return err
		}
		return r.handlers.RemoveContainer.Handle(ctx, cmd)

	case ActionReplace:
		shipID, serial, err := resolvePair(report, step.Ship, step.Container)
		if err != nil {
			return err
		}
		replacement, err := resolve(report.Containers, step.Replacement)
		if err != nil {
			return err
		}
		cmd, err := commands.NewReplaceContainerCommand(shipID, serial, replacement)
		if err != nil {
			return err
		}
		return r.handlers.ReplaceContainer.Handle(ctx, cmd)

	case ActionTransfer:
		sourceID, serial, err := resolvePair(report, step.Ship, step.Container)
		if err != nil {
			return err
		}
		destinationID, err := resolve(report.Ships, step.To)
		if err != nil {
			return err
		}
		cmd, err := commands.NewTransferContainerCommand(sourceID, destinationID, serial)
		if err != nil {
			return err
		}
		return r.handlers.TransferContainer.Handle(ctx, cmd)

	case ActionUnload:
		shipID, serial, err := resolvePair(report, step.Ship, step.Container)
		if err != nil {
			return err
		}
		cmd, err := commands.NewUnloadContainerCommand(shipID, serial)
		if err != nil {
			return err
		}
		return r.handlers.UnloadContainer.Handle(ctx, cmd)

	default:
		return fmt.Errorf("unknown action %q", step.Action)
	}
}

func (r *Runner) readFleet(ctx context.Context, report *Report) error {
	fleet, err := r.handlers.GetFleet.Handle(ctx, queries.NewGetFleetQuery())
	if err != nil {
		return fmt.Errorf("read fleet: %w", err)
	}
	report.Fleet = fleet

	for _, s := range fleet {
		query, err := queries.NewGetShipManifestQuery(s.ID)
		if err != nil {
			return err
		}
		shipManifest, err := r.handlers.GetShipManifest.Handle(ctx, query)
		if err != nil {
			return fmt.Errorf("read manifest of %s: %w", s.Name, err)
		}
		report.Manifests = append(report.Manifests, shipManifest)
	}

	return nil
}

func resolve[V any](refs map[string]V, name string) (V, error) {
	v, ok := refs[name]
	if !ok {
		return v, fmt.Errorf("%w: %q", ErrNotCreated, name)
	}
	return v, nil
}

func resolvePair(report Report, shipName, containerRef string) (kernel.UUID, kernel.SerialNumber, error) {
	shipID, shipErr := resolve(report.Ships, shipName)
	serial, containerErr := resolve(report.Containers, containerRef)
	if err := errors.Join(shipErr, containerErr); err != nil {
		return kernel.UUID{}, kernel.SerialNumber{}, err
	}
	return shipID, serial, nil
}

func parseMass(s string) (kernel.Mass, error) {
	if s == "" {
		return kernel.Mass{}, nil
	}
	return kernel.MassFromString(s)
}
