package commands

import (
	"context"
)

// EmptyCargoCommandHandler empties stored containers. Emptying only makes a
// container lighter, so it is allowed while the container is aboard a ship.
type EmptyCargoCommandHandler struct {
	uowFactory ContainerUoWFactory
}

func NewEmptyCargoCommandHandler(uowFactory ContainerUoWFactory) EmptyCargoCommandHandler {
	return EmptyCargoCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h EmptyCargoCommandHandler) Handle(ctx context.Context, cmd EmptyCargoCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	containerRepo := uow.ContainerRepository()

	c, err := containerRepo.Get(ctx, cmd.SerialNumber())
	if err != nil {
		return err
	}

	c.Empty()

	if err = containerRepo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
