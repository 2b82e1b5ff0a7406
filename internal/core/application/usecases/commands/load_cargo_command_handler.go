package commands

import (
	"context"

	"cargo/internal/core/domain/model/container"
)

// LoadCargoCommandHandler loads cargo into stored containers.
type LoadCargoCommandHandler struct {
	uowFactory ContainerUoWFactory
}

func NewLoadCargoCommandHandler(uowFactory ContainerUoWFactory) LoadCargoCommandHandler {
	return LoadCargoCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads refrigerated containers through LoadProduct and every other
// kind through Load.
//
// Returns:
//   - *errs.ObjectNotFoundError if no container has the serial number
//   - container.ErrContainerIsAboard if a ship carries the container
//   - *container.OverfillError or a validation error from the container
func (h LoadCargoCommandHandler) Handle(ctx context.Context, cmd LoadCargoCommand) error {
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

	if refrigerated, ok := c.(*container.Refrigerated); ok {
		err = refrigerated.LoadProduct(cmd.Product(), cmd.Amount(), cmd.Temperature())
	} else {
		err = c.Load(cmd.Amount())
	}
	if err != nil {
		return err
	}

	if err = containerRepo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
