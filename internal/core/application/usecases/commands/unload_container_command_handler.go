package commands

import (
	"context"
)

// UnloadContainerCommandHandler empties containers carried by ships.
type UnloadContainerCommandHandler struct {
	uowFactory UoWFactory
}

func NewUnloadContainerCommandHandler(uowFactory UoWFactory) UnloadContainerCommandHandler {
	return UnloadContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UnloadContainerCommandHandler) Handle(ctx context.Context, cmd UnloadContainerCommand) error {
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

	shipRepo := uow.ShipRepository()

	s, err := shipRepo.Get(ctx, cmd.ShipID())
	if err != nil {
		return err
	}

	c, carried := s.Container(cmd.SerialNumber())
	if !carried {
		return nil
	}

	s.EmptyContainer(cmd.SerialNumber())

	if err = shipRepo.Update(ctx, s); err != nil {
		return err
	}

	if err = uow.ContainerRepository().Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
