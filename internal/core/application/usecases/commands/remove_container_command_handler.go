package commands

import (
	"context"
)

// RemoveContainerCommandHandler takes containers off ships. Removing a
// container the ship does not carry succeeds without changes.
type RemoveContainerCommandHandler struct {
	uowFactory UoWFactory
}

func NewRemoveContainerCommandHandler(uowFactory UoWFactory) RemoveContainerCommandHandler {
	return RemoveContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RemoveContainerCommandHandler) Handle(ctx context.Context, cmd RemoveContainerCommand) error {
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

	removed, carried := s.Container(cmd.SerialNumber())
	if !carried {
		return nil
	}

	s.RemoveContainer(cmd.SerialNumber())

	if err = shipRepo.Update(ctx, s); err != nil {
		return err
	}

	if err = uow.ContainerRepository().Update(ctx, removed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
