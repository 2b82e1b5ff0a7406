package commands

import (
	"context"
)

// ReplaceContainerCommandHandler swaps containers on ships. When the
// replacement does not fit, the ship keeps the replaced container.
type ReplaceContainerCommandHandler struct {
	uowFactory UoWFactory
}

func NewReplaceContainerCommandHandler(uowFactory UoWFactory) ReplaceContainerCommandHandler {
	return ReplaceContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ReplaceContainerCommandHandler) Handle(ctx context.Context, cmd ReplaceContainerCommand) error {
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
	containerRepo := uow.ContainerRepository()

	s, err := shipRepo.Get(ctx, cmd.ShipID())
	if err != nil {
		return err
	}

	replacement, err := containerRepo.Get(ctx, cmd.Replacement())
	if err != nil {
		return err
	}

	replaced, carried := s.Container(cmd.Replaced())

	if err = s.ReplaceContainer(cmd.Replaced(), replacement); err != nil {
		return err
	}

	if err = shipRepo.Update(ctx, s); err != nil {
		return err
	}

	if err = containerRepo.Update(ctx, replacement); err != nil {
		return err
	}

	if carried {
		if err = containerRepo.Update(ctx, replaced); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
