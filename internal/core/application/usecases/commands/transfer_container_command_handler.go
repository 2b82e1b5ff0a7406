package commands

import (
	"context"
)

// TransferContainerCommandHandler moves containers between ships. A rejected
// transfer leaves the container on the source ship.
type TransferContainerCommandHandler struct {
	uowFactory UoWFactory
}

func NewTransferContainerCommandHandler(uowFactory UoWFactory) TransferContainerCommandHandler {
	return TransferContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h TransferContainerCommandHandler) Handle(ctx context.Context, cmd TransferContainerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if cmd.SourceID().IsEqual(cmd.DestinationID()) {
		return nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipRepo := uow.ShipRepository()

	source, err := shipRepo.Get(ctx, cmd.SourceID())
	if err != nil {
		return err
	}

	destination, err := shipRepo.Get(ctx, cmd.DestinationID())
	if err != nil {
		return err
	}

	moved, carried := source.Container(cmd.SerialNumber())
	if !carried {
		return nil
	}

	if err = source.TransferContainer(destination, cmd.SerialNumber()); err != nil {
		return err
	}

	if err = shipRepo.Update(ctx, source); err != nil {
		return err
	}

	if err = shipRepo.Update(ctx, destination); err != nil {
		return err
	}

	if err = uow.ContainerRepository().Update(ctx, moved); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
