package commands

import (
	"context"
)

// LoadContainerCommandHandler puts containers on board ships.
//
// Example:
//
//	cmd, _ := NewLoadContainerCommand(shipID, serial)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ship.ErrCapacityExceeded):
//	    log.Println("ship is full")
//	case errors.Is(err, container.ErrContainerAlreadyAboard):
//	    log.Println("container is on another ship")
//	case err != nil:
//	    log.Printf("loading failed: %v", err)
//	}
type LoadContainerCommandHandler struct {
	uowFactory UoWFactory
}

func NewLoadContainerCommandHandler(uowFactory UoWFactory) LoadContainerCommandHandler {
	return LoadContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h LoadContainerCommandHandler) Handle(ctx context.Context, cmd LoadContainerCommand) error {
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

	c, err := containerRepo.Get(ctx, cmd.SerialNumber())
	if err != nil {
		return err
	}

	if err = s.LoadContainer(c); err != nil {
		return err
	}

	if err = shipRepo.Update(ctx, s); err != nil {
		return err
	}

	if err = containerRepo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
