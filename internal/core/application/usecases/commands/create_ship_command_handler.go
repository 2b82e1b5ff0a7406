package commands

import (
	"context"

	"cargo/internal/core/domain/model/ship"
)

// CreateShipCommandHandler creates and persists new ships.
//
// Example:
//
//	handler := NewCreateShipCommandHandler(uowFactory)
//	cmd, _ := NewCreateShipCommand("Kontenerowiec 1", 10, kernel.MustNewMass(15000), 20)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("ship registration failed: %w", err)
//	}
type CreateShipCommandHandler struct {
	uowFactory ShipUoWFactory
}

func NewCreateShipCommandHandler(uowFactory ShipUoWFactory) CreateShipCommandHandler {
	return CreateShipCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the ship and stores it within a transaction.
func (h CreateShipCommandHandler) Handle(ctx context.Context, cmd CreateShipCommand) error {
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

	aggregate, err := ship.NewShip(cmd.ShipID(), cmd.Name(), cmd.MaxContainers(), cmd.MaxWeight(), cmd.MaxSpeed())
	if err != nil {
		return err
	}

	if err = uow.ShipRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
