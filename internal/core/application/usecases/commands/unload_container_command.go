package commands

import (
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var ErrUnloadContainerCommandIsNotConstructed = errors.New(
	"UnloadContainerCommand must be created via NewUnloadContainerCommand constructor",
)

// UnloadContainerCommand empties a container while it stays on board.
type UnloadContainerCommand struct { //nolint:recvcheck //using for validation
	shipID       kernel.UUID
	serialNumber kernel.SerialNumber

	guard guard.ConstructorGuard
}

func NewUnloadContainerCommand(shipID kernel.UUID, serialNumber kernel.SerialNumber) (UnloadContainerCommand, error) {
	if err := errors.Join(
		requireShipID("ship id", shipID),
		requireSerialNumber("serial number", serialNumber),
	); err != nil {
		return UnloadContainerCommand{}, err
	}

	return UnloadContainerCommand{
		shipID:       shipID,
		serialNumber: serialNumber,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c UnloadContainerCommand) Validate() error {
	return c.guard.Validate(ErrUnloadContainerCommandIsNotConstructed)
}

func (c UnloadContainerCommand) ShipID() kernel.UUID {
	return c.shipID
}

func (c UnloadContainerCommand) SerialNumber() kernel.SerialNumber {
	return c.serialNumber
}
