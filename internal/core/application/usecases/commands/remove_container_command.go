package commands

import (
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var ErrRemoveContainerCommandIsNotConstructed = errors.New(
	"RemoveContainerCommand must be created via NewRemoveContainerCommand constructor",
)

// RemoveContainerCommand takes a container off a ship and back ashore.
type RemoveContainerCommand struct { //nolint:recvcheck //using for validation
	shipID       kernel.UUID
	serialNumber kernel.SerialNumber

	guard guard.ConstructorGuard
}

func NewRemoveContainerCommand(shipID kernel.UUID, serialNumber kernel.SerialNumber) (RemoveContainerCommand, error) {
	if err := errors.Join(
		requireShipID("ship id", shipID),
		requireSerialNumber("serial number", serialNumber),
	); err != nil {
		return RemoveContainerCommand{}, err
	}

	return RemoveContainerCommand{
		shipID:       shipID,
		serialNumber: serialNumber,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveContainerCommand) Validate() error {
	return c.guard.Validate(ErrRemoveContainerCommandIsNotConstructed)
}

func (c RemoveContainerCommand) ShipID() kernel.UUID {
	return c.shipID
}

func (c RemoveContainerCommand) SerialNumber() kernel.SerialNumber {
	return c.serialNumber
}
