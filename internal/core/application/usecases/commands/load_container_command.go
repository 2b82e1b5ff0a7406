package commands

import (
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var ErrLoadContainerCommandIsNotConstructed = errors.New(
	"LoadContainerCommand must be created via NewLoadContainerCommand constructor",
)

// LoadContainerCommand puts a stored container on board a ship.
type LoadContainerCommand struct { //nolint:recvcheck //using for validation
	shipID       kernel.UUID
	serialNumber kernel.SerialNumber

	guard guard.ConstructorGuard
}

func NewLoadContainerCommand(shipID kernel.UUID, serialNumber kernel.SerialNumber) (LoadContainerCommand, error) {
	if err := errors.Join(
		requireShipID("ship id", shipID),
		requireSerialNumber("serial number", serialNumber),
	); err != nil {
		return LoadContainerCommand{}, err
	}

	return LoadContainerCommand{
		shipID:       shipID,
		serialNumber: serialNumber,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c LoadContainerCommand) Validate() error {
	return c.guard.Validate(ErrLoadContainerCommandIsNotConstructed)
}

func (c LoadContainerCommand) ShipID() kernel.UUID {
	return c.shipID
}

func (c LoadContainerCommand) SerialNumber() kernel.SerialNumber {
	return c.serialNumber
}
