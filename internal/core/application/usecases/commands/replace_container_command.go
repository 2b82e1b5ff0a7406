package commands

import (
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var ErrReplaceContainerCommandIsNotConstructed = errors.New(
	"ReplaceContainerCommand must be created via NewReplaceContainerCommand constructor",
)

// ReplaceContainerCommand swaps a container on a ship for one ashore.
type ReplaceContainerCommand struct { //nolint:recvcheck //using for validation
	shipID      kernel.UUID
	replaced    kernel.SerialNumber
	replacement kernel.SerialNumber

	guard guard.ConstructorGuard
}

func NewReplaceContainerCommand(
	shipID kernel.UUID,
	replaced kernel.SerialNumber,
	replacement kernel.SerialNumber,
) (ReplaceContainerCommand, error) {
	if err := errors.Join(
		requireShipID("ship id", shipID),
		requireSerialNumber("replaced serial number", replaced),
		requireSerialNumber("replacement serial number", replacement),
	); err != nil {
		return ReplaceContainerCommand{}, err
	}

	return ReplaceContainerCommand{
		shipID:      shipID,
		replaced:    replaced,
		replacement: replacement,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ReplaceContainerCommand) Validate() error {
	return c.guard.Validate(ErrReplaceContainerCommandIsNotConstructed)
}

func (c ReplaceContainerCommand) ShipID() kernel.UUID {
	return c.shipID
}

// Replaced is the serial number of the container leaving the ship.
func (c ReplaceContainerCommand) Replaced() kernel.SerialNumber {
	return c.replaced
}

// Replacement is the serial number of the container boarding the ship.
func (c ReplaceContainerCommand) Replacement() kernel.SerialNumber {
	return c.replacement
}
