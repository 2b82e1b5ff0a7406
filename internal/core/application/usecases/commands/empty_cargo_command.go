package commands

import (
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var ErrEmptyCargoCommandIsNotConstructed = errors.New(
	"EmptyCargoCommand must be created via NewEmptyCargoCommand constructor",
)

// EmptyCargoCommand empties a container. Gas containers keep their residue.
type EmptyCargoCommand struct { //nolint:recvcheck //using for validation
	serialNumber kernel.SerialNumber

	guard guard.ConstructorGuard
}

func NewEmptyCargoCommand(serialNumber kernel.SerialNumber) (EmptyCargoCommand, error) {
	if err := requireSerialNumber("serial number", serialNumber); err != nil {
		return EmptyCargoCommand{}, err
	}

	return EmptyCargoCommand{
		serialNumber: serialNumber,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c EmptyCargoCommand) Validate() error {
	return c.guard.Validate(ErrEmptyCargoCommandIsNotConstructed)
}

func (c EmptyCargoCommand) SerialNumber() kernel.SerialNumber {
	return c.serialNumber
}
