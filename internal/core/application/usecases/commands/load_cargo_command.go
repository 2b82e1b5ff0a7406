package commands

import (
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var ErrLoadCargoCommandIsNotConstructed = errors.New(
	"LoadCargoCommand must be created via NewLoadCargoCommand constructor",
)

// LoadCargoCommand puts cargo into a container ashore. Product and
// temperature are checked only by refrigerated containers.
//
// Example:
//
//	cmd, err := NewLoadCargoCommand(serial, kernel.MustNewMass(1500), "mleko", 1)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, container.ErrOverfill) {
//	    // too much cargo
//	}
type LoadCargoCommand struct { //nolint:recvcheck //using for validation
	serialNumber kernel.SerialNumber
	amount       kernel.Mass
	product      string
	temperature  float64

	guard guard.ConstructorGuard
}

func NewLoadCargoCommand(
	serialNumber kernel.SerialNumber,
	amount kernel.Mass,
	product string,
	temperature float64,
) (LoadCargoCommand, error) {
	command := LoadCargoCommand{
		amount:      amount,
		product:     product,
		temperature: temperature,
		guard:       guard.NewConstructorGuard(),
	}

	if err := command.setSerialNumber(serialNumber); err != nil {
		return LoadCargoCommand{}, err
	}

	return command, nil
}

func (c LoadCargoCommand) Validate() error {
	return c.guard.Validate(ErrLoadCargoCommandIsNotConstructed)
}

func (c LoadCargoCommand) SerialNumber() kernel.SerialNumber {
	return c.serialNumber
}

func (c LoadCargoCommand) Amount() kernel.Mass {
	return c.amount
}

func (c LoadCargoCommand) Product() string {
	return c.product
}

// Temperature is the temperature, in degrees Celsius, the cargo must be kept at.
func (c LoadCargoCommand) Temperature() float64 {
	return c.temperature
}

func (c *LoadCargoCommand) setSerialNumber(serial kernel.SerialNumber) error {
	if err := requireSerialNumber("serial number", serial); err != nil {
		return err
	}

	c.serialNumber = serial
	return nil
}
