package commands

import (
	"errors"
	"fmt"
	"math"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var ErrCreateShipCommandIsNotConstructed = errors.New(
	"CreateShipCommand must be created via NewCreateShipCommand constructor",
)

// CreateShipCommand registers a new, empty ship.
//
// Example:
//
//	cmd, err := NewCreateShipCommand("Kontenerowiec 1", 10, kernel.MustNewMass(15000), 20)
//	if err != nil {
//	    return fmt.Errorf("invalid ship data: %w", err)
//	}
//
//	handler := NewCreateShipCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create ship: %w", err)
//	}
//	fmt.Printf("Created ship with ID: %s", cmd.ShipID())
type CreateShipCommand struct { //nolint:recvcheck //using for validation
	shipID        kernel.UUID
	name          string
	maxContainers int
	maxWeight     kernel.Mass
	maxSpeed      float64

	guard guard.ConstructorGuard
}

// NewCreateShipCommand creates a command to register a ship.
// Automatically generates a unique ID for the ship.
func NewCreateShipCommand(name string, maxContainers int, maxWeight kernel.Mass, maxSpeed float64) (CreateShipCommand, error) {
	command := CreateShipCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipID(kernel.NewUUID()),
		command.setName(name),
		command.setMaxContainers(maxContainers),
		command.setMaxWeight(maxWeight),
		command.setMaxSpeed(maxSpeed),
	); err != nil {
		return CreateShipCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipCommandIsNotConstructed)
}

// ShipID returns the identifier the new ship will have.
func (c CreateShipCommand) ShipID() kernel.UUID {
	return c.shipID
}

func (c CreateShipCommand) Name() string {
	return c.name
}

func (c CreateShipCommand) MaxContainers() int {
	return c.maxContainers
}

func (c CreateShipCommand) MaxWeight() kernel.Mass {
	return c.maxWeight
}

func (c CreateShipCommand) MaxSpeed() float64 {
	return c.maxSpeed
}

func (c *CreateShipCommand) setShipID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipID = id
	return nil
}

func (c *CreateShipCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateShipCommand) setMaxContainers(maxContainers int) error {
	if maxContainers <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("max containers", fmt.Errorf("%d is not greater than 0", maxContainers))
	}

	c.maxContainers = maxContainers
	return nil
}

func (c *CreateShipCommand) setMaxWeight(maxWeight kernel.Mass) error {
	if maxWeight.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("max weight", fmt.Errorf("%s is not greater than 0 kg", maxWeight))
	}

	c.maxWeight = maxWeight
	return nil
}

func (c *CreateShipCommand) setMaxSpeed(maxSpeed float64) error {
	if math.IsNaN(maxSpeed) || math.IsInf(maxSpeed, 0) || maxSpeed <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("max speed", fmt.Errorf("%v is not greater than 0", maxSpeed))
	}

	c.maxSpeed = maxSpeed
	return nil
}
