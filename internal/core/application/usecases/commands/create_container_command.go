package commands

import (
	"errors"
	"fmt"
	"math"

	"cargo/internal/core/domain/model/container"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var ErrCreateContainerCommandIsNotConstructed = errors.New(
	"CreateContainerCommand must be created via NewCreateContainerCommand constructor",
)

// ContainerOptions are the attributes specific to one container kind.
// Fields that do not apply to the requested kind are ignored.
type ContainerOptions struct {
	// Product and MinTemperature apply to refrigerated containers.
	Product        string
	MinTemperature float64
	// Hazardous applies to liquid containers.
	Hazardous bool
	// Pressure, in atmospheres, applies to gas containers.
	Pressure float64
}

// CreateContainerCommand builds a new container ashore. The serial number is
// assigned by the handler.
//
// Example:
//
//	dims := container.Dimensions{MaxLoad: kernel.MustNewMass(4000), TareWeight: kernel.MustNewMass(700), Height: 250, Depth: 600}
//	cmd, err := NewCreateContainerCommand(container.KindLiquid, dims, ContainerOptions{Hazardous: true})
//	if err != nil {
//	    return err
//	}
//	serial, err := handler.Handle(ctx, cmd)
type CreateContainerCommand struct { //nolint:recvcheck //using for validation
	kind       container.Kind
	dimensions container.Dimensions
	options    ContainerOptions

	guard guard.ConstructorGuard
}

// NewCreateContainerCommand validates the kind and its kind-specific options.
// Dimensions are validated by the container constructor.
func NewCreateContainerCommand(
	kind container.Kind,
	dimensions container.Dimensions,
	options ContainerOptions,
) (CreateContainerCommand, error) {
	command := CreateContainerCommand{
		dimensions: dimensions,
		guard:      guard.NewConstructorGuard(),
	}

	if err := command.setKind(kind); err != nil {
		return CreateContainerCommand{}, err
	}

	if err := command.setOptions(options); err != nil {
		return CreateContainerCommand{}, err
	}

	return command, nil
}

func (c CreateContainerCommand) Validate() error {
	return c.guard.Validate(ErrCreateContainerCommandIsNotConstructed)
}

func (c CreateContainerCommand) Kind() container.Kind {
	return c.kind
}

func (c CreateContainerCommand) Dimensions() container.Dimensions {
	return c.dimensions
}

func (c CreateContainerCommand) Options() ContainerOptions {
	return c.options
}

func (c *CreateContainerCommand) setKind(kind container.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *CreateContainerCommand) setOptions(options ContainerOptions) error {
	switch c.kind {
	case container.KindRefrigerated:
		if options.Product == "" {
			return errs.NewValueIsRequiredError("product")
		}
	case container.KindGas:
		if math.IsNaN(options.Pressure) || options.Pressure <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("pressure", fmt.Errorf("%v is not greater than 0", options.Pressure))
		}
	}

	c.options = options
	return nil
}
