package commands

import (
	"context"
	"fmt"

	"cargo/internal/core/domain/model/container"
	"cargo/internal/core/domain/model/kernel"
)

// CreateContainerCommandHandler builds containers through a container.Factory,
// so every container it creates gets a unique serial number, and stores them.
type CreateContainerCommandHandler struct {
	uowFactory ContainerUoWFactory
	factory    *container.Factory
}

func NewCreateContainerCommandHandler(uowFactory ContainerUoWFactory, factory *container.Factory) CreateContainerCommandHandler {
	return CreateContainerCommandHandler{
		uowFactory: uowFactory,
		factory:    factory,
	}
}

// Handle returns the serial number of the stored container.
func (h CreateContainerCommandHandler) Handle(ctx context.Context, cmd CreateContainerCommand) (kernel.SerialNumber, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.SerialNumber{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.SerialNumber{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, err := h.build(cmd)
	if err != nil {
		return kernel.SerialNumber{}, err
	}

	if err = uow.ContainerRepository().Add(ctx, c); err != nil {
		return kernel.SerialNumber{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.SerialNumber{}, err
	}

	return c.SerialNumber(), nil
}

func (h CreateContainerCommandHandler) build(cmd CreateContainerCommand) (container.Container, error) {
	opts := cmd.Options()

	switch cmd.Kind() {
	case container.KindRefrigerated:
		return h.factory.NewRefrigerated(cmd.Dimensions(), opts.Product, opts.MinTemperature)
	case container.KindLiquid:
		return h.factory.NewLiquid(cmd.Dimensions(), opts.Hazardous)
	case container.KindGas:
		return h.factory.NewGas(cmd.Dimensions(), opts.Pressure)
	default:
		return nil, fmt.Errorf("cannot build a container of kind %s", cmd.Kind())
	}
}
