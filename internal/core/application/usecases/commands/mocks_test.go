package commands_test

import (
	"context"
	"testing"

	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/domain/model/container"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/ship"
	"cargo/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShipRepository struct{ mock.Mock }

func (m *MockShipRepository) Add(ctx context.Context, s *ship.Ship) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipRepository) Update(ctx context.Context, s *ship.Ship) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipRepository) Get(ctx context.Context, id kernel.UUID) (*ship.Ship, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ship.Ship), args.Error(1)
}

func (m *MockShipRepository) GetAll(ctx context.Context) ([]*ship.Ship, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ship.Ship), args.Error(1)
}

type MockContainerRepository struct{ mock.Mock }

func (m *MockContainerRepository) Add(ctx context.Context, c container.Container) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContainerRepository) Update(ctx context.Context, c container.Container) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContainerRepository) Get(ctx context.Context, serial kernel.SerialNumber) (container.Container, error) {
	args := m.Called(ctx, serial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(container.Container), args.Error(1)
}

func (m *MockContainerRepository) GetAll(ctx context.Context) ([]container.Container, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]container.Container), args.Error(1)
}

// MockUoW satisfies commands.UoW, commands.ShipUoW and commands.ContainerUoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ShipRepository() ports.ShipRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipRepository)
}

func (m *MockUoW) ContainerRepository() ports.ContainerRepository {
	args := m.Called()
	return args.Get(0).(ports.ContainerRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockShipUoWFactory struct{ mock.Mock }

func (m *MockShipUoWFactory) Create() commands.ShipUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipUoW)
}

type MockContainerUoWFactory struct{ mock.Mock }

func (m *MockContainerUoWFactory) Create() commands.ContainerUoW {
	args := m.Called()
	return args.Get(0).(commands.ContainerUoW)
}

// Test helper functions.
func kg(v float64) kernel.Mass {
	return kernel.MustNewMass(v)
}

func dims(maxLoad, tare float64) container.Dimensions {
	return container.Dimensions{MaxLoad: kg(maxLoad), TareWeight: kg(tare), Height: 250, Depth: 600}
}

func newShip(t *testing.T, maxContainers int, maxWeight float64) *ship.Ship {
	t.Helper()
	s, err := ship.NewShip(kernel.NewUUID(), "Kontenerowiec 1", maxContainers, kg(maxWeight), 20)
	require.NoError(t, err)
	return s
}

func newGas(t *testing.T, f *container.Factory, maxLoad, tare float64) *container.Gas {
	t.Helper()
	c, err := f.NewGas(dims(maxLoad, tare), 10)
	require.NoError(t, err)
	return c
}

func mustSerial(t *testing.T, s string) kernel.SerialNumber {
	t.Helper()
	serial, err := kernel.ParseSerialNumber(s)
	require.NoError(t, err)
	return serial
}
