package queries_test

import (
	"context"
	"testing"

	"cargo/internal/core/application/usecases/queries"
	"cargo/internal/core/domain/model/container"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/ship"
	"cargo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShipRepository struct{ mock.Mock }

func (m *MockShipRepository) Add(ctx context.Context, s *ship.Ship) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockShipRepository) Update(ctx context.Context, s *ship.Ship) error {
	return m.Called(ctx, s).Error(0)
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

func kg(v float64) kernel.Mass {
	return kernel.MustNewMass(v)
}

func loadedShip(t *testing.T) *ship.Ship {
	t.Helper()
	s, err := ship.NewShip(kernel.NewUUID(), "Kontenerowiec 1", 10, kg(15000), 20)
	require.NoError(t, err)

	f := container.NewFactory(nil, nil)
	fridge, err := f.NewRefrigerated(container.Dimensions{MaxLoad: kg(3000), TareWeight: kg(600), Height: 250, Depth: 600}, "mleko", 2)
	require.NoError(t, err)
	require.NoError(t, fridge.LoadProduct("mleko", kg(1500), 1))
	gas, err := f.NewGas(container.Dimensions{MaxLoad: kg(5000), TareWeight: kg(800), Height: 250, Depth: 600}, 10)
	require.NoError(t, err)

	require.NoError(t, s.LoadContainer(fridge))
	require.NoError(t, s.LoadContainer(gas))
	return s
}

func TestGetFleetQueryHandler_Handle(t *testing.T) {
	t.Run("should describe every ship", func(t *testing.T) {
		// Arrange
		ctx := t.Context()
		s := loadedShip(t)
		repo := new(MockShipRepository)
		repo.On("GetAll", ctx).Return([]*ship.Ship{s}, nil).Once()

		// Act
		fleet, err := queries.NewGetFleetQueryHandler(repo).Handle(ctx, queries.NewGetFleetQuery())

		// Assert
		require.NoError(t, err)
		require.Len(t, fleet, 1)
		assert.True(t, fleet[0].ID.IsEqual(s.ID()))
		assert.Equal(t, "Kontenerowiec 1", fleet[0].Name)
		assert.Equal(t, 2, fleet[0].ContainerCount)
		assert.Equal(t, 10, fleet[0].MaxContainers)
		assert.True(t, fleet[0].TotalWeight.Equal(kg(2900)))
		assert.InDelta(t, 20, fleet[0].MaxSpeed, 0)
		repo.AssertExpectations(t)
	})

	t.Run("should reject an unconstructed query", func(t *testing.T) {
		repo := new(MockShipRepository)

		_, err := queries.NewGetFleetQueryHandler(repo).Handle(t.Context(), queries.GetFleetQuery{})

		require.ErrorIs(t, err, queries.ErrGetFleetQueryIsNotConstructed)
		repo.AssertNotCalled(t, "GetAll", mock.Anything)
	})
}

func TestGetShipManifestQueryHandler_Handle(t *testing.T) {
	t.Run("should list containers in loading order", func(t *testing.T) {
		// Arrange
		ctx := t.Context()
		s := loadedShip(t)
		repo := new(MockShipRepository)
		repo.On("Get", ctx, s.ID()).Return(s, nil).Once()
		query, err := queries.NewGetShipManifestQuery(s.ID())
		require.NoError(t, err)

		// Act
		manifest, err := queries.NewGetShipManifestQueryHandler(repo).Handle(ctx, query)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Kontenerowiec 1: 2 containers, max speed: 20 knots", manifest.Summary)
		require.Len(t, manifest.Containers, 2)
		assert.Equal(t, "KON-C-1", manifest.Containers[0].SerialNumber.String())
		assert.Equal(t, container.KindRefrigerated, manifest.Containers[0].Kind)
		assert.False(t, manifest.Containers[0].Hazardous)
		assert.True(t, manifest.Containers[0].CurrentLoad.Equal(kg(1500)))
		assert.Equal(t, "KON-G-2", manifest.Containers[1].SerialNumber.String())
		assert.True(t, manifest.Containers[1].Hazardous)
		assert.Equal(t, "KON-G-2 - tare weight: 800 kg, cargo: 0 kg / 5000 kg", manifest.Containers[1].Description)
	})

	t.Run("should report an unknown ship", func(t *testing.T) {
		// Arrange
		ctx := t.Context()
		id := kernel.NewUUID()
		repo := new(MockShipRepository)
		repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("ship", id.String())).Once()
		query, err := queries.NewGetShipManifestQuery(id)
		require.NoError(t, err)

		// Act
		_, err = queries.NewGetShipManifestQueryHandler(repo).Handle(ctx, query)

		// Assert
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should require a ship id", func(t *testing.T) {
		_, err := queries.NewGetShipManifestQuery(kernel.UUID{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
