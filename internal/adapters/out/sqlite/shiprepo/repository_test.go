package shiprepo_test

import (
	"log/slog"
	"testing"

	"cargo/internal/adapters/out/sqlite"
	"cargo/internal/core/domain/model/container"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/ship"
	"cargo/internal/core/ports"
	"cargo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func newRepos(t *testing.T) (ports.ShipRepository, ports.ContainerRepository) {
	t.Helper()
	database, err := sqlite.Open(t.Context(), slog.Default(), slog.LevelInfo)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, database.Close())
	})
	return database.ShipRepository(), database.ContainerRepository()
}

func newShip(t *testing.T, name string) *ship.Ship {
	t.Helper()
	s, err := ship.NewShip(kernel.NewUUID(), name, 10, kernel.MustNewMass(15000), 20)
	require.NoError(t, err)
	return s
}

func dims(maxLoad, tare float64) container.Dimensions {
	return container.Dimensions{
		MaxLoad:    kernel.MustNewMass(maxLoad),
		TareWeight: kernel.MustNewMass(tare),
		Height:     250,
		Depth:      600,
	}
}

func serials(s *ship.Ship) []string {
	var out []string
	for _, c := range s.Containers() {
		out = append(out, c.SerialNumber().String())
	}
	return out
}

func TestRepository_AddAndGet(t *testing.T) {
	// Arrange
	ctx := t.Context()
	ships, containers := newRepos(t)
	f := container.NewFactory(kernel.NewSequence(), nil)
	s := newShip(t, "Kontenerowiec 1")

	gas, err := f.NewGas(dims(5000, 800), 15)
	require.NoError(t, err)
	require.NoError(t, gas.Load(kernel.MustNewMass(2000)))
	milk, err := f.NewRefrigerated(dims(3000, 600), "mleko", 2)
	require.NoError(t, err)
	require.NoError(t, milk.LoadProduct("mleko", kernel.MustNewMass(100.25), 1))
	require.NoError(t, containers.Add(ctx, gas))
	require.NoError(t, containers.Add(ctx, milk))
	require.NoError(t, s.LoadContainer(milk))
	require.NoError(t, s.LoadContainer(gas))

	// Act
	require.NoError(t, ships.Add(ctx, s))
	got, err := ships.Get(ctx, s.ID())

	// Assert
	require.NoError(t, err)
	assert.True(t, s.IsEqual(got))
	assert.Equal(t, "Kontenerowiec 1", got.Name())
	assert.Equal(t, 10, got.MaxContainers())
	assert.Equal(t, "15000 kg", got.MaxWeight().String())
	assert.InDelta(t, 20.0, got.MaxSpeed(), 1e-9)
	assert.Equal(t, []string{"KON-C-2", "KON-G-1"}, serials(got), "loading order survives")
	assert.True(t, s.TotalWeight().Equal(got.TotalWeight()))

	restored, ok := got.Container(milk.SerialNumber())
	require.True(t, ok)
	refrigerated, ok := restored.(*container.Refrigerated)
	require.True(t, ok)
	assert.Equal(t, "mleko", refrigerated.Product())
	assert.Equal(t, "100.25 kg", refrigerated.CurrentLoad().String())
}

func TestRepository_Add(t *testing.T) {
	t.Run("should reject a duplicate", func(t *testing.T) {
		ctx := t.Context()
		ships, _ := newRepos(t)
		s := newShip(t, "Kontenerowiec 1")
		require.NoError(t, ships.Add(ctx, s))

		require.ErrorIs(t, ships.Add(ctx, s), errs.ErrValueIsInvalid)
	})

	t.Run("should reject an unconstructed ship", func(t *testing.T) {
		ships, _ := newRepos(t)

		require.ErrorIs(t, ships.Add(t.Context(), &ship.Ship{}), ship.ErrShipIsNotConstructed)
	})
}

func TestRepository_Update(t *testing.T) {
	t.Run("should require a stored ship", func(t *testing.T) {
		ships, _ := newRepos(t)

		require.ErrorIs(t, ships.Update(t.Context(), newShip(t, "Kontenerowiec 1")), errs.ErrObjectNotFound)
	})

	t.Run("should move removed containers ashore", func(t *testing.T) {
		// Arrange
		ctx := t.Context()
		ships, containers := newRepos(t)
		f := container.NewFactory(kernel.NewSequence(), nil)
		s := newShip(t, "Kontenerowiec 1")

		var loaded []container.Container
		for range 3 {
			c, err := f.NewLiquid(dims(4000, 700), false)
			require.NoError(t, err)
			require.NoError(t, containers.Add(ctx, c))
			require.NoError(t, s.LoadContainer(c))
			loaded = append(loaded, c)
		}
		require.NoError(t, ships.Add(ctx, s))

		// Act
		s.RemoveContainer(loaded[0].SerialNumber())
		require.NoError(t, ships.Update(ctx, s))

		// Assert
		got, err := ships.Get(ctx, s.ID())
		require.NoError(t, err)
		assert.Equal(t, []string{"KON-L-2", "KON-L-3"}, serials(got))

		removed, err := containers.Get(ctx, loaded[0].SerialNumber())
		require.NoError(t, err)
		_, aboard := removed.Owner()
		assert.False(t, aboard)
	})

	t.Run("should move every container ashore when the ship is emptied", func(t *testing.T) {
		ctx := t.Context()
		ships, containers := newRepos(t)
		f := container.NewFactory(kernel.NewSequence(), nil)
		s := newShip(t, "Kontenerowiec 1")
		c, err := f.NewGas(dims(5000, 800), 15)
		require.NoError(t, err)
		require.NoError(t, containers.Add(ctx, c))
		require.NoError(t, s.LoadContainer(c))
		require.NoError(t, ships.Add(ctx, s))

		s.RemoveContainer(c.SerialNumber())
		require.NoError(t, ships.Update(ctx, s))

		got, err := ships.Get(ctx, s.ID())
		require.NoError(t, err)
		assert.Empty(t, got.Containers())
	})
}

func TestRepository_Get(t *testing.T) {
	t.Run("should report unknown ships", func(t *testing.T) {
		ships, _ := newRepos(t)

		_, err := ships.Get(t.Context(), kernel.NewUUID())

		var notFound *errs.ObjectNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "ship", notFound.ParamName)
	})

	t.Run("should reject the zero id", func(t *testing.T) {
		ships, _ := newRepos(t)

		_, err := ships.Get(t.Context(), kernel.UUID{})

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestRepository_GetAll(t *testing.T) {
	ctx := t.Context()
	ships, _ := newRepos(t)
	first := newShip(t, "Kontenerowiec 1")
	second := newShip(t, "Kontenerowiec 2")
	require.NoError(t, ships.Add(ctx, first))
	require.NoError(t, ships.Add(ctx, second))

	all, err := ships.GetAll(ctx)

	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.True(t, first.IsEqual(all[0]))
	assert.True(t, second.IsEqual(all[1]))
}
