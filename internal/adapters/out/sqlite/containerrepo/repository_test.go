package containerrepo_test

import (
	"bytes"
	"log/slog"
	"testing"

	"cargo/internal/adapters/out/sqlite"
	"cargo/internal/core/domain/model/container"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/ports"
	"cargo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepository(t *testing.T, logger *slog.Logger) ports.ContainerRepository {
	t.Helper()
	database, err := sqlite.Open(t.Context(), logger, slog.LevelInfo)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, database.Close())
	})
	return database.ContainerRepository()
}

func dims(maxLoad, tare float64) container.Dimensions {
	return container.Dimensions{
		MaxLoad:    kernel.MustNewMass(maxLoad),
		TareWeight: kernel.MustNewMass(tare),
		Height:     250,
		Depth:      600,
	}
}

func TestRepository(t *testing.T) {
	t.Run("should store every kind by serial number", func(t *testing.T) {
		// Arrange
		ctx := t.Context()
		repo := newRepository(t, nil)
		f := container.NewFactory(kernel.NewSequence(), nil)

		gas, err := f.NewGas(dims(5000, 800), 15)
		require.NoError(t, err)
		fish, err := f.NewRefrigerated(dims(2500, 550), "ryby", -18)
		require.NoError(t, err)
		acid, err := f.NewLiquid(dims(4000, 700), true)
		require.NoError(t, err)
		require.NoError(t, acid.Load(kernel.MustNewMass(1999.5)))

		// Act
		for _, c := range []container.Container{gas, fish, acid} {
			require.NoError(t, repo.Add(ctx, c))
		}
		all, err := repo.GetAll(ctx)

		// Assert
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, []string{"KON-G-1", "KON-C-2", "KON-L-3"}, []string{
			all[0].SerialNumber().String(),
			all[1].SerialNumber().String(),
			all[2].SerialNumber().String(),
		})
		assert.Equal(t, container.Variant{Pressure: 15}, container.VariantOf(all[0]))
		assert.Equal(t, container.Variant{Product: "ryby", MinTemperature: -18}, container.VariantOf(all[1]))
		assert.Equal(t, container.Variant{Hazardous: true}, container.VariantOf(all[2]))
		assert.Equal(t, "1999.5 kg", all[2].CurrentLoad().String())
		assert.Equal(t, "700 kg", all[2].TareWeight().String())
		assert.InDelta(t, 250.0, all[2].Height(), 1e-9)
	})

	t.Run("should give loaded containers the hazard logger", func(t *testing.T) {
		// Arrange
		ctx := t.Context()
		var logs bytes.Buffer
		repo := newRepository(t, slog.New(slog.NewTextHandler(&logs, nil)))
		acid, err := container.NewFactory(kernel.NewSequence(), nil).NewLiquid(dims(4000, 700), true)
		require.NoError(t, err)
		require.NoError(t, repo.Add(ctx, acid))

		stored, err := repo.Get(ctx, acid.SerialNumber())
		require.NoError(t, err)

		// Act
		err = stored.Load(kernel.MustNewMass(2500))

		// Assert
		require.ErrorIs(t, err, container.ErrOverfill)
		assert.Contains(t, logs.String(), "hazard notification")
		assert.Contains(t, logs.String(), "component=container")
	})

	t.Run("should reject a duplicate serial number", func(t *testing.T) {
		ctx := t.Context()
		repo := newRepository(t, nil)
		c, err := container.NewFactory(nil, nil).NewGas(dims(5000, 800), 10)
		require.NoError(t, err)
		require.NoError(t, repo.Add(ctx, c))

		require.ErrorIs(t, repo.Add(ctx, c), errs.ErrValueIsInvalid)
	})

	t.Run("should reject nil", func(t *testing.T) {
		require.ErrorIs(t, newRepository(t, nil).Add(t.Context(), nil), errs.ErrValueIsRequired)
	})

	t.Run("should report unknown serial numbers", func(t *testing.T) {
		serial, err := kernel.ParseSerialNumber("KON-L-7")
		require.NoError(t, err)

		_, err = newRepository(t, nil).Get(t.Context(), serial)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Contains(t, err.Error(), "KON-L-7")
	})

	t.Run("should update only stored containers", func(t *testing.T) {
		// Arrange
		ctx := t.Context()
		repo := newRepository(t, nil)
		c, err := container.NewFactory(nil, nil).NewGas(dims(5000, 800), 10)
		require.NoError(t, err)
		require.ErrorIs(t, repo.Update(ctx, c), errs.ErrObjectNotFound)
		require.NoError(t, repo.Add(ctx, c))

		// Act
		require.NoError(t, c.Load(kernel.MustNewMass(300)))
		require.NoError(t, repo.Update(ctx, c))

		// Assert
		stored, err := repo.Get(ctx, c.SerialNumber())
		require.NoError(t, err)
		assert.Equal(t, "300 kg", stored.CurrentLoad().String())
	})
}
