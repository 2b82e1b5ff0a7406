package sqlite_test

import (
	"bytes"
	"log/slog"
	"testing"

	"cargo/internal/adapters/out/sqlite"
	"cargo/internal/core/domain/model/container"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/ship"

	"github.com/stretchr/testify/require"
)

// Test helper functions.
func openDatabase(t *testing.T) (*sqlite.Database, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	database, err := sqlite.Open(t.Context(), logger, slog.LevelInfo)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, database.Close())
	})

	return database, &logs
}

func newShip(t *testing.T, name string) *ship.Ship {
	t.Helper()
	s, err := ship.NewShip(kernel.NewUUID(), name, 5, kernel.MustNewMass(15000), 20)
	require.NoError(t, err)
	return s
}

func newFactory() *container.Factory {
	return container.NewFactory(kernel.NewSequence(), nil)
}

func newLiquid(t *testing.T, f *container.Factory) *container.Liquid {
	t.Helper()
	c, err := f.NewLiquid(container.Dimensions{
		MaxLoad:    kernel.MustNewMass(4000),
		TareWeight: kernel.MustNewMass(700),
		Height:     250,
		Depth:      600,
	}, false)
	require.NoError(t, err)
	return c
}
