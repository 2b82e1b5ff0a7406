package cmd_test

import (
	"bytes"
	"log/slog"
	"testing"

	"cargo/cmd"
	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/application/usecases/queries"
	"cargo/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompositionRoot(t *testing.T) {
	tests := []struct {
		name      string
		level     slog.Level
		tracesSQL bool
	}{
		{"should trace SQL at debug level", slog.LevelDebug, true},
		{"should not trace SQL above debug level", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			var logs bytes.Buffer
			config := cmd.Config{LogLevel: tt.level}
			logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

			root, err := cmd.NewCompositionRoot(t.Context(), config, logger)
			require.NoError(t, err)
			t.Cleanup(func() {
				require.NoError(t, root.Close())
			})

			command, err := commands.NewCreateShipCommand("Kontenerowiec 1", 5, kernel.MustNewMass(15000), 25)
			require.NoError(t, err)

			// Act
			require.NoError(t, root.CreateCreateShipCommandHandler().Handle(t.Context(), command))

			// Assert
			fleet, err := root.CreateGetFleetQueryHandler().Handle(t.Context(), queries.NewGetFleetQuery())
			require.NoError(t, err)
			require.Len(t, fleet, 1)
			assert.Equal(t, "Kontenerowiec 1", fleet[0].Name)

			if tt.tracesSQL {
				assert.Contains(t, logs.String(), "component=gorm")
				assert.Contains(t, logs.String(), "ships")
			} else {
				assert.NotContains(t, logs.String(), "component=gorm")
			}
		})
	}
}
