package container_test

import (
	"bytes"
	"log/slog"
	"testing"

	"cargo/internal/core/domain/model/container"
	"cargo/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

// Test helper functions.
func dimensions(maxLoad, tare float64) container.Dimensions {
	return container.Dimensions{
		MaxLoad:    kernel.MustNewMass(maxLoad),
		TareWeight: kernel.MustNewMass(tare),
		Height:     250,
		Depth:      600,
	}
}

func kg(v float64) kernel.Mass {
	return kernel.MustNewMass(v)
}

func newFactory(t *testing.T) (*container.Factory, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	return container.NewFactory(kernel.NewSequence(), logger), &buf
}

func serial(t *testing.T, tag string, n uint64) kernel.SerialNumber {
	t.Helper()
	s, err := kernel.NewSerialNumber(tag, n)
	require.NoError(t, err)
	return s
}

func assertMass(t *testing.T, expected float64, actual kernel.Mass) {
	t.Helper()
	require.Truef(t, kg(expected).Equal(actual), "expected %v kg, got %s", expected, actual)
}
