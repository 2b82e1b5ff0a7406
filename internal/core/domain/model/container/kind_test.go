package container_test

import (
	"testing"

	"cargo/internal/core/domain/model/container"
	"cargo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	t.Run("should expose tag and name", func(t *testing.T) {
		testCases := []struct {
			kind container.Kind
			tag  string
			name string
		}{
			{container.KindRefrigerated, "C", "refrigerated"},
			{container.KindLiquid, "L", "liquid"},
			{container.KindGas, "G", "gas"},
		}

		for _, tc := range testCases {
			require.NoError(t, tc.kind.Validate())
			assert.Equal(t, tc.tag, tc.kind.Tag())
			assert.Equal(t, tc.name, tc.kind.String())

			parsed, err := container.ParseKind(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, parsed)
		}
	})

	t.Run("should reject unknown kinds", func(t *testing.T) {
		require.ErrorIs(t, container.UnknownKind.Validate(), errs.ErrValueIsInvalid)
		require.ErrorIs(t, container.Kind(42).Validate(), errs.ErrValueIsInvalid)
		assert.Equal(t, "Kind(42)", container.Kind(42).String())

		_, err := container.ParseKind("unknown")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("ParseKind ignores case and padding", func(t *testing.T) {
		kind, err := container.ParseKind(" Gas ")

		require.NoError(t, err)
		assert.Equal(t, container.KindGas, kind)
	})
}
