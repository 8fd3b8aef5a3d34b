// Tests for exit codes, JSON printing, and color resolution.
package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitCode(t *testing.T) {
	base := errors.New("boom")
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", base, ExitUserError},
		{"coded unknown", WithCode(ExitUnknown, base), ExitUnknown},
		{"coded system", WithCode(ExitSysError, base), ExitSysError},
		{"wrapped coded", fmt.Errorf("context: %w", WithCode(ExitUnknown, base)), ExitUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestWithCode_NilIsNil(t *testing.T) {
	assert.NoError(t, WithCode(ExitSysError, nil))
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintJSON(&buf, map[string]int{"specs": 3}))
	assert.Equal(t, "{\n  \"specs\": 3\n}\n", buf.String())
}

func TestResolveColor(t *testing.T) {
	t.Run("always", func(t *testing.T) {
		on, err := ResolveColor(ColorAlways)
		require.NoError(t, err)
		assert.True(t, on)
	})

	t.Run("never", func(t *testing.T) {
		on, err := ResolveColor(ColorNever)
		require.NoError(t, err)
		assert.False(t, on)
	})

	t.Run("auto honors NO_COLOR", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		on, err := ResolveColor(ColorAuto)
		require.NoError(t, err)
		assert.False(t, on)
	})

	t.Run("invalid mode", func(t *testing.T) {
		_, err := ResolveColor("sometimes")
		assert.Error(t, err)
	})
}
