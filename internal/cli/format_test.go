package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glintlabs/glint/internal/errors"
	"github.com/glintlabs/glint/internal/output"
)

func TestResolveFormatExplicit(t *testing.T) {
	got, err := ResolveFormat(output.FormatHTML)
	require.NoError(t, err)
	assert.Equal(t, output.FormatHTML, got)

	got, err = ResolveFormat(output.FormatANSI)
	require.NoError(t, err)
	assert.Equal(t, output.FormatANSI, got)
}

func TestResolveFormatAuto(t *testing.T) {
	// Whether the test binary's stdout is a terminal depends on how the
	// tests are run, so only assert that auto resolves to something concrete.
	for _, format := range []string{"", output.FormatAuto} {
		got, err := ResolveFormat(format)
		require.NoError(t, err)
		assert.Contains(t, []string{output.FormatHTML, output.FormatANSI}, got)
	}
}

func TestResolveFormatUnknown(t *testing.T) {
	_, err := ResolveFormat("markdown")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrRender))
	assert.Contains(t, err.Error(), "markdown")
}

func TestNewFormatter(t *testing.T) {
	f, err := newFormatter(output.FormatHTML, "cat", "glint-highlight")
	require.NoError(t, err)
	assert.Equal(t, output.FormatHTML, f.Name())

	f, err = newFormatter(output.FormatANSI, "cat", "")
	require.NoError(t, err)
	assert.Equal(t, output.FormatANSI, f.Name())

	_, err = newFormatter("markdown", "cat", "")
	require.Error(t, err)
}
