package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tintd/tint/internal/theme"
)

func TestRender(t *testing.T) {
	th, err := theme.DefaultTheme()
	require.NoError(t, err)

	out, err := Render(th)
	require.NoError(t, err)

	assert.Contains(t, out, th.Name)
	assert.Contains(t, out, theme.GroupEditor)
	assert.Contains(t, out, theme.GroupTerminal)
	assert.Contains(t, out, "background")
	assert.Contains(t, out, "line_highlight")
	assert.Contains(t, out, th.Editor.Background.Color)
	// The comment attribute in the bundled default theme is italic.
	assert.Contains(t, out, "italic")
}

func TestFlagNames(t *testing.T) {
	assert.Empty(t, flagNames(theme.Attribute{Color: "#ffffff"}))
	assert.Equal(t, "bold", flagNames(theme.Attribute{Bold: true}))
	assert.Equal(t, "bold italic underline", flagNames(theme.Attribute{
		Bold: true, Italic: true, Underline: true,
	}))
}
