package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tintd/tint/internal/theme"
)

func testThemes(t *testing.T) []*theme.Theme {
	t.Helper()

	dark, err := theme.DefaultTheme()
	require.NoError(t, err)
	dark.Name = "gruvbox"
	dark.Path = "/themes/gruvbox.json"
	dark.ModTime = time.Now().Add(-time.Hour)

	light, err := theme.DefaultTheme()
	require.NoError(t, err)
	light.Name = "ayu"
	light.Appearance = theme.AppearanceLight

	return []*theme.Theme{light, dark}
}

func TestNewFormatter(t *testing.T) {
	assert.IsType(t, &PlainFormatter{}, NewFormatter(FormatPlain, FormatterOptions{}))
	assert.IsType(t, &JSONFormatter{}, NewFormatter(FormatJSON, FormatterOptions{}))
	assert.IsType(t, &YAMLFormatter{}, NewFormatter(FormatYAML, FormatterOptions{}))
	// Unknown formats fall back to plain.
	assert.IsType(t, &PlainFormatter{}, NewFormatter("csv", FormatterOptions{}))
}

func TestPlainFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewPlainFormatter(FormatterOptions{Selected: "gruvbox", ShowTime: true})
	require.NoError(t, f.Format(&buf, testThemes(t)))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	assert.True(t, strings.HasPrefix(lines[0], "  ayu"))
	assert.Contains(t, lines[0], "light")
	assert.True(t, strings.HasPrefix(lines[1], "* gruvbox"))
	assert.Contains(t, lines[1], "dark")
	assert.Contains(t, lines[1], "ago")
}

func TestPlainFormatter_ShowPath(t *testing.T) {
	var buf bytes.Buffer
	f := NewPlainFormatter(FormatterOptions{ShowPath: true})
	require.NoError(t, f.Format(&buf, testThemes(t)))

	assert.Contains(t, buf.String(), "/themes/gruvbox.json")
}

func TestJSONFormatter_RoundTrips(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(FormatterOptions{})
	require.NoError(t, f.Format(&buf, testThemes(t)))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "ayu", decoded[0]["name"])
	assert.Equal(t, "gruvbox", decoded[1]["name"])
}

func TestJSONFormatter_Single(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(FormatterOptions{})
	require.NoError(t, f.FormatSingle(&buf, testThemes(t)[1]))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "gruvbox", decoded["name"])
	assert.NotContains(t, decoded, "Path")
}

func TestYAMLFormatter_RoundTrips(t *testing.T) {
	var buf bytes.Buffer
	f := NewYAMLFormatter(FormatterOptions{})
	require.NoError(t, f.Format(&buf, testThemes(t)))

	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "gruvbox", decoded[1]["name"])
}

func TestYAMLFormatter_Single(t *testing.T) {
	var buf bytes.Buffer
	f := NewYAMLFormatter(FormatterOptions{})
	require.NoError(t, f.FormatSingle(&buf, testThemes(t)[0]))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "ayu", decoded["name"])
	assert.Equal(t, "light", decoded["appearance"])
}
