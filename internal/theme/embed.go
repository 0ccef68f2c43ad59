package theme

import (
	_ "embed"
)

// DefaultThemeName is the name of the built-in default theme.
const DefaultThemeName = "default"

// defaultTheme contains the bundled default theme document,
// pretty-printed exactly as it is written to disk on bootstrap.
//
//go:embed default.json
var defaultTheme []byte

// DefaultThemeBytes returns the bundled default theme document.
func DefaultThemeBytes() []byte {
	out := make([]byte, len(defaultTheme))
	copy(out, defaultTheme)
	return out
}

// DefaultTheme parses the bundled default theme.
func DefaultTheme() (*Theme, error) {
	return Parse(defaultTheme)
}
