// Package output provides output formatters for theme listings.
package output

import (
	"io"

	"github.com/tintd/tint/internal/theme"
)

// Formatter formats themes for output.
type Formatter interface {
	// Format writes formatted themes to the writer.
	Format(w io.Writer, themes []*theme.Theme) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatPlain FormatType = "plain"
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
)

// FormatterOptions configures formatter behavior.
type FormatterOptions struct {
	Selected string // Name of the selected theme, marked in plain output
	ShowPath bool   // Show the theme file path
	ShowTime bool   // Show the file's relative modification time
}

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType, opts FormatterOptions) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter(opts)
	case FormatYAML:
		return NewYAMLFormatter(opts)
	case FormatPlain:
		fallthrough
	default:
		return NewPlainFormatter(opts)
	}
}
