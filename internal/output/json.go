package output

import (
	"encoding/json"
	"io"

	"github.com/tintd/tint/internal/theme"
)

// JSONFormatter formats themes as JSON.
type JSONFormatter struct {
	opts FormatterOptions
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(opts FormatterOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Format writes themes as a JSON array.
func (f *JSONFormatter) Format(w io.Writer, themes []*theme.Theme) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(themes)
}

// FormatSingle writes a single theme as JSON.
func (f *JSONFormatter) FormatSingle(w io.Writer, t *theme.Theme) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(t)
}
