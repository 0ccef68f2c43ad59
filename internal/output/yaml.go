package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/tintd/tint/internal/theme"
)

// YAMLFormatter formats themes as YAML, which is convenient for piping
// into other tooling or sharing snippets.
type YAMLFormatter struct {
	opts FormatterOptions
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(opts FormatterOptions) *YAMLFormatter {
	return &YAMLFormatter{opts: opts}
}

// Format writes themes as a YAML document.
func (f *YAMLFormatter) Format(w io.Writer, themes []*theme.Theme) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(themes)
}

// FormatSingle writes a single theme as YAML.
func (f *YAMLFormatter) FormatSingle(w io.Writer, t *theme.Theme) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(t)
}
