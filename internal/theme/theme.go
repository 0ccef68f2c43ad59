package theme

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// FileExt is the recognized theme file suffix. Matching is case-sensitive.
const FileExt = ".json"

// Appearance classifies a theme as dark or light.
type Appearance string

const (
	AppearanceDark  Appearance = "dark"
	AppearanceLight Appearance = "light"
)

// Valid reports whether the appearance is a recognized value.
func (a Appearance) Valid() bool {
	return a == AppearanceDark || a == AppearanceLight
}

// Attribute is a single styling value within a theme: a color plus
// optional style flags. Attributes compare structurally with ==.
type Attribute struct {
	Color     string `json:"color" toml:"color" yaml:"color"`
	Bold      bool   `json:"bold,omitempty" toml:"bold,omitempty" yaml:"bold,omitempty"`
	Italic    bool   `json:"italic,omitempty" toml:"italic,omitempty" yaml:"italic,omitempty"`
	Underline bool   `json:"underline,omitempty" toml:"underline,omitempty" yaml:"underline,omitempty"`
}

// EditorAttributes is the editor attribute group. The key set is closed:
// every attribute is a declared field, not a dynamic map entry.
type EditorAttributes struct {
	Background    Attribute `json:"background" yaml:"background"`
	Text          Attribute `json:"text" yaml:"text"`
	Selection     Attribute `json:"selection" yaml:"selection"`
	Cursor        Attribute `json:"cursor" yaml:"cursor"`
	LineHighlight Attribute `json:"line_highlight" yaml:"line_highlight"`
	Comment       Attribute `json:"comment" yaml:"comment"`
	Keyword       Attribute `json:"keyword" yaml:"keyword"`
	String        Attribute `json:"string" yaml:"string"`
	Number        Attribute `json:"number" yaml:"number"`
	Function      Attribute `json:"function" yaml:"function"`
}

// TerminalAttributes is the terminal attribute group.
type TerminalAttributes struct {
	Background Attribute `json:"background" yaml:"background"`
	Text       Attribute `json:"text" yaml:"text"`
	Selection  Attribute `json:"selection" yaml:"selection"`
	Cursor     Attribute `json:"cursor" yaml:"cursor"`
	Black      Attribute `json:"black" yaml:"black"`
	Red        Attribute `json:"red" yaml:"red"`
	Green      Attribute `json:"green" yaml:"green"`
	Yellow     Attribute `json:"yellow" yaml:"yellow"`
	Blue       Attribute `json:"blue" yaml:"blue"`
	Magenta    Attribute `json:"magenta" yaml:"magenta"`
	Cyan       Attribute `json:"cyan" yaml:"cyan"`
	White      Attribute `json:"white" yaml:"white"`
}

// Theme represents a single theme document.
type Theme struct {
	Name       string             `json:"name" yaml:"name"`
	Appearance Appearance         `json:"appearance" yaml:"appearance"`
	Editor     EditorAttributes   `json:"editor" yaml:"editor"`
	Terminal   TerminalAttributes `json:"terminal" yaml:"terminal"`

	// File metadata, populated by Load. Not part of the document.
	Path    string    `json:"-" yaml:"-"`
	ModTime time.Time `json:"-" yaml:"-"`
}

// ErrDecode indicates a malformed theme document.
var ErrDecode = errors.New("malformed theme document")

// Parse decodes a theme document. Decoding is strict: unknown keys at
// any level are rejected, and the result is validated.
func Parse(data []byte) (*Theme, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var t Theme
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return &t, nil
}

// Validate checks the decoded document's invariants.
func (t *Theme) Validate() error {
	if t.Name == "" {
		return errors.New("theme name is empty")
	}
	if !t.Appearance.Valid() {
		return fmt.Errorf("unknown appearance %q", t.Appearance)
	}
	return nil
}

// Load reads and parses a theme file, recording file metadata.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	t.Path = path
	t.ModTime = info.ModTime()
	return t, nil
}

// Encode renders the theme as a human-readably formatted document.
func (t *Theme) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
