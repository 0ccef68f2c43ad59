package theme

import (
	"errors"
	"fmt"
)

// Group names as they appear in override storage.
const (
	GroupEditor   = "editor"
	GroupTerminal = "terminal"
)

// ErrUnknownGroup indicates a value that is not a recognized attribute
// group shape.
var ErrUnknownGroup = errors.New("not a recognized attribute group")

// Field pairs a schema-declared attribute key with a pointer to its
// value inside a group. The pointer allows the same enumeration to
// serve both reads (diffing) and writes (override application).
type Field struct {
	Key   string
	Value *Attribute
}

// fields returns the editor group's attribute fields in schema order.
func (e *EditorAttributes) fields() []Field {
	return []Field{
		{"background", &e.Background},
		{"text", &e.Text},
		{"selection", &e.Selection},
		{"cursor", &e.Cursor},
		{"line_highlight", &e.LineHighlight},
		{"comment", &e.Comment},
		{"keyword", &e.Keyword},
		{"string", &e.String},
		{"number", &e.Number},
		{"function", &e.Function},
	}
}

// fields returns the terminal group's attribute fields in schema order.
func (t *TerminalAttributes) fields() []Field {
	return []Field{
		{"background", &t.Background},
		{"text", &t.Text},
		{"selection", &t.Selection},
		{"cursor", &t.Cursor},
		{"black", &t.Black},
		{"red", &t.Red},
		{"green", &t.Green},
		{"yellow", &t.Yellow},
		{"blue", &t.Blue},
		{"magenta", &t.Magenta},
		{"cyan", &t.Cyan},
		{"white", &t.White},
	}
}

// Fields enumerates a group's schema-declared attribute keys in order.
// Only *EditorAttributes and *TerminalAttributes are recognized; any
// other value fails with ErrUnknownGroup.
func Fields(group any) ([]Field, error) {
	switch g := group.(type) {
	case *EditorAttributes:
		return g.fields(), nil
	case *TerminalAttributes:
		return g.fields(), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownGroup, group)
	}
}

// Flatten produces the flat key-to-value mapping for a group.
func Flatten(group any) (map[string]Attribute, error) {
	fields, err := Fields(group)
	if err != nil {
		return nil, err
	}

	m := make(map[string]Attribute, len(fields))
	for _, f := range fields {
		m[f.Key] = *f.Value
	}
	return m, nil
}

// NamedGroup pairs a group name with a pointer to the group itself.
type NamedGroup struct {
	Name  string
	Group any
}

// Groups yields a theme's attribute groups in fixed order.
func Groups(t *Theme) []NamedGroup {
	return []NamedGroup{
		{GroupEditor, &t.Editor},
		{GroupTerminal, &t.Terminal},
	}
}

// Group resolves a theme's attribute group by name.
func Group(t *Theme, name string) (any, error) {
	switch name {
	case GroupEditor:
		return &t.Editor, nil
	case GroupTerminal:
		return &t.Terminal, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, name)
	}
}

// Keys returns the schema-declared key set for the named group.
// Unknown group names yield an empty list.
func Keys(name string) []string {
	var fields []Field
	switch name {
	case GroupEditor:
		fields = (&EditorAttributes{}).fields()
	case GroupTerminal:
		fields = (&TerminalAttributes{}).fields()
	default:
		return nil
	}

	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	return keys
}
