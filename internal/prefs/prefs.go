// Package prefs provides the preferences collaborator: the selected
// theme name and the per-theme attribute overrides, persisted outside
// the theme files themselves.
package prefs

import (
	"github.com/tintd/tint/internal/theme"
)

// GroupOverrides maps attribute keys to overridden values for one
// attribute group. Only keys present here deviate from the theme
// file's defaults.
type GroupOverrides map[string]theme.Attribute

// ThemeOverrides maps group names ("editor", "terminal") to their
// overridden attributes for one theme.
type ThemeOverrides map[string]GroupOverrides

// Overrides maps theme names to their overrides.
type Overrides map[string]ThemeOverrides

// Preferences is the external preferences collaborator. Implementations
// must support point reads and writes; no transactional multi-theme
// update is required.
type Preferences interface {
	// SelectedTheme returns the stored selected theme name, or "" if
	// none is stored.
	SelectedTheme() string

	// SetSelectedTheme stores the selected theme name.
	SetSelectedTheme(name string) error

	// Overrides returns the override entry for the named theme. A nil
	// result means no entry is stored.
	Overrides(name string) ThemeOverrides

	// SetOverrides replaces the override entry for the named theme.
	SetOverrides(name string, o ThemeOverrides) error

	// RemoveOverrides deletes the override entry for the named theme.
	RemoveOverrides(name string) error
}

// clone deep-copies a ThemeOverrides so callers cannot alias stored state.
func clone(o ThemeOverrides) ThemeOverrides {
	if o == nil {
		return nil
	}
	out := make(ThemeOverrides, len(o))
	for group, attrs := range o {
		g := make(GroupOverrides, len(attrs))
		for k, v := range attrs {
			g[k] = v
		}
		out[group] = g
	}
	return out
}

// Memory is an in-memory Preferences implementation. It backs tests
// and callers that manage persistence themselves.
type Memory struct {
	selected  string
	overrides Overrides
}

// NewMemory creates an empty in-memory preferences store.
func NewMemory() *Memory {
	return &Memory{overrides: make(Overrides)}
}

func (m *Memory) SelectedTheme() string { return m.selected }

func (m *Memory) SetSelectedTheme(name string) error {
	m.selected = name
	return nil
}

func (m *Memory) Overrides(name string) ThemeOverrides {
	return clone(m.overrides[name])
}

func (m *Memory) SetOverrides(name string, o ThemeOverrides) error {
	m.overrides[name] = clone(o)
	return nil
}

func (m *Memory) RemoveOverrides(name string) error {
	delete(m.overrides, name)
	return nil
}
