// Package store manages the in-memory theme collection: loading theme
// files from the themes directory, applying persisted overrides, and
// writing back only the delta of modified attributes. Theme files on
// disk are never modified by the store; all user changes live in the
// preferences collaborator.
package store

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tintd/tint/internal/prefs"
	"github.com/tintd/tint/internal/theme"
)

// ErrThemeNotFound is returned when an operation names a theme that is
// not in the collection.
var ErrThemeNotFound = errors.New("theme not found")

// Store owns the theme collection for one themes directory.
//
// A Store is constructed explicitly and initialized by a single
// LoadThemes call from its owner; there is no process-wide shared
// instance. Operations are synchronous and not safe for concurrent
// use; callers must serialize access.
type Store struct {
	dir    string
	prefs  prefs.Preferences
	logger *slog.Logger

	themes   []*theme.Theme
	selected *theme.Theme
}

// New creates a Store over the given themes directory.
func New(dir string, p prefs.Preferences, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		dir:    dir,
		prefs:  p,
		logger: logger,
	}
}

// Dir returns the themes directory the store manages.
func (s *Store) Dir() string { return s.dir }

// LoadThemes rebuilds the in-memory collection from the themes
// directory. The previous collection is discarded entirely; themes are
// loaded in name order, overrides are applied in place, and the
// selected theme is resolved once after the full collection is built.
//
// Any failure (listing, decoding, extraction) aborts the whole load
// and leaves the collection empty. Theme files are never written.
func (s *Store) LoadThemes() error {
	s.themes = nil
	s.selected = nil

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create themes directory: %w", err)
	}

	names, err := s.listThemeFiles()
	if err != nil {
		return err
	}

	if len(names) == 0 {
		if err := s.bootstrap(); err != nil {
			return err
		}
		names, err = s.listThemeFiles()
		if err != nil {
			return err
		}
	}

	themes := make([]*theme.Theme, 0, len(names))
	for _, name := range names {
		t, err := s.loadTheme(filepath.Join(s.dir, name))
		if err != nil {
			return err
		}
		themes = append(themes, t)
	}

	s.themes = themes
	s.resolveSelection()
	s.logger.Debug("loaded themes", "dir", s.dir, "count", len(s.themes))
	return nil
}

// listThemeFiles returns theme file names sorted by name. Directory
// listing order is platform-dependent, so ordering is made explicit.
func (s *Store) listThemeFiles() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list themes directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), theme.FileExt) {
			names = append(names, entry.Name())
		}
	}

	sort.Strings(names)
	return names, nil
}

// loadTheme parses one theme file and applies its overrides in place.
// Override keys not present in the group schema are ignored.
//
// The document's name must equal the file's stem: the name is the key
// for both the override entry and the file path, and unique filenames
// are what keep names unique across the collection.
func (s *Store) loadTheme(path string) (*theme.Theme, error) {
	t, err := theme.Load(path)
	if err != nil {
		return nil, err
	}

	stem := strings.TrimSuffix(filepath.Base(path), theme.FileExt)
	if t.Name != stem {
		return nil, fmt.Errorf("%s: %w: theme name %q does not match file name", path, theme.ErrDecode, t.Name)
	}

	overrides := s.prefs.Overrides(t.Name)
	if len(overrides) == 0 {
		return t, nil
	}

	for _, g := range theme.Groups(t) {
		applied := overrides[g.Name]
		if len(applied) == 0 {
			continue
		}

		fields, err := theme.Fields(g.Group)
		if err != nil {
			return nil, err
		}
		for _, f := range fields {
			if v, ok := applied[f.Key]; ok {
				*f.Value = v
			}
		}
	}
	return t, nil
}

// resolveSelection selects the theme matching the stored selected-theme
// name, falling back to the first theme in the collection.
func (s *Store) resolveSelection() {
	if len(s.themes) == 0 {
		return
	}

	want := s.prefs.SelectedTheme()
	for _, t := range s.themes {
		if t.Name == want {
			s.selected = t
			return
		}
	}
	s.selected = s.themes[0]
}

// Themes returns the loaded theme collection in name order. The slice
// is a copy; reordering it does not affect the store.
func (s *Store) Themes() []*theme.Theme {
	return append([]*theme.Theme(nil), s.themes...)
}

// Selected returns the currently selected theme, or nil before the
// first successful load.
func (s *Store) Selected() *theme.Theme {
	return s.selected
}

// ByAppearance returns the loaded themes with the given appearance.
func (s *Store) ByAppearance(a theme.Appearance) []*theme.Theme {
	var out []*theme.Theme
	for _, t := range s.themes {
		if t.Appearance == a {
			out = append(out, t)
		}
	}
	return out
}

// Theme returns the loaded theme with the given name.
func (s *Store) Theme(name string) (*theme.Theme, bool) {
	for _, t := range s.themes {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// Select marks the named theme as selected and persists the choice.
func (s *Store) Select(name string) error {
	t, ok := s.Theme(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}

	s.selected = t
	if err := s.prefs.SetSelectedTheme(name); err != nil {
		return fmt.Errorf("failed to persist selected theme: %w", err)
	}
	return nil
}

// SetAttribute changes one attribute on a loaded theme and persists the
// resulting deltas. The theme file itself is untouched; only the
// override entry changes.
func (s *Store) SetAttribute(themeName, groupName, key string, attr theme.Attribute) (*Report, error) {
	t, ok := s.Theme(themeName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, themeName)
	}

	group, err := theme.Group(t, groupName)
	if err != nil {
		return nil, err
	}

	fields, err := theme.Fields(group)
	if err != nil {
		return nil, err
	}

	for _, f := range fields {
		if f.Key == key {
			*f.Value = attr
			return s.Save(), nil
		}
	}
	return nil, fmt.Errorf("unknown attribute key %q in group %q", key, groupName)
}
