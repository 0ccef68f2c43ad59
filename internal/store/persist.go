package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tintd/tint/internal/prefs"
	"github.com/tintd/tint/internal/theme"
)

// Failure records one theme that could not be persisted or reloaded.
type Failure struct {
	Theme string
	Err   error
}

// Report is the structured result of a best-effort mutation (Save,
// Reset, Delete). The operation itself never aborts on a per-theme
// failure; callers inspect the report instead of console output.
type Report struct {
	Failures []Failure
}

// OK reports whether every theme was processed successfully.
func (r *Report) OK() bool {
	return len(r.Failures) == 0
}

// Err aggregates the recorded failures, or nil when OK.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	errs := make([]error, len(r.Failures))
	for i, f := range r.Failures {
		errs[i] = fmt.Errorf("%s: %w", f.Theme, f.Err)
	}
	return errors.Join(errs...)
}

// fail logs and records one per-theme failure.
func (s *Store) fail(r *Report, themeName, msg string, err error) {
	s.logger.Warn(msg, "theme", themeName, "error", err)
	r.Failures = append(r.Failures, Failure{Theme: themeName, Err: err})
}

// Save persists, for every theme in the collection, the minimal delta
// of attributes that differ from the theme's on-disk file. The
// comparison baseline is always a fresh re-read of the file, and the
// override entry is replaced wholesale, so an attribute restored to
// its file value drops out of the overrides.
//
// Persistence is best-effort: a failure on one theme is recorded in
// the report and does not stop the others.
func (s *Store) Save() *Report {
	r := &Report{}
	for _, t := range s.themes {
		if err := s.saveTheme(t); err != nil {
			s.fail(r, t.Name, "failed to persist theme overrides", err)
		}
	}
	return r
}

// saveTheme diffs one in-memory theme against its file and replaces
// its override entry with the computed delta.
func (s *Store) saveTheme(t *theme.Theme) error {
	original, err := theme.Load(t.Path)
	if err != nil {
		return err
	}

	delta := make(prefs.ThemeOverrides)
	current := theme.Groups(t)
	baseline := theme.Groups(original)

	for i, g := range current {
		fields, err := theme.Fields(g.Group)
		if err != nil {
			return err
		}
		base, err := theme.Flatten(baseline[i].Group)
		if err != nil {
			return err
		}

		changed := make(prefs.GroupOverrides)
		for _, f := range fields {
			if *f.Value != base[f.Key] {
				changed[f.Key] = *f.Value
			}
		}
		if len(changed) > 0 {
			delta[g.Name] = changed
		}
	}

	return s.prefs.SetOverrides(t.Name, delta)
}

// Reset clears the override entry for the named theme and reloads the
// collection, reverting the theme to its on-disk defaults. Failures
// are reported, not propagated.
func (s *Store) Reset(name string) *Report {
	r := &Report{}
	if err := s.prefs.SetOverrides(name, prefs.ThemeOverrides{}); err != nil {
		s.fail(r, name, "failed to clear theme overrides", err)
		return r
	}
	if err := s.LoadThemes(); err != nil {
		s.fail(r, name, "failed to reload themes after reset", err)
	}
	return r
}

// Delete removes the named theme's file and its override entry, then
// reloads the collection. Failures are reported, not propagated.
func (s *Store) Delete(name string) *Report {
	r := &Report{}
	path := filepath.Join(s.dir, name+theme.FileExt)
	if err := os.Remove(path); err != nil {
		s.fail(r, name, "failed to delete theme file", err)
		return r
	}
	// Drop the override entry too, rather than leaving it orphaned.
	if err := s.prefs.RemoveOverrides(name); err != nil {
		s.fail(r, name, "failed to remove theme overrides", err)
	}
	if err := s.LoadThemes(); err != nil {
		s.fail(r, name, "failed to reload themes after delete", err)
	}
	return r
}
