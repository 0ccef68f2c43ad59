package prefs

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// document is the on-disk shape of the preferences file.
type document struct {
	SelectedTheme string    `toml:"selected_theme,omitempty"`
	Overrides     Overrides `toml:"overrides,omitempty"`
}

// File is a TOML-backed Preferences implementation. The file is read
// once on open; every mutation rewrites it in full. There is no
// cross-theme transaction: a crash between writes can leave some
// themes' overrides updated and others not.
type File struct {
	path string
	doc  document
}

// OpenFile loads preferences from path, starting empty if the file
// does not exist yet.
func OpenFile(path string) (*File, error) {
	f := &File{
		path: path,
		doc:  document{Overrides: make(Overrides)},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return f, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, &f.doc); err != nil {
		return nil, err
	}
	if f.doc.Overrides == nil {
		f.doc.Overrides = make(Overrides)
	}
	return f, nil
}

// Path returns the preferences file path.
func (f *File) Path() string { return f.path }

func (f *File) SelectedTheme() string { return f.doc.SelectedTheme }

func (f *File) SetSelectedTheme(name string) error {
	f.doc.SelectedTheme = name
	return f.write()
}

func (f *File) Overrides(name string) ThemeOverrides {
	return clone(f.doc.Overrides[name])
}

func (f *File) SetOverrides(name string, o ThemeOverrides) error {
	f.doc.Overrides[name] = clone(o)
	return f.write()
}

func (f *File) RemoveOverrides(name string) error {
	delete(f.doc.Overrides, name)
	return f.write()
}

// write persists the current document, creating parent directories as
// needed.
func (f *File) write() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(f.doc)
	if err != nil {
		return err
	}

	return os.WriteFile(f.path, data, 0644)
}
