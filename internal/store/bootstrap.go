package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tintd/tint/internal/theme"
)

// bootstrap materializes the bundled default theme into an empty
// themes directory. The embedded document is written verbatim, so the
// file on disk is pretty-printed and strictly parseable. Once any
// theme file exists this path is unreachable.
func (s *Store) bootstrap() error {
	path := filepath.Join(s.dir, theme.DefaultThemeName+theme.FileExt)
	if err := os.WriteFile(path, theme.DefaultThemeBytes(), 0644); err != nil {
		return fmt.Errorf("failed to write default theme: %w", err)
	}
	s.logger.Info("bootstrapped default theme", "path", path)
	return nil
}
