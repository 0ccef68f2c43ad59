package store

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tintd/tint/internal/theme"
)

func TestDirWatcher_ReloadsOnCreate(t *testing.T) {
	s, _, dir := newStore(t)
	writeTheme(t, dir, "gruvbox", theme.AppearanceDark)
	require.NoError(t, s.LoadThemes())

	var reloads atomic.Int32
	w, err := NewDirWatcher(s, nil, func() { reloads.Add(1) })
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	writeTheme(t, dir, "zenburn", theme.AppearanceDark)

	require.Eventually(t, func() bool {
		return reloads.Load() > 0
	}, 3*time.Second, 10*time.Millisecond)

	// Join the watch goroutine before inspecting the collection.
	require.NoError(t, w.Stop())
	assert.Len(t, s.Themes(), 2)
}

func TestDirWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	s, _, dir := newStore(t)
	writeTheme(t, dir, "gruvbox", theme.AppearanceDark)
	require.NoError(t, s.LoadThemes())

	var reloads atomic.Int32
	w, err := NewDirWatcher(s, nil, func() { reloads.Add(1) })
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0644))

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(0), reloads.Load())
}

func TestDirWatcher_StartStopIdempotent(t *testing.T) {
	s, _, dir := newStore(t)
	writeTheme(t, dir, "gruvbox", theme.AppearanceDark)
	require.NoError(t, s.LoadThemes())

	w, err := NewDirWatcher(s, nil, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	require.NoError(t, w.Start())
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}
