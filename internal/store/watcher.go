package store

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/tintd/tint/internal/theme"
)

// DirWatcher watches the themes directory and triggers a reload when
// theme files are created, written, or removed.
type DirWatcher struct {
	watcher *fsnotify.Watcher
	store   *Store
	logger  *slog.Logger
	onLoad  func()
	done    chan struct{}
	stopped chan struct{}
	mu      sync.Mutex
	running bool
}

// NewDirWatcher creates a watcher over the store's themes directory.
// onLoad, if non-nil, runs after each successful reload.
func NewDirWatcher(store *Store, logger *slog.Logger, onLoad func()) (*DirWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &DirWatcher{
		watcher: watcher,
		store:   store,
		logger:  logger,
		onLoad:  onLoad,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}, nil
}

// Start begins watching the themes directory.
func (dw *DirWatcher) Start() error {
	dw.mu.Lock()
	if dw.running {
		dw.mu.Unlock()
		return nil
	}
	dw.running = true
	dw.mu.Unlock()

	if err := dw.watcher.Add(dw.store.Dir()); err != nil {
		dw.mu.Lock()
		dw.running = false
		dw.mu.Unlock()
		return err
	}

	go dw.watch()
	return nil
}

// watch is the main watch loop.
func (dw *DirWatcher) watch() {
	defer close(dw.stopped)

	for {
		select {
		case event, ok := <-dw.watcher.Events:
			if !ok {
				return
			}

			// Only care about theme files.
			if !strings.HasSuffix(event.Name, theme.FileExt) {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) {
				dw.logger.Debug("themes directory changed, reloading", "file", event.Name, "op", event.Op.String())
				if err := dw.store.LoadThemes(); err != nil {
					dw.logger.Warn("failed to reload themes", "error", err)
					continue
				}
				if dw.onLoad != nil {
					dw.onLoad()
				}
			}

		case err, ok := <-dw.watcher.Errors:
			if !ok {
				return
			}
			dw.logger.Warn("themes directory watcher error", "error", err)

		case <-dw.done:
			return
		}
	}
}

// Stop stops watching, releases the watcher, and waits for the watch
// goroutine to exit.
func (dw *DirWatcher) Stop() error {
	dw.mu.Lock()
	if !dw.running {
		dw.mu.Unlock()
		return nil
	}
	dw.running = false
	close(dw.done)
	dw.mu.Unlock()

	err := dw.watcher.Close()
	<-dw.stopped
	return err
}
