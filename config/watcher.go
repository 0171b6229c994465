package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// DefaultDebounce is the quiet period applied to bursts of file writes.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reloads a configuration file when it changes on disk and hands the
// result to a callback. Editors write files in several steps, so changes are
// debounced.
type Watcher struct {
	watcher    *fsnotify.Watcher
	path       string
	debounce   time.Duration
	lastChange time.Time
	mu         sync.Mutex
	logger     *logrus.Entry
	onReload   func(*Config, error)
	load       func(string) (*Config, error)
}

// NewWatcher watches the directory containing path. fsnotify does not track
// files across rename-on-save, so the parent directory is watched and events
// are filtered by name.
func NewWatcher(path string, debounce time.Duration, logger *logrus.Entry, onReload func(*Config, error)) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}

	return &Watcher{
		watcher:  watcher,
		path:     abs,
		debounce: debounce,
		logger:   logger,
		onReload: onReload,
		load:     Load,
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Start begins watching for changes. It blocks until the context is cancelled.
func (w *Watcher) Start(ctx context.Context) {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.logger.Debugf("fsnotify event: %s op=%v", event.Name, event.Op)

			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			w.handleChange()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Errorf("Watcher error: %v", err)
		case <-ctx.Done():
			w.watcher.Close()
			return
		}
	}
}

// handleChange reloads the file unless a reload just happened.
func (w *Watcher) handleChange() {
	w.mu.Lock()
	elapsed := time.Since(w.lastChange)
	if elapsed < w.debounce {
		w.mu.Unlock()
		w.logger.Debugf("Debounced: %s (only %v since last change)", filepath.Base(w.path), elapsed)
		return
	}
	w.lastChange = time.Now()
	w.mu.Unlock()

	w.logger.Infof("Config changed: %s", filepath.Base(w.path))

	cfg, err := w.load(w.path)
	if err != nil {
		w.logger.WithError(err).Warn("Reloaded configuration is invalid, keeping previous")
	}
	if w.onReload != nil {
		w.onReload(cfg, err)
	}
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
