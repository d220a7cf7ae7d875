package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the config file when it changes on disk and delivers
// valid configs on Updates. Invalid edits are logged and skipped.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	logger  *slog.Logger
	updates chan *Config
	done    chan struct{}
	mu      sync.Mutex
	running bool
}

// NewWatcher creates a watcher for the config file at path.
func NewWatcher(path string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if path == "" {
		path = ConfigPath()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("willowui: create config watcher: %w", err)
	}
	return &Watcher{
		watcher: fw,
		path:    path,
		logger:  logger,
		updates: make(chan *Config, 1),
		done:    make(chan struct{}),
	}, nil
}

// Updates delivers reloaded configs. Only the newest pending config is
// kept, so a slow reader never sees stale values.
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

// Start begins watching. The directory is watched rather than the file, so
// editors that replace the file on save are handled.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("willowui: watch config dir: %w", err)
	}
	w.running = true
	go w.watch()
	return nil
}

func (w *Watcher) watch() {
	filename := filepath.Base(w.path)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filename {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.reload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", "error", err)

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := LoadConfig(w.path)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		w.logger.Warn("ignoring config change", "path", w.path, "error", err)
		return
	}
	w.logger.Debug("config reloaded", "path", w.path)

	// Replace any config the reader has not picked up yet.
	select {
	case <-w.updates:
	default:
	}
	select {
	case w.updates <- cfg:
	default:
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return w.watcher.Close()
	}
	w.running = false
	close(w.done)
	return w.watcher.Close()
}
