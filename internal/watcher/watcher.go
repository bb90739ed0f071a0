// Package watcher reports changes to a set of files, debounced, so the CLI
// can re-render shortcuts after an application's config file is saved.
package watcher

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce groups the burst of events editors produce on save.
const DefaultDebounce = 200 * time.Millisecond

// Watcher monitors files for writes and sends one notification per burst.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	files     map[string]bool
	debounce  time.Duration
	onChange  chan struct{}
	errs      chan error
	done      chan struct{}
}

// Config holds watcher configuration options.
type Config struct {
	Files       []string
	DebounceDur time.Duration
}

// DefaultConfig returns a config watching files with DefaultDebounce.
func DefaultConfig(files ...string) Config {
	return Config{
		Files:       files,
		DebounceDur: DefaultDebounce,
	}
}

// New creates a watcher for the configured files.
func New(cfg Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	files := make(map[string]bool, len(cfg.Files))
	for _, f := range cfg.Files {
		files[filepath.Clean(f)] = true
	}

	return &Watcher{
		fsWatcher: fsw,
		files:     files,
		debounce:  cfg.DebounceDur,
		onChange:  make(chan struct{}, 1),
		errs:      make(chan error, 1),
		done:      make(chan struct{}),
	}, nil
}

// Start begins watching the directories containing the files. The returned
// channel receives a signal after each debounced burst of changes.
func (w *Watcher) Start() (<-chan struct{}, error) {
	dirs := make(map[string]bool)
	for f := range w.files {
		dirs[filepath.Dir(f)] = true
	}
	// Watching directories survives editors that replace the file on save.
	for dir := range dirs {
		if err := w.fsWatcher.Add(dir); err != nil {
			return nil, fmt.Errorf("watching directory %s: %w", dir, err)
		}
	}

	go w.loop()

	return w.onChange, nil
}

// Errors returns watcher errors. Only the most recent unread error is kept.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Stop terminates the watcher and releases resources.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.fsWatcher.Close()
}

// loop processes file system events with debouncing.
func (w *Watcher) loop() {
	var (
		timer   *time.Timer
		pending bool
	)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.isRelevantEvent(event) {
				continue
			}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			pending = true

		case <-func() <-chan time.Time {
			if timer != nil {
				return timer.C
			}
			return nil
		}():
			if pending {
				select {
				case w.onChange <- struct{}{}:
				default:
				}
				pending = false
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.reportError(err)

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// reportError replaces any unread error with err.
func (w *Watcher) reportError(err error) {
	select {
	case <-w.errs:
	default:
	}
	select {
	case w.errs <- err:
	default:
	}
}

// isRelevantEvent checks if the event touches one of the watched files.
func (w *Watcher) isRelevantEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	return w.files[filepath.Clean(event.Name)]
}
