package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ekohilas/train-conductor-world-tools/logging"
)

// ErrNoCallback indicates a Watcher without a function to run.
var ErrNoCallback = errors.New("watch: nil callback")

// Watcher calls a function after each change to one file.
type Watcher struct {
	filename string
	fn       func(context.Context) error
	log      logging.Logger

	// modTime of the file when fn last finished; events that leave it unchanged
	// come from fn's own writes.
	lastRun time.Time
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithLogger sends the watcher's messages to l instead of the package logger.
func WithLogger(l logging.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.log = l
		}
	}
}

// New returns a Watcher running fn on changes to filename. fn receives the
// context given to Run. An error returned by fn is logged and watching
// continues.
func New(filename string, fn func(context.Context) error, opts ...Option) (*Watcher, error) {
	if fn == nil {
		return nil, ErrNoCallback
	}
	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	w := &Watcher{filename: abs, fn: fn, log: logging.Default()}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Run watches until ctx is done, then returns nil. Errors setting up the
// watch or reported by fsnotify are returned.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.filename)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch: observing %s: %w", dir, err)
	}
	w.log.Debugf("Observing %s", dir)
	w.log.Infof("Starting polling to look for changes to %s...", w.filename)

	for {
		select {
		case <-ctx.Done():
			w.log.Debugf("Stopped watching %s", w.filename)
			return nil

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch: %w", err)

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.matches(ev) {
				continue
			}
			mod, ok := w.modTime()
			if !ok || mod.Equal(w.lastRun) {
				continue
			}
			w.log.Debugf("File change detected: %s", ev)
			w.drain(fw.Events)
			if err := w.fn(ctx); err != nil {
				if ctx.Err() != nil {
					w.log.Debugf("Stopped watching %s", w.filename)
					return nil
				}
				w.log.Errorf("Update after change to %s failed: %v", w.filename, err)
			}
			w.lastRun, _ = w.modTime()
		}
	}
}

func (w *Watcher) matches(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.filename {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

func (w *Watcher) modTime() (time.Time, bool) {
	fi, err := os.Stat(w.filename)
	if err != nil {
		return time.Time{}, false
	}
	return fi.ModTime(), true
}

// drain discards queued events.
func (w *Watcher) drain(events <-chan fsnotify.Event) {
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}
