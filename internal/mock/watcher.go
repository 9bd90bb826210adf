package mock

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay coalesces the burst of events an editor save produces
const reloadDelay = 100 * time.Millisecond

// Watcher reloads a fixture file whenever it changes on disk
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	path      string

	Events chan *Dataset
	Errors chan error
	done   chan struct{}
}

// NewWatcher creates a watcher for the fixture file at path.
// The parent directory is watched so rename-on-save editors are picked up.
func NewWatcher(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		_ = fsw.Close()
		return nil, err
	}

	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	return &Watcher{
		fsWatcher: fsw,
		path:      abs,
		Events:    make(chan *Dataset, 4),
		Errors:    make(chan error, 4),
		done:      make(chan struct{}),
	}, nil
}

// Path returns the absolute path being watched
func (w *Watcher) Path() string {
	return w.path
}

// Start begins watching for file changes
func (w *Watcher) Start() {
	go w.watchLoop()
}

// Stop stops the watcher
func (w *Watcher) Stop() error {
	close(w.done)
	return w.fsWatcher.Close()
}

// watchLoop handles fsnotify events
func (w *Watcher) watchLoop() {
	var reload <-chan time.Time

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if w.relevant(event) {
				reload = time.After(reloadDelay)
			}

		case <-reload:
			reload = nil
			w.reload()

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

// relevant reports whether an event touches the fixture file contents
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

func (w *Watcher) reload() {
	ds, err := LoadFile(w.path)
	if err != nil {
		w.sendError(err)
		return
	}

	select {
	case w.Events <- ds:
	default:
		// Event channel full; the consumer will see the next reload
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.Errors <- err:
	default:
		// Error channel full, drop
	}
}
