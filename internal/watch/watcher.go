// Package watch provides an opt-in fsnotify watcher that notices when the
// loaded icon index document is rewritten, so the front end can offer a
// fresh reload. It is off by default and bounded to a single file.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"iconview/internal/log"
)

// FileWatcher monitors one file for rewrites using fsnotify. The containing
// directory is watched rather than the file itself, because editors and
// generators commonly replace files via rename.
type FileWatcher struct {
	// Absolute path of the watched file
	path string

	// Invoked with the path on every rewrite
	onChange func(string)

	// Channel to signal stop
	stopChan chan struct{}

	// fsnotify watcher instance
	fsWatcher *fsnotify.Watcher

	// Lock for running state
	mutex sync.Mutex

	// Whether the watcher is running
	running bool

	// Set once Stop has released the fsnotify watcher
	stopped bool
}

// New creates a watcher for a single file. The callback runs on the
// watcher goroutine; keep it short and marshal to the UI thread yourself.
func New(path string, onChange func(string)) (*FileWatcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to resolve watch path: %w", err)
	}

	return &FileWatcher{
		path:      abs,
		onChange:  onChange,
		stopChan:  make(chan struct{}),
		fsWatcher: fsWatcher,
	}, nil
}

// Path returns the watched file path.
func (w *FileWatcher) Path() string {
	return w.path
}

// Running reports whether the watch loop is active.
func (w *FileWatcher) Running() bool {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.running
}

// Start begins watching. It is an error to start a running watcher. A
// watcher is single use: once stopped it cannot be restarted, because Stop
// releases the underlying fsnotify watcher; create a new one with New.
func (w *FileWatcher) Start() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.running {
		return fmt.Errorf("watcher already running")
	}
	if w.stopped {
		return fmt.Errorf("watcher already stopped")
	}

	dir := filepath.Dir(w.path)
	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	w.running = true
	go w.loop()
	return nil
}

// Stop ends the watch loop and releases the fsnotify watcher.
func (w *FileWatcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		return
	}
	w.running = false
	w.stopped = true
	close(w.stopChan)
	w.fsWatcher.Close()
}

func (w *FileWatcher) loop() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.matches(event) {
				continue
			}
			log.Debugf("index file changed: %s (%s)", event.Name, event.Op)
			if w.onChange != nil {
				w.onChange(w.path)
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Warnf("watch error: %v", err)
		case <-w.stopChan:
			return
		}
	}
}

// matches filters directory events down to rewrites of the watched file.
func (w *FileWatcher) matches(event fsnotify.Event) bool {
	if filepath.Base(event.Name) != filepath.Base(w.path) {
		return false
	}
	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename)
}
