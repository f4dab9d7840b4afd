// Package watch reports changes to the config file and content
// directories so a running page can rebuild itself.
package watch

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"folio/internal/errors"
	"folio/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Change represents a content or config change detected by the watcher
type Change struct {
	Path      string
	Timestamp time.Time
	Op        fsnotify.Op
}

// Watcher monitors files and directories for changes using fsnotify.
// fsnotify watches directories, so a watched file is tracked through its
// parent directory and events for its siblings are dropped.
type Watcher struct {
	// Directories registered with fsnotify
	directories map[string]bool

	// Files of interest; an entry for a directory path means "everything in it"
	targets map[string]bool

	changes  chan Change
	stopChan chan struct{}
	done     chan struct{}

	fsWatcher *fsnotify.Watcher

	mutex     sync.RWMutex
	running   bool
	closeOnce sync.Once
}

// New creates a new watcher using fsnotify
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.NewKind(errors.WatchFailed, "failed to create fsnotify watcher", err)
	}

	return &Watcher{
		directories: make(map[string]bool),
		targets:     make(map[string]bool),
		changes:     make(chan Change, 10),
		stopChan:    make(chan struct{}),
		done:        make(chan struct{}),
		fsWatcher:   fsWatcher,
	}, nil
}

// Add watches path. A directory reports changes to any file directly in
// it; a file reports changes to itself only. A file that does not exist
// yet is watched through its parent so its creation is seen.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.NewFileError("invalid path", path, errors.InvalidPath, err)
	}

	dir := filepath.Dir(abs)
	if info, err := os.Stat(abs); err == nil && info.IsDir() {
		dir = abs
	}

	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.directories[dir] {
		if err := w.fsWatcher.Add(dir); err != nil {
			kind := errors.WatchFailed
			if os.IsNotExist(err) {
				kind = errors.FileNotFound
			}
			return errors.NewFileError("failed to watch directory", dir, kind, err)
		}
		w.directories[dir] = true
	}
	w.targets[abs] = true

	log.LogWithFields(log.F("path", abs)).Debug("watching")
	return nil
}

// Changes returns the channel that delivers changes. It is closed once
// the watcher has stopped.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Start begins delivering changes
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return errors.NewKind(errors.WatchFailed, "watcher already running", nil)
	}
	w.running = true
	w.mutex.Unlock()

	go w.loop()

	log.Debug("watcher started")
	return nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	defer close(w.changes)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.interesting(event) {
				continue
			}

			change := Change{Path: event.Name, Timestamp: time.Now(), Op: event.Op}

			// Never block the event loop; a reload is pending anyway
			select {
			case w.changes <- change:
			default:
				log.LogWithFields(log.F("file", event.Name)).Debug("change channel full, dropped event")
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.LogWithFields(log.F("error", err)).Error("fsnotify watcher error")

		case <-w.stopChan:
			return
		}
	}
}

func (w *Watcher) interesting(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) &&
		!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return false
	}

	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.targets[event.Name] || w.targets[filepath.Dir(event.Name)]
}

// Stop halts the watcher, waits for the event loop to exit and releases
// the fsnotify handle. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	running := w.running
	if running {
		w.running = false
		close(w.stopChan)
	}
	w.mutex.Unlock()

	if running {
		<-w.done
		log.Debug("watcher stopped")
	}
	w.closeOnce.Do(func() {
		if err := w.fsWatcher.Close(); err != nil {
			log.LogWithError(err).Error("error closing fsnotify watcher")
		}
	})
}

// IsRunning returns whether the watcher is currently active
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}

// Directories returns the directories registered with fsnotify
func (w *Watcher) Directories() []string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	dirs := make([]string, 0, len(w.directories))
	for d := range w.directories {
		dirs = append(dirs, d)
	}
	return dirs
}
