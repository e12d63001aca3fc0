package am

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pipit-keyboard/chordc/errors"
	"github.com/pipit-keyboard/chordc/logger"
)

// Watcher watches a set of files for changes and triggers callbacks.
//
// Directories are watched rather than the files themselves, so editors
// that save by renaming a temporary file over the original keep working.
// Events for files outside the set are ignored.
type Watcher struct {
	watcher        *fsnotify.Watcher
	files          map[string]struct{}
	dirs           map[string]struct{}
	callbacks      []ChangeCallback
	mu             sync.RWMutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
	done           chan struct{}
	started        bool
}

// ChangeCallback is called after a watched file changed and the debounce
// period passed. path is the last file that changed.
type ChangeCallback func(path string) error

// NewWatcher creates a watcher for paths
func NewWatcher(paths []string, debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	w := &Watcher{
		watcher:        fw,
		files:          make(map[string]struct{}),
		dirs:           make(map[string]struct{}),
		debouncePeriod: debounce,
		done:           make(chan struct{}),
	}
	for _, p := range paths {
		if err := w.Add(p); err != nil {
			fw.Close()
			return nil, err
		}
	}
	return w, nil
}

// Add watches one more file
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, "failed to resolve %s", path)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.files[abs] = struct{}{}

	dir := filepath.Dir(abs)
	if _, ok := w.dirs[dir]; ok {
		return nil
	}
	if err := w.watcher.Add(dir); err != nil {
		return errors.Wrapf(err, "failed to watch directory %s", dir)
	}
	w.dirs[dir] = struct{}{}
	return nil
}

// Files returns the number of watched files
func (w *Watcher) Files() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.files)
}

// OnChange registers a callback to be called when a watched file changes
func (w *Watcher) OnChange(callback ChangeCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Start begins watching for changes
func (w *Watcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return
	}
	w.started = true
	go w.watchLoop()
}

func (w *Watcher) watched(path string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.files[filepath.Clean(path)]
	return ok
}

// watchLoop monitors file system events
func (w *Watcher) watchLoop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Rename and Remove are left out: the Create that completes an
			// atomic save follows them.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !w.watched(event.Name) {
				continue
			}

			logger.Debugw("Watcher detected change",
				logger.FieldFile, event.Name,
				"op", event.Op.String())
			w.scheduleChange(event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnw("Watcher error",
				logger.FieldError, err)
		}
	}
}

// scheduleChange debounces rapid file changes and triggers the callbacks
func (w *Watcher) scheduleChange(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debouncePeriod, func() {
		w.notify(path)
	})
}

// notify calls all callbacks
func (w *Watcher) notify(path string) {
	w.mu.RLock()
	callbacks := make([]ChangeCallback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.RUnlock()

	for _, callback := range callbacks {
		if err := callback(path); err != nil {
			logger.Warnw("Watch callback error",
				logger.FieldFile, path,
				logger.FieldError, err)
			// Continue calling other callbacks even if one fails
		}
	}
}

// Stop stops watching and waits for the event loop to exit. Pending
// debounced callbacks are cancelled.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	started := w.started
	w.mu.Unlock()

	err := w.watcher.Close()
	if started {
		<-w.done
	}
	return err
}
