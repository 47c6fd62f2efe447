package browser

import (
	"context"
	"sync"

	"github.com/fsnotify/fsnotify"

	"lantern/logging"
)

// Watcher reports when the directory being browsed gains, loses or renames entries.
// Writes are ignored: a save being rewritten doesn't change the listing.
type Watcher struct {
	watcher *fsnotify.Watcher
	changes chan string
	log     logging.Logger

	mu  sync.Mutex
	dir string
}

func NewWatcher(log logging.Logger) (*Watcher, error) {
	if log == nil {
		log = logging.Noop()
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{watcher: watcher, changes: make(chan string, 1), log: log}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					close(w.changes)
					return
				}
				if event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					w.notify()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				w.log.Warn(context.Background(), "directory watch error", logging.Err(err))
			}
		}
	}()

	return w, nil
}

// notify never blocks; if a change is already waiting to be picked up this one folds into it.
func (w *Watcher) notify() {
	w.mu.Lock()
	dir := w.dir
	w.mu.Unlock()

	select {
	case w.changes <- dir:
	default:
	}
}

// Watch switches to dir.  Only one directory is watched at a time.
func (w *Watcher) Watch(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if dir == w.dir {
		return nil
	}
	if w.dir != "" {
		// The old directory may be gone already
		_ = w.watcher.Remove(w.dir)
	}
	if err := w.watcher.Add(dir); err != nil {
		w.dir = ""
		return err
	}
	w.dir = dir
	return nil
}

// Changes delivers the watched directory each time it changes.  It is closed by Close.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}
