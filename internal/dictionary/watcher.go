package dictionary

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher observes dictionary files and notifies subscribers when one
// changes, typically to clear the lookup cache and reload the wordlist.
type Watcher struct {
	watcher *fsnotify.Watcher

	mu        sync.Mutex
	callbacks []func()

	done chan struct{}
	once sync.Once
}

func NewWatcher(paths ...string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("unable to create dictionary watcher: %w", err)
	}
	for _, path := range paths {
		if err := fsWatcher.Add(path); err != nil {
			fsWatcher.Close()
			return nil, fmt.Errorf("unable to watch %q: %w", path, err)
		}
	}
	result := &Watcher{
		watcher: fsWatcher,
		done:    make(chan struct{}),
	}
	go result.loop()
	return result, nil
}

// OnInvalidate registers a callback fired after a watched file changes.
func (w *Watcher) OnInvalidate(callback func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.fire()
			}
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are not fatal to editing
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) fire() {
	w.mu.Lock()
	callbacks := make([]func(), len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.Unlock()
	for _, callback := range callbacks {
		callback()
	}
}

func (w *Watcher) Close() error {
	w.once.Do(func() {
		close(w.done)
	})
	return w.watcher.Close()
}
