package dictionary

import (
	"sync"
)

// LazyDict defers the construction of a dictionary and reports
// "not ready" until Load completes. It reproduces the startup window
// of an editor whose dictionary loads after the first keystrokes:
// lookups during that window fail open and are retried later.
type LazyDict struct {
	mu     sync.RWMutex
	loader func() (Dictionary, error)
	inner  Dictionary
}

func NewLazyDict(loader func() (Dictionary, error)) *LazyDict {
	return &LazyDict{
		loader: loader,
	}
}

// Load builds the inner dictionary. Subsequent lookups are delegated.
func (d *LazyDict) Load() error {
	inner, err := d.loader()
	if err != nil {
		return err
	}
	d.mu.Lock()
	d.inner = inner
	d.mu.Unlock()
	return nil
}

// Reset forgets the inner dictionary, reverting to "not ready".
func (d *LazyDict) Reset() {
	d.mu.Lock()
	d.inner = nil
	d.mu.Unlock()
}

func (d *LazyDict) Ready() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.inner != nil
}

func (d *LazyDict) Lookup(term string) (bool, bool) {
	d.mu.RLock()
	inner := d.inner
	d.mu.RUnlock()
	if inner == nil {
		return false, false
	}
	return inner.Lookup(term)
}

// Suggest delegates to the inner dictionary when it supports suggestions.
func (d *LazyDict) Suggest(term string) []string {
	d.mu.RLock()
	inner := d.inner
	d.mu.RUnlock()
	if suggester, ok := inner.(Suggester); ok {
		return suggester.Suggest(term)
	}
	return nil
}
