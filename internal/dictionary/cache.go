package dictionary

import (
	gocache "github.com/patrickmn/go-cache"
)

// Cache memoizes term-correctness queries to avoid redundant lookups
// against the external dictionary.
//
// Entries are immutable once written. Invalidation is all-or-nothing:
// a dictionary change drops the whole map. A "not ready" answer is
// fail-open (the term is reported correct) and never cached, so the
// term is retried once the dictionary finishes loading.
//
// A Cache is constructed once per editor session and passed by
// reference to the annotation pipeline.
type Cache struct {
	dict    Dictionary
	entries *gocache.Cache
}

func NewCache(dict Dictionary) *Cache {
	return &Cache{
		dict:    dict,
		entries: gocache.New(gocache.NoExpiration, 0),
	}
}

// Check returns if a term is correctly spelled.
func (c *Cache) Check(term string) bool {
	key := NormalizeTerm(term)

	if correct, found := c.entries.Get(key); found {
		return correct.(bool)
	}

	correct, ready := c.dict.Lookup(key)
	if !ready {
		// Fail-open to avoid false-positive highlighting while the
		// dictionary is still loading. Not cached on purpose.
		return true
	}

	c.entries.Set(key, correct, gocache.NoExpiration)
	return correct
}

// Invalidate drops every entry. The next Check for any term performs
// a fresh dictionary lookup.
func (c *Cache) Invalidate() {
	c.entries.Flush()
}

// Len returns the number of memoized terms.
func (c *Cache) Len() int {
	return c.entries.ItemCount()
}
