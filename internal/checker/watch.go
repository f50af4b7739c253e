package checker

import (
	"fmt"
	"path/filepath"

	"github.com/notescan/notescan/internal/core"
	"github.com/notescan/notescan/internal/dictionary"
)

// WatchWordlists watches the configured wordlist files and invokes fn
// after each change. The caller closes the returned watcher.
func WatchWordlists(config *core.Config, fn func()) (*dictionary.Watcher, error) {
	wordlists := config.ConfigFile.Dictionary.Wordlists
	if len(wordlists) == 0 {
		return nil, fmt.Errorf("no wordlist configured to watch")
	}

	var paths []string
	for _, path := range wordlists {
		if !filepath.IsAbs(path) {
			path = filepath.Join(config.RootDirectory, path)
		}
		paths = append(paths, path)
	}

	watcher, err := dictionary.NewWatcher(paths...)
	if err != nil {
		return nil, err
	}
	watcher.OnInvalidate(fn)
	return watcher, nil
}
