package dictionary_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/notescan/notescan/internal/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordList(t *testing.T) {
	words := dictionary.NewWordList([]string{"Hello", "world", "", "  don't  "})
	assert.Equal(t, 3, words.Len())

	correct, ready := words.Lookup("hello")
	assert.True(t, ready)
	assert.True(t, correct)

	correct, _ = words.Lookup("HELLO")
	assert.True(t, correct)

	correct, _ = words.Lookup("don’t")
	assert.True(t, correct)

	correct, _ = words.Lookup("missing")
	assert.False(t, correct)
}

func TestLoadWordList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.dic")
	err := os.WriteFile(path, []byte("alpha\nbeta\n\ngamma\n"), 0644)
	require.NoError(t, err)

	words, err := dictionary.LoadWordList(path)
	require.NoError(t, err)
	assert.Equal(t, 3, words.Len())

	correct, _ := words.Lookup("beta")
	assert.True(t, correct)
}

func TestLoadWordListMissingFile(t *testing.T) {
	_, err := dictionary.LoadWordList(filepath.Join(t.TempDir(), "nope.dic"))
	require.Error(t, err)
}

func TestFuzzyDict(t *testing.T) {
	dict := dictionary.NewFuzzyDict([]string{"spelling", "spellings", "checker"})

	correct, ready := dict.Lookup("spelling")
	assert.True(t, ready)
	assert.True(t, correct)

	correct, _ = dict.Lookup("speling")
	assert.False(t, correct)

	suggestions := dict.Suggest("speling")
	assert.Contains(t, suggestions, "spelling")
}

func TestLoadFuzzyDict(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.dic")
	require.NoError(t, os.WriteFile(path, []byte("spelling\nchecker\n"), 0644))

	dict, err := dictionary.LoadFuzzyDict(path)
	require.NoError(t, err)

	correct, _ := dict.Lookup("checker")
	assert.True(t, correct)
	assert.Contains(t, dict.Suggest("speling"), "spelling")
}

func TestLazyDict(t *testing.T) {
	lazy := dictionary.NewLazyDict(func() (dictionary.Dictionary, error) {
		return dictionary.NewWordList([]string{"hello"}), nil
	})

	// Not loaded yet: not ready
	assert.False(t, lazy.Ready())
	_, ready := lazy.Lookup("hello")
	assert.False(t, ready)

	require.NoError(t, lazy.Load())
	assert.True(t, lazy.Ready())

	correct, ready := lazy.Lookup("hello")
	assert.True(t, ready)
	assert.True(t, correct)

	lazy.Reset()
	assert.False(t, lazy.Ready())
}

func TestWatcher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.dic")
	require.NoError(t, os.WriteFile(path, []byte("alpha\n"), 0644))

	watcher, err := dictionary.NewWatcher(path)
	require.NoError(t, err)
	defer watcher.Close()

	fired := make(chan struct{}, 1)
	watcher.OnInvalidate(func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})

	require.NoError(t, os.WriteFile(path, []byte("alpha\nbeta\n"), 0644))

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("no invalidation after dictionary change")
	}
}
