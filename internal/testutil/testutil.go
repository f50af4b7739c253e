package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SetUpFromFileContent creates a temp file with the given content.
func SetUpFromFileContent(t *testing.T, filename string, content string) string {
	dir := t.TempDir()

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// SetUpWorkspace materializes a note workspace from a map of relative
// paths to file contents and returns the root directory.
func SetUpWorkspace(t *testing.T, files map[string]string) string {
	dir := t.TempDir()

	for relativePath, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(relativePath))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}
