package core_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/notescan/notescan/internal/core"
	"github.com/notescan/notescan/internal/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfigFromDirectory(t *testing.T) {
	root := t.TempDir()
	err := os.WriteFile(filepath.Join(root, core.ConfigFilename), []byte(`
[core]
extensions = ["md"]

[zettelkasten]
link-start = "{{"
link-end = "}}"

[dictionary]
wordlists = ["dict/user.dic"]

[check]
ignore = ["README.md"]
`), 0644)
	require.NoError(t, err)

	nested := filepath.Join(root, "notes", "inbox")
	require.NoError(t, os.MkdirAll(nested, 0755))

	// The configuration file is searched in parent directories
	config, err := core.ReadConfigFromDirectory(nested)
	require.NoError(t, err)
	assert.Equal(t, root, config.RootDirectory)
	assert.Equal(t, []string{"md"}, config.ConfigFile.Core.Extensions)
	assert.Equal(t, "{{", config.ConfigFile.Zettelkasten.LinkStart)
	assert.Equal(t, []string{"dict/user.dic"}, config.ConfigFile.Dictionary.Wordlists)
	// Unset keys keep their default
	assert.True(t, config.ConfigFile.Dictionary.Suggestions)
}

func TestReadConfigFromDirectoryWithoutFile(t *testing.T) {
	root := t.TempDir()
	config, err := core.ReadConfigFromDirectory(root)
	require.NoError(t, err)
	assert.Equal(t, root, config.RootDirectory)
	assert.Equal(t, []string{"md", "markdown"}, config.ConfigFile.Core.Extensions)
}

func TestSupportExtension(t *testing.T) {
	config := core.NewConfig(t.TempDir())
	assert.True(t, config.ConfigFile.SupportExtension("note.md"))
	assert.True(t, config.ConfigFile.SupportExtension("note.MD"))
	assert.True(t, config.ConfigFile.SupportExtension("note.markdown"))
	assert.False(t, config.ConfigFile.SupportExtension("note.txt"))
}

func TestIgnoreFile(t *testing.T) {
	config := core.NewConfig(t.TempDir())
	config.ConfigFile.Check.Ignore = []string{"build/*", "README.md"}

	assert.True(t, config.ConfigFile.IgnoreFile("build/index.md"))
	assert.True(t, config.ConfigFile.IgnoreFile("README.md"))
	assert.True(t, config.ConfigFile.IgnoreFile("docs/README.md"))
	assert.False(t, config.ConfigFile.IgnoreFile("docs/note.md"))
}

func TestClone(t *testing.T) {
	config := core.NewConfig(t.TempDir())
	clone := config.Clone()
	clone.ConfigFile.Core.Extensions = append(clone.ConfigFile.Core.Extensions, "txt")

	assert.Len(t, config.ConfigFile.Core.Extensions, 2)
	assert.Len(t, clone.ConfigFile.Core.Extensions, 3)
}

func TestRecognizers(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		config := core.NewConfig(t.TempDir())
		tokenizer := scanner.NewTokenizer(config.Recognizers())
		spans := tokenizer.ScanLine("[[note]]")
		require.Len(t, spans, 1)
		assert.Equal(t, scanner.KindLink, spans[0].Kind)
	})

	t.Run("Malformed pattern degrades to words", func(t *testing.T) {
		config := core.NewConfig(t.TempDir())
		config.ConfigFile.Zettelkasten.TagPattern = `#[oops`
		tokenizer := scanner.NewTokenizer(config.Recognizers())
		spans := tokenizer.ScanLine("#tag [[note]]")
		for _, span := range spans {
			assert.Equal(t, scanner.KindWord, span.Kind)
		}
	})
}
