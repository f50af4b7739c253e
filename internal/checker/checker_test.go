package checker_test

import (
	"testing"

	"github.com/notescan/notescan/internal/checker"
	"github.com/notescan/notescan/internal/core"
	"github.com/notescan/notescan/internal/dictionary"
	"github.com/notescan/notescan/internal/markdown"
	"github.com/notescan/notescan/internal/scanner"
	"github.com/notescan/notescan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gotest.tools/golden"
)

var testWords = []string{
	"the", "quick", "brown", "fox", "a", "note", "about", "spelling",
	"with", "some", "words", "and", "tags", "see", "also", "code",
	"ignored", "completely",
}

func newTestChecker(t *testing.T, root string, options ...func(*checker.Checker)) *checker.Checker {
	t.Helper()
	options = append([]func(*checker.Checker){
		checker.WithDictionary(dictionary.NewWordList(testWords)),
	}, options...)
	c, err := checker.NewChecker(core.NewConfig(root), options...)
	require.NoError(t, err)
	return c
}

func TestCheckPaths(t *testing.T) {
	root := testutil.SetUpWorkspace(t, map[string]string{
		"inbox/idea.md": "the quick brown fox\n\na note about speling\n",
		"todo.md":       "some wordz here\n",
		"notes.txt":     "speling mistakes ignored, wrong extension\n",
	})
	c := newTestChecker(t, root)

	result, err := c.CheckPaths()
	require.NoError(t, err)

	assert.Equal(t, 2, result.AnalyzedFiles)
	assert.Equal(t, 2, result.AffectedFiles)
	require.Len(t, result.Findings, 3)

	// Files are walked in lexical order
	assert.Equal(t, "speling", result.Findings[0].Word)
	assert.Equal(t, "inbox/idea.md", result.Findings[0].RelativePath)
	assert.Equal(t, 3, result.Findings[0].Line)
	assert.Equal(t, "wordz", result.Findings[1].Word)
	assert.Equal(t, "here", result.Findings[2].Word)

	assert.Equal(t, 3, result.Stats.Misspellings)
	assert.Equal(t, 11, result.Stats.Words)
}

func TestCheckPathsIgnore(t *testing.T) {
	root := testutil.SetUpWorkspace(t, map[string]string{
		"README.md": "totallyy wrong\n",
		"note.md":   "the quick brown fox\n",
	})
	config := core.NewConfig(root)
	config.ConfigFile.Check.Ignore = []string{"README.md"}

	c, err := checker.NewChecker(config, checker.WithDictionary(dictionary.NewWordList(testWords)))
	require.NoError(t, err)

	result, err := c.CheckPaths()
	require.NoError(t, err)
	assert.Equal(t, 1, result.AnalyzedFiles)
	assert.Empty(t, result.Findings)
}

func TestCheckFileExclusions(t *testing.T) {
	root := testutil.SetUpWorkspace(t, map[string]string{
		"note.md": `---
title: Zzzzz not spellchecked
---
the quick brown fox

` + "```go\nfmt.Printlnn(xyzzy)\n```" + `

see [[linkk-target]] and #tagz and 42 and https://examplle.com
`,
	})
	c := newTestChecker(t, root)

	result, err := c.CheckPaths()
	require.NoError(t, err)

	// Front matter, code blocks, links, tags, numbers, and URLs are
	// never spellchecked
	assert.Empty(t, result.Findings)
}

func TestScanDocumentSpans(t *testing.T) {
	c := newTestChecker(t, t.TempDir())

	doc := markdown.Document("---\ntitle: x\n---\nthe quick\n```\nsome code\n```")
	scan := c.ScanDocument(doc)

	// Front matter lines yield no spans
	assert.Empty(t, scan.Spans(0))
	assert.Empty(t, scan.Spans(1))

	spans := scan.Spans(3)
	require.Len(t, spans, 2)
	assert.Equal(t, scanner.SpellingCorrect, spans[0].Spelling)

	// A line inside a fence yields a single code span
	spans = scan.Spans(5)
	require.Len(t, spans, 1)
	assert.Equal(t, scanner.KindCode, spans[0].Kind)
	assert.Equal(t, "some code", spans[0].Text)

	// Out of range is a no-op
	assert.Empty(t, scan.Spans(100))
}

func TestSuggestions(t *testing.T) {
	root := testutil.SetUpWorkspace(t, map[string]string{
		"note.md": "a speling mistake\n",
	})
	dict := dictionary.NewFuzzyDict([]string{"a", "spelling", "mistake"})
	c, err := checker.NewChecker(core.NewConfig(root), checker.WithDictionary(dict))
	require.NoError(t, err)

	result, err := c.CheckPaths()
	require.NoError(t, err)
	require.Len(t, result.Findings, 1)
	assert.Contains(t, result.Findings[0].Suggestions, "spelling")
}

func TestTags(t *testing.T) {
	root := testutil.SetUpWorkspace(t, map[string]string{
		"a.md": "the fox #inbox and #Déjà-Vu\n",
		"b.md": "#inbox again\n\n#later\n",
	})
	c := newTestChecker(t, root)

	tags, err := c.Tags()
	require.NoError(t, err)
	require.Len(t, tags, 3)

	assert.Equal(t, "inbox", tags[0].Slug)
	assert.Equal(t, 2, tags[0].Count)
	// Ties are sorted alphabetically
	assert.Equal(t, "deja-vu", tags[1].Slug)
	assert.Equal(t, []string{"Déjà-Vu"}, tags[1].Names)
	assert.Equal(t, "later", tags[2].Slug)
}

func TestCheckResultMarkdown(t *testing.T) {
	root := testutil.SetUpWorkspace(t, map[string]string{
		"note.md": "the quick brown fox\n\na speling mistake\n",
	})
	dict := dictionary.NewFuzzyDict(append(testWords, "mistake"))
	c, err := checker.NewChecker(core.NewConfig(root), checker.WithDictionary(dict))
	require.NoError(t, err)

	result, err := c.CheckPaths()
	require.NoError(t, err)

	golden.Assert(t, result.Markdown(), "report.golden.md")
	assert.Contains(t, string(result.HTML()), "<h1")
}
