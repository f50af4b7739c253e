package annotate_test

import (
	"testing"

	"github.com/notescan/notescan/internal/annotate"
	"github.com/notescan/notescan/internal/dictionary"
	"github.com/notescan/notescan/internal/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBuffer is an in-memory text buffer.
type testBuffer struct {
	lines []string
}

func (b *testBuffer) LineCount() int {
	return len(b.lines)
}

func (b *testBuffer) LineText(index int) (string, bool) {
	if index < 0 || index >= len(b.lines) {
		return "", false
	}
	return b.lines[index], true
}

func newTestAnnotator(lines ...string) (*annotate.Annotator, *testBuffer) {
	buffer := &testBuffer{lines: lines}
	cache := dictionary.NewCache(dictionary.NewWordList([]string{
		"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
		"see", "here", "hello", "world", "a", "word",
	}))
	annotator := annotate.NewAnnotator(buffer, scanner.NewTokenizer(scanner.DefaultRecognizers()), cache)
	return annotator, buffer
}

func TestAnnotatorSpans(t *testing.T) {
	annotator, _ := newTestAnnotator(
		"the quick brown fox",
		"see [[note]] #idea here",
		"helllo world",
	)

	spans := annotator.Spans(0)
	require.Len(t, spans, 4)
	for _, span := range spans {
		assert.Equal(t, scanner.SpellingCorrect, span.Spelling)
	}

	spans = annotator.Spans(1)
	require.Len(t, spans, 4)
	assert.Equal(t, scanner.KindLink, spans[1].Kind)
	assert.Equal(t, scanner.KindTag, spans[2].Kind)
	// Non-word spans are never resolved
	assert.Equal(t, scanner.SpellingUnknown, spans[1].Spelling)

	spans = annotator.Spans(2)
	require.Len(t, spans, 2)
	assert.Equal(t, scanner.SpellingMisspelled, spans[0].Spelling)
	assert.Equal(t, scanner.SpellingCorrect, spans[1].Spelling)
}

func TestAnnotatorOutOfRange(t *testing.T) {
	annotator, _ := newTestAnnotator("hello world")

	assert.Nil(t, annotator.Spans(-1))
	assert.Nil(t, annotator.Spans(10))
	assert.False(t, annotator.Clean(10))
}

func TestAnnotatorIncrementalEdit(t *testing.T) {
	annotator, buffer := newTestAnnotator(
		"the quick brown fox",
		"hello world",
		"see here",
	)

	before := annotator.Spans(0)

	buffer.lines[1] = "helllo world"
	annotator.ApplyChange(annotate.Change{FromLine: 1, ToLine: 1})

	// Only the edited line went dirty
	assert.True(t, annotator.Clean(0))
	assert.False(t, annotator.Clean(1))
	assert.True(t, annotator.Clean(2))

	// An untouched line keeps its exact span sequence: no rescan
	after := annotator.Spans(0)
	assert.True(t, &before[0] == &after[0], "untouched line must not be rescanned")

	spans := annotator.Spans(1)
	assert.True(t, annotator.Clean(1))
	require.Len(t, spans, 2)
	assert.Equal(t, scanner.SpellingMisspelled, spans[0].Spelling)
}

func TestAnnotatorInsertShift(t *testing.T) {
	annotator, buffer := newTestAnnotator(
		"the quick brown fox",
		"hello world",
	)
	lastSpans := annotator.Spans(1)

	// Insert a new line before "hello world"
	buffer.lines = []string{
		"the quick brown fox",
		"a word",
		"hello world",
	}
	annotator.ApplyChange(annotate.Change{FromLine: 1, ToLine: 1, ShiftDelta: 1})

	require.Equal(t, 3, annotator.LineCount())
	assert.False(t, annotator.Clean(1))
	// The shifted line kept its spans without a rescan
	assert.True(t, annotator.Clean(2))
	shifted := annotator.Spans(2)
	assert.True(t, &lastSpans[0] == &shifted[0])

	spans := annotator.Spans(1)
	require.Len(t, spans, 2)
	assert.Equal(t, "a", spans[0].Text)
}

func TestAnnotatorDeleteShift(t *testing.T) {
	annotator, buffer := newTestAnnotator(
		"the quick brown fox",
		"hello world",
		"see here",
	)
	lastSpans := annotator.Spans(2)

	// Delete "hello world"
	buffer.lines = []string{
		"the quick brown fox",
		"see here",
	}
	annotator.ApplyChange(annotate.Change{FromLine: 1, ToLine: 1, ShiftDelta: -1})

	require.Equal(t, 2, annotator.LineCount())
	assert.True(t, annotator.Clean(1), "shifted line must stay clean after a deletion")
	shifted := annotator.Spans(1)
	assert.True(t, &lastSpans[0] == &shifted[0], "shifted line must keep its span slice")
}

func TestAnnotatorDeleteAtEnd(t *testing.T) {
	annotator, buffer := newTestAnnotator(
		"hello world",
		"see here",
	)
	firstSpans := annotator.Spans(0)

	// Delete the last line
	buffer.lines = buffer.lines[:1]
	annotator.ApplyChange(annotate.Change{FromLine: 1, ToLine: 1, ShiftDelta: -1})

	require.Equal(t, 1, annotator.LineCount())
	assert.True(t, annotator.Clean(0))
	spans := annotator.Spans(0)
	assert.True(t, &firstSpans[0] == &spans[0])
}

func TestAnnotatorIdempotentRescan(t *testing.T) {
	annotator, _ := newTestAnnotator("the quick brown fox")

	before := annotator.Spans(0)
	annotator.MarkDirty(0)
	after := annotator.Spans(0)
	assert.Equal(t, before, after)
}

func TestAnnotatorInvalidateDictionary(t *testing.T) {
	buffer := &testBuffer{lines: []string{"notescan rocks"}}
	lazy := dictionary.NewLazyDict(func() (dictionary.Dictionary, error) {
		return dictionary.NewWordList([]string{"notescan", "rocks"}), nil
	})
	cache := dictionary.NewCache(lazy)
	annotator := annotate.NewAnnotator(buffer, scanner.NewTokenizer(scanner.DefaultRecognizers()), cache)

	// Dictionary not loaded: fail-open, every word looks correct
	spans := annotator.Spans(0)
	require.Len(t, spans, 2)
	assert.Equal(t, scanner.SpellingCorrect, spans[0].Spelling)

	// The dictionary finishes loading: every line is rescanned
	require.NoError(t, lazy.Load())
	annotator.InvalidateDictionary()
	assert.False(t, annotator.Clean(0))

	spans = annotator.Spans(0)
	assert.Equal(t, scanner.SpellingCorrect, spans[0].Spelling)
	assert.Equal(t, scanner.SpellingCorrect, spans[1].Spelling)
}

func TestAnnotatorLineVanished(t *testing.T) {
	annotator, buffer := newTestAnnotator("hello", "world")

	// The buffer shrank but the change feed has not caught up yet
	buffer.lines = buffer.lines[:1]
	annotator.MarkDirty(1)

	assert.Empty(t, annotator.Spans(1))
	assert.True(t, annotator.Clean(1))
}
