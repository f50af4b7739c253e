package annotate

import (
	"github.com/notescan/notescan/internal/dictionary"
	"github.com/notescan/notescan/internal/scanner"
)

// lineRecord caches the annotated spans of a single buffer line.
//
// A record is either clean (spans valid, safe to render) or dirty
// (must be rescanned before the next render read).
type lineRecord struct {
	rawText string
	spans   []scanner.Span
	dirty   bool
}

// pipeline re-tokenizes dirty lines and resolves the spelling of every
// word span through the dictionary cache.
type pipeline struct {
	tokenizer *scanner.Tokenizer
	cache     *dictionary.Cache
}

// rescan replaces the record's span sequence with a freshly scanned one.
//
// Spans are never patched in place: the whole slice is swapped so that
// a renderer holding the previous sequence never observes a partial
// update. The tokenizer is the single source of truth for exclusions
// (it emits no word spans inside links, tags, or code).
func (p *pipeline) rescan(record *lineRecord, rawText string) {
	spans := p.tokenizer.ScanLine(rawText)
	for i := range spans {
		if !spans[i].Checkable() {
			continue
		}
		if p.cache.Check(spans[i].Text) {
			spans[i].Spelling = scanner.SpellingCorrect
		} else {
			spans[i].Spelling = scanner.SpellingMisspelled
		}
	}
	record.rawText = rawText
	record.spans = spans
	record.dirty = false
}
