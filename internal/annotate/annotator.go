// Package annotate keeps per-line span annotations in sync with a live
// text buffer, rescanning only the lines touched by an edit.
package annotate

import (
	"github.com/google/uuid"

	"github.com/notescan/notescan/internal/core"
	"github.com/notescan/notescan/internal/dictionary"
	"github.com/notescan/notescan/internal/scanner"
)

// Buffer is the external text-buffer collaborator. Implementations are
// expected to answer from memory; the annotator calls LineText on the
// same execution context that handles edit and render callbacks.
type Buffer interface {
	LineCount() int
	// LineText returns the raw text of a line, or false when the line
	// no longer exists.
	LineText(index int) (string, bool)
}

// Change describes a buffer edit.
//
// Lines FromLine..ToLine (inclusive, zero-based) were touched.
// ShiftDelta is the number of lines inserted at FromLine (positive) or
// deleted (negative); records beyond the change point shift their index
// without being rescanned. For a deletion, FromLine..ToLine names the
// removed lines: an edit that also rewrites a surviving line (a line
// join, say) is reported with a separate change or MarkDirty call.
type Change struct {
	FromLine   int
	ToLine     int
	ShiftDelta int
}

// Annotator owns one line record per buffer line and decides which
// lines need re-tokenizing after an edit.
//
// The model is single-threaded and cooperative: scans happen
// synchronously on the caller's context, driven by explicit render-time
// Spans calls, never by timers or background goroutines.
type Annotator struct {
	session  string
	buffer   Buffer
	pipeline pipeline
	records  []*lineRecord
}

func NewAnnotator(buffer Buffer, tokenizer *scanner.Tokenizer, cache *dictionary.Cache) *Annotator {
	result := &Annotator{
		session: uuid.NewString(),
		buffer:  buffer,
		pipeline: pipeline{
			tokenizer: tokenizer,
			cache:     cache,
		},
	}
	result.Reload()
	return result
}

// Session returns the unique identifier of this annotator instance.
func (a *Annotator) Session() string {
	return a.session
}

// Reload recreates every line record and scans them all.
// Called on initial document load and when classification rules change.
func (a *Annotator) Reload() {
	count := a.buffer.LineCount()
	core.CurrentLogger().Debugf("[%s] Scanning %d lines", a.session, count)
	a.records = make([]*lineRecord, count)
	for i := 0; i < count; i++ {
		a.records[i] = &lineRecord{dirty: true}
		a.flush(i)
	}
}

// LineCount returns the number of tracked lines.
func (a *Annotator) LineCount() int {
	return len(a.records)
}

// Clean reports if a line is safe to render without a rescan.
func (a *Annotator) Clean(index int) bool {
	if index < 0 || index >= len(a.records) {
		return false
	}
	return !a.records[index].dirty
}

// Spans returns the annotated spans for a line, rescanning it first
// when dirty. The returned slice is the cached sequence and must not
// be mutated by the caller.
//
// A line index that no longer exists returns an empty sequence: a
// pending render request racing with an edit is never fatal.
func (a *Annotator) Spans(index int) []scanner.Span {
	if index < 0 || index >= len(a.records) {
		return nil
	}
	a.flush(index)
	return a.records[index].spans
}

// MarkDirty forces a rescan of a single line before its next render read.
func (a *Annotator) MarkDirty(index int) {
	if index < 0 || index >= len(a.records) {
		return
	}
	a.records[index].dirty = true
}

// MarkRange forces a rescan of the lines from..to (inclusive).
func (a *Annotator) MarkRange(from, to int) {
	for i := from; i <= to; i++ {
		a.MarkDirty(i)
	}
}

// ApplyChange marks exactly the affected lines dirty and shifts the
// records below an insertion or deletion point. Shifted lines are not
// rescanned: their spans are still valid.
func (a *Annotator) ApplyChange(change Change) {
	core.CurrentLogger().Tracef("[%s] Change %d..%d (shift %+d)", a.session, change.FromLine, change.ToLine, change.ShiftDelta)

	from := change.FromLine
	if from < 0 {
		from = 0
	}

	switch {
	case change.ShiftDelta > 0:
		if from > len(a.records) {
			from = len(a.records)
		}
		inserted := make([]*lineRecord, change.ShiftDelta)
		for i := range inserted {
			inserted[i] = &lineRecord{dirty: true}
		}
		a.records = append(a.records[:from], append(inserted, a.records[from:]...)...)
	case change.ShiftDelta < 0:
		end := from - change.ShiftDelta
		if end > len(a.records) {
			end = len(a.records)
		}
		if from < len(a.records) {
			a.records = append(a.records[:from], a.records[end:]...)
		}
		// The records that slid into the deleted slots kept their
		// spans. Renderers may still hold those slices.
		return
	}

	a.MarkRange(from, change.ToLine)
}

// InvalidateDictionary drops the lookup cache and schedules a rescan of
// every line so that stale spelling verdicts are re-resolved.
func (a *Annotator) InvalidateDictionary() {
	core.CurrentLogger().Debugf("[%s] Dictionary invalidated", a.session)
	a.pipeline.cache.Invalidate()
	a.MarkRange(0, len(a.records)-1)
}

// flush transitions a dirty record back to clean.
func (a *Annotator) flush(index int) {
	record := a.records[index]
	if !record.dirty {
		return
	}
	rawText, ok := a.buffer.LineText(index)
	if !ok {
		// The line vanished between the edit and this flush
		record.rawText = ""
		record.spans = nil
		record.dirty = false
		return
	}
	a.pipeline.rescan(record, rawText)
}
