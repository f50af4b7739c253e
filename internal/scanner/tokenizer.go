package scanner

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Word delimiters beyond the ASCII punctuation below. Dashes, curly
// double quotes, interpuncts, and other typographic separators found in
// prose. Straight/curly apostrophes are not delimiters so that words
// like "don't" or "l'été" stay whole.
const unicodeDelimiters = "…—–−‐‑‒·‧•¡¿«»“”„‟‹›©®™§¶°×÷±"

const asciiDelimiters = ".,:;!?()[]{}<>/\\|\"*_~+=&%$#@^`"

// Quotation marks stripped (one leading, one trailing) from word
// candidates before a dictionary lookup, so that `"hello"` checks `hello`.
const quotationMarks = "\"'‘’‚‛“”„´`"

var (
	regexNumber = regexp.MustCompile(`^[0-9]+$`)
	regexURL    = regexp.MustCompile(`^(?:[a-zA-Z][a-zA-Z0-9+.-]*://|www\.)[^\s]+`)
)

// Tokenizer scans a raw line of text and classifies each contiguous
// span as a link, tag, inline code, footnote reference, number, URL,
// or plain word.
//
// The scan is a single left-to-right pass with no backtracking across
// spans. Delimiters are cursor-advancing noise: they are never emitted.
// The emitted spans cover all non-delimiter characters of the line, in
// order, without gaps or overlaps.
type Tokenizer struct {
	recognizers *Recognizers
}

func NewTokenizer(recognizers *Recognizers) *Tokenizer {
	if recognizers == nil {
		recognizers = DefaultRecognizers()
	}
	return &Tokenizer{
		recognizers: recognizers,
	}
}

// ScanLine tokenizes a single line. An empty line returns no spans.
func (t *Tokenizer) ScanLine(line string) []Span {
	var spans []Span

	offset := 0
	for offset < len(line) {
		rest := line[offset:]

		// Special matchers win over everything else so that, for
		// example, the target of a link is never spellchecked.
		if kind, length := t.recognizers.match(rest); length > 0 {
			spans = append(spans, Span{
				Kind:  kind,
				Text:  rest[:length],
				Start: offset,
				End:   offset + length,
			})
			offset += length
			continue
		}

		// URLs are consumed greedily until whitespace: a URL contains
		// characters ('/', '.', ':') that would otherwise split it.
		if loc := regexURL.FindStringIndex(rest); loc != nil {
			spans = append(spans, Span{
				Kind:  KindURL,
				Text:  rest[:loc[1]],
				Start: offset,
				End:   offset + loc[1],
			})
			offset += loc[1]
			continue
		}

		r, size := utf8.DecodeRuneInString(rest)
		if isDelimiter(r) {
			offset += size
			continue
		}

		// Greedily consume a word candidate up to the next delimiter.
		end := offset + size
		for end < len(line) {
			next, nextSize := utf8.DecodeRuneInString(line[end:])
			if isDelimiter(next) {
				break
			}
			end += nextSize
		}

		if span, ok := wordSpan(line, offset, end); ok {
			spans = append(spans, span)
		}
		offset = end
	}

	return spans
}

// wordSpan classifies a word candidate, stripping a single leading and
// trailing quotation mark. A candidate left empty, or made only of
// connector punctuation, is dropped like a delimiter run.
func wordSpan(line string, start, end int) (Span, bool) {
	if r, size := utf8.DecodeRuneInString(line[start:end]); isQuotationMark(r) {
		start += size
	}
	if r, size := utf8.DecodeLastRuneInString(line[start:end]); start < end && isQuotationMark(r) {
		end -= size
	}
	if start >= end {
		return Span{}, false
	}

	text := line[start:end]

	if regexNumber.MatchString(text) {
		return Span{
			Kind:  KindNumber,
			Text:  text,
			Start: start,
			End:   end,
		}, true
	}

	if !hasLetterOrDigit(text) {
		// Runs of hyphens, apostrophes, etc.
		return Span{}, false
	}

	return Span{
		Kind:  KindWord,
		Text:  text,
		Start: start,
		End:   end,
	}, true
}

func isDelimiter(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	if r < utf8.RuneSelf {
		return strings.ContainsRune(asciiDelimiters, r)
	}
	return strings.ContainsRune(unicodeDelimiters, r)
}

func isQuotationMark(r rune) bool {
	return strings.ContainsRune(quotationMarks, r)
}

func hasLetterOrDigit(text string) bool {
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
