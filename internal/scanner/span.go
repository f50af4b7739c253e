package scanner

import (
	"encoding/json"
	"fmt"
)

// Kind classifies a span of text inside a line.
type Kind int

const (
	KindWord Kind = iota
	KindLink
	KindTag
	KindFootnoteRef
	KindCode
	KindNumber
	KindURL
)

func (k Kind) String() string {
	switch k {
	case KindWord:
		return "word"
	case KindLink:
		return "link"
	case KindTag:
		return "tag"
	case KindFootnoteRef:
		return "footnote"
	case KindCode:
		return "code"
	case KindNumber:
		return "number"
	case KindURL:
		return "url"
	}
	return "unknown"
}

// Spelling is the dictionary verdict for a Word span.
type Spelling int

const (
	// SpellingUnknown means the span was not checked (non-word spans,
	// or word spans not yet resolved against a dictionary).
	SpellingUnknown Spelling = iota
	SpellingCorrect
	SpellingMisspelled
)

func (s Spelling) String() string {
	switch s {
	case SpellingCorrect:
		return "correct"
	case SpellingMisspelled:
		return "misspelled"
	}
	return "unknown"
}

// Span is a classified, non-overlapping substring of a line.
//
// Start and End are byte offsets into the raw line. For Word spans,
// Text excludes a stripped leading/trailing quotation mark and the
// offsets are adjusted accordingly, so Text == line[Start:End] always
// holds.
//
// A Span is immutable once produced for a given scan.
type Span struct {
	Kind     Kind
	Text     string
	Start    int
	End      int
	Spelling Spelling
}

// Checkable returns if the span must be resolved against a dictionary.
func (s Span) Checkable() bool {
	return s.Kind == KindWord
}

func (s Span) String() string {
	return fmt.Sprintf("%s(%q)", s.Kind, s.Text)
}

func (s Span) MarshalJSON() ([]byte, error) {
	type rawSpan struct {
		Kind     string `json:"kind"`
		Text     string `json:"text"`
		Start    int    `json:"start"`
		End      int    `json:"end"`
		Spelling string `json:"spelling,omitempty"`
	}
	raw := rawSpan{
		Kind:  s.Kind.String(),
		Text:  s.Text,
		Start: s.Start,
		End:   s.End,
	}
	if s.Kind == KindWord {
		raw.Spelling = s.Spelling.String()
	}
	return json.Marshal(raw)
}
