package scanner

import (
	"fmt"
	"regexp"
)

// Default patterns for zettelkasten-style notes.
const (
	DefaultLinkStart = "[["
	DefaultLinkEnd   = "]]"

	defaultTagPattern      = `#[\p{L}\p{N}/_-]+`
	defaultFootnotePattern = `\[\^[^\s\]]+\]`
	defaultCodePattern     = "`[^`]*`"
)

// RecognizerOptions configures the special-span matchers.
// Zero values fall back to the zettelkasten defaults.
type RecognizerOptions struct {
	// Literal delimiters surrounding internal links (ex: "[[", "]]").
	LinkStart string
	LinkEnd   string

	// Optional custom regular expressions overriding the default
	// tag and footnote-reference patterns.
	TagPattern      string
	FootnotePattern string

	// NoInlineCode disables the inline-code matcher.
	NoInlineCode bool
}

// Recognizers holds the compiled special-span matchers evaluated by the
// Tokenizer before generic word-splitting. The evaluation order is fixed:
// link, tag, inline code, footnote reference. A word inside a matched
// special span is never independently tokenized.
type Recognizers struct {
	link     *regexp.Regexp
	tag      *regexp.Regexp
	code     *regexp.Regexp
	footnote *regexp.Regexp
}

// NewRecognizers compiles the matchers from the given options.
// On a compilation error, it returns DisabledRecognizers so that the
// caller can degrade to pure word/delimiter tokenizing instead of
// failing the whole scan.
func NewRecognizers(opts RecognizerOptions) (*Recognizers, error) {
	linkStart := opts.LinkStart
	linkEnd := opts.LinkEnd
	if linkStart == "" {
		linkStart = DefaultLinkStart
	}
	if linkEnd == "" {
		linkEnd = DefaultLinkEnd
	}
	tagPattern := opts.TagPattern
	if tagPattern == "" {
		tagPattern = defaultTagPattern
	}
	footnotePattern := opts.FootnotePattern
	if footnotePattern == "" {
		footnotePattern = defaultFootnotePattern
	}

	link, err := compileAnchored(regexp.QuoteMeta(linkStart) + `.+?` + regexp.QuoteMeta(linkEnd))
	if err != nil {
		return DisabledRecognizers(), fmt.Errorf("invalid link delimiters %q %q: %w", linkStart, linkEnd, err)
	}
	tag, err := compileAnchored(tagPattern)
	if err != nil {
		return DisabledRecognizers(), fmt.Errorf("invalid tag pattern %q: %w", tagPattern, err)
	}
	footnote, err := compileAnchored(footnotePattern)
	if err != nil {
		return DisabledRecognizers(), fmt.Errorf("invalid footnote pattern %q: %w", footnotePattern, err)
	}

	result := &Recognizers{
		link:     link,
		tag:      tag,
		footnote: footnote,
	}
	if !opts.NoInlineCode {
		result.code = regexp.MustCompile(`^` + defaultCodePattern)
	}
	return result, nil
}

// DefaultRecognizers returns matchers for the standard zettelkasten syntax.
func DefaultRecognizers() *Recognizers {
	recognizers, err := NewRecognizers(RecognizerOptions{})
	if err != nil {
		// Defaults are constants and always compile
		panic(err)
	}
	return recognizers
}

// DisabledRecognizers returns matchers that never match.
// The Tokenizer then degrades to pure word/delimiter tokenizing.
func DisabledRecognizers() *Recognizers {
	return &Recognizers{}
}

// compileAnchored anchors a pattern so it only matches at the current offset.
func compileAnchored(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile(`^(?:` + pattern + `)`)
}

// match returns the length of the special span starting at the beginning
// of rest, with its kind, or 0 when no matcher applies.
func (r *Recognizers) match(rest string) (Kind, int) {
	// Priority order matters and must be preserved.
	if r.link != nil {
		if loc := r.link.FindStringIndex(rest); loc != nil {
			return KindLink, loc[1]
		}
	}
	if r.tag != nil {
		if loc := r.tag.FindStringIndex(rest); loc != nil {
			return KindTag, loc[1]
		}
	}
	if r.code != nil {
		if loc := r.code.FindStringIndex(rest); loc != nil {
			return KindCode, loc[1]
		}
	}
	if r.footnote != nil {
		if loc := r.footnote.FindStringIndex(rest); loc != nil {
			return KindFootnoteRef, loc[1]
		}
	}
	return KindWord, 0
}
