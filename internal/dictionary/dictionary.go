// Package dictionary answers term-correctness queries for the
// annotation pipeline, with memoization in front of a possibly
// slow or not-yet-loaded dictionary implementation.
package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Dictionary is the external collaborator consulted for unknown terms.
//
// The second return value reports readiness: ready == false means the
// dictionary cannot answer yet (still loading). Callers must treat the
// term as correct in that case and must not memoize the result.
type Dictionary interface {
	Lookup(term string) (correct bool, ready bool)
}

// Suggester is implemented by dictionaries able to propose
// corrections for a misspelled term.
type Suggester interface {
	Suggest(term string) []string
}

// smartApostrophes are folded to the straight apostrophe before any
// lookup so that “don’t” and "don't" resolve to the same entry.
var smartApostrophes = strings.NewReplacer(
	"’", "'",
	"‘", "'",
	"‚", "'",
	"‛", "'",
	"´", "'",
	"`", "'",
)

// NormalizeTerm folds smart-quote variants to a straight apostrophe,
// applies unicode NFC normalization, and lowercases the term.
func NormalizeTerm(term string) string {
	return strings.ToLower(norm.NFC.String(smartApostrophes.Replace(term)))
}

// notReadyDict never becomes ready: every lookup fails open.
type notReadyDict struct{}

func (notReadyDict) Lookup(string) (bool, bool) {
	return false, false
}

// NotReady returns a dictionary that never answers. Useful when no
// wordlist is configured: every term is reported correct.
func NotReady() Dictionary {
	return notReadyDict{}
}

// WordList is an in-memory dictionary populated from a word-per-line
// file (the user dictionary format).
type WordList struct {
	words map[string]bool
}

func NewWordList(words []string) *WordList {
	result := &WordList{
		words: make(map[string]bool, len(words)),
	}
	for _, word := range words {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		result.words[NormalizeTerm(word)] = true
	}
	return result
}

// LoadWordList reads a word-per-line dictionary file.
func LoadWordList(path string) (*WordList, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read wordlist %q: %w", path, err)
	}
	defer file.Close()

	var words []string
	bufScanner := bufio.NewScanner(file)
	for bufScanner.Scan() {
		words = append(words, bufScanner.Text())
	}
	if err := bufScanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read wordlist %q: %w", path, err)
	}
	return NewWordList(words), nil
}

func (w *WordList) Lookup(term string) (bool, bool) {
	return w.words[NormalizeTerm(term)], true
}

// Len returns the number of known words.
func (w *WordList) Len() int {
	return len(w.words)
}

// Words returns the normalized known words.
func (w *WordList) Words() []string {
	results := make([]string, 0, len(w.words))
	for word := range w.words {
		results = append(results, word)
	}
	return results
}
