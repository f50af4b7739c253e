package dictionary

import (
	"strings"

	"github.com/sajari/fuzzy"
)

// Suggestion model depth. 2 is a good performance/accuracy trade-off.
const fuzzyDepth = 2

const maxSuggestions = 5

func newModel() *fuzzy.Model {
	model := fuzzy.NewModel()
	model.SetDepth(fuzzyDepth)
	// Each dictionary word is trained exactly once; the default
	// threshold of 4 occurrences would suppress every suggestion.
	model.SetThreshold(1)
	return model
}

// FuzzyDict wraps a WordList with a fuzzy model able to propose
// corrections for misspelled terms.
type FuzzyDict struct {
	words *WordList
	model *fuzzy.Model
}

func NewFuzzyDict(words []string) *FuzzyDict {
	model := newModel()
	for _, word := range words {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		model.TrainWord(NormalizeTerm(word))
	}
	return &FuzzyDict{
		words: NewWordList(words),
		model: model,
	}
}

// LoadFuzzyDict reads a word-per-line dictionary file and trains the
// suggestion model from it.
func LoadFuzzyDict(path string) (*FuzzyDict, error) {
	words, err := LoadWordList(path)
	if err != nil {
		return nil, err
	}
	model := newModel()
	for word := range words.words {
		model.TrainWord(word)
	}
	return &FuzzyDict{
		words: words,
		model: model,
	}, nil
}

func (d *FuzzyDict) Lookup(term string) (bool, bool) {
	return d.words.Lookup(term)
}

// Suggest returns the closest known words for a misspelled term.
func (d *FuzzyDict) Suggest(term string) []string {
	var results []string
	for _, candidate := range d.model.Suggestions(NormalizeTerm(term), false) {
		if correct, _ := d.words.Lookup(candidate); !correct {
			continue
		}
		results = append(results, candidate)
		if len(results) == maxSuggestions {
			break
		}
	}
	return results
}
