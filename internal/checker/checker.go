// Package checker runs the annotation pipeline over note files on disk
// and reports misspellings, tags, and word statistics.
package checker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/notescan/notescan/internal/annotate"
	"github.com/notescan/notescan/internal/core"
	"github.com/notescan/notescan/internal/dictionary"
	"github.com/notescan/notescan/internal/markdown"
	"github.com/notescan/notescan/internal/scanner"
	"github.com/notescan/notescan/pkg/clock"
)

// Words longer than this count as "long" in readability statistics.
const longWordLength = 13

// Finding reports a misspelled word in a file.
type Finding struct {
	// The misspelled word as written.
	Word string
	// The relative path to the file containing the word.
	RelativePath string
	// The line number in the file containing the word (1-based).
	Line int
	// Corrections proposed by the dictionary, if any.
	Suggestions []string
}

// Stats aggregates readability counters over the checked words.
type Stats struct {
	Words        int
	LongWords    int
	Misspellings int
}

// CheckResult aggregates the findings over a set of files.
type CheckResult struct {
	AnalyzedFiles int
	AffectedFiles int
	Findings      []*Finding
	Stats         Stats
}

// Checker binds a configuration to a tokenizer, a dictionary, and a
// lookup cache shared across the checked files.
type Checker struct {
	config    *core.Config
	tokenizer *scanner.Tokenizer
	dict      dictionary.Dictionary
	cache     *dictionary.Cache

	// Invoked after each processed file (for progress reporting).
	progress func(current, total int, path string)
}

// WithDictionary overrides the dictionary resolved from the configuration.
func WithDictionary(dict dictionary.Dictionary) func(*Checker) {
	return func(c *Checker) {
		c.dict = dict
	}
}

// WithProgress registers a per-file progress callback.
func WithProgress(fn func(current, total int, path string)) func(*Checker) {
	return func(c *Checker) {
		c.progress = fn
	}
}

func NewChecker(config *core.Config, options ...func(*Checker)) (*Checker, error) {
	// Work on a copy: a session can tweak patterns without touching
	// the shared configuration.
	config = config.Clone()

	result := &Checker{
		config:    config,
		tokenizer: scanner.NewTokenizer(config.Recognizers()),
	}
	for _, option := range options {
		option(result)
	}

	if result.dict == nil {
		dict, err := loadDictionary(config)
		if err != nil {
			return nil, err
		}
		result.dict = dict
	}
	result.cache = dictionary.NewCache(result.dict)

	return result, nil
}

func loadDictionary(config *core.Config) (dictionary.Dictionary, error) {
	wordlists := config.ConfigFile.Dictionary.Wordlists
	if len(wordlists) == 0 {
		core.CurrentLogger().Warn("No wordlist configured: spellchecking disabled")
		return dictionary.NotReady(), nil
	}

	var words []string
	for _, path := range wordlists {
		if !filepath.IsAbs(path) {
			path = filepath.Join(config.RootDirectory, path)
		}
		wordlist, err := dictionary.LoadWordList(path)
		if err != nil {
			return nil, err
		}
		words = append(words, wordlist.Words()...)
	}

	if config.ConfigFile.Dictionary.Suggestions {
		return dictionary.NewFuzzyDict(words), nil
	}
	return dictionary.NewWordList(words), nil
}

// documentBuffer adapts a parsed document to the annotate.Buffer
// contract. Protected lines (front matter, fenced code) read as empty
// so that their content never reaches the dictionary.
type documentBuffer struct {
	lines     []string
	protected []bool
}

func newDocumentBuffer(doc markdown.Document) *documentBuffer {
	return &documentBuffer{
		lines:     doc.Lines(),
		protected: doc.ProtectedLines(),
	}
}

func (b *documentBuffer) LineCount() int {
	return len(b.lines)
}

func (b *documentBuffer) LineText(index int) (string, bool) {
	if index < 0 || index >= len(b.lines) {
		return "", false
	}
	if b.protected[index] {
		return "", true
	}
	return b.lines[index], true
}

// FileScan holds the annotated spans of a single document.
type FileScan struct {
	buffer         *documentBuffer
	annotator      *annotate.Annotator
	frontMatterEnd int
}

// ScanDocument annotates every line of a document.
func (c *Checker) ScanDocument(doc markdown.Document) *FileScan {
	buffer := newDocumentBuffer(doc)
	_, frontMatterEnd := doc.FrontMatterRange()
	return &FileScan{
		buffer:         buffer,
		annotator:      annotate.NewAnnotator(buffer, c.tokenizer, c.cache),
		frontMatterEnd: frontMatterEnd,
	}
}

func (s *FileScan) LineCount() int {
	return s.annotator.LineCount()
}

// Session returns the unique identifier of the underlying annotator.
func (s *FileScan) Session() string {
	return s.annotator.Session()
}

// Spans returns the annotated spans of a line. A line inside a fenced
// code block yields a single Code span covering the whole line; front
// matter lines yield nothing.
func (s *FileScan) Spans(index int) []scanner.Span {
	if index < 0 || index >= len(s.buffer.lines) {
		return nil
	}
	if s.buffer.protected[index] {
		if index < s.frontMatterEnd {
			return nil
		}
		line := s.buffer.lines[index]
		if line == "" {
			return nil
		}
		return []scanner.Span{{
			Kind:  scanner.KindCode,
			Text:  line,
			Start: 0,
			End:   len(line),
		}}
	}
	return s.annotator.Spans(index)
}

// CheckPaths checks note files under the given paths (directories are
// walked recursively). With no path, the workspace root is checked.
func (c *Checker) CheckPaths(paths ...string) (*CheckResult, error) {
	files, err := c.collectFiles(paths)
	if err != nil {
		return nil, err
	}

	start := clock.Now()
	result := &CheckResult{}
	for i, file := range files {
		findings, stats, err := c.checkFile(file)
		if err != nil {
			return nil, err
		}
		result.AnalyzedFiles++
		if len(findings) > 0 {
			result.AffectedFiles++
		}
		result.Findings = append(result.Findings, findings...)
		result.Stats.Words += stats.Words
		result.Stats.LongWords += stats.LongWords
		result.Stats.Misspellings += stats.Misspellings
		if c.progress != nil {
			c.progress(i+1, len(files), file.relativePath)
		}
	}
	core.CurrentLogger().Infof("Checked %d files in %s", result.AnalyzedFiles, clock.Now().Sub(start))

	return result, nil
}

type noteFile struct {
	path         string
	relativePath string
}

func (c *Checker) collectFiles(paths []string) ([]noteFile, error) {
	if len(paths) == 0 {
		paths = []string{c.config.RootDirectory}
	}

	var results []noteFile
	for _, path := range paths {
		abspath, err := filepath.Abs(path)
		if err != nil {
			return nil, err
		}
		stat, err := os.Stat(abspath)
		if err != nil {
			return nil, fmt.Errorf("unable to check %q: %w", path, err)
		}

		if !stat.IsDir() {
			results = append(results, noteFile{
				path:         abspath,
				relativePath: c.relativePath(abspath),
			})
			continue
		}

		err = filepath.WalkDir(abspath, func(walked string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				// Skip hidden directories like .git
				if strings.HasPrefix(entry.Name(), ".") && walked != abspath {
					return filepath.SkipDir
				}
				return nil
			}
			relativePath := c.relativePath(walked)
			if !c.config.ConfigFile.SupportExtension(walked) {
				return nil
			}
			if c.config.ConfigFile.IgnoreFile(relativePath) {
				return nil
			}
			results = append(results, noteFile{
				path:         walked,
				relativePath: relativePath,
			})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

func (c *Checker) relativePath(path string) string {
	relativePath, err := filepath.Rel(c.config.RootDirectory, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(relativePath)
}

func (c *Checker) checkFile(file noteFile) ([]*Finding, Stats, error) {
	doc, err := markdown.ReadDocument(file.path)
	if err != nil {
		return nil, Stats{}, err
	}

	var findings []*Finding
	var stats Stats

	scan := c.ScanDocument(doc)
	for i := 0; i < scan.LineCount(); i++ {
		for _, span := range scan.Spans(i) {
			if !span.Checkable() {
				continue
			}
			stats.Words++
			if utf8.RuneCountInString(span.Text) >= longWordLength {
				stats.LongWords++
			}
			if span.Spelling != scanner.SpellingMisspelled {
				continue
			}
			stats.Misspellings++
			findings = append(findings, &Finding{
				Word:         span.Text,
				RelativePath: file.relativePath,
				Line:         i + 1, // lines start at 1
				Suggestions:  c.suggest(span.Text),
			})
		}
	}
	return findings, stats, nil
}

func (c *Checker) suggest(word string) []string {
	if suggester, ok := c.dict.(dictionary.Suggester); ok {
		return suggester.Suggest(word)
	}
	return nil
}
