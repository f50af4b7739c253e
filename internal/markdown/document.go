// Package markdown provides the few document-level helpers the checker
// needs: line access, YAML front matter, and fenced code blocks.
package markdown

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/notescan/notescan/pkg/text"
)

// Document represents a Markdown document (a whole file, or a snippet)
type Document string

// Null object
var EmptyDocument = Document("")

func ReadDocument(path string) (Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return EmptyDocument, fmt.Errorf("unable to read %q: %w", path, err)
	}
	return Document(content), nil
}

// Lines returns the lines present in the Markdown document
func (m Document) Lines() []string {
	return strings.Split(string(m), "\n")
}

func (m Document) IsBlank() bool {
	return text.IsBlank(string(m))
}

func (m Document) Iterator() *text.LineIterator {
	return text.NewLineIteratorFromText(string(m))
}

func (m Document) String() string {
	return string(m)
}

// FrontMatterRange returns the half-open line range [start, end) of the
// YAML front matter block, fences included, using zero-based indexes.
// A document without front matter returns (0, 0).
func (m Document) FrontMatterRange() (int, int) {
	lines := m.Lines()
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return 0, 0
	}
	for i := 1; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "---" || trimmed == "..." {
			return 0, i + 1
		}
	}
	// Unterminated front matter is not front matter
	return 0, 0
}

// FrontMatter parses the YAML front matter into a map.
// A document without front matter returns an empty map.
func (m Document) FrontMatter() (map[string]any, error) {
	start, end := m.FrontMatterRange()
	if start == end {
		return map[string]any{}, nil
	}
	lines := m.Lines()
	raw := strings.Join(lines[start+1:end-1], "\n")

	attributes := make(map[string]any)
	if err := yaml.Unmarshal([]byte(raw), &attributes); err != nil {
		return nil, fmt.Errorf("invalid front matter: %w", err)
	}
	return attributes, nil
}

// FencedCodeRanges returns the half-open line ranges [start, end) of
// fenced code blocks, fences included, using zero-based indexes.
func (m Document) FencedCodeRanges() [][2]int {
	var results [][2]int

	insideCodeBlock := false
	var currentStart int

	for i, line := range m.Lines() {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			if !insideCodeBlock {
				currentStart = i
				insideCodeBlock = true
			} else {
				results = append(results, [2]int{currentStart, i + 1})
				insideCodeBlock = false
			}
		}
	}

	// An unterminated fence runs to the end of the document
	if insideCodeBlock {
		results = append(results, [2]int{currentStart, len(m.Lines())})
	}

	return results
}

// ProtectedLines flags the lines excluded from spellchecking:
// front matter and fenced code blocks.
func (m Document) ProtectedLines() []bool {
	lines := m.Lines()
	protected := make([]bool, len(lines))

	start, end := m.FrontMatterRange()
	for i := start; i < end; i++ {
		protected[i] = true
	}
	for _, r := range m.FencedCodeRanges() {
		for i := r[0]; i < r[1]; i++ {
			protected[i] = true
		}
	}
	return protected
}
