package checker

import (
	"strings"

	"github.com/gosimple/slug"
	"golang.org/x/exp/slices"

	"github.com/notescan/notescan/internal/markdown"
	"github.com/notescan/notescan/internal/scanner"
)

// TagUsage reports how often a tag appears across the checked files.
type TagUsage struct {
	// Slug is the canonical form of the tag ("#Déjà-Vu" => "deja-vu").
	Slug string
	// Names lists the raw spellings found in the notes.
	Names []string
	Count int
}

// Tags aggregates the tags found under the given paths, most frequent
// first (ties broken alphabetically).
func (c *Checker) Tags(paths ...string) ([]*TagUsage, error) {
	files, err := c.collectFiles(paths)
	if err != nil {
		return nil, err
	}

	usages := make(map[string]*TagUsage)
	for _, file := range files {
		doc, err := markdown.ReadDocument(file.path)
		if err != nil {
			return nil, err
		}
		scan := c.ScanDocument(doc)
		for i := 0; i < scan.LineCount(); i++ {
			for _, span := range scan.Spans(i) {
				if span.Kind != scanner.KindTag {
					continue
				}
				name := strings.TrimPrefix(span.Text, "#")
				key := slug.Make(name)
				usage, ok := usages[key]
				if !ok {
					usage = &TagUsage{Slug: key}
					usages[key] = usage
				}
				usage.Count++
				if !slices.Contains(usage.Names, name) {
					usage.Names = append(usage.Names, name)
				}
			}
		}
	}

	results := make([]*TagUsage, 0, len(usages))
	for _, usage := range usages {
		results = append(results, usage)
	}
	slices.SortFunc(results, func(a, b *TagUsage) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Slug, b.Slug)
	})
	return results, nil
}
