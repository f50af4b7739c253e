package checker

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
)

// Markdown renders the result as a Markdown report.
func (r *CheckResult) Markdown() string {
	var sb strings.Builder

	sb.WriteString("# Spellcheck Report\n\n")
	sb.WriteString(fmt.Sprintf("%d misspellings in %d files (%d files analyzed)\n\n",
		len(r.Findings), r.AffectedFiles, r.AnalyzedFiles))

	if len(r.Findings) > 0 {
		sb.WriteString("## Findings\n\n")
		for _, finding := range r.Findings {
			sb.WriteString(fmt.Sprintf("* `%s` (%s:%d)", finding.Word, finding.RelativePath, finding.Line))
			if len(finding.Suggestions) > 0 {
				sb.WriteString(fmt.Sprintf(" (did you mean %s?)", strings.Join(finding.Suggestions, ", ")))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Statistics\n\n")
	sb.WriteString(fmt.Sprintf("* Words checked: %d\n", r.Stats.Words))
	sb.WriteString(fmt.Sprintf("* Long words: %d\n", r.Stats.LongWords))
	sb.WriteString(fmt.Sprintf("* Misspellings: %d\n", r.Stats.Misspellings))

	return sb.String()
}

// HTML renders the result as a standalone HTML report.
func (r *CheckResult) HTML() []byte {
	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html>\n<body>\n")
	buf.Write(markdown.ToHTML([]byte(r.Markdown()), nil, nil))
	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes()
}
