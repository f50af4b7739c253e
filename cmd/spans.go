package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/itchyny/gojq"
	"github.com/spf13/cobra"

	"github.com/notescan/notescan/internal/checker"
	"github.com/notescan/notescan/internal/core"
	"github.com/notescan/notescan/internal/markdown"
	"github.com/notescan/notescan/internal/scanner"
)

var spansQuery string

func init() {
	spansCmd.Flags().StringVarP(&spansQuery, "query", "q", "", "jq expression to filter the span dump")
	rootCmd.AddCommand(spansCmd)
}

type lineDump struct {
	Line  int            `json:"line"`
	Text  string         `json:"text"`
	Spans []scanner.Span `json:"spans"`
}

type spansDump struct {
	Session string     `json:"session"`
	Path    string     `json:"path"`
	Lines   []lineDump `json:"lines"`
}

var spansCmd = &cobra.Command{
	Use:   "spans FILE",
	Short: "Dump classified spans",
	Long:  `Tokenize a note file and dump the classified spans as JSON.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc, err := markdown.ReadDocument(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		c, err := checker.NewChecker(core.CurrentConfig())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		scan := c.ScanDocument(doc)

		dump := spansDump{
			Session: scan.Session(),
			Path:    args[0],
		}
		lines := doc.Lines()
		for i := 0; i < scan.LineCount(); i++ {
			spans := scan.Spans(i)
			if len(spans) == 0 {
				continue
			}
			dump.Lines = append(dump.Lines, lineDump{
				Line:  i + 1,
				Text:  lines[i],
				Spans: spans,
			})
		}

		core.CurrentLogger().Trace(spew.Sdump(dump.Lines))

		if spansQuery != "" {
			if err := runQuery(dump, spansQuery); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(dump); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

// runQuery filters the dump with a jq expression and prints every result.
func runQuery(dump spansDump, expr string) error {
	query, err := gojq.Parse(expr)
	if err != nil {
		return fmt.Errorf("invalid query %q: %w", expr, err)
	}

	// gojq operates on plain maps and slices
	raw, err := json.Marshal(dump)
	if err != nil {
		return err
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return err
	}

	iter := query.Run(data)
	encoder := json.NewEncoder(os.Stdout)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			return err
		}
		if err := encoder.Encode(v); err != nil {
			return err
		}
	}
	return nil
}
