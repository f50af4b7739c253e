package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/notescan/notescan/internal/checker"
	"github.com/notescan/notescan/internal/core"
	"github.com/notescan/notescan/pkg/console"
)

var checkFormat string
var checkStats bool
var checkWatch bool

func init() {
	checkCmd.Flags().StringVar(&checkFormat, "format", "text", "output format: text, markdown, html")
	checkCmd.Flags().BoolVar(&checkStats, "stats", false, "print word statistics")
	checkCmd.Flags().BoolVar(&checkWatch, "watch", false, "re-run the check when a wordlist changes")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check [path...]",
	Short: "Check spelling",
	Long:  `Check the spelling of note files and report misspelled words.`,
	Run: func(cmd *cobra.Command, args []string) {
		switch checkFormat {
		case "text", "markdown", "html":
		default:
			fmt.Fprintf(os.Stderr, "Unsupported format %q\n", checkFormat)
			os.Exit(1)
		}

		findings, err := runCheck(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if !checkWatch {
			if findings > 0 {
				os.Exit(1)
			}
			return
		}

		// A fresh checker per run reloads the wordlist and starts from
		// an empty lookup cache.
		rerun := make(chan struct{}, 1)
		watcher, err := checker.WatchWordlists(core.CurrentConfig(), func() {
			select {
			case rerun <- struct{}{}:
			default:
			}
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer watcher.Close()

		for range rerun {
			if _, err := runCheck(args); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
	},
}

// runCheck checks the given paths and prints the report.
// It returns the number of misspellings found.
func runCheck(args []string) (int, error) {
	var progress *console.ProgressLog
	c, err := checker.NewChecker(core.CurrentConfig(),
		checker.WithProgress(func(current, total int, path string) {
			if total < 2 || checkFormat != "text" {
				return
			}
			if progress == nil {
				progress = console.NewProgressLog(total, console.ShowPercent())
			}
			progress.Log(current, path)
		}))
	if err != nil {
		return 0, err
	}

	result, err := c.CheckPaths(args...)
	if err != nil {
		return 0, err
	}
	if progress != nil {
		progress.Clear("")
	}

	switch checkFormat {
	case "text":
		printTextReport(result)
	case "markdown":
		fmt.Print(result.Markdown())
	case "html":
		os.Stdout.Write(result.HTML())
	}

	return len(result.Findings), nil
}

func printTextReport(result *checker.CheckResult) {
	fmt.Printf("%d misspellings in %d files (%d files analyzed)\n",
		len(result.Findings),
		result.AffectedFiles,
		result.AnalyzedFiles)
	for _, finding := range result.Findings {
		fmt.Printf("  %s (%s:%d)",
			color.RedString("%s", finding.Word),
			finding.RelativePath,
			finding.Line)
		if len(finding.Suggestions) > 0 {
			fmt.Printf(" %s", color.YellowString("did you mean %v?", finding.Suggestions))
		}
		fmt.Println()
	}
	if checkStats {
		fmt.Printf("%d words checked, %d long words\n", result.Stats.Words, result.Stats.LongWords)
	}
}
