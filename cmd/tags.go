package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/notescan/notescan/internal/checker"
	"github.com/notescan/notescan/internal/core"
)

func init() {
	rootCmd.AddCommand(tagsCmd)
}

var tagsCmd = &cobra.Command{
	Use:   "tags [path...]",
	Short: "List tags",
	Long:  `Aggregate the tags found in note files, most frequent first.`,
	Run: func(cmd *cobra.Command, args []string) {
		c, err := checker.NewChecker(core.CurrentConfig())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		tags, err := c.Tags(args...)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		for _, tag := range tags {
			fmt.Printf("%4d  #%s", tag.Count, tag.Slug)
			if len(tag.Names) > 1 || (len(tag.Names) == 1 && tag.Names[0] != tag.Slug) {
				fmt.Printf("  (%s)", strings.Join(tag.Names, ", "))
			}
			fmt.Println()
		}
	},
}
