package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/salmonumbrella/journal-cli/internal/journal"
	"github.com/salmonumbrella/journal-cli/internal/output"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a journal entry",
	Long: `Create a new journal entry from the markdown template.

The entry is written to <dir>/<year>/<month>/<day>.md; year and month
directories are created as needed. Creating an entry that already exists
fails rather than overwriting it.

By default, creates today's entry. Use --date for a different date.`,
	Example: `  # Create today's entry
  journal new

  # With a title
  journal new --title "Conference day one"

  # For a specific date
  journal new --date 2026-02-21 --title "Back-dated notes"

  # Print the rendered body without writing anything
  journal new --stdout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dateStr, _ := cmd.Flags().GetString("date")
		title, _ := cmd.Flags().GetString("title")
		toStdout, _ := cmd.Flags().GetBool("stdout")

		t, err := resolveDate(dateStr)
		if err != nil {
			return err
		}

		if toStdout {
			fmt.Fprint(stdoutFromContext(cmd.Context()), journal.RenderTemplate(t, title))
			return nil
		}

		path, err := GetStore().Create(t, title)
		if err != nil {
			return err
		}

		if structuredOutputRequested() {
			result := map[string]string{
				"status": "created",
				"date":   t.Format("2006-01-02"),
				"path":   path,
			}
			if title != "" {
				result["title"] = title
			}
			return printStructured(result)
		}

		if !output.QuietFromContext(cmd.Context()) {
			color.New(color.FgGreen).Fprintf(stdoutFromContext(cmd.Context()), "Created %s\n", path)
		}
		return nil
	},
}

func init() {
	newCmd.Flags().String("date", "", "Date for the entry (default: today)")
	newCmd.Flags().StringP("title", "t", "", "Entry title")
	newCmd.Flags().Bool("stdout", false, "Print the rendered entry instead of writing it")

	rootCmd.AddCommand(newCmd)
}
