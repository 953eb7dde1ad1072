package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/journal-cli/internal/journal"
	"github.com/salmonumbrella/journal-cli/internal/output"
)

type entryOutput struct {
	Date  string `json:"date"`
	Title string `json:"title,omitempty"`
	Path  string `json:"path"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List journal entries",
	Long: `List the entries in the journal directory, sorted by date.

Use --year and --month to narrow the listing. Files that do not match the
journal layout are ignored.`,
	Example: `  # All entries
  journal list

  # One month
  journal list --year 2026 --month 2

  # Most recent five entries
  journal list --result-sort-by date --result-desc --result-limit 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		year, _ := cmd.Flags().GetInt("year")
		month, _ := cmd.Flags().GetInt("month")

		entries, err := GetStore().List(year, month)
		if err != nil {
			return err
		}
		rows := entryRows(entries)

		if structuredOutputRequested() || GetOutputFormat() == output.FormatTable {
			return printStructured(rows)
		}

		w := stdoutFromContext(cmd.Context())
		if len(rows) == 0 {
			if !output.QuietFromContext(cmd.Context()) {
				fmt.Fprintln(w, "No journal entries found")
			}
			return nil
		}
		for _, row := range rows {
			if row.Title != "" {
				fmt.Fprintf(w, "%s  %s  %s\n", row.Date, row.Path, row.Title)
			} else {
				fmt.Fprintf(w, "%s  %s\n", row.Date, row.Path)
			}
		}
		return nil
	},
}

func entryRows(entries []journal.Entry) []entryOutput {
	rows := make([]entryOutput, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, entryOutput{
			Date:  e.Date.Format("2006-01-02"),
			Title: e.Title,
			Path:  e.Path,
		})
	}
	return rows
}

func init() {
	listCmd.Flags().Int("year", 0, "Only list entries from this year")
	listCmd.Flags().Int("month", 0, "Only list entries from this month, 1-12")

	rootCmd.AddCommand(listCmd)
}
