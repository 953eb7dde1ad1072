package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/journal-cli/internal/datefmt"
)

// resolveDate returns the date from a --date flag value, today when empty.
func resolveDate(dateStr string) (time.Time, error) {
	if strings.TrimSpace(dateStr) == "" {
		return nowFunc(), nil
	}
	return datefmt.ParseDate(dateStr)
}

var dateCmd = &cobra.Command{
	Use:   "date",
	Short: "Print the formatted entry date",
	Long: `Print a date the way journal entry headers spell it,
e.g. "Saturday, February 21st, 2026".

By default, formats today. Use --date for a different date.`,
	Example: `  # Today's entry date
  journal date

  # A specific date
  journal date --date 2026-02-21
  journal date --date "February 21, 2026"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dateStr, _ := cmd.Flags().GetString("date")
		t, err := resolveDate(dateStr)
		if err != nil {
			return err
		}

		if structuredOutputRequested() {
			return printStructured(map[string]interface{}{
				"date":      t.Format("2006-01-02"),
				"formatted": datefmt.EntryDate(t),
				"weekday":   t.Weekday().String(),
				"day":       t.Day(),
				"suffix":    datefmt.OrdinalSuffix(t.Day()),
			})
		}

		fmt.Fprintln(stdoutFromContext(cmd.Context()), datefmt.EntryDate(t))
		return nil
	},
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the entry path for a date",
	Long: `Print the file path where the entry for a date lives, without
creating anything.

By default, resolves today's path. Use --date for a different date.`,
	Example: `  # Today's entry path
  journal path

  # A specific date
  journal path --date 2026-02-21`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dateStr, _ := cmd.Flags().GetString("date")
		t, err := resolveDate(dateStr)
		if err != nil {
			return err
		}

		path := GetStore().Path(t)

		if structuredOutputRequested() {
			return printStructured(map[string]string{
				"date": t.Format("2006-01-02"),
				"path": path,
			})
		}

		fmt.Fprintln(stdoutFromContext(cmd.Context()), path)
		return nil
	},
}

func init() {
	dateCmd.Flags().String("date", "", "Date to format (default: today)")
	pathCmd.Flags().String("date", "", "Date to resolve (default: today)")

	rootCmd.AddCommand(dateCmd)
	rootCmd.AddCommand(pathCmd)
}
