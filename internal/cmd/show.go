package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a journal entry",
	Long: `Print the contents of a journal entry.

When stdout is a terminal the markdown is rendered for display; use --raw
to print the file as-is.

By default, shows today's entry. Use --date for a different date.`,
	Example: `  # Today's entry
  journal show

  # A specific date, unrendered
  journal show --date 2026-02-21 --raw`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dateStr, _ := cmd.Flags().GetString("date")
		raw, _ := cmd.Flags().GetBool("raw")

		t, err := resolveDate(dateStr)
		if err != nil {
			return err
		}

		data, err := GetStore().Read(t)
		if err != nil {
			return err
		}

		if structuredOutputRequested() {
			return printStructured(map[string]string{
				"date":    t.Format("2006-01-02"),
				"path":    GetStore().Path(t),
				"content": string(data),
			})
		}

		w := stdoutFromContext(cmd.Context())
		if raw || !isTerminal(w) {
			fmt.Fprint(w, string(data))
			return nil
		}

		rendered, err := glamour.Render(string(data), "dark")
		if err != nil {
			// Fall back to plain markdown if rendering fails
			fmt.Fprint(w, string(data))
			return nil
		}
		fmt.Fprint(w, rendered)
		return nil
	},
}

func init() {
	showCmd.Flags().String("date", "", "Date of the entry (default: today)")
	showCmd.Flags().Bool("raw", false, "Print the raw markdown without rendering")

	rootCmd.AddCommand(showCmd)
}
