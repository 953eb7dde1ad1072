package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/salmonumbrella/journal-cli/internal/calendar"
	"github.com/salmonumbrella/journal-cli/internal/datefmt"
)

type calendarOutput struct {
	Year      int      `json:"year"`
	Month     int      `json:"month"`
	MonthName string   `json:"month_name"`
	DayCount  int      `json:"day_count"`
	Rows      []string `json:"rows"`
	Weeks     [][]int  `json:"weeks"`
}

var calCmd = &cobra.Command{
	Use:   "cal",
	Short: "Render a month as a markdown calendar",
	Long: `Render a calendar month as a markdown table, one row per week.

Weeks start on Monday unless --sunday-first is given or week_start is set
to "sunday" in the config. When the month being rendered is the current
one, today's cell is highlighted in terminal output.`,
	Example: `  # The current month
  journal cal

  # A specific month
  journal cal --year 2024 --month 2

  # Sunday-first columns, no header rows
  journal cal --sunday-first --no-header`,
	RunE: func(cmd *cobra.Command, args []string) error {
		now := nowFunc()
		year, _ := cmd.Flags().GetInt("year")
		month, _ := cmd.Flags().GetInt("month")
		sundayFirst, _ := cmd.Flags().GetBool("sunday-first")
		noHeader, _ := cmd.Flags().GetBool("no-header")

		if year == 0 {
			year = now.Year()
		}
		if month == 0 {
			month = int(now.Month())
		}

		order := datefmt.WorldOrder
		if cmd.Flags().Changed("sunday-first") {
			if sundayFirst {
				order = datefmt.USOrder
			}
		} else if weekStart == datefmt.Sunday {
			order = datefmt.USOrder
		}

		m, err := calendar.MonthLayoutOrder(year, month, order)
		if err != nil {
			return err
		}
		rows := m.Rows()

		if structuredOutputRequested() {
			weeks := make([][]int, 0, len(m.Weeks))
			for _, week := range m.Weeks {
				weeks = append(weeks, append([]int(nil), week[:]...))
			}
			return printStructured(calendarOutput{
				Year:      m.Year,
				Month:     m.Month,
				MonthName: time.Month(m.Month).String(),
				DayCount:  m.DayCount,
				Rows:      rows,
				Weeks:     weeks,
			})
		}

		if year == now.Year() && month == int(now.Month()) {
			highlightDay(rows, m.StartOffset, now.Day())
		}

		w := stdoutFromContext(cmd.Context())
		if !noHeader {
			fmt.Fprintln(w, calendar.HeaderRow(order))
			fmt.Fprintln(w, calendar.DelimiterRow())
		}
		for _, row := range rows {
			fmt.Fprintln(w, row)
		}
		return nil
	},
}

// highlightDay colorizes one day's cell in the rendered rows. ANSI codes
// add no visible width, so the table stays aligned.
func highlightDay(rows []string, startOffset, day int) {
	idx := (startOffset + day - 1) / 7
	if idx < 0 || idx >= len(rows) {
		return
	}
	cell := calendar.FormatDayCell(day)
	rows[idx] = strings.Replace(rows[idx], cell, color.New(color.FgGreen, color.Bold).Sprint(cell), 1)
}

func init() {
	calCmd.Flags().Int("year", 0, "Year to render (default: current year)")
	calCmd.Flags().Int("month", 0, "Month to render, 1-12 (default: current month)")
	calCmd.Flags().Bool("sunday-first", false, "Start weeks on Sunday")
	calCmd.Flags().Bool("no-header", false, "Omit the weekday header rows")

	rootCmd.AddCommand(calCmd)
}
