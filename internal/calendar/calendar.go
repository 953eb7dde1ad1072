// Package calendar lays a month out as a week grid and renders it as the
// rows of a markdown table.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/salmonumbrella/journal-cli/internal/datefmt"
)

// Empty marks a grid slot that falls outside the month: padding before
// day 1 or after the last day.
const Empty = 0

const daysPerWeek = 7

// cellWidth is the rendered width of every cell: four columns of
// right-justified content with a one-space margin on each side.
const cellWidth = 6

const cellFmt = " %4s "

// InvalidMonthError reports a month number outside 1-12.
type InvalidMonthError struct {
	Month int
}

func (e InvalidMonthError) Error() string {
	return fmt.Sprintf("invalid month %d (expected 1-12)", e.Month)
}

// RowLengthError reports a week row built with the wrong number of cells.
// It signals a bug in the caller, not bad user input.
type RowLengthError struct {
	Length int
}

func (e RowLengthError) Error() string {
	return fmt.Sprintf("week row requires exactly %d cells, got %d", daysPerWeek, e.Length)
}

// Week is one row of the grid: seven day numbers, Empty where the slot
// falls outside the month.
type Week [daysPerWeek]int

// Month is the computed grid for one calendar month. It is built fresh
// per query and never mutated afterwards.
type Month struct {
	Year     int
	Month    int
	DayCount int
	// StartOffset is the column of day 1, i.e. the number of leading
	// Empty cells in the first week.
	StartOffset int
	Weeks       []Week
}

// DaysIn returns the number of days in a month, leap years included.
func DaysIn(year, month int) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthLayout computes the week grid for a month with weeks starting on
// Monday.
func MonthLayout(year, month int) (*Month, error) {
	return MonthLayoutOrder(year, month, datefmt.WorldOrder)
}

// MonthLayoutOrder computes the week grid with a custom column order, for
// Sunday-first calendars.
func MonthLayoutOrder(year, month int, order datefmt.WeekOrder) (*Month, error) {
	if month < 1 || month > 12 {
		return nil, InvalidMonthError{Month: month}
	}

	dayCount := DaysIn(year, month)
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	offset := order.Index(datefmt.FromTime(first.Weekday()))

	m := &Month{
		Year:        year,
		Month:       month,
		DayCount:    dayCount,
		StartOffset: offset,
	}

	var week Week
	col := offset
	for day := 1; day <= dayCount; day++ {
		week[col] = day
		col++
		if col == daysPerWeek {
			m.Weeks = append(m.Weeks, week)
			week = Week{}
			col = 0
		}
	}
	if col != 0 {
		m.Weeks = append(m.Weeks, week)
	}

	return m, nil
}

// FormatDayCell renders one cell: the day with its ordinal suffix
// right-justified, or a blank cell of the same width for Empty. Every
// cell renders to exactly cellWidth characters so the table aligns.
func FormatDayCell(day int) string {
	if day == Empty {
		return strings.Repeat(" ", cellWidth)
	}
	return fmt.Sprintf(cellFmt, datefmt.DayWithSuffix(day))
}

// FormatWeekRow renders seven cells joined and bounded by "|". A row of
// any other length fails fast with RowLengthError.
func FormatWeekRow(cells []int) (string, error) {
	if len(cells) != daysPerWeek {
		return "", RowLengthError{Length: len(cells)}
	}
	parts := make([]string, daysPerWeek)
	for i, day := range cells {
		parts[i] = FormatDayCell(day)
	}
	return "|" + strings.Join(parts, "|") + "|", nil
}

// Rows renders each week of the month as a markdown table row, in order.
func (m *Month) Rows() []string {
	rows := make([]string, 0, len(m.Weeks))
	for _, week := range m.Weeks {
		// Weeks are always seven cells by construction.
		row, _ := FormatWeekRow(week[:])
		rows = append(rows, row)
	}
	return rows
}

// HeaderRow renders the weekday-name header row in the given column order.
func HeaderRow(order datefmt.WeekOrder) string {
	parts := make([]string, daysPerWeek)
	for i, wd := range order {
		parts[i] = fmt.Sprintf(cellFmt, wd.Short())
	}
	return "|" + strings.Join(parts, "|") + "|"
}

// DelimiterRow renders the markdown header delimiter at the same cell
// width as the day rows.
func DelimiterRow() string {
	parts := make([]string, daysPerWeek)
	for i := range parts {
		parts[i] = strings.Repeat("-", cellWidth)
	}
	return "|" + strings.Join(parts, "|") + "|"
}
