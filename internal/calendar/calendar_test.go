package calendar

import (
	"errors"
	"reflect"
	"testing"

	"github.com/salmonumbrella/journal-cli/internal/datefmt"
)

func TestDaysIn(t *testing.T) {
	tests := []struct {
		year, month, want int
	}{
		{2024, 2, 29}, // leap year
		{2023, 2, 28},
		{2000, 2, 29}, // divisible by 400
		{1900, 2, 28}, // divisible by 100 but not 400
		{2026, 1, 31},
		{2026, 4, 30},
		{2026, 12, 31},
	}
	for _, tt := range tests {
		if got := DaysIn(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysIn(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestMonthLayoutInvalidMonth(t *testing.T) {
	for _, month := range []int{0, 13, -1} {
		_, err := MonthLayout(2026, month)
		var invalidErr InvalidMonthError
		if !errors.As(err, &invalidErr) {
			t.Fatalf("MonthLayout(2026, %d): expected InvalidMonthError, got %v", month, err)
		}
		if invalidErr.Month != month {
			t.Fatalf("unexpected month in error: %d", invalidErr.Month)
		}
	}
}

func TestMonthLayoutInvariants(t *testing.T) {
	for year := 2019; year <= 2030; year++ {
		for month := 1; month <= 12; month++ {
			m, err := MonthLayout(year, month)
			if err != nil {
				t.Fatalf("MonthLayout(%d, %d): %v", year, month, err)
			}

			wantRows := (m.StartOffset + m.DayCount + 6) / 7
			if len(m.Weeks) != wantRows {
				t.Fatalf("%d-%02d: %d rows, want %d", year, month, len(m.Weeks), wantRows)
			}

			// Non-empty cells, read in order, must be exactly 1..DayCount.
			next := 1
			for wi, week := range m.Weeks {
				for ci, day := range week {
					idx := wi*7 + ci
					inMonth := idx >= m.StartOffset && idx < m.StartOffset+m.DayCount
					if inMonth {
						if day != next {
							t.Fatalf("%d-%02d row %d col %d: day %d, want %d", year, month, wi, ci, day, next)
						}
						next++
					} else if day != Empty {
						t.Fatalf("%d-%02d row %d col %d: expected padding, got %d", year, month, wi, ci, day)
					}
				}
			}
			if next != m.DayCount+1 {
				t.Fatalf("%d-%02d: covered %d days, want %d", year, month, next-1, m.DayCount)
			}
		}
	}
}

func TestMonthLayoutIdempotent(t *testing.T) {
	a, err := MonthLayout(2024, 2)
	if err != nil {
		t.Fatal(err)
	}
	b, err := MonthLayout(2024, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("repeated layout calls must return identical results")
	}
}

func TestMonthLayoutFebruaryLeap(t *testing.T) {
	// February 2024: 29 days, the 1st on a Thursday.
	m, err := MonthLayout(2024, 2)
	if err != nil {
		t.Fatal(err)
	}
	if m.DayCount != 29 {
		t.Fatalf("day count = %d, want 29", m.DayCount)
	}
	if m.StartOffset != 3 {
		t.Fatalf("start offset = %d, want 3 (Thursday)", m.StartOffset)
	}
	if len(m.Weeks) != 5 {
		t.Fatalf("rows = %d, want 5", len(m.Weeks))
	}
	if m.Weeks[0] != (Week{0, 0, 0, 1, 2, 3, 4}) {
		t.Fatalf("unexpected first week: %v", m.Weeks[0])
	}

	// February 2023: 28 days.
	m, err = MonthLayout(2023, 2)
	if err != nil {
		t.Fatal(err)
	}
	if m.DayCount != 28 {
		t.Fatalf("day count = %d, want 28", m.DayCount)
	}
}

func TestMonthLayoutMondayStart(t *testing.T) {
	// February 2021 started on a Monday and has 28 days: exactly four
	// full rows with no padding at either end.
	m, err := MonthLayout(2021, 2)
	if err != nil {
		t.Fatal(err)
	}
	if m.StartOffset != 0 {
		t.Fatalf("start offset = %d, want 0", m.StartOffset)
	}
	if len(m.Weeks) != 4 {
		t.Fatalf("rows = %d, want 4", len(m.Weeks))
	}
	if m.Weeks[0][0] != 1 || m.Weeks[3][6] != 28 {
		t.Fatalf("unexpected boundary cells: %v", m.Weeks)
	}
}

func TestMonthLayoutSundayEnd(t *testing.T) {
	// May 2026 ends on a Sunday: the last row is full, no trailing padding.
	m, err := MonthLayout(2026, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Weeks) != 5 {
		t.Fatalf("rows = %d, want 5", len(m.Weeks))
	}
	last := m.Weeks[len(m.Weeks)-1]
	if last[6] != 31 {
		t.Fatalf("last cell = %d, want 31", last[6])
	}
	for _, day := range last {
		if day == Empty {
			t.Fatal("last row must have no trailing padding")
		}
	}
}

func TestMonthLayoutSundayFirstOrder(t *testing.T) {
	// Under US columns, Thursday sits at index 4.
	m, err := MonthLayoutOrder(2024, 2, datefmt.USOrder)
	if err != nil {
		t.Fatal(err)
	}
	if m.StartOffset != 4 {
		t.Fatalf("start offset = %d, want 4", m.StartOffset)
	}
}

func TestFormatDayCell(t *testing.T) {
	tests := []struct {
		day  int
		want string
	}{
		{Empty, "      "},
		{1, "  1st "},
		{2, "  2nd "},
		{9, "  9th "},
		{10, " 10th "},
		{21, " 21st "},
		{31, " 31st "},
	}
	for _, tt := range tests {
		got := FormatDayCell(tt.day)
		if got != tt.want {
			t.Errorf("FormatDayCell(%d) = %q, want %q", tt.day, got, tt.want)
		}
		if len(got) != cellWidth {
			t.Errorf("FormatDayCell(%d) width = %d, want %d", tt.day, len(got), cellWidth)
		}
	}
}

func TestFormatWeekRow(t *testing.T) {
	row, err := FormatWeekRow([]int{1, 2, 3, 4, 5, 6, 7})
	if err != nil {
		t.Fatal(err)
	}
	want := "|  1st |  2nd |  3rd |  4th |  5th |  6th |  7th |"
	if row != want {
		t.Fatalf("row = %q, want %q", row, want)
	}

	row, err = FormatWeekRow([]int{Empty, Empty, Empty, 1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	want = "|      |      |      |  1st |  2nd |  3rd |  4th |"
	if row != want {
		t.Fatalf("row = %q, want %q", row, want)
	}
}

func TestFormatWeekRowLength(t *testing.T) {
	for _, cells := range [][]int{
		{1, 2, 3, 4, 5, 6},
		{1, 2, 3, 4, 5, 6, 7, 8},
		nil,
	} {
		_, err := FormatWeekRow(cells)
		var lengthErr RowLengthError
		if !errors.As(err, &lengthErr) {
			t.Fatalf("FormatWeekRow(len %d): expected RowLengthError, got %v", len(cells), err)
		}
		if lengthErr.Length != len(cells) {
			t.Fatalf("unexpected length in error: %d", lengthErr.Length)
		}
	}
}

func TestRows(t *testing.T) {
	m, err := MonthLayout(2021, 2)
	if err != nil {
		t.Fatal(err)
	}
	rows := m.Rows()
	if len(rows) != 4 {
		t.Fatalf("rows = %d, want 4", len(rows))
	}
	if rows[0] != "|  1st |  2nd |  3rd |  4th |  5th |  6th |  7th |" {
		t.Fatalf("unexpected first row: %q", rows[0])
	}
	if rows[3] != "| 22nd | 23rd | 24th | 25th | 26th | 27th | 28th |" {
		t.Fatalf("unexpected last row: %q", rows[3])
	}
}

func TestHeaderAndDelimiterRows(t *testing.T) {
	if got := HeaderRow(datefmt.WorldOrder); got != "|  Mon |  Tue |  Wed |  Thu |  Fri |  Sat |  Sun |" {
		t.Fatalf("unexpected header row: %q", got)
	}
	if got := HeaderRow(datefmt.USOrder); got != "|  Sun |  Mon |  Tue |  Wed |  Thu |  Fri |  Sat |" {
		t.Fatalf("unexpected US header row: %q", got)
	}
	if got := DelimiterRow(); got != "|------|------|------|------|------|------|------|" {
		t.Fatalf("unexpected delimiter row: %q", got)
	}
}
