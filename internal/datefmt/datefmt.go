// Package datefmt formats journal dates: ordinal day suffixes, the entry
// date string used in headers, and the weekday vocabulary used by
// calendar rendering.
package datefmt

import (
	"fmt"
	"time"
)

// OrdinalSuffix returns the ordinal indicator for a number: the "st" on
// "1st", the "nd" on "2nd", the "rd" on "3rd". The teens take "th" in
// every hundred (11th, 111th, 212th).
func OrdinalSuffix(n int) string {
	if r := n % 100; r >= 11 && r <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// DayWithSuffix formats a day of the month as "1st", "22nd", "31st".
func DayWithSuffix(day int) string {
	return fmt.Sprintf("%d%s", day, OrdinalSuffix(day))
}

// EntryDate formats a date the way entry headers spell it,
// e.g. "Saturday, February 21st, 2026".
func EntryDate(t time.Time) string {
	return fmt.Sprintf("%s, %s %s, %d", t.Weekday(), t.Month(), DayWithSuffix(t.Day()), t.Year())
}

// ParseDate parses a date string in various formats and returns a time.Time.
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		"2006-01-02",
		"01/02/2006",
		"January 2, 2006",
		"Jan 2, 2006",
		"2 January 2006",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s (try YYYY-MM-DD format)", dateStr)
}
