package datefmt

import (
	"testing"
	"time"
)

func TestOrdinalSuffix(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "st"},
		{2, "nd"},
		{3, "rd"},
		{4, "th"},
		{10, "th"},
		{11, "th"},
		{12, "th"},
		{13, "th"},
		{21, "st"},
		{22, "nd"},
		{23, "rd"},
		{31, "st"},
		{101, "st"},
		{111, "th"},
		{112, "th"},
		{113, "th"},
		{121, "st"},
	}
	for _, tt := range tests {
		if got := OrdinalSuffix(tt.n); got != tt.want {
			t.Errorf("OrdinalSuffix(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestOrdinalSuffixTeensInEveryHundred(t *testing.T) {
	for _, n := range []int{11, 12, 13, 211, 312, 413, 1011} {
		if got := OrdinalSuffix(n); got != "th" {
			t.Errorf("OrdinalSuffix(%d) = %q, want \"th\"", n, got)
		}
	}
}

func TestDayWithSuffix(t *testing.T) {
	if got := DayWithSuffix(21); got != "21st" {
		t.Fatalf("DayWithSuffix(21) = %q, want \"21st\"", got)
	}
	if got := DayWithSuffix(2); got != "2nd" {
		t.Fatalf("DayWithSuffix(2) = %q, want \"2nd\"", got)
	}
}

func TestEntryDate(t *testing.T) {
	d := time.Date(2026, time.February, 21, 0, 0, 0, 0, time.UTC)
	if got := EntryDate(d); got != "Saturday, February 21st, 2026" {
		t.Fatalf("unexpected entry date: %q", got)
	}

	d = time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
	if got := EntryDate(d); got != "Thursday, January 2nd, 2025" {
		t.Fatalf("unexpected entry date: %q", got)
	}
}

func TestParseDate(t *testing.T) {
	for _, s := range []string{
		"2026-02-21",
		"02/21/2026",
		"February 21, 2026",
		"Feb 21, 2026",
		"21 February 2026",
	} {
		parsed, err := ParseDate(s)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", s, err)
		}
		if parsed.Year() != 2026 || parsed.Month() != time.February || parsed.Day() != 21 {
			t.Fatalf("ParseDate(%q) = %v", s, parsed)
		}
	}

	if _, err := ParseDate("not-a-date"); err == nil {
		t.Fatal("expected parse error")
	}
}
