package datefmt

import (
	"fmt"
	"time"
)

// Weekday is a day of the week indexed Monday-first (Monday = 0, Sunday = 6),
// matching ISO 8601 week numbering.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [7]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// String returns the full English name of the weekday.
func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// Short returns the three-letter name of the weekday ("Mon", "Tue", ...).
func (d Weekday) Short() string {
	if d < Monday || d > Sunday {
		return "???"
	}
	return weekdayNames[d][:3]
}

// WeekOrder is a fixed ordering of the seven weekdays, used to lay out
// calendar columns.
type WeekOrder [7]Weekday

var (
	// WorldOrder starts the week on Monday (ISO 8601).
	WorldOrder = WeekOrder{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
	// USOrder starts the week on Sunday.
	USOrder = WeekOrder{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
)

// Index returns the column position of d within the order, or -1 if d is
// out of range.
func (o WeekOrder) Index(d Weekday) int {
	for i, wd := range o {
		if wd == d {
			return i
		}
	}
	return -1
}

// FromTime converts Go's Sunday-first time.Weekday to Monday-first
// indexing. This is the single normalization point between the two
// conventions; everything downstream works Monday-first.
func FromTime(wd time.Weekday) Weekday {
	return Weekday((int(wd) + 6) % 7)
}
