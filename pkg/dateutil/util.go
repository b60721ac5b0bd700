package dateutil

import (
	"fmt"
	"time"
)

// AllTimePeriod is the ledger period key of rows which are not bound to any
// calendar period, e.g. standalone bonus points.
const AllTimePeriod = "0/0"

// MonthPeriod returns the ledger period key of the calendar month containing t.
func MonthPeriod(t time.Time) string {
	return fmt.Sprintf("%d/%d", int(t.Month()), t.Year())
}

func BeginningOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// BeginningOfWeek returns midnight of the Monday starting the ISO week
// containing t.
func BeginningOfWeek(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	return BeginningOfDay(t).AddDate(0, 0, -daysSinceMonday)
}

func BeginningOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func NextHour(t time.Time) time.Time {
	return t.Truncate(time.Hour).Add(time.Hour)
}

func NextDay(t time.Time) time.Time {
	return BeginningOfDay(t).AddDate(0, 0, 1)
}

func NextWeek(t time.Time) time.Time {
	return BeginningOfWeek(t).AddDate(0, 0, 7)
}

func LastWeek(t time.Time) time.Time {
	return t.AddDate(0, 0, -7)
}

func LastMonth(t time.Time) time.Time {
	return t.AddDate(0, -1, 0)
}

// SameISOWeek reports whether a and b fall into the same ISO calendar week.
func SameISOWeek(a, b time.Time) bool {
	ay, aw := a.ISOWeek()
	by, bw := b.ISOWeek()
	return ay == by && aw == bw
}

// IsPreviousISOWeek reports whether prev falls into the ISO calendar week
// immediately before the one containing cur. Week boundaries are calendar
// based, not a rolling 7-day window.
func IsPreviousISOWeek(prev, cur time.Time) bool {
	return SameISOWeek(prev, BeginningOfWeek(cur).AddDate(0, 0, -7))
}
