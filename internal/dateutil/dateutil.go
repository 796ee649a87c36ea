// Package dateutil provides calendar-day normalization and the
// Friday-anchored week windowing used by every analytics view.
package dateutil

import (
	"fmt"
	"time"
)

// DayFormat is the layout for calendar-day strings.
const DayFormat = "2006-01-02"

// Normalize strips the time of day, producing a midnight value that
// compares equal for any two timestamps on the same calendar day. The
// year/month/day are taken in t's own location; the result is always
// fixed to UTC so values from mixed locations still compare.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysIntoWeek returns day's position in a week that starts on Friday:
// 0 for Friday through 6 for Thursday.
func DaysIntoWeek(day time.Time) int {
	return (int(day.Weekday()) + 2) % 7
}

// StartOfWeek returns the most recent Friday on or before day,
// normalized to midnight.
func StartOfWeek(day time.Time) time.Time {
	n := Normalize(day)
	return n.AddDate(0, 0, -DaysIntoWeek(n))
}

// MonthDay formats day as "D/M", the fragment used in rolling-month
// window labels.
func MonthDay(day time.Time) string {
	return fmt.Sprintf("%d/%d", day.Day(), int(day.Month()))
}
