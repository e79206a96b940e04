// Package period computes calendar interval boundaries for the finance and
// planning views. All boundaries follow the device's local calendar; weeks
// start on Monday.
package period

import (
	"errors"
	"math"
	"time"
)

// Kind represents the granularity over which sums and goals are computed
type Kind string

const (
	KindDay         Kind = "DAY"
	KindWeek        Kind = "WEEK"
	KindMonth       Kind = "MONTH"
	KindYear        Kind = "YEAR"
	KindCustomRange Kind = "CUSTOM"
)

// ErrMissingCustomRange indicates a CUSTOM period was requested without bounds
var ErrMissingCustomRange = errors.New("custom period requires from and to dates")

// ParseKind converts a raw string into a Kind
func ParseKind(raw string) (Kind, error) {
	switch Kind(raw) {
	case KindDay, KindWeek, KindMonth, KindYear, KindCustomRange:
		return Kind(raw), nil
	default:
		return "", errors.New("period must be DAY, WEEK, MONTH, YEAR or CUSTOM")
	}
}

// Interval is a closed-inclusive time range: Start <= t <= End.
// Start is always 00:00:00.000 of its day and End the last instant of its day.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the interval (closed-inclusive)
func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.Start) && !t.After(iv.End)
}

// CustomRange carries caller-supplied bounds for KindCustomRange
type CustomRange struct {
	From time.Time
	To   time.Time
}

// startOfDay returns ref truncated to 00:00:00.000 local time
func startOfDay(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
}

// endOfDay returns the last representable instant of ref's day
func endOfDay(ref time.Time) time.Time {
	return startOfDay(ref).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// DayBounds returns the interval covering ref's calendar day
func DayBounds(ref time.Time) Interval {
	return Interval{Start: startOfDay(ref), End: endOfDay(ref)}
}

// WeekBounds returns Monday 00:00:00.000 through Sunday end-of-day of the
// week containing ref. Go numbers Sunday as 0, so the Monday offset is
// (weekday+6) mod 7.
func WeekBounds(ref time.Time) Interval {
	offset := (int(ref.Weekday()) + 6) % 7
	monday := startOfDay(ref).AddDate(0, 0, -offset)
	return Interval{Start: monday, End: endOfDay(monday.AddDate(0, 0, 6))}
}

// MonthBounds returns the first through last calendar day of ref's month.
// The last day is day 0 of the following month.
func MonthBounds(ref time.Time) Interval {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	last := time.Date(ref.Year(), ref.Month()+1, 0, 0, 0, 0, 0, ref.Location())
	return Interval{Start: first, End: endOfDay(last)}
}

// YearBounds returns Jan 1 through Dec 31 of ref's year
func YearBounds(ref time.Time) Interval {
	first := time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, ref.Location())
	last := time.Date(ref.Year(), time.December, 31, 0, 0, 0, 0, ref.Location())
	return Interval{Start: first, End: endOfDay(last)}
}

// CustomBounds returns from's start-of-day through to's end-of-day.
// Bounds given in the wrong order are swapped, so the result always
// satisfies Start <= End.
func CustomBounds(from, to time.Time) Interval {
	if from.After(to) {
		from, to = to, from
	}
	return Interval{Start: startOfDay(from), End: endOfDay(to)}
}

// Resolve computes the interval for a period kind around a reference instant.
// KindCustomRange requires a non-nil custom range; every other kind never fails.
func Resolve(kind Kind, ref time.Time, custom *CustomRange) (Interval, error) {
	switch kind {
	case KindDay:
		return DayBounds(ref), nil
	case KindWeek:
		return WeekBounds(ref), nil
	case KindMonth:
		return MonthBounds(ref), nil
	case KindYear:
		return YearBounds(ref), nil
	case KindCustomRange:
		if custom == nil {
			return Interval{}, ErrMissingCustomRange
		}
		return CustomBounds(custom.From, custom.To), nil
	default:
		return Interval{}, errors.New("unknown period kind: " + string(kind))
	}
}

// DaysInMonth returns the number of calendar days in ref's month (28-31)
func DaysInMonth(ref time.Time) int {
	return time.Date(ref.Year(), ref.Month()+1, 0, 0, 0, 0, 0, ref.Location()).Day()
}

// DaysBetweenInclusive returns the inclusive calendar day count between two
// instants, floor-protected at 1 so downstream proration never divides by
// zero. Both instants are truncated to their day start first, so end-of-day
// bounds do not push the count over by one.
func DaysBetweenInclusive(a, b time.Time) int {
	days := int(math.Round(startOfDay(b).Sub(startOfDay(a)).Hours()/24)) + 1
	if days < 1 {
		return 1
	}
	return days
}
