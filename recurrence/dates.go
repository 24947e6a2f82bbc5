package recurrence

import (
	"fmt"
	"time"
)

// DateLayout is the ISO date format used throughout the app's stored data.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a midnight-UTC time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// FormatDate renders a time as a YYYY-MM-DD string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// StartOfDay truncates a time to midnight UTC, dropping any time-of-day part.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the following month normalizes to this month's last day.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampDay returns the given day-of-month in (year, month), clamped to the
// month's actual last day. Clamping is load-bearing for quarter ends
// (Jun 30, Sep 30) and for rules anchored on day 29/30/31.
func ClampDay(year int, month time.Month, day int) time.Time {
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// EndOfMonth returns the last day of t's month.
func EndOfMonth(t time.Time) time.Time {
	return ClampDay(t.Year(), t.Month(), 31)
}

// AddMonths shifts t by the given number of months, clamping the day to the
// target month's length (Jan 31 + 1 month = Feb 28/29). This differs from
// time.Time.AddDate, which would normalize the overflow into March.
func AddMonths(t time.Time, months int) time.Time {
	total := t.Year()*12 + int(t.Month()) - 1 + months
	year := total / 12
	month := total % 12
	if month < 0 {
		month += 12
		year--
	}
	return ClampDay(year, time.Month(month+1), t.Day())
}

// AddYears shifts t by whole years, clamping Feb 29 to Feb 28 in non-leap
// target years.
func AddYears(t time.Time, years int) time.Time {
	return ClampDay(t.Year()+years, t.Month(), t.Day())
}

// QuarterOf returns the 1-based calendar quarter of t.
func QuarterOf(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

// StartOfQuarter returns the first day of t's quarter.
func StartOfQuarter(t time.Time) time.Time {
	month := time.Month((QuarterOf(t)-1)*3 + 1)
	return time.Date(t.Year(), month, 1, 0, 0, 0, 0, time.UTC)
}

// QuarterEndDate returns the last day of the given quarter of a year.
func QuarterEndDate(year, quarter int) time.Time {
	return ClampDay(year, time.Month(quarter*3), 31)
}

// QuarterEnd pairs a quarter number with its end date.
type QuarterEnd struct {
	Quarter int
	Date    time.Time
}

// NextQuarterEnd returns the first quarter end strictly after ref.
func NextQuarterEnd(ref time.Time) QuarterEnd {
	ref = StartOfDay(ref)
	for q := 1; q <= 4; q++ {
		end := QuarterEndDate(ref.Year(), q)
		if end.After(ref) {
			return QuarterEnd{Quarter: q, Date: end}
		}
	}
	return QuarterEnd{Quarter: 1, Date: QuarterEndDate(ref.Year()+1, 1)}
}

// QuarterEndsForYear returns the four quarter ends of a year in order.
func QuarterEndsForYear(year int) []QuarterEnd {
	ends := make([]QuarterEnd, 0, 4)
	for q := 1; q <= 4; q++ {
		ends = append(ends, QuarterEnd{Quarter: q, Date: QuarterEndDate(year, q)})
	}
	return ends
}
