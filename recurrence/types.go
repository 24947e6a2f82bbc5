package recurrence

import (
	"fmt"
	"time"

	"github.com/samber/mo"
)

// Frequency identifies how often a rule fires.
type Frequency string

const (
	FreqDaily     Frequency = "daily"
	FreqWeekly    Frequency = "weekly"
	FreqMonthly   Frequency = "monthly"
	FreqQuarterly Frequency = "quarterly"
	FreqYearly    Frequency = "yearly"
	FreqCustom    Frequency = "custom"
)

// Rule describes how often and on what calendar anchor a task repeats.
// The JSON shape matches the app's stored template data.
type Rule struct {
	Frequency Frequency `json:"frequency"`
	// Interval is the step between occurrences in frequency units.
	// Zero is treated as 1; negative values are rejected.
	Interval int `json:"interval,omitempty"`
	// AnchorDate is an optional YYYY-MM-DD date whose day-of-month (and,
	// for yearly rules, month-and-day) defines the rule's day alignment.
	AnchorDate string `json:"anchorDate,omitempty"`
	// DayOfMonth is the fallback day alignment for monthly rules when no
	// anchor is set. Absent means day 15.
	DayOfMonth mo.Option[int] `json:"dayOfMonth"`
	// DayOfQuarter is the fallback day within the quarter-end month for
	// quarterly rules when no anchor is set. Absent means quarter end.
	DayOfQuarter mo.Option[int] `json:"dayOfQuarter"`
	// NotifyDaysBefore limits surfaced instances to those due within this
	// many days of the generation window's start. Zero disables the filter.
	NotifyDaysBefore int `json:"notifyDaysBefore,omitempty"`
	// EndDate is an optional YYYY-MM-DD cutoff past which the rule no
	// longer fires.
	EndDate string `json:"endDate,omitempty"`
	// Count is an optional cap on total occurrences. Zero means unbounded.
	Count int `json:"count,omitempty"`
	// CustomPattern is a simplified weekly by-weekday RRULE, e.g.
	// "FREQ=WEEKLY;BYDAY=MO,WE,FR". Used only when Frequency is custom.
	CustomPattern string `json:"customPattern,omitempty"`
}

// Validate fails fast on malformed rules. Recurrence math compounds small
// misreadings into far-future date drift, so nothing is silently coerced.
func (r Rule) Validate() error {
	if r.Interval < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidInterval, r.Interval)
	}
	if _, err := r.anchor(); err != nil {
		return err
	}
	if r.EndDate != "" {
		if _, err := ParseDate(r.EndDate); err != nil {
			return fmt.Errorf("end date: %w", err)
		}
	}
	return nil
}

// step returns the rule's interval, treating the zero value as 1.
func (r Rule) step() int {
	if r.Interval <= 0 {
		return 1
	}
	return r.Interval
}

// anchor parses the rule's anchor date, if any.
func (r Rule) anchor() (mo.Option[time.Time], error) {
	if r.AnchorDate == "" {
		return mo.None[time.Time](), nil
	}
	t, err := ParseDate(r.AnchorDate)
	if err != nil {
		return mo.None[time.Time](), fmt.Errorf("anchor date: %w", err)
	}
	return mo.Some(StartOfDay(t)), nil
}

// monthlyDay resolves the day-of-month alignment for monthly rules:
// anchor day if set, else DayOfMonth, else 15.
func (r Rule) monthlyDay(anchor mo.Option[time.Time]) int {
	if a, ok := anchor.Get(); ok {
		return a.Day()
	}
	return r.DayOfMonth.OrElse(15)
}
