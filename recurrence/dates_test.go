package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-03-31")
	require.NoError(t, err)
	assert.Equal(t, date(2026, time.March, 31), got)

	_, err = ParseDate("31/03/2026")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseDate("")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 28, DaysInMonth(2026, time.February))
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 30, DaysInMonth(2026, time.June))
	assert.Equal(t, 31, DaysInMonth(2026, time.December))
}

func TestClampDay(t *testing.T) {
	assert.Equal(t, date(2026, time.June, 30), ClampDay(2026, time.June, 31))
	assert.Equal(t, date(2026, time.February, 28), ClampDay(2026, time.February, 31))
	assert.Equal(t, date(2024, time.February, 29), ClampDay(2024, time.February, 31))
	assert.Equal(t, date(2026, time.March, 15), ClampDay(2026, time.March, 15))
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{"plain shift", date(2026, time.March, 10), 2, date(2026, time.May, 10)},
		{"clamps into february", date(2026, time.January, 31), 1, date(2026, time.February, 28)},
		{"clamps into leap february", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"clamps 31 into 30-day month", date(2026, time.January, 31), 3, date(2026, time.April, 30)},
		{"backward shift clamps", date(2026, time.March, 31), -1, date(2026, time.February, 28)},
		{"crosses year boundary", date(2026, time.November, 15), 3, date(2027, time.February, 15)},
		{"backward across year boundary", date(2026, time.January, 15), -2, date(2025, time.November, 15)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonths(tt.start, tt.months))
		})
	}
}

func TestAddYears(t *testing.T) {
	assert.Equal(t, date(2026, time.February, 28), AddYears(date(2024, time.February, 29), 2))
	assert.Equal(t, date(2028, time.February, 29), AddYears(date(2024, time.February, 29), 4))
	assert.Equal(t, date(2027, time.June, 30), AddYears(date(2026, time.June, 30), 1))
}

func TestQuarterHelpers(t *testing.T) {
	assert.Equal(t, 1, QuarterOf(date(2026, time.March, 31)))
	assert.Equal(t, 3, QuarterOf(date(2026, time.July, 1)))
	assert.Equal(t, date(2026, time.July, 1), StartOfQuarter(date(2026, time.September, 30)))
	assert.Equal(t, date(2026, time.June, 30), QuarterEndDate(2026, 2))
	assert.Equal(t, date(2026, time.December, 31), QuarterEndDate(2026, 4))
}

func TestNextQuarterEnd(t *testing.T) {
	tests := []struct {
		name    string
		ref     time.Time
		quarter int
		want    time.Time
	}{
		{"start of year", date(2026, time.January, 1), 1, date(2026, time.March, 31)},
		{"on quarter end rolls forward", date(2026, time.March, 31), 2, date(2026, time.June, 30)},
		{"mid q3", date(2026, time.August, 10), 3, date(2026, time.September, 30)},
		{"after q4 wraps to next year", date(2026, time.December, 31), 1, date(2027, time.March, 31)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextQuarterEnd(tt.ref)
			assert.Equal(t, tt.want, got.Date)
			assert.Equal(t, tt.quarter, got.Quarter)
		})
	}
}

func TestQuarterEndsForYear(t *testing.T) {
	ends := QuarterEndsForYear(2026)
	require.Len(t, ends, 4)
	assert.Equal(t, date(2026, time.March, 31), ends[0].Date)
	assert.Equal(t, date(2026, time.June, 30), ends[1].Date)
	assert.Equal(t, date(2026, time.September, 30), ends[2].Date)
	assert.Equal(t, date(2026, time.December, 31), ends[3].Date)
}
