package task

import (
	"testing"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lensnowovo/smart-pe-todo/recurrence"
)

func TestNextNotificationDate(t *testing.T) {
	g := testGenerator()

	t.Run("occurrence minus lead time", func(t *testing.T) {
		rule := recurrence.Rule{
			Frequency:        recurrence.FreqMonthly,
			DayOfMonth:       mo.Some(15),
			NotifyDaysBefore: 3,
		}
		at, ok, err := g.NextNotificationDate(rule, day(2026, time.May, 1))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, day(2026, time.May, 12), at)
	})

	t.Run("no lead time configured", func(t *testing.T) {
		_, ok, err := g.NextNotificationDate(recurrence.Rule{Frequency: recurrence.FreqMonthly}, day(2026, time.May, 1))
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestShouldGenerate(t *testing.T) {
	g := testGenerator()
	tmpl := Template{
		ID:    "tmpl-qr",
		Title: "{QUARTER}季度报告",
		Recurrence: recurrence.Rule{
			Frequency:        recurrence.FreqQuarterly,
			NotifyDaysBefore: 14,
		},
	}

	t.Run("inside lead window", func(t *testing.T) {
		dec, err := g.ShouldGenerate(tmpl, day(2026, time.March, 20))
		require.NoError(t, err)
		assert.True(t, dec.ShouldGenerate)
		assert.Equal(t, "2026-03-31", dec.DueDate)
		assert.Equal(t, "2026-03-17", dec.NotificationDate)
	})

	t.Run("before lead window", func(t *testing.T) {
		dec, err := g.ShouldGenerate(tmpl, day(2026, time.March, 10))
		require.NoError(t, err)
		assert.False(t, dec.ShouldGenerate)
		assert.Equal(t, "2026-03-17", dec.NextNotification)
	})

	t.Run("no notification configured", func(t *testing.T) {
		plain := tmpl
		plain.Recurrence.NotifyDaysBefore = 0
		dec, err := g.ShouldGenerate(plain, day(2026, time.March, 20))
		require.NoError(t, err)
		assert.False(t, dec.ShouldGenerate)
		assert.Equal(t, "no notification configured", dec.Reason)
	})
}
