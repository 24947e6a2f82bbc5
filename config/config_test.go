package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lensnowovo/smart-pe-todo/recurrence"
	"github.com/lensnowovo/smart-pe-todo/task"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("partial file backfills defaults", func(t *testing.T) {
		path := writeFile(t, "config.yaml", "dataFile: /tmp/ops.json\nhorizonMonths: 6\n")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "/tmp/ops.json", cfg.DataFile)
		assert.Equal(t, 6, cfg.HorizonMonths)
		assert.Equal(t, Default().MaxOccurrences, cfg.MaxOccurrences)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		path := writeFile(t, "config.yaml", "dataFile: [\n")
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestLoadTemplates(t *testing.T) {
	t.Run("missing file yields none", func(t *testing.T) {
		templates, err := LoadTemplates(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Empty(t, templates)
	})

	t.Run("full template", func(t *testing.T) {
		path := writeFile(t, "templates.yaml", `
templates:
  - id: user-mgmt-fee
    name: 管理费计提
    title: "{QUARTER}管理费计提"
    tags: [Fees]
    priority: high
    funds: [Fund III]
    checklist:
      - id: f1
        text: 计算管理费
    recurrence:
      frequency: quarterly
      dayOfQuarter: 15
      notifyDaysBefore: 7
    dueRule:
      offsetMonths: 1
      useMonthEnd: true
`)
		templates, err := LoadTemplates(path)
		require.NoError(t, err)
		require.Len(t, templates, 1)

		tmpl := templates[0]
		assert.Equal(t, "user-mgmt-fee", tmpl.ID)
		assert.Equal(t, task.PriorityHigh, tmpl.Priority)
		assert.Equal(t, recurrence.FreqQuarterly, tmpl.Recurrence.Frequency)
		assert.Equal(t, 15, tmpl.Recurrence.DayOfQuarter.OrElse(0))
		assert.False(t, tmpl.Recurrence.DayOfMonth.IsPresent())
		assert.Equal(t, 1, tmpl.DueRule.OffsetMonths)
		assert.True(t, tmpl.DueRule.UseMonthEnd)
		require.Len(t, tmpl.Checklist, 1)
		assert.Equal(t, "计算管理费", tmpl.Checklist[0].Text)
	})

	t.Run("missing priority defaults to normal", func(t *testing.T) {
		path := writeFile(t, "templates.yaml", `
templates:
  - id: user-x
    title: X
    recurrence:
      frequency: monthly
`)
		templates, err := LoadTemplates(path)
		require.NoError(t, err)
		require.Len(t, templates, 1)
		assert.Equal(t, task.PriorityNormal, templates[0].Priority)
	})

	t.Run("invalid rule rejected", func(t *testing.T) {
		path := writeFile(t, "templates.yaml", `
templates:
  - id: user-bad
    title: Bad
    recurrence:
      frequency: monthly
      interval: -2
`)
		_, err := LoadTemplates(path)
		assert.ErrorIs(t, err, recurrence.ErrInvalidInterval)
	})

	t.Run("missing id rejected", func(t *testing.T) {
		path := writeFile(t, "templates.yaml", "templates:\n  - title: NoID\n")
		_, err := LoadTemplates(path)
		assert.Error(t, err)
	})
}
