package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lensnowovo/smart-pe-todo/store"
	"github.com/lensnowovo/smart-pe-todo/task"
)

func inst(id, title string) task.Instance {
	return task.Instance{ID: id, Title: title, Priority: task.PriorityNormal}
}

func TestStore_Tasks(t *testing.T) {
	s := New()

	created, err := s.CreateTasks([]task.Instance{inst("a", "一"), inst("b", "二")})
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	t.Run("newest batch first", func(t *testing.T) {
		created, err := s.CreateTasks([]task.Instance{inst("c", "三")})
		require.NoError(t, err)
		assert.Equal(t, 1, created)

		list, err := s.ListTasks()
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "c", list[0].ID)
	})

	t.Run("duplicates skipped", func(t *testing.T) {
		created, err := s.CreateTasks([]task.Instance{inst("a", "一"), inst("d", "四")})
		require.NoError(t, err)
		assert.Equal(t, 1, created)
	})

	t.Run("empty id rejected", func(t *testing.T) {
		_, err := s.CreateTasks([]task.Instance{{Title: "无ID"}})
		assert.ErrorIs(t, err, store.ErrInvalidInput)
	})

	t.Run("get and update", func(t *testing.T) {
		got, err := s.GetTask("b")
		require.NoError(t, err)
		assert.Equal(t, "二", got.Title)

		got.Completed = true
		require.NoError(t, s.UpdateTask(*got))
		again, err := s.GetTask("b")
		require.NoError(t, err)
		assert.True(t, again.Completed)
	})

	t.Run("get result is a copy", func(t *testing.T) {
		got, err := s.GetTask("a")
		require.NoError(t, err)
		got.Title = "mutated"
		again, err := s.GetTask("a")
		require.NoError(t, err)
		assert.Equal(t, "一", again.Title)
	})

	t.Run("missing task", func(t *testing.T) {
		_, err := s.GetTask("nope")
		assert.ErrorIs(t, err, store.ErrNotFound)
		assert.ErrorIs(t, s.UpdateTask(inst("nope", "x")), store.ErrNotFound)
		assert.ErrorIs(t, s.DeleteTask("nope"), store.ErrNotFound)
	})

	t.Run("bulk delete", func(t *testing.T) {
		removed, err := s.DeleteTasks([]string{"a", "c", "ghost"})
		require.NoError(t, err)
		assert.Equal(t, 2, removed)

		list, err := s.ListTasks()
		require.NoError(t, err)
		for _, got := range list {
			assert.NotContains(t, []string{"a", "c"}, got.ID)
		}
	})
}

func TestStore_Templates(t *testing.T) {
	s := New()
	tmpl := task.Template{ID: "t1", Name: "季度报告", Title: "{QUARTER}季度报告"}

	require.NoError(t, s.SaveTemplate(tmpl))

	got, err := s.GetTemplate("t1")
	require.NoError(t, err)
	assert.Equal(t, "季度报告", got.Name)

	tmpl.Name = "季度报告 v2"
	require.NoError(t, s.SaveTemplate(tmpl))
	list, err := s.ListTemplates()
	require.NoError(t, err)
	require.Len(t, list, 1) // save by id upserts
	assert.Equal(t, "季度报告 v2", list[0].Name)

	assert.ErrorIs(t, s.SaveTemplate(task.Template{}), store.ErrInvalidInput)

	require.NoError(t, s.DeleteTemplate("t1"))
	assert.ErrorIs(t, s.DeleteTemplate("t1"), store.ErrNotFound)
	_, err = s.GetTemplate("t1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
