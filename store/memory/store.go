// Package memory provides an in-memory Store implementation, useful for
// tests and template previews.
package memory

import (
	"fmt"
	"sync"

	"github.com/lensnowovo/smart-pe-todo/store"
	"github.com/lensnowovo/smart-pe-todo/task"
)

// Store keeps tasks and templates in memory. Safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	tasks     []task.Instance
	templates []task.Template
}

var _ store.Store = (*Store)(nil)

// New creates an empty in-memory store.
func New() *Store {
	return &Store{}
}

func (s *Store) ListTasks() ([]task.Instance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]task.Instance, len(s.tasks))
	copy(out, s.tasks)
	return out, nil
}

func (s *Store) GetTask(id string) (*task.Instance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			t := s.tasks[i]
			return &t, nil
		}
	}
	return nil, fmt.Errorf("task %s: %w", id, store.ErrNotFound)
}

func (s *Store) CreateTasks(tasks []task.Instance) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := make(map[string]struct{}, len(s.tasks))
	for _, t := range s.tasks {
		existing[t.ID] = struct{}{}
	}

	var fresh []task.Instance
	for _, t := range tasks {
		if t.ID == "" {
			return 0, fmt.Errorf("task without id: %w", store.ErrInvalidInput)
		}
		if _, dup := existing[t.ID]; dup {
			continue
		}
		existing[t.ID] = struct{}{}
		fresh = append(fresh, t)
	}
	// Newest tasks go first, matching the app's inbox ordering.
	s.tasks = append(fresh, s.tasks...)
	return len(fresh), nil
}

func (s *Store) UpdateTask(t task.Instance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == t.ID {
			s.tasks[i] = t
			return nil
		}
	}
	return fmt.Errorf("task %s: %w", t.ID, store.ErrNotFound)
}

func (s *Store) DeleteTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("task %s: %w", id, store.ErrNotFound)
}

func (s *Store) DeleteTasks(ids []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	kept := s.tasks[:0]
	removed := 0
	for _, t := range s.tasks {
		if _, ok := drop[t.ID]; ok {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept
	return removed, nil
}

func (s *Store) ListTemplates() ([]task.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]task.Template, len(s.templates))
	copy(out, s.templates)
	return out, nil
}

func (s *Store) GetTemplate(id string) (*task.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.templates {
		if s.templates[i].ID == id {
			t := s.templates[i]
			return &t, nil
		}
	}
	return nil, fmt.Errorf("template %s: %w", id, store.ErrNotFound)
}

func (s *Store) SaveTemplate(t task.Template) error {
	if t.ID == "" {
		return fmt.Errorf("template without id: %w", store.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.templates {
		if s.templates[i].ID == t.ID {
			s.templates[i] = t
			return nil
		}
	}
	s.templates = append(s.templates, t)
	return nil
}

func (s *Store) DeleteTemplate(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.templates {
		if s.templates[i].ID == id {
			s.templates = append(s.templates[:i], s.templates[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("template %s: %w", id, store.ErrNotFound)
}
