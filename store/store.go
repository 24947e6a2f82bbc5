// Package store defines persistence for generated task instances and
// recurring-task templates. Implementations must be safe for concurrent use.
package store

import (
	"errors"

	"github.com/lensnowovo/smart-pe-todo/task"
)

var (
	// ErrNotFound is returned when a requested resource doesn't exist.
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when creating a resource whose ID is taken.
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrInvalidInput is returned when the input parameters are invalid.
	ErrInvalidInput = errors.New("invalid input parameters")
)

// Store connects the task manager with a backing store. Please use the error
// values provided.
type Store interface {
	// ListTasks returns all persisted tasks, newest first.
	ListTasks() ([]task.Instance, error)
	// GetTask finds a task by ID.
	GetTask(id string) (*task.Instance, error)
	// CreateTasks inserts the given tasks, skipping any whose ID is already
	// present. Instance IDs are deterministic per (template, occurrence
	// date), so re-running generation over an overlapping window is
	// idempotent. Returns the number actually inserted.
	CreateTasks(tasks []task.Instance) (int, error)
	// UpdateTask replaces an existing task.
	UpdateTask(t task.Instance) error
	// DeleteTask removes a task by ID.
	DeleteTask(id string) error
	// DeleteTasks removes the given IDs, returning how many were removed.
	DeleteTasks(ids []string) (int, error)

	// ListTemplates returns all stored templates.
	ListTemplates() ([]task.Template, error)
	// GetTemplate finds a template by ID.
	GetTemplate(id string) (*task.Template, error)
	// SaveTemplate creates or replaces a template.
	SaveTemplate(t task.Template) error
	// DeleteTemplate removes a template by ID.
	DeleteTemplate(id string) error
}
