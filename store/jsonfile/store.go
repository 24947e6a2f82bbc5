// Package jsonfile persists tasks and templates as a single JSON document on
// disk, mirroring the desktop app's local storage format.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/lensnowovo/smart-pe-todo/store"
	"github.com/lensnowovo/smart-pe-todo/task"
)

// document is the on-disk shape.
type document struct {
	Tasks     []task.Instance `json:"tasks"`
	Templates []task.Template `json:"templates"`
}

// Store reads and writes a JSON data file. Writes go through a temp file and
// rename so a crash never leaves a half-written document. Safe for
// concurrent use within one process; the file is not locked across
// processes.
type Store struct {
	path   string
	logger *slog.Logger

	mu  sync.Mutex
	doc *document // lazily loaded
}

var _ store.Store = (*Store)(nil)

// New creates a store backed by the JSON file at path. The file is created
// on first write. A nil logger falls back to slog.Default.
func New(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{path: path, logger: logger}
}

// load reads the document from disk once; a missing file yields an empty
// document.
func (s *Store) load() (*document, error) {
	if s.doc != nil {
		return s.doc, nil
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.doc = &document{}
		return s.doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse data file %s: %w", s.path, err)
	}
	s.doc = &doc
	return s.doc, nil
}

func (s *Store) save(doc *document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode data file: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".petodo-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace data file: %w", err)
	}
	s.doc = doc
	return nil
}

func (s *Store) ListTasks() ([]task.Instance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]task.Instance, len(doc.Tasks))
	copy(out, doc.Tasks)
	return out, nil
}

func (s *Store) GetTask(id string) (*task.Instance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range doc.Tasks {
		if doc.Tasks[i].ID == id {
			t := doc.Tasks[i]
			return &t, nil
		}
	}
	return nil, fmt.Errorf("task %s: %w", id, store.ErrNotFound)
}

func (s *Store) CreateTasks(tasks []task.Instance) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return 0, err
	}

	existing := make(map[string]struct{}, len(doc.Tasks))
	for _, t := range doc.Tasks {
		existing[t.ID] = struct{}{}
	}

	var fresh []task.Instance
	for _, t := range tasks {
		if t.ID == "" {
			return 0, fmt.Errorf("task without id: %w", store.ErrInvalidInput)
		}
		if _, dup := existing[t.ID]; dup {
			s.logger.Debug("skipping duplicate task", "id", t.ID)
			continue
		}
		existing[t.ID] = struct{}{}
		fresh = append(fresh, t)
	}
	if len(fresh) == 0 {
		return 0, nil
	}

	next := &document{
		Tasks:     append(fresh, doc.Tasks...),
		Templates: doc.Templates,
	}
	if err := s.save(next); err != nil {
		return 0, err
	}
	return len(fresh), nil
}

func (s *Store) UpdateTask(t task.Instance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return err
	}
	for i := range doc.Tasks {
		if doc.Tasks[i].ID == t.ID {
			doc.Tasks[i] = t
			return s.save(doc)
		}
	}
	return fmt.Errorf("task %s: %w", t.ID, store.ErrNotFound)
}

func (s *Store) DeleteTask(id string) error {
	n, err := s.DeleteTasks([]string{id})
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("task %s: %w", id, store.ErrNotFound)
	}
	return nil
}

func (s *Store) DeleteTasks(ids []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return 0, err
	}
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	var kept []task.Instance
	removed := 0
	for _, t := range doc.Tasks {
		if _, ok := drop[t.ID]; ok {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	if removed == 0 {
		return 0, nil
	}
	if err := s.save(&document{Tasks: kept, Templates: doc.Templates}); err != nil {
		return 0, err
	}
	return removed, nil
}

func (s *Store) ListTemplates() ([]task.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]task.Template, len(doc.Templates))
	copy(out, doc.Templates)
	return out, nil
}

func (s *Store) GetTemplate(id string) (*task.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range doc.Templates {
		if doc.Templates[i].ID == id {
			t := doc.Templates[i]
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
	doc, err := s.load()
	if err != nil {
		return err
	}
	for i := range doc.Templates {
		if doc.Templates[i].ID == t.ID {
			doc.Templates[i] = t
			return s.save(doc)
		}
	}
	doc.Templates = append(doc.Templates, t)
	return s.save(doc)
}

func (s *Store) DeleteTemplate(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return err
	}
	for i := range doc.Templates {
		if doc.Templates[i].ID == id {
			doc.Templates = append(doc.Templates[:i], doc.Templates[i+1:]...)
			return s.save(doc)
		}
	}
	return fmt.Errorf("template %s: %w", id, store.ErrNotFound)
}
