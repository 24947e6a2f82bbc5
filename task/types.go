// Package task models recurring-task templates and the dated task instances
// generated from them for PE fund operations.
package task

import (
	"github.com/samber/mo"

	"github.com/lensnowovo/smart-pe-todo/recurrence"
)

// Priority of a task or template.
type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// ChecklistItem is one step of a task's checklist.
type ChecklistItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// DueRule maps an occurrence date to a task's due date: shift forward by
// OffsetMonths, then take the month end (UseMonthEnd) or clamp to DayOfMonth.
// When both are given, UseMonthEnd wins.
type DueRule struct {
	OffsetMonths int            `json:"offsetMonths"`
	DayOfMonth   mo.Option[int] `json:"dayOfMonth"`
	UseMonthEnd  bool           `json:"useMonthEnd"`
}

// Template is a recurring-task definition. Templates are read-only input to
// the generator; it never mutates one.
type Template struct {
	ID          string          `json:"id"`
	Name        string          `json:"name,omitempty"`
	Description string          `json:"description,omitempty"`
	Title       string          `json:"title"`
	Funds       []string        `json:"funds,omitempty"`
	LP          []string        `json:"lp,omitempty"`
	Portfolio   []string        `json:"portfolio,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	Checklist   []ChecklistItem `json:"checklist,omitempty"`
	Priority    Priority        `json:"priority,omitempty"`
	Recurrence  recurrence.Rule `json:"recurrence"`
	DueRule     DueRule         `json:"dueRule"`
	CreatedAt   string          `json:"createdAt,omitempty"`
}

// Instance is a materialized, dated task generated from one template
// occurrence. Instances are value objects; persistence and deduplication
// belong to the caller.
type Instance struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Funds          []string        `json:"funds"`
	LP             []string        `json:"lp"`
	Portfolio      []string        `json:"portfolio"`
	DueDate        string          `json:"dueDate"`
	Tags           []string        `json:"tags"`
	Checklist      []ChecklistItem `json:"checklist"`
	Completed      bool            `json:"completed"`
	Priority       Priority        `json:"priority"`
	CreatedAt      string          `json:"createdAt"`
	CreatedDate    string          `json:"createdDate"`
	CompletedDate  *string         `json:"completedDate"`
	Note           string          `json:"note"`
	NoteRefined    string          `json:"noteRefined"`
	GeneratedFrom  string          `json:"generatedFrom"`
	InstanceNumber int             `json:"instanceNumber"`
	RecurrenceDate string          `json:"recurrenceDate"`
}

// GenerationResult carries generated instances plus an explicit truncation
// flag so callers never have to compare lengths against the iteration cap.
type GenerationResult struct {
	Instances []Instance
	Truncated bool
}

func cloneStrings(src []string) []string {
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// cloneChecklist deep-copies checklist items with completion cleared.
// Generated instances start with no progress regardless of template state.
func cloneChecklist(src []ChecklistItem) []ChecklistItem {
	out := make([]ChecklistItem, 0, len(src))
	for _, item := range src {
		out = append(out, ChecklistItem{ID: item.ID, Text: item.Text, Done: false})
	}
	return out
}

func priorityOrDefault(p Priority) Priority {
	if p == "" {
		return PriorityNormal
	}
	return p
}
