package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/samber/mo"
	"gopkg.in/yaml.v3"

	"github.com/lensnowovo/smart-pe-todo/recurrence"
	"github.com/lensnowovo/smart-pe-todo/task"
)

// The YAML template schema is declared separately from the task types so
// optional integers can use plain pointers in user-facing files.

type templateFile struct {
	Templates []templateYAML `yaml:"templates"`
}

type templateYAML struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Title       string          `yaml:"title"`
	Funds       []string        `yaml:"funds"`
	LP          []string        `yaml:"lp"`
	Portfolio   []string        `yaml:"portfolio"`
	Tags        []string        `yaml:"tags"`
	Priority    string          `yaml:"priority"`
	Checklist   []checklistYAML `yaml:"checklist"`
	Recurrence  ruleYAML        `yaml:"recurrence"`
	DueRule     dueRuleYAML     `yaml:"dueRule"`
}

type checklistYAML struct {
	ID   string `yaml:"id"`
	Text string `yaml:"text"`
}

type ruleYAML struct {
	Frequency        string `yaml:"frequency"`
	Interval         int    `yaml:"interval"`
	AnchorDate       string `yaml:"anchorDate"`
	DayOfMonth       *int   `yaml:"dayOfMonth"`
	DayOfQuarter     *int   `yaml:"dayOfQuarter"`
	NotifyDaysBefore int    `yaml:"notifyDaysBefore"`
	EndDate          string `yaml:"endDate"`
	Count            int    `yaml:"count"`
	CustomPattern    string `yaml:"customPattern"`
}

type dueRuleYAML struct {
	OffsetMonths int  `yaml:"offsetMonths"`
	DayOfMonth   *int `yaml:"dayOfMonth"`
	UseMonthEnd  bool `yaml:"useMonthEnd"`
}

// LoadTemplates reads user-authored templates from a YAML file. A missing
// file yields no templates; malformed files and invalid rules are errors.
func LoadTemplates(path string) ([]task.Template, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}

	var file templateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse templates %s: %w", path, err)
	}

	templates := make([]task.Template, 0, len(file.Templates))
	for i, raw := range file.Templates {
		tmpl, err := raw.toTemplate()
		if err != nil {
			return nil, fmt.Errorf("template %d (%s): %w", i, raw.ID, err)
		}
		templates = append(templates, tmpl)
	}
	return templates, nil
}

func (t templateYAML) toTemplate() (task.Template, error) {
	if t.ID == "" {
		return task.Template{}, errors.New("missing id")
	}
	if t.Title == "" {
		return task.Template{}, errors.New("missing title")
	}

	rule := recurrence.Rule{
		Frequency:        recurrence.Frequency(t.Recurrence.Frequency),
		Interval:         t.Recurrence.Interval,
		AnchorDate:       t.Recurrence.AnchorDate,
		DayOfMonth:       optionFromPtr(t.Recurrence.DayOfMonth),
		DayOfQuarter:     optionFromPtr(t.Recurrence.DayOfQuarter),
		NotifyDaysBefore: t.Recurrence.NotifyDaysBefore,
		EndDate:          t.Recurrence.EndDate,
		Count:            t.Recurrence.Count,
		CustomPattern:    t.Recurrence.CustomPattern,
	}
	if err := rule.Validate(); err != nil {
		return task.Template{}, err
	}

	checklist := make([]task.ChecklistItem, 0, len(t.Checklist))
	for _, item := range t.Checklist {
		checklist = append(checklist, task.ChecklistItem{ID: item.ID, Text: item.Text})
	}

	priority := task.Priority(t.Priority)
	if priority == "" {
		priority = task.PriorityNormal
	}

	return task.Template{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Title:       t.Title,
		Funds:       t.Funds,
		LP:          t.LP,
		Portfolio:   t.Portfolio,
		Tags:        t.Tags,
		Checklist:   checklist,
		Priority:    priority,
		Recurrence:  rule,
		DueRule: task.DueRule{
			OffsetMonths: t.DueRule.OffsetMonths,
			DayOfMonth:   optionFromPtr(t.DueRule.DayOfMonth),
			UseMonthEnd:  t.DueRule.UseMonthEnd,
		},
	}, nil
}

func optionFromPtr(p *int) mo.Option[int] {
	if p == nil {
		return mo.None[int]()
	}
	return mo.Some(*p)
}
