package task

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/lensnowovo/smart-pe-todo/recurrence"
)

// Generator turns recurring-task templates into dated task instances.
// It is stateless apart from its collaborators and safe for concurrent use.
type Generator struct {
	engine *recurrence.Engine
	logger *slog.Logger
	now    func() time.Time
}

// NewGenerator creates a generator with a default recurrence engine.
// A nil logger falls back to slog.Default.
func NewGenerator(logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		engine: recurrence.NewEngine(logger),
		logger: logger,
		now:    time.Now,
	}
}

// NewGeneratorWithEngine creates a generator around an existing engine so
// callers can share engine configuration (e.g. a custom iteration cap).
func NewGeneratorWithEngine(engine *recurrence.Engine, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{engine: engine, logger: logger, now: time.Now}
}

// Engine exposes the underlying occurrence calculators for reuse, e.g. a
// template editor previewing upcoming dates.
func (g *Generator) Engine() *recurrence.Engine {
	return g.engine
}

// alignedFrequency reports whether a frequency carries day alignment, which
// requires snapping the window start to the first matching date.
func alignedFrequency(f recurrence.Frequency) bool {
	switch f {
	case recurrence.FreqMonthly, recurrence.FreqQuarterly, recurrence.FreqYearly:
		return true
	}
	return false
}

// ComputeDueDate applies a due rule to an occurrence date: shift forward by
// OffsetMonths, then take the shifted month's end, or clamp to DayOfMonth,
// or keep the shifted date.
func ComputeDueDate(date time.Time, rule DueRule) time.Time {
	base := recurrence.StartOfDay(date)
	if rule.OffsetMonths > 0 {
		base = recurrence.AddMonths(base, rule.OffsetMonths)
	}
	if rule.UseMonthEnd {
		return recurrence.EndOfMonth(base)
	}
	if day, ok := rule.DayOfMonth.Get(); ok && day > 0 {
		return recurrence.ClampDay(base.Year(), base.Month(), day)
	}
	return base
}

// GenerateInstances produces the template's task instances for [start, end].
//
// Monthly, quarterly, and yearly templates are first aligned to their nearest
// matching date at or after start so the first in-range occurrence is not
// skipped, and a previous-period occurrence is back-filled when its due date
// lands inside the window (the window is defined by due date for that edge).
// When the rule sets notifyDaysBefore, only instances due within
// [start, start+notifyDaysBefore] are surfaced.
func (g *Generator) GenerateInstances(tmpl Template, start, end time.Time) (GenerationResult, error) {
	rule := tmpl.Recurrence
	if err := rule.Validate(); err != nil {
		return GenerationResult{}, fmt.Errorf("template %s: %w", tmpl.ID, err)
	}

	startDay := recurrence.StartOfDay(start)
	endDay := recurrence.StartOfDay(end)

	aligned := alignedFrequency(rule.Frequency)
	alignedStart := startDay
	if aligned {
		first, err := g.engine.FirstOccurrence(rule, startDay)
		if err != nil {
			return GenerationResult{}, err
		}
		alignedStart = first
	}

	exp, err := g.engine.GenerateOccurrences(rule, alignedStart, endDay, recurrence.ExpandOptions{
		IncludeFirst: aligned,
	})
	if err != nil {
		return GenerationResult{}, err
	}
	occurrences := exp.Dates

	// A task generated in a prior period can still be due inside the
	// requested window, e.g. a quarter-end occurrence with a one-quarter
	// due offset.
	if aligned {
		previous, err := g.engine.PreviousOccurrence(rule, alignedStart)
		if err == nil && previous.Before(alignedStart) {
			due := ComputeDueDate(previous, tmpl.DueRule)
			if !due.Before(startDay) && !due.After(endDay) {
				occurrences = append([]time.Time{previous}, occurrences...)
			}
		}
	}

	notifyWindow := rule.NotifyDaysBefore > 0
	windowEnd := startDay.AddDate(0, 0, rule.NotifyDaysBefore)

	now := g.now().UTC()
	createdAt := now.Format(time.RFC3339)
	createdDate := recurrence.FormatDate(recurrence.StartOfDay(now))

	result := GenerationResult{Truncated: exp.Truncated}
	for i, date := range occurrences {
		due := ComputeDueDate(date, tmpl.DueRule)
		if notifyWindow && (due.Before(startDay) || due.After(windowEnd)) {
			continue
		}
		result.Instances = append(result.Instances, Instance{
			ID:             fmt.Sprintf("%s-instance-%s", tmpl.ID, recurrence.FormatDate(date)),
			Title:          ExpandTitle(tmpl.Title, date, i+1),
			Funds:          cloneStrings(tmpl.Funds),
			LP:             cloneStrings(tmpl.LP),
			Portfolio:      cloneStrings(tmpl.Portfolio),
			DueDate:        recurrence.FormatDate(due),
			Tags:           cloneStrings(tmpl.Tags),
			Checklist:      cloneChecklist(tmpl.Checklist),
			Completed:      false,
			Priority:       priorityOrDefault(tmpl.Priority),
			CreatedAt:      createdAt,
			CreatedDate:    createdDate,
			CompletedDate:  nil,
			Note:           "",
			NoteRefined:    "",
			GeneratedFrom:  tmpl.ID,
			InstanceNumber: i + 1,
			RecurrenceDate: recurrence.FormatDate(date),
		})
	}
	return result, nil
}
