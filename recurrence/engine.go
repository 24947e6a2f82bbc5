package recurrence

import (
	"log/slog"
	"time"
)

// Engine computes next/previous/first occurrences and enumerates occurrence
// windows. It holds no mutable state and may be shared across goroutines.
type Engine struct {
	config EngineConfig
	logger *slog.Logger
}

// NewEngine creates an engine with default configuration.
func NewEngine(logger *slog.Logger) *Engine {
	return NewEngineWithConfig(DefaultEngineConfig, logger)
}

// NewEngineWithConfig creates an engine with custom configuration.
// A nil logger falls back to slog.Default.
func NewEngineWithConfig(config EngineConfig, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if config.MaxOccurrences <= 0 {
		config.MaxOccurrences = DefaultEngineConfig.MaxOccurrences
	}
	return &Engine{config: config, logger: logger}
}

// NextOccurrence returns the smallest date strictly after ref on which the
// rule fires.
func (e *Engine) NextOccurrence(rule Rule, ref time.Time) (time.Time, error) {
	if err := rule.Validate(); err != nil {
		return time.Time{}, err
	}
	ref = StartOfDay(ref)
	anchor, err := rule.anchor()
	if err != nil {
		return time.Time{}, err
	}

	switch rule.Frequency {
	case FreqDaily:
		return ref.AddDate(0, 0, rule.step()), nil

	case FreqWeekly:
		return ref.AddDate(0, 0, rule.step()*7), nil

	case FreqMonthly:
		day := rule.monthlyDay(anchor)
		candidate := ClampDay(ref.Year(), ref.Month(), day)
		if candidate.After(ref) {
			return candidate, nil
		}
		next := AddMonths(ref, rule.step())
		return ClampDay(next.Year(), next.Month(), day), nil

	case FreqQuarterly:
		if a, ok := anchor.Get(); ok {
			day := a.Day()
			qs := StartOfQuarter(ref)
			candidate := ClampDay(qs.Year(), qs.Month(), day)
			if candidate.After(ref) {
				return candidate, nil
			}
			nqs := StartOfQuarter(AddMonths(ref, 3*rule.step()))
			return ClampDay(nqs.Year(), nqs.Month(), day), nil
		}
		return e.nextQuarterTarget(rule, ref), nil

	case FreqYearly:
		if a, ok := anchor.Get(); ok {
			candidate := ClampDay(ref.Year(), a.Month(), a.Day())
			if candidate.After(ref) {
				return candidate, nil
			}
			return ClampDay(ref.Year()+rule.step(), a.Month(), a.Day()), nil
		}
		return AddYears(ref, rule.step()), nil

	case FreqCustom:
		if rule.CustomPattern != "" {
			if next, ok := e.nextCustom(rule.CustomPattern, ref); ok {
				return next, nil
			}
		} else {
			e.logger.Warn("custom rule without pattern, falling back to monthly step")
		}
		return AddMonths(ref, 1), nil

	default:
		e.logger.Warn("unsupported frequency, falling back to monthly step",
			"frequency", string(rule.Frequency))
		return AddMonths(ref, 1), nil
	}
}

// nextQuarterTarget resolves the anchorless quarterly target strictly after
// ref: the quarter end by default, or DayOfQuarter within the quarter-end
// month, capped at the quarter end.
func (e *Engine) nextQuarterTarget(rule Rule, ref time.Time) time.Time {
	end := NextQuarterEnd(ref)
	for {
		target := end.Date
		if day, ok := rule.DayOfQuarter.Get(); ok {
			t := ClampDay(end.Date.Year(), end.Date.Month(), day)
			if !t.After(end.Date) {
				target = t
			}
		}
		if target.After(ref) {
			return target
		}
		end = NextQuarterEnd(end.Date)
	}
}

// PreviousOccurrence returns the rule's occurrence one interval before ref.
// Only monthly, quarterly, and yearly rules support backward stepping; it
// exists for the instance generator's back-fill alignment.
func (e *Engine) PreviousOccurrence(rule Rule, ref time.Time) (time.Time, error) {
	if err := rule.Validate(); err != nil {
		return time.Time{}, err
	}
	ref = StartOfDay(ref)
	anchor, err := rule.anchor()
	if err != nil {
		return time.Time{}, err
	}

	switch rule.Frequency {
	case FreqMonthly:
		day := rule.monthlyDay(anchor)
		prev := AddMonths(ref, -rule.step())
		return ClampDay(prev.Year(), prev.Month(), day), nil

	case FreqQuarterly:
		if a, ok := anchor.Get(); ok {
			pqs := StartOfQuarter(AddMonths(ref, -3*rule.step()))
			return ClampDay(pqs.Year(), pqs.Month(), a.Day()), nil
		}
		prevEnd := StartOfQuarter(ref).AddDate(0, 0, -1)
		if day, ok := rule.DayOfQuarter.Get(); ok {
			target := ClampDay(prevEnd.Year(), prevEnd.Month(), day)
			if !target.After(prevEnd) {
				return target, nil
			}
		}
		return prevEnd, nil

	case FreqYearly:
		prev := AddYears(ref, -rule.step())
		if a, ok := anchor.Get(); ok {
			return ClampDay(prev.Year(), a.Month(), a.Day()), nil
		}
		return prev, nil

	default:
		return time.Time{}, ErrUnsupportedFrequency
	}
}

// FirstOccurrence is the inclusive variant of NextOccurrence: it returns ref
// itself when ref already matches the rule's day alignment. Frequencies
// without day alignment (daily, weekly, custom) return ref unchanged.
func (e *Engine) FirstOccurrence(rule Rule, ref time.Time) (time.Time, error) {
	if err := rule.Validate(); err != nil {
		return time.Time{}, err
	}
	ref = StartOfDay(ref)
	anchor, err := rule.anchor()
	if err != nil {
		return time.Time{}, err
	}

	switch rule.Frequency {
	case FreqMonthly:
		day := rule.monthlyDay(anchor)
		candidate := ClampDay(ref.Year(), ref.Month(), day)
		if !candidate.Before(ref) {
			return candidate, nil
		}
		next := AddMonths(ref, rule.step())
		return ClampDay(next.Year(), next.Month(), day), nil

	case FreqQuarterly:
		if a, ok := anchor.Get(); ok {
			day := a.Day()
			qs := StartOfQuarter(ref)
			candidate := ClampDay(qs.Year(), qs.Month(), day)
			if !candidate.Before(ref) {
				return candidate, nil
			}
			nqs := StartOfQuarter(AddMonths(ref, 3*rule.step()))
			return ClampDay(nqs.Year(), nqs.Month(), day), nil
		}
		return e.firstQuarterTarget(rule, ref), nil

	case FreqYearly:
		if a, ok := anchor.Get(); ok {
			candidate := ClampDay(ref.Year(), a.Month(), a.Day())
			if !candidate.Before(ref) {
				return candidate, nil
			}
			return ClampDay(ref.Year()+rule.step(), a.Month(), a.Day()), nil
		}
		return AddYears(ref, rule.step()), nil

	default:
		return ref, nil
	}
}

// firstQuarterTarget resolves the anchorless quarterly target at or after
// ref: the current quarter's end (or DayOfQuarter within its last month),
// falling to the next quarter when the day target has already passed.
func (e *Engine) firstQuarterTarget(rule Rule, ref time.Time) time.Time {
	quarterEnd := QuarterEndDate(ref.Year(), QuarterOf(ref))
	if day, ok := rule.DayOfQuarter.Get(); ok {
		target := ClampDay(quarterEnd.Year(), quarterEnd.Month(), day)
		if !target.After(quarterEnd) && !target.Before(ref) {
			return target
		}
		nextEnd := NextQuarterEnd(quarterEnd)
		return ClampDay(nextEnd.Date.Year(), nextEnd.Date.Month(), day)
	}
	if !quarterEnd.Before(ref) {
		return quarterEnd
	}
	return NextQuarterEnd(quarterEnd).Date
}
