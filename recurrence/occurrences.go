package recurrence

import (
	"fmt"
	"time"
)

// ExpandOptions controls windowed occurrence enumeration.
type ExpandOptions struct {
	// IncludeFirst includes the starting date itself in the output. By
	// default the start is treated as a window boundary, not an occurrence;
	// the instance generator sets this after confirming alignment.
	IncludeFirst bool
	// MaxOccurrences caps the iteration. Zero uses the engine default;
	// negative values are rejected.
	MaxOccurrences int
}

// Expansion is the result of a windowed enumeration.
type Expansion struct {
	Dates []time.Time
	// Truncated reports that the iteration cap stopped the enumeration
	// before the window or the rule's own bounds did. Callers should treat
	// a truncated result as "there may be more".
	Truncated bool
}

// GenerateOccurrences produces the ordered occurrence dates of a rule inside
// [start, end], both inclusive at day granularity. Enumeration stops at the
// window end, at the rule's endDate or count bound, or at the iteration cap.
func (e *Engine) GenerateOccurrences(rule Rule, start, end time.Time, opts ExpandOptions) (Expansion, error) {
	if err := rule.Validate(); err != nil {
		return Expansion{}, err
	}
	limit := opts.MaxOccurrences
	if limit == 0 {
		limit = e.config.MaxOccurrences
	}
	if limit <= 0 {
		return Expansion{}, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	startDay := StartOfDay(start)
	endDay := StartOfDay(end)

	var ruleEnd time.Time
	if rule.EndDate != "" {
		parsed, err := ParseDate(rule.EndDate)
		if err != nil {
			return Expansion{}, fmt.Errorf("end date: %w", err)
		}
		ruleEnd = parsed
		if ruleEnd.Before(startDay) {
			return Expansion{}, nil
		}
	}

	var exp Expansion
	current := startDay
	count := 0
	for !current.After(endDay) && count < limit {
		if !ruleEnd.IsZero() && current.After(ruleEnd) {
			return exp, nil
		}
		if rule.Count > 0 && count >= rule.Count {
			return exp, nil
		}
		if count > 0 || opts.IncludeFirst {
			exp.Dates = append(exp.Dates, current)
		}
		next, err := e.NextOccurrence(rule, current)
		if err != nil {
			return Expansion{}, err
		}
		if !next.After(current) {
			// A rule that never advances would otherwise spin until
			// the cap; stop here and report truncation.
			exp.Truncated = true
			return exp, nil
		}
		current = next
		count++
	}

	if count == limit && !current.After(endDay) {
		pastRuleEnd := !ruleEnd.IsZero() && current.After(ruleEnd)
		atCountBound := rule.Count > 0 && count >= rule.Count
		exp.Truncated = !pastRuleEnd && !atCountBound
	}
	return exp, nil
}
