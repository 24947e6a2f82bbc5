package recurrence

import (
	"time"

	"github.com/teambition/rrule-go"
)

// nextCustom resolves a custom weekly by-weekday pattern such as
// "FREQ=WEEKLY;BYDAY=MO,WE,FR" to the nearest listed weekday strictly after
// ref. Patterns that fail to parse, or that request anything other than a
// weekly cadence, report ok=false so the caller can apply the documented
// monthly fallback; the degradation is logged because the pattern comes from
// user-authored templates.
func (e *Engine) nextCustom(pattern string, ref time.Time) (time.Time, bool) {
	opt, err := rrule.StrToROption(pattern)
	if err != nil {
		e.logger.Warn("unparseable custom pattern, falling back to monthly step",
			"pattern", pattern, "error", err)
		return time.Time{}, false
	}
	if opt.Freq != rrule.WEEKLY {
		e.logger.Warn("custom pattern frequency not supported, falling back to monthly step",
			"pattern", pattern)
		return time.Time{}, false
	}

	opt.Dtstart = ref
	rule, err := rrule.NewRRule(*opt)
	if err != nil {
		e.logger.Warn("invalid custom pattern, falling back to monthly step",
			"pattern", pattern, "error", err)
		return time.Time{}, false
	}

	next := rule.After(ref, false)
	if next.IsZero() {
		e.logger.Warn("custom pattern yields no further occurrences, falling back to monthly step",
			"pattern", pattern)
		return time.Time{}, false
	}
	return StartOfDay(next), true
}
