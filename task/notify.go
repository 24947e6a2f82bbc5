package task

import (
	"time"

	"github.com/lensnowovo/smart-pe-todo/recurrence"
)

// Decision reports whether a template is due for instance generation at a
// given reference date.
type Decision struct {
	ShouldGenerate bool
	Reason         string
	// DueDate and NotificationDate are set when generation is due.
	DueDate          string
	NotificationDate string
	// NextNotification is set when generation is not yet due but a
	// notification is scheduled.
	NextNotification string
}

// NextNotificationDate returns the date on which the rule's next occurrence
// should start being surfaced: the occurrence minus notifyDaysBefore.
// ok is false when the rule has no notification lead time configured.
func (g *Generator) NextNotificationDate(rule recurrence.Rule, ref time.Time) (time.Time, bool, error) {
	if rule.NotifyDaysBefore <= 0 {
		return time.Time{}, false, nil
	}
	next, err := g.engine.NextOccurrence(rule, ref)
	if err != nil {
		return time.Time{}, false, err
	}
	return next.AddDate(0, 0, -rule.NotifyDaysBefore), true, nil
}

// ShouldGenerate decides whether the template's next occurrence has entered
// its notification lead window as of ref.
func (g *Generator) ShouldGenerate(tmpl Template, ref time.Time) (Decision, error) {
	notifyAt, ok, err := g.NextNotificationDate(tmpl.Recurrence, ref)
	if err != nil {
		return Decision{}, err
	}
	if !ok {
		return Decision{Reason: "no notification configured"}, nil
	}

	today := recurrence.StartOfDay(ref)
	notifyDay := recurrence.StartOfDay(notifyAt)

	if !today.Before(notifyDay) {
		next, err := g.engine.NextOccurrence(tmpl.Recurrence, ref)
		if err != nil {
			return Decision{}, err
		}
		return Decision{
			ShouldGenerate:   true,
			DueDate:          recurrence.FormatDate(next),
			NotificationDate: recurrence.FormatDate(notifyDay),
		}, nil
	}

	return Decision{
		Reason:           "not yet time to generate",
		NextNotification: recurrence.FormatDate(notifyDay),
	}, nil
}
