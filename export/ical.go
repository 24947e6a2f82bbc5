// Package export renders generated task instances for external tooling:
// iCalendar for calendar clients and XML for fund-administration reports.
package export

import (
	"io"
	"strings"
	"time"

	"github.com/emersion/go-ical"

	"github.com/lensnowovo/smart-pe-todo/task"
)

const prodID = "-//smart-pe-todo//PE Fund Ops//EN"

// iCalendar DATE values use the compact form without dashes.
const icalDateLayout = "20060102"
const icalDateTimeLayout = "20060102T150405Z"

// ICalendar builds a VCALENDAR with one VTODO per task instance. Due dates
// are emitted as date-only values (VALUE=DATE) since the engine has no
// time-of-day semantics.
func ICalendar(instances []task.Instance) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropProductID, prodID)
	cal.Props.SetText(ical.PropVersion, "2.0")

	stamp := time.Now().UTC().Format(icalDateTimeLayout)

	for _, inst := range instances {
		todo := ical.NewComponent(ical.CompToDo)
		todo.Props.SetText(ical.PropUID, inst.ID)
		todo.Props.SetText(ical.PropSummary, inst.Title)

		dtstamp := ical.NewProp(ical.PropDateTimeStamp)
		dtstamp.Value = stamp
		todo.Props.Set(dtstamp)

		if inst.DueDate != "" {
			due := ical.NewProp(ical.PropDue)
			due.Params.Set(ical.ParamValue, "DATE")
			due.Value = strings.ReplaceAll(inst.DueDate, "-", "")
			todo.Props.Set(due)
		}
		if len(inst.Tags) > 0 {
			todo.Props.SetText(ical.PropCategories, strings.Join(inst.Tags, ","))
		}
		if inst.Priority == task.PriorityHigh {
			todo.Props.SetText(ical.PropPriority, "1")
		}
		if inst.Completed {
			todo.Props.SetText(ical.PropStatus, "COMPLETED")
		} else {
			todo.Props.SetText(ical.PropStatus, "NEEDS-ACTION")
		}

		cal.Children = append(cal.Children, todo)
	}
	return cal
}

// WriteICS encodes the instances as an iCalendar stream.
func WriteICS(w io.Writer, instances []task.Instance) error {
	return ical.NewEncoder(w).Encode(ICalendar(instances))
}
