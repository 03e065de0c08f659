// Package calendar renders a hub's exceptions as an iCalendar feed so staff
// can subscribe to holidays and special hours from any calendar client.
package calendar

import (
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/BruksfildServices01/hub-schedules/internal/domain/schedule"
)

const (
	productID = "-//hub-schedules//schedule exceptions//EN"
	uidDomain = "hub-schedules"

	CategoryClosed   = "CLOSED"
	CategoryHours    = "SPECIAL_HOURS"
	CategoryNoteOnly = "NOTE"
)

// Export builds the feed. Timed entries are anchored in loc; closed and
// untimed entries become all-day events.
func Export(
	name string,
	specials []schedule.SpecialDay,
	overrides []schedule.Override,
	loc *time.Location,
	stamp time.Time,
) string {

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)
	if name != "" {
		cal.SetXWRCalName(name)
	}

	for _, s := range specials {
		ev := cal.AddEvent(fmt.Sprintf("special-%s@%s", s.ID, uidDomain))
		ev.SetDtStampTime(stamp)
		ev.SetSummary(s.Name)
		if s.Notes != "" {
			ev.SetDescription(s.Notes)
		}

		hours, timed := s.Hours()
		setSpan(ev, s.Date, s.Date, hours, timed && !s.Closed, loc)
		ev.SetProperty(ics.ComponentPropertyCategories, category(s.Closed, timed))

		if s.RecurringYearly {
			ev.AddRrule("FREQ=YEARLY")
		}
	}

	for _, o := range overrides {
		ev := cal.AddEvent(fmt.Sprintf("override-%s@%s", o.ID, uidDomain))
		ev.SetDtStampTime(stamp)
		ev.SetSummary(o.Reason)

		hours, timed := o.Hours()
		timed = timed && !o.Closed
		setSpan(ev, o.StartDate, o.EndDate, hours, timed, loc)
		ev.SetProperty(ics.ComponentPropertyCategories, category(o.Closed, timed))

		if timed {
			// One timed occurrence per day of the range.
			days := int(o.EndDate.Sub(o.StartDate).Hours()/24) + 1
			if days > 1 {
				ev.AddRrule(fmt.Sprintf("FREQ=DAILY;COUNT=%d", days))
			}
		}
	}

	return cal.Serialize()
}

func setSpan(ev *ics.VEvent, first, last time.Time, hours schedule.Interval, timed bool, loc *time.Location) {
	if timed {
		day := time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, loc)
		ev.SetStartAt(hours.Open.On(day))
		ev.SetEndAt(hours.Close.On(day))
		return
	}
	ev.SetAllDayStartAt(first)
	// DTEND of an all-day event is exclusive.
	ev.SetAllDayEndAt(last.AddDate(0, 0, 1))
}

func category(closed, timed bool) string {
	switch {
	case closed:
		return CategoryClosed
	case timed:
		return CategoryHours
	default:
		return CategoryNoteOnly
	}
}

// Filename is a safe attachment name for a hub feed.
func Filename(name string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, strings.TrimSpace(name))
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "schedule"
	}
	return slug + ".ics"
}
