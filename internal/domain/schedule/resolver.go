package schedule

import "time"

// Source names the tier that decided an availability answer.
type Source string

const (
	SourceOverride   Source = "override"
	SourceSpecialDay Source = "special_day"
	SourceRecurring  Source = "recurring_special_day"
	SourceRegular    Source = "regular_hours"
	SourceNone       Source = "none"
)

const (
	ReasonNoHours      = "no hours configured"
	ReasonClosedToday  = "closed today"
	ReasonRegularHours = "regular hours"
	ReasonOutsideHours = "outside business hours"
)

// Status is the answer to "is the hub open at this instant, and why".
type Status struct {
	IsOpen bool
	Reason string
	Source Source
}

// dayRule is the schedule that applies to one calendar date after walking the
// priority tiers.
type dayRule struct {
	source Source
	label  string
	entry  WeeklyEntry
}

// exceptionRule turns an override or special day into a rule. Entries that are
// neither closed nor fully timed do not decide anything.
func exceptionRule(src Source, label string, closed bool, hours Interval, timed bool) (dayRule, bool) {
	switch {
	case closed:
		return dayRule{source: src, label: label, entry: WeeklyEntry{Closed: true}}, true
	case timed:
		return dayRule{source: src, label: label, entry: WeeklyEntry{Interval: hours}}, true
	default:
		return dayRule{}, false
	}
}

func ruleFor(cal *Calendar, week WeeklyTable, date time.Time) dayRule {
	if cal != nil {
		if o, ok := cal.FindOverride(date); ok {
			hours, timed := o.Hours()
			if r, ok := exceptionRule(SourceOverride, o.Reason, o.Closed, hours, timed); ok {
				return r
			}
		}
		if s, ok := cal.FindExactSpecial(date); ok {
			hours, timed := s.Hours()
			if r, ok := exceptionRule(SourceSpecialDay, s.Name, s.Closed, hours, timed); ok {
				return r
			}
		}
		if s, ok := cal.FindRecurringSpecial(date); ok {
			hours, timed := s.Hours()
			if r, ok := exceptionRule(SourceRecurring, s.Name, s.Closed, hours, timed); ok {
				return r
			}
		}
	}

	weekday := WeekdayOf(date)
	if e, ok := week.EntryFor(weekday); ok {
		return dayRule{source: SourceRegular, entry: e}
	}
	return dayRule{source: SourceNone, entry: WeeklyEntry{Weekday: weekday, Closed: true}}
}

// Resolve applies, in order: override, exact special day, recurring special
// day, regular weekly hours. The first tier that is closed or fully timed wins.
// date and at must already be expressed in the hub's timezone.
func Resolve(cal *Calendar, week WeeklyTable, date time.Time, at Clock) Status {
	r := ruleFor(cal, week, date)

	switch r.source {
	case SourceNone:
		return Status{IsOpen: false, Reason: ReasonNoHours, Source: SourceNone}
	case SourceRegular:
		switch {
		case r.entry.Closed:
			return Status{IsOpen: false, Reason: ReasonClosedToday, Source: SourceRegular}
		case r.entry.IsOpenAt(at):
			return Status{IsOpen: true, Reason: ReasonRegularHours, Source: SourceRegular}
		default:
			return Status{IsOpen: false, Reason: ReasonOutsideHours, Source: SourceRegular}
		}
	default:
		return Status{IsOpen: r.entry.IsOpenAt(at), Reason: r.label, Source: r.source}
	}
}

// EffectiveEntry returns the hours that apply on date. ok is false when no
// tier configures the day at all.
func EffectiveEntry(cal *Calendar, week WeeklyTable, date time.Time) (WeeklyEntry, Source, bool) {
	r := ruleFor(cal, week, date)
	if r.source == SourceNone {
		return WeeklyEntry{}, SourceNone, false
	}
	e := r.entry
	e.Weekday = WeekdayOf(date)
	return e, r.source, true
}

// SlotsForDate generates slots from the effective hours of date.
func SlotsForDate(cal *Calendar, week WeeklyTable, date time.Time, strideMinutes int) ([]Clock, Source) {
	e, src, ok := EffectiveEntry(cal, week, date)
	if !ok {
		return []Clock{}, src
	}
	return GenerateSlots(e, strideMinutes), src
}

// DashboardOpen is the summary check shown on the dashboard. It layers the
// day's sources from lowest to highest priority, each one overwriting the
// previous answer only when it is closed or fully timed.
func DashboardOpen(cal *Calendar, week WeeklyTable, date time.Time, at Clock) bool {
	open := week.IsOpenAt(WeekdayOf(date), at)
	if cal == nil {
		return open
	}

	layer := func(closed bool, hours Interval, timed bool) {
		if closed {
			open = false
		} else if timed {
			open = hours.Open <= at && at < hours.Close
		}
	}

	if s, ok := cal.FindRecurringSpecial(date); ok {
		hours, timed := s.Hours()
		layer(s.Closed, hours, timed)
	}
	if s, ok := cal.FindExactSpecial(date); ok {
		hours, timed := s.Hours()
		layer(s.Closed, hours, timed)
	}
	if o, ok := cal.FindOverride(date); ok {
		hours, timed := o.Hours()
		layer(o.Closed, hours, timed)
	}
	return open
}
