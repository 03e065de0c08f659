package schedule

import (
	"time"

	"github.com/google/uuid"
)

// Weekday numbers the days Monday=0 .. Sunday=6.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (d Weekday) Valid() bool { return d >= Monday && d <= Sunday }

func (d Weekday) String() string {
	if !d.Valid() {
		return "Unknown"
	}
	return weekdayNames[d]
}

// WeekdayOf converts Go's Sunday-first weekday to the Monday-first numbering.
func WeekdayOf(date time.Time) Weekday {
	return Weekday((int(date.Weekday()) + 6) % 7)
}

// WeeklyEntry is the regular opening hours of one weekday.
type WeeklyEntry struct {
	ID       uuid.UUID `json:"id"`
	HubID    uuid.UUID `json:"hub_id"`
	Weekday  Weekday   `json:"day_of_week"`
	Closed   bool      `json:"is_closed"`
	Interval Interval  `json:"hours"`
}

// Validate checks the weekday range and, for open days, the interval.
func (e WeeklyEntry) Validate() error {
	var errs ValidationErrors
	if !e.Weekday.Valid() {
		errs.add("day_of_week", "day of week must be between 0 (Monday) and 6 (Sunday)")
	}
	if err := e.Interval.Validate(e.Closed); err != nil {
		ve, _ := AsValidation(err)
		errs = append(errs, ve...)
	}
	return errs.err()
}

// IsOpenAt is false for closed entries regardless of t.
func (e WeeklyEntry) IsOpenAt(t Clock) bool {
	if e.Closed {
		return false
	}
	return e.Interval.Contains(t)
}

// WeeklyTable holds at most one entry per weekday.
type WeeklyTable struct {
	days [7]*WeeklyEntry
}

// NewWeeklyTable indexes entries by weekday. Entries with an invalid weekday are
// dropped; a later entry for the same weekday replaces an earlier one.
func NewWeeklyTable(entries []WeeklyEntry) WeeklyTable {
	var t WeeklyTable
	for i := range entries {
		e := entries[i]
		if !e.Weekday.Valid() {
			continue
		}
		t.days[e.Weekday] = &e
	}
	return t
}

func (t WeeklyTable) EntryFor(d Weekday) (WeeklyEntry, bool) {
	if !d.Valid() || t.days[d] == nil {
		return WeeklyEntry{}, false
	}
	return *t.days[d], true
}

func (t WeeklyTable) IsOpenAt(d Weekday, at Clock) bool {
	e, ok := t.EntryFor(d)
	if !ok {
		return false
	}
	return e.IsOpenAt(at)
}

// Week lists Monday..Sunday, with nil for unconfigured days.
func (t WeeklyTable) Week() []*WeeklyEntry {
	out := make([]*WeeklyEntry, 7)
	for i, e := range t.days {
		if e != nil {
			cp := *e
			out[i] = &cp
		}
	}
	return out
}
