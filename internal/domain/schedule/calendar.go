package schedule

import (
	"sort"
	"time"
)

// Calendar answers exception lookups over already-loaded, live records of a
// single hub.
type Calendar struct {
	specials  []SpecialDay
	overrides []Override
}

// NewCalendar copies and orders the records so every lookup is deterministic:
// specials by date ascending, overrides by OverridePrecedes.
func NewCalendar(specials []SpecialDay, overrides []Override) *Calendar {
	c := &Calendar{
		specials:  append([]SpecialDay(nil), specials...),
		overrides: append([]Override(nil), overrides...),
	}
	sort.SliceStable(c.specials, func(i, j int) bool {
		return DateOf(c.specials[i].Date).Before(DateOf(c.specials[j].Date))
	})
	sort.SliceStable(c.overrides, func(i, j int) bool {
		return OverridePrecedes(c.overrides[i], c.overrides[j])
	})
	return c
}

// OverridePrecedes orders overlapping overrides: the latest start date wins,
// then the most recently created, then the greater id.
func OverridePrecedes(a, b Override) bool {
	as, bs := DateOf(a.StartDate), DateOf(b.StartDate)
	if !as.Equal(bs) {
		return as.After(bs)
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID.String() > b.ID.String()
}

func (c *Calendar) FindOverride(date time.Time) (*Override, bool) {
	for i := range c.overrides {
		if c.overrides[i].Covers(date) {
			o := c.overrides[i]
			return &o, true
		}
	}
	return nil, false
}

func (c *Calendar) FindExactSpecial(date time.Time) (*SpecialDay, bool) {
	d := DateOf(date)
	for i := range c.specials {
		if DateOf(c.specials[i].Date).Equal(d) {
			s := c.specials[i]
			return &s, true
		}
	}
	return nil, false
}

// FindRecurringSpecial returns the earliest-dated yearly entry on the same
// month and day as date.
func (c *Calendar) FindRecurringSpecial(date time.Time) (*SpecialDay, bool) {
	for i := range c.specials {
		if c.specials[i].MatchesRecurring(date) {
			s := c.specials[i]
			return &s, true
		}
	}
	return nil, false
}

// UpcomingSpecials lists entries dated on or after from. limit <= 0 means no cap.
func (c *Calendar) UpcomingSpecials(from time.Time, limit int) []SpecialDay {
	d := DateOf(from)
	out := []SpecialDay{}
	for _, s := range c.specials {
		if DateOf(s.Date).Before(d) {
			continue
		}
		out = append(out, s)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
