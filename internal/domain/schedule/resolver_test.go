package schedule

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func weekdayTable() WeeklyTable {
	var entries []WeeklyEntry
	for d := Monday; d <= Friday; d++ {
		entries = append(entries, WeeklyEntry{
			Weekday: d,
			Interval: Interval{
				Open: MustClock("09:00"), Close: MustClock("18:00"),
				BreakStart: ClockPtr("13:00"), BreakEnd: ClockPtr("14:00"),
			},
		})
	}
	entries = append(entries, WeeklyEntry{Weekday: Sunday, Closed: true})
	return NewWeeklyTable(entries)
}

func christmas() SpecialDay {
	return SpecialDay{ID: uuid.New(), Date: date(2026, 12, 25), Name: "Christmas", Closed: true, RecurringYearly: true}
}

func TestCalendarLookups(t *testing.T) {
	eve := SpecialDay{ID: uuid.New(), Date: date(2026, 12, 24), Name: "Christmas Eve", OpenTime: ClockPtr("09:00"), CloseTime: ClockPtr("14:00")}
	newYear := SpecialDay{ID: uuid.New(), Date: date(2027, 1, 1), Name: "New Year", Closed: true}
	summer := Override{ID: uuid.New(), StartDate: date(2026, 7, 1), EndDate: date(2026, 8, 31), Reason: "Summer hours"}

	cal := NewCalendar([]SpecialDay{newYear, christmas(), eve}, []Override{summer})

	o, ok := cal.FindOverride(date(2026, 7, 1))
	require.True(t, ok)
	assert.Equal(t, "Summer hours", o.Reason)
	_, ok = cal.FindOverride(date(2026, 8, 31))
	assert.True(t, ok, "end date is inclusive")
	_, ok = cal.FindOverride(date(2026, 9, 1))
	assert.False(t, ok)

	s, ok := cal.FindExactSpecial(time.Date(2026, 12, 24, 11, 30, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, "Christmas Eve", s.Name)

	upcoming := cal.UpcomingSpecials(date(2026, 12, 24), 2)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "Christmas Eve", upcoming[0].Name)
	assert.Equal(t, "Christmas", upcoming[1].Name)
	assert.Len(t, cal.UpcomingSpecials(date(2026, 12, 24), 0), 3)
	assert.Empty(t, cal.UpcomingSpecials(date(2027, 1, 2), 5))
}

func TestCalendarRecurringMatch(t *testing.T) {
	cal := NewCalendar([]SpecialDay{christmas()}, nil)

	for _, d := range []time.Time{date(2027, 12, 25), date(2025, 12, 25), date(2026, 12, 25)} {
		_, ok := cal.FindRecurringSpecial(d)
		assert.True(t, ok, d.Format(DateLayout))
	}
	_, ok := cal.FindRecurringSpecial(date(2026, 12, 24))
	assert.False(t, ok)

	oneOff := christmas()
	oneOff.RecurringYearly = false
	_, ok = NewCalendar([]SpecialDay{oneOff}, nil).FindRecurringSpecial(date(2027, 12, 25))
	assert.False(t, ok)
}

func TestCalendarOverlappingOverrides(t *testing.T) {
	created := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	wide := Override{ID: uuid.New(), StartDate: date(2026, 12, 1), EndDate: date(2026, 12, 31), Reason: "December", CreatedAt: created}
	narrow := Override{ID: uuid.New(), StartDate: date(2026, 12, 20), EndDate: date(2026, 12, 27), Reason: "Holidays", CreatedAt: created}
	sameStartNewer := Override{ID: uuid.New(), StartDate: date(2026, 12, 20), EndDate: date(2026, 12, 22), Reason: "Inventory", CreatedAt: created.Add(time.Hour)}

	cal := NewCalendar(nil, []Override{wide, narrow})
	o, ok := cal.FindOverride(date(2026, 12, 21))
	require.True(t, ok)
	assert.Equal(t, "Holidays", o.Reason, "latest start date wins")

	o, _ = cal.FindOverride(date(2026, 12, 10))
	assert.Equal(t, "December", o.Reason)

	for _, order := range [][]Override{{wide, narrow, sameStartNewer}, {sameStartNewer, narrow, wide}} {
		o, _ = NewCalendar(nil, order).FindOverride(date(2026, 12, 21))
		assert.Equal(t, "Inventory", o.Reason, "same start: most recently created wins")
	}
}

func TestResolvePriority(t *testing.T) {
	week := weekdayTable()
	// 2026-07-06 is a Monday.
	monday := date(2026, 7, 6)

	tests := []struct {
		name      string
		specials  []SpecialDay
		overrides []Override
		day       time.Time
		at        string
		want      Status
	}{
		{
			name: "regular hours open",
			day:  monday, at: "10:00",
			want: Status{IsOpen: true, Reason: ReasonRegularHours, Source: SourceRegular},
		},
		{
			name: "regular hours during break",
			day:  monday, at: "13:15",
			want: Status{IsOpen: false, Reason: ReasonOutsideHours, Source: SourceRegular},
		},
		{
			name: "closed weekday",
			day:  date(2026, 7, 12), at: "10:00",
			want: Status{IsOpen: false, Reason: ReasonClosedToday, Source: SourceRegular},
		},
		{
			name: "unconfigured weekday",
			day:  date(2026, 7, 11), at: "10:00",
			want: Status{IsOpen: false, Reason: ReasonNoHours, Source: SourceNone},
		},
		{
			name:      "closed override beats open special day",
			specials:  []SpecialDay{{Date: monday, Name: "Fair", OpenTime: ClockPtr("08:00"), CloseTime: ClockPtr("20:00")}},
			overrides: []Override{{StartDate: monday, EndDate: monday, Reason: "Renovation", Closed: true}},
			day:       monday, at: "10:00",
			want: Status{IsOpen: false, Reason: "Renovation", Source: SourceOverride},
		},
		{
			name:      "timed override ignores weekly break",
			overrides: []Override{{StartDate: date(2026, 7, 1), EndDate: date(2026, 8, 31), Reason: "Summer hours", OpenTime: ClockPtr("08:00"), CloseTime: ClockPtr("15:00")}},
			day:       monday, at: "13:30",
			want: Status{IsOpen: true, Reason: "Summer hours", Source: SourceOverride},
		},
		{
			name:      "timed override outside its hours",
			overrides: []Override{{StartDate: date(2026, 7, 1), EndDate: date(2026, 8, 31), Reason: "Summer hours", OpenTime: ClockPtr("08:00"), CloseTime: ClockPtr("15:00")}},
			day:       monday, at: "15:00",
			want: Status{IsOpen: false, Reason: "Summer hours", Source: SourceOverride},
		},
		{
			name:      "untimed open override passes through",
			overrides: []Override{{StartDate: monday, EndDate: monday, Reason: "Note only"}},
			day:       monday, at: "10:00",
			want: Status{IsOpen: true, Reason: ReasonRegularHours, Source: SourceRegular},
		},
		{
			name:      "half-timed override passes through to special day",
			specials:  []SpecialDay{{Date: monday, Name: "Local holiday", Closed: true}},
			overrides: []Override{{StartDate: monday, EndDate: monday, Reason: "Partial", OpenTime: ClockPtr("08:00")}},
			day:       monday, at: "10:00",
			want: Status{IsOpen: false, Reason: "Local holiday", Source: SourceSpecialDay},
		},
		{
			name:     "reduced special day",
			specials: []SpecialDay{{Date: date(2026, 12, 24), Name: "Christmas Eve", OpenTime: ClockPtr("09:00"), CloseTime: ClockPtr("14:00")}},
			day:      date(2026, 12, 24), at: "14:00",
			want: Status{IsOpen: false, Reason: "Christmas Eve", Source: SourceSpecialDay},
		},
		{
			name:     "recurring special day from an earlier year",
			specials: []SpecialDay{christmas()},
			day:      date(2027, 12, 25), at: "10:00",
			want: Status{IsOpen: false, Reason: "Christmas", Source: SourceRecurring},
		},
		{
			name: "untimed exact special falls to recurring",
			specials: []SpecialDay{
				{Date: date(2027, 12, 25), Name: "Placeholder"},
				christmas(),
			},
			day: date(2027, 12, 25), at: "10:00",
			want: Status{IsOpen: false, Reason: "Christmas", Source: SourceRecurring},
		},
		{
			name:     "recurring miss falls back to weekly",
			specials: []SpecialDay{christmas()},
			day:      date(2026, 12, 24), at: "10:00",
			want: Status{IsOpen: true, Reason: ReasonRegularHours, Source: SourceRegular},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal := NewCalendar(tt.specials, tt.overrides)
			at := MustClock(tt.at)
			got := Resolve(cal, week, tt.day, at)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got.IsOpen, DashboardOpen(cal, week, tt.day, at), "dashboard must agree")
		})
	}
}

func TestDashboardAgreesWithResolve(t *testing.T) {
	week := weekdayTable()
	base := date(2026, 12, 18)
	specials := []SpecialDay{
		christmas(),
		{Date: date(2026, 12, 24), Name: "Christmas Eve", OpenTime: ClockPtr("09:00"), CloseTime: ClockPtr("14:00"), RecurringYearly: true},
		{Date: date(2026, 12, 21), Name: "Untimed"},
		{Date: date(2025, 12, 22), Name: "Stock take", OpenTime: ClockPtr("11:00"), CloseTime: ClockPtr("12:00"), RecurringYearly: true},
	}
	overrides := []Override{
		{StartDate: date(2026, 12, 28), EndDate: date(2026, 12, 31), Reason: "Closed for year end", Closed: true},
		{StartDate: date(2026, 12, 19), EndDate: date(2026, 12, 20), Reason: "Weekend opening", OpenTime: ClockPtr("10:00"), CloseTime: ClockPtr("16:00")},
		{StartDate: date(2026, 12, 23), EndDate: date(2026, 12, 23), Reason: "Untimed"},
	}
	cal := NewCalendar(specials, overrides)

	for day := 0; day < 16; day++ {
		d := base.AddDate(0, 0, day)
		for at := Clock(0); at < NewClock(24, 0); at += 15 * 60 {
			want := Resolve(cal, week, d, at).IsOpen
			assert.Equalf(t, want, DashboardOpen(cal, week, d, at), "%s %s", d.Format(DateLayout), at)
		}
	}
}

func TestSlotsForDate(t *testing.T) {
	week := weekdayTable()
	monday := date(2026, 7, 6)

	slots, src := SlotsForDate(nil, week, monday, 60)
	assert.Equal(t, SourceRegular, src)
	assert.Equal(t, clocks("09:00", "10:00", "11:00", "12:00", "14:00", "15:00", "16:00", "17:00"), slots)

	cal := NewCalendar(nil, []Override{{StartDate: monday, EndDate: monday, Reason: "Short", OpenTime: ClockPtr("10:00"), CloseTime: ClockPtr("12:00")}})
	slots, src = SlotsForDate(cal, week, monday, 60)
	assert.Equal(t, SourceOverride, src)
	assert.Equal(t, clocks("10:00", "11:00"), slots)

	cal = NewCalendar([]SpecialDay{{Date: monday, Name: "Closed", Closed: true}}, nil)
	slots, src = SlotsForDate(cal, week, monday, 60)
	assert.Equal(t, SourceSpecialDay, src)
	assert.Empty(t, slots)

	slots, src = SlotsForDate(nil, week, date(2026, 7, 11), 30)
	assert.Equal(t, SourceNone, src)
	assert.Empty(t, slots)
}
