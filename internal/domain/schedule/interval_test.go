package schedule

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mondayWithBreak() WeeklyEntry {
	return WeeklyEntry{
		Weekday: Monday,
		Interval: Interval{
			Open:       MustClock("09:00"),
			Close:      MustClock("18:00"),
			BreakStart: ClockPtr("13:00"),
			BreakEnd:   ClockPtr("14:00"),
		},
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    Clock
		wantErr bool
	}{
		{in: "09:00", want: NewClock(9, 0)},
		{in: "23:59", want: NewClock(23, 59)},
		{in: "13:30:15", want: NewClock(13, 30, 15)},
		{in: " 07:05 ", want: NewClock(7, 5)},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "12", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClockEncoding(t *testing.T) {
	c := NewClock(9, 30)
	assert.Equal(t, "09:30", c.String())
	assert.Equal(t, "09:30:05", NewClock(9, 30, 5).String())

	b, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `"09:30"`, string(b))

	var back Clock
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, c, back)

	v, err := c.Value()
	require.NoError(t, err)
	assert.Equal(t, "09:30:00", v)

	var scanned Clock
	require.NoError(t, scanned.Scan([]byte("18:15:00")))
	assert.Equal(t, NewClock(18, 15), scanned)

	require.NoError(t, scanned.Scan(time.Date(2026, 1, 1, 7, 45, 0, 0, time.UTC)))
	assert.Equal(t, NewClock(7, 45), scanned)
}

func TestIntervalContainsWithoutBreak(t *testing.T) {
	iv := Interval{Open: MustClock("09:00"), Close: MustClock("18:00")}

	for c := Clock(0); c < NewClock(23, 59)+60; c += 60 {
		want := c >= iv.Open && c < iv.Close
		assert.Equalf(t, want, iv.Contains(c), "contains(%s)", c)
	}
}

func TestIntervalContainsBreak(t *testing.T) {
	iv := mondayWithBreak().Interval

	assert.True(t, iv.Contains(MustClock("09:00")), "open boundary is inclusive")
	assert.True(t, iv.Contains(MustClock("12:59")))
	assert.False(t, iv.Contains(MustClock("13:00")))
	assert.False(t, iv.Contains(MustClock("13:59")))
	assert.True(t, iv.Contains(MustClock("14:00")), "break end is open again")
	assert.True(t, iv.Contains(MustClock("17:59")))
	assert.False(t, iv.Contains(MustClock("18:00")), "close boundary is exclusive")
	assert.False(t, iv.Contains(MustClock("08:59")))
}

func TestIntervalContainsHalfBreakIgnored(t *testing.T) {
	iv := Interval{Open: MustClock("09:00"), Close: MustClock("18:00"), BreakStart: ClockPtr("13:00")}
	assert.True(t, iv.Contains(MustClock("13:30")))
}

func TestIntervalValidate(t *testing.T) {
	tests := []struct {
		name   string
		iv     Interval
		closed bool
		fields []string
	}{
		{
			name: "valid with break",
			iv:   mondayWithBreak().Interval,
		},
		{
			name:   "open after close",
			iv:     Interval{Open: MustClock("18:00"), Close: MustClock("09:00")},
			fields: []string{"open_time"},
		},
		{
			name:   "open equals close",
			iv:     Interval{Open: MustClock("09:00"), Close: MustClock("09:00")},
			fields: []string{"open_time"},
		},
		{
			name: "break inverted",
			iv: Interval{
				Open: MustClock("09:00"), Close: MustClock("18:00"),
				BreakStart: ClockPtr("14:00"), BreakEnd: ClockPtr("13:00"),
			},
			fields: []string{"break_start"},
		},
		{
			name: "break before open",
			iv: Interval{
				Open: MustClock("09:00"), Close: MustClock("18:00"),
				BreakStart: ClockPtr("08:00"), BreakEnd: ClockPtr("09:30"),
			},
			fields: []string{"break_start"},
		},
		{
			name: "break after close",
			iv: Interval{
				Open: MustClock("09:00"), Close: MustClock("18:00"),
				BreakStart: ClockPtr("17:00"), BreakEnd: ClockPtr("19:00"),
			},
			fields: []string{"break_end"},
		},
		{
			name: "break aligned with open and close",
			iv: Interval{
				Open: MustClock("09:00"), Close: MustClock("18:00"),
				BreakStart: ClockPtr("09:00"), BreakEnd: ClockPtr("18:00"),
			},
		},
		{
			name:   "closed skips every check",
			iv:     Interval{Open: MustClock("18:00"), Close: MustClock("09:00"), BreakStart: ClockPtr("20:00"), BreakEnd: ClockPtr("01:00")},
			closed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.iv.Validate(tt.closed)
			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}
			ve, ok := AsValidation(err)
			require.True(t, ok, "expected validation errors, got %v", err)
			var got []string
			for _, fe := range ve {
				got = append(got, fe.Field)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

func TestWeeklyEntryValidate(t *testing.T) {
	e := mondayWithBreak()
	assert.NoError(t, e.Validate())

	e.Weekday = 7
	ve, ok := AsValidation(e.Validate())
	require.True(t, ok)
	assert.Equal(t, "day_of_week", ve[0].Field)
}

func TestWeekdayOf(t *testing.T) {
	// 2026-10-12 is a Monday.
	base := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		assert.Equal(t, Weekday(i), WeekdayOf(base.AddDate(0, 0, i)))
	}
	assert.Equal(t, "Sunday", Sunday.String())
}

func TestWeeklyTable(t *testing.T) {
	table := NewWeeklyTable([]WeeklyEntry{
		mondayWithBreak(),
		{Weekday: Sunday, Closed: true, Interval: Interval{Open: MustClock("09:00"), Close: MustClock("18:00")}},
		{Weekday: 9},
	})

	_, ok := table.EntryFor(Tuesday)
	assert.False(t, ok)
	assert.False(t, table.IsOpenAt(Tuesday, MustClock("10:00")))

	assert.True(t, table.IsOpenAt(Monday, MustClock("10:00")))
	assert.False(t, table.IsOpenAt(Monday, MustClock("13:30")))

	for c := Clock(0); c < NewClock(24, 0); c += 15 * 60 {
		assert.False(t, table.IsOpenAt(Sunday, c))
	}

	week := table.Week()
	require.Len(t, week, 7)
	assert.NotNil(t, week[Monday])
	assert.Nil(t, week[Tuesday])
}
