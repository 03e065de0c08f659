package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/hub-schedules/internal/domain/schedule"
)

func TestHoursRequestDefaultsAndBlanks(t *testing.T) {
	var req HoursRequest
	require.NoError(t, json.Unmarshal([]byte(`{"day_of_week": 0, "break_start": "", "break_end": ""}`), &req))

	e, err := req.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, domain.Monday, e.Weekday)
	assert.Equal(t, domain.MustClock("09:00"), e.Interval.Open)
	assert.Equal(t, domain.MustClock("18:00"), e.Interval.Close)
	assert.False(t, e.Interval.HasBreak())
}

func TestHoursRequestCollectsFormatErrors(t *testing.T) {
	day := 2
	_, err := HoursRequest{DayOfWeek: &day, OpenTime: "9am", BreakEnd: "25:00"}.ToDomain()
	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	require.Len(t, ve, 2)
	assert.Equal(t, "open_time", ve[0].Field)
	assert.Equal(t, "break_end", ve[1].Field)
}

func TestSpecialDayRequestClosedByDefault(t *testing.T) {
	sd, err := SpecialDayRequest{Date: "2026-12-25", Name: "Christmas"}.ToDomain()
	require.NoError(t, err)
	assert.True(t, sd.Closed)

	_, err = SpecialDayRequest{Date: "25/12/2026", Name: "Christmas"}.ToDomain()
	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "date", ve[0].Field)
}

func TestSpecialDayPatchRequest(t *testing.T) {
	var req SpecialDayPatchRequest
	require.NoError(t, json.Unmarshal([]byte(`{"open_time": null, "close_time": "15:00", "date": "2026-12-31"}`), &req))

	patch, err := req.ToPatch()
	require.NoError(t, err)
	assert.True(t, patch.OpenTime.Set)
	assert.Nil(t, patch.OpenTime.Value)
	require.True(t, patch.CloseTime.Set)
	assert.Equal(t, domain.MustClock("15:00"), *patch.CloseTime.Value)
	assert.Equal(t, 31, patch.Date.Value.Day())
	assert.False(t, patch.Name.Set)
}

func TestWeekPlaceholders(t *testing.T) {
	entry := &domain.WeeklyEntry{Weekday: domain.Tuesday, Interval: domain.Interval{Open: domain.MustClock("08:00"), Close: domain.MustClock("12:30")}}
	week := make([]*domain.WeeklyEntry, 7)
	week[domain.Tuesday] = entry

	out := Week(week)
	require.Len(t, out, 7)
	assert.False(t, out[0].Configured)
	assert.Equal(t, "Monday", out[0].DayLabel)
	assert.True(t, out[1].Configured)
	assert.Equal(t, "12:30", *out[1].CloseTime)
	assert.Nil(t, out[1].BreakStart)
}
