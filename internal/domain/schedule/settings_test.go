package schedule

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	hub := uuid.New()
	s := DefaultSettings(hub)

	assert.Equal(t, hub, s.HubID)
	assert.Equal(t, "Europe/Madrid", s.Timezone)
	assert.Equal(t, 1, s.WeekStartsOn)
	assert.Equal(t, 30, s.SlotDuration)
	assert.False(t, s.AutoCloseEnabled)
	assert.NoError(t, s.Validate())

	var missing *Settings
	assert.Equal(t, DefaultSlotDuration, missing.Stride())
}

func TestSettingsValidate(t *testing.T) {
	s := DefaultSettings(uuid.New())
	s.Timezone = "Mars/Olympus"
	s.WeekStartsOn = 0
	s.SlotDuration = 3

	ve, ok := AsValidation(s.Validate())
	require.True(t, ok)
	fields := map[string]bool{}
	for _, fe := range ve {
		fields[fe.Field] = true
	}
	assert.True(t, fields["timezone"])
	assert.True(t, fields["week_starts_on"])
	assert.True(t, fields["slot_duration"])
}

func TestSettingsPatchOnlyTouchesSuppliedFields(t *testing.T) {
	s := DefaultSettings(uuid.New())
	s.AutoCloseEnabled = true

	var p SettingsPatch
	require.NoError(t, json.Unmarshal([]byte(`{"slot_duration": 15, "auto_close_enabled": false}`), &p))
	assert.False(t, p.Timezone.Set)
	assert.True(t, p.AutoCloseEnabled.Set)

	p.Apply(&s)
	assert.Equal(t, 15, s.SlotDuration)
	assert.False(t, s.AutoCloseEnabled, "explicit false is applied")
	assert.Equal(t, "Europe/Madrid", s.Timezone)
	assert.Equal(t, 1, s.WeekStartsOn)
}

func TestOptionalNullClearsPointer(t *testing.T) {
	var body struct {
		OpenTime  Optional[*Clock] `json:"open_time"`
		CloseTime Optional[*Clock] `json:"close_time"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"open_time": null}`), &body))
	assert.True(t, body.OpenTime.Set)
	assert.Nil(t, body.OpenTime.Value)
	assert.False(t, body.CloseTime.Set)

	s := SpecialDay{Name: "Eve", OpenTime: ClockPtr("09:00"), CloseTime: ClockPtr("14:00")}
	SpecialDayPatch{OpenTime: body.OpenTime, CloseTime: body.CloseTime}.Apply(&s)
	assert.Nil(t, s.OpenTime)
	assert.Equal(t, MustClock("14:00"), *s.CloseTime)
}

func TestSpecialDayValidate(t *testing.T) {
	open := SpecialDay{Date: date(2026, 6, 15), Name: "Half Day"}
	ve, ok := AsValidation(open.Validate())
	require.True(t, ok, "times are required when not closed")
	assert.Equal(t, "open_time", ve[0].Field)

	open.OpenTime, open.CloseTime = ClockPtr("18:00"), ClockPtr("09:00")
	assert.Error(t, open.Validate())

	open.OpenTime, open.CloseTime = ClockPtr("09:00"), ClockPtr("13:00")
	assert.NoError(t, open.Validate())

	closed := SpecialDay{Date: date(2026, 6, 15), Name: "Holiday", Closed: true}
	assert.NoError(t, closed.Validate())

	closed.Name = "  "
	ve, ok = AsValidation(closed.Validate())
	require.True(t, ok)
	assert.Equal(t, "name", ve[0].Field)
}

func TestOverrideValidate(t *testing.T) {
	o := Override{StartDate: date(2026, 8, 31), EndDate: date(2026, 7, 1), Reason: "Invalid"}
	ve, ok := AsValidation(o.Validate())
	require.True(t, ok)
	assert.Equal(t, "start_date", ve[0].Field)

	single := Override{StartDate: date(2026, 7, 1), EndDate: date(2026, 7, 1), Reason: "Single day"}
	assert.NoError(t, single.Validate())

	single.OpenTime = ClockPtr("08:00")
	assert.Error(t, single.Validate(), "times must come in pairs")

	single.CloseTime = ClockPtr("07:00")
	assert.Error(t, single.Validate())

	single.Closed = true
	assert.NoError(t, single.Validate())
}
