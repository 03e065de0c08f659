package schedule

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/hub-schedules/internal/timezone"
)

const (
	MinSlotDuration = 5
	MaxSlotDuration = 120
)

// Settings is the per-hub schedule configuration. Timezone is informational
// for the core: callers convert instants before resolving.
type Settings struct {
	ID               uuid.UUID `json:"id"`
	HubID            uuid.UUID `json:"hub_id"`
	Timezone         string    `json:"timezone"`
	WeekStartsOn     int       `json:"week_starts_on"`
	SlotDuration     int       `json:"slot_duration"`
	AutoCloseEnabled bool      `json:"auto_close_enabled"`
}

func DefaultSettings(hubID uuid.UUID) Settings {
	return Settings{
		HubID:        hubID,
		Timezone:     timezone.DefaultTimezone,
		WeekStartsOn: 1,
		SlotDuration: DefaultSlotDuration,
	}
}

// Stride is the slot stride in minutes, falling back to the default.
func (s *Settings) Stride() int {
	if s == nil || s.SlotDuration <= 0 {
		return DefaultSlotDuration
	}
	return s.SlotDuration
}

// Location resolves the configured timezone, falling back to the default zone.
func (s *Settings) Location() *time.Location {
	if s == nil {
		return timezone.Location("")
	}
	return timezone.Location(s.Timezone)
}

func (s Settings) Validate() error {
	var errs ValidationErrors
	if !timezone.IsValid(s.Timezone) {
		errs.add("timezone", "timezone must be a valid IANA zone name")
	}
	if s.WeekStartsOn < 1 || s.WeekStartsOn > 7 {
		errs.add("week_starts_on", "week must start on a day between 1 (Monday) and 7 (Sunday)")
	}
	if s.SlotDuration < MinSlotDuration || s.SlotDuration > MaxSlotDuration {
		errs.add("slot_duration", "slot duration must be between 5 and 120 minutes")
	}
	return errs.err()
}

// Optional distinguishes a field that was not supplied from one explicitly set
// to its zero value or to null.
type Optional[T any] struct {
	Set   bool
	Value T
}

func Some[T any](v T) Optional[T] { return Optional[T]{Set: true, Value: v} }

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	return json.Unmarshal(b, &o.Value)
}

func (o Optional[T]) applyTo(dst *T) {
	if o.Set {
		*dst = o.Value
	}
}

type SettingsPatch struct {
	Timezone         Optional[string] `json:"timezone"`
	WeekStartsOn     Optional[int]    `json:"week_starts_on"`
	SlotDuration     Optional[int]    `json:"slot_duration"`
	AutoCloseEnabled Optional[bool]   `json:"auto_close_enabled"`
}

func (p SettingsPatch) Apply(s *Settings) {
	p.Timezone.applyTo(&s.Timezone)
	p.WeekStartsOn.applyTo(&s.WeekStartsOn)
	p.SlotDuration.applyTo(&s.SlotDuration)
	p.AutoCloseEnabled.applyTo(&s.AutoCloseEnabled)
}

type SpecialDayPatch struct {
	Date            Optional[time.Time]
	Name            Optional[string]
	Closed          Optional[bool]
	OpenTime        Optional[*Clock]
	CloseTime       Optional[*Clock]
	RecurringYearly Optional[bool]
	Notes           Optional[string]
}

func (p SpecialDayPatch) Apply(s *SpecialDay) {
	if p.Date.Set {
		s.Date = DateOf(p.Date.Value)
	}
	p.Name.applyTo(&s.Name)
	p.Closed.applyTo(&s.Closed)
	p.OpenTime.applyTo(&s.OpenTime)
	p.CloseTime.applyTo(&s.CloseTime)
	p.RecurringYearly.applyTo(&s.RecurringYearly)
	p.Notes.applyTo(&s.Notes)
}

type OverridePatch struct {
	StartDate Optional[time.Time]
	EndDate   Optional[time.Time]
	Reason    Optional[string]
	Closed    Optional[bool]
	OpenTime  Optional[*Clock]
	CloseTime Optional[*Clock]
}

func (p OverridePatch) Apply(o *Override) {
	if p.StartDate.Set {
		o.StartDate = DateOf(p.StartDate.Value)
	}
	if p.EndDate.Set {
		o.EndDate = DateOf(p.EndDate.Value)
	}
	p.Reason.applyTo(&o.Reason)
	p.Closed.applyTo(&o.Closed)
	p.OpenTime.applyTo(&o.OpenTime)
	p.CloseTime.applyTo(&o.CloseTime)
}
