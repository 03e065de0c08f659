package dto

import (
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/hub-schedules/internal/domain/schedule"
)

// ======================================================
// RESPONSES
// ======================================================

type WeeklyEntryDTO struct {
	ID         *uuid.UUID `json:"id"`
	DayOfWeek  int        `json:"day_of_week"`
	DayLabel   string     `json:"day_label"`
	Configured bool       `json:"configured"`
	IsClosed   bool       `json:"is_closed"`
	OpenTime   *string    `json:"open_time"`
	CloseTime  *string    `json:"close_time"`
	BreakStart *string    `json:"break_start"`
	BreakEnd   *string    `json:"break_end"`
}

type SpecialDayDTO struct {
	ID              uuid.UUID `json:"id"`
	Date            string    `json:"date"`
	Name            string    `json:"name"`
	IsClosed        bool      `json:"is_closed"`
	OpenTime        *string   `json:"open_time"`
	CloseTime       *string   `json:"close_time"`
	RecurringYearly bool      `json:"recurring_yearly"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
}

type OverrideDTO struct {
	ID        uuid.UUID `json:"id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Reason    string    `json:"reason"`
	IsClosed  bool      `json:"is_closed"`
	OpenTime  *string   `json:"open_time"`
	CloseTime *string   `json:"close_time"`
	CreatedAt time.Time `json:"created_at"`
}

type StatusDTO struct {
	IsOpen      bool   `json:"is_open"`
	Reason      string `json:"reason"`
	Source      string `json:"source"`
	Today       string `json:"today"`
	CurrentTime string `json:"current_time"`
	Timezone    string `json:"timezone"`
}

type DashboardDTO struct {
	Week           []WeeklyEntryDTO `json:"week"`
	Today          string           `json:"today"`
	DayOfWeek      int              `json:"day_of_week"`
	DayLabel       string           `json:"day_label"`
	CurrentTime    string           `json:"current_time"`
	IsOpen         bool             `json:"is_open"`
	Reason         string           `json:"reason"`
	Source         string           `json:"source"`
	TodayHours     *WeeklyEntryDTO  `json:"today_hours"`
	EffectiveHours *WeeklyEntryDTO  `json:"effective_hours"`
	SpecialToday   *SpecialDayDTO   `json:"special_today"`
	OverrideToday  *OverrideDTO     `json:"override_today"`
	NextSpecial    *SpecialDayDTO   `json:"next_special"`
	Timezone       string           `json:"timezone"`
}

type SlotsDTO struct {
	Date         string   `json:"date,omitempty"`
	DayOfWeek    *int     `json:"day_of_week,omitempty"`
	Source       string   `json:"source,omitempty"`
	SlotDuration int      `json:"slot_duration"`
	Slots        []string `json:"slots"`
}

func clockString(c *domain.Clock) *string {
	if c == nil {
		return nil
	}
	s := c.String()
	return &s
}

func WeeklyEntry(weekday domain.Weekday, e *domain.WeeklyEntry) WeeklyEntryDTO {
	out := WeeklyEntryDTO{
		DayOfWeek: int(weekday),
		DayLabel:  weekday.String(),
	}
	if e == nil {
		return out
	}

	out.Configured = true
	out.IsClosed = e.Closed
	if e.ID != uuid.Nil {
		id := e.ID
		out.ID = &id
	}
	openAt, closeAt := e.Interval.Open, e.Interval.Close
	out.OpenTime = clockString(&openAt)
	out.CloseTime = clockString(&closeAt)
	out.BreakStart = clockString(e.Interval.BreakStart)
	out.BreakEnd = clockString(e.Interval.BreakEnd)
	return out
}

// Week maps Monday..Sunday, keeping unconfigured days as placeholders.
func Week(week []*domain.WeeklyEntry) []WeeklyEntryDTO {
	out := make([]WeeklyEntryDTO, 0, len(week))
	for i, e := range week {
		out = append(out, WeeklyEntry(domain.Weekday(i), e))
	}
	return out
}

func SpecialDay(s domain.SpecialDay) SpecialDayDTO {
	return SpecialDayDTO{
		ID:              s.ID,
		Date:            s.Date.Format(domain.DateLayout),
		Name:            s.Name,
		IsClosed:        s.Closed,
		OpenTime:        clockString(s.OpenTime),
		CloseTime:       clockString(s.CloseTime),
		RecurringYearly: s.RecurringYearly,
		Notes:           s.Notes,
		CreatedAt:       s.CreatedAt,
	}
}

func SpecialDays(list []domain.SpecialDay) []SpecialDayDTO {
	out := make([]SpecialDayDTO, 0, len(list))
	for _, s := range list {
		out = append(out, SpecialDay(s))
	}
	return out
}

func Override(o domain.Override) OverrideDTO {
	return OverrideDTO{
		ID:        o.ID,
		StartDate: o.StartDate.Format(domain.DateLayout),
		EndDate:   o.EndDate.Format(domain.DateLayout),
		Reason:    o.Reason,
		IsClosed:  o.Closed,
		OpenTime:  clockString(o.OpenTime),
		CloseTime: clockString(o.CloseTime),
		CreatedAt: o.CreatedAt,
	}
}

func Overrides(list []domain.Override) []OverrideDTO {
	out := make([]OverrideDTO, 0, len(list))
	for _, o := range list {
		out = append(out, Override(o))
	}
	return out
}

func Status(st domain.Status, date time.Time, at domain.Clock, tz string) StatusDTO {
	return StatusDTO{
		IsOpen:      st.IsOpen,
		Reason:      st.Reason,
		Source:      string(st.Source),
		Today:       date.Format(domain.DateLayout),
		CurrentTime: at.String(),
		Timezone:    tz,
	}
}
