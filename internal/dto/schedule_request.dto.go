package dto

import (
	"strings"
	"time"

	domain "github.com/BruksfildServices01/hub-schedules/internal/domain/schedule"
)

// ======================================================
// REQUESTS
// ======================================================

// Blank time strings are treated as "not set".
type HoursRequest struct {
	DayOfWeek  *int   `json:"day_of_week" binding:"required"`
	IsClosed   bool   `json:"is_closed"`
	OpenTime   string `json:"open_time"`
	CloseTime  string `json:"close_time"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
}

type SpecialDayRequest struct {
	Date            string `json:"date" binding:"required"`
	Name            string `json:"name"`
	IsClosed        *bool  `json:"is_closed"`
	OpenTime        string `json:"open_time"`
	CloseTime       string `json:"close_time"`
	RecurringYearly bool   `json:"recurring_yearly"`
	Notes           string `json:"notes"`
}

type SpecialDayPatchRequest struct {
	Date            domain.Optional[string]  `json:"date"`
	Name            domain.Optional[string]  `json:"name"`
	IsClosed        domain.Optional[bool]    `json:"is_closed"`
	OpenTime        domain.Optional[*string] `json:"open_time"`
	CloseTime       domain.Optional[*string] `json:"close_time"`
	RecurringYearly domain.Optional[bool]    `json:"recurring_yearly"`
	Notes           domain.Optional[string]  `json:"notes"`
}

type OverrideRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason"`
	IsClosed  bool   `json:"is_closed"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

type OverridePatchRequest struct {
	StartDate domain.Optional[string]  `json:"start_date"`
	EndDate   domain.Optional[string]  `json:"end_date"`
	Reason    domain.Optional[string]  `json:"reason"`
	IsClosed  domain.Optional[bool]    `json:"is_closed"`
	OpenTime  domain.Optional[*string] `json:"open_time"`
	CloseTime domain.Optional[*string] `json:"close_time"`
}

// parser accumulates format errors so a request reports every bad field.
type parser struct {
	errs domain.ValidationErrors
}

func (p *parser) fail(field, msg string) {
	p.errs = append(p.errs, domain.FieldError{Field: field, Message: msg})
}

func (p *parser) clock(field, s string) *domain.Clock {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	c, err := domain.ParseClock(s)
	if err != nil {
		p.fail(field, "time must be HH:MM or HH:MM:SS")
		return nil
	}
	return &c
}

func (p *parser) optionalClock(field string, v domain.Optional[*string]) domain.Optional[*domain.Clock] {
	if !v.Set {
		return domain.Optional[*domain.Clock]{}
	}
	if v.Value == nil {
		return domain.Some[*domain.Clock](nil)
	}
	return domain.Some(p.clock(field, *v.Value))
}

func (p *parser) date(field, s string) domain.Optional[time.Time] {
	d, err := domain.ParseDate(s)
	if err != nil {
		p.fail(field, "date must be YYYY-MM-DD")
		return domain.Optional[time.Time]{}
	}
	return domain.Some(d)
}

func (p *parser) optionalDate(field string, v domain.Optional[string]) domain.Optional[time.Time] {
	if !v.Set {
		return domain.Optional[time.Time]{}
	}
	return p.date(field, v.Value)
}

func (p *parser) err() error {
	if len(p.errs) == 0 {
		return nil
	}
	return p.errs
}

func (r HoursRequest) ToDomain() (domain.WeeklyEntry, error) {
	var p parser

	openAt := p.clock("open_time", r.OpenTime)
	if openAt == nil && strings.TrimSpace(r.OpenTime) == "" {
		openAt = domain.ClockPtr("09:00")
	}
	closeAt := p.clock("close_time", r.CloseTime)
	if closeAt == nil && strings.TrimSpace(r.CloseTime) == "" {
		closeAt = domain.ClockPtr("18:00")
	}

	e := domain.WeeklyEntry{
		Weekday: domain.Weekday(*r.DayOfWeek),
		Closed:  r.IsClosed,
		Interval: domain.Interval{
			BreakStart: p.clock("break_start", r.BreakStart),
			BreakEnd:   p.clock("break_end", r.BreakEnd),
		},
	}
	if openAt != nil {
		e.Interval.Open = *openAt
	}
	if closeAt != nil {
		e.Interval.Close = *closeAt
	}
	return e, p.err()
}

func (r SpecialDayRequest) ToDomain() (domain.SpecialDay, error) {
	var p parser

	closed := true
	if r.IsClosed != nil {
		closed = *r.IsClosed
	}

	sd := domain.SpecialDay{
		Date:            p.date("date", r.Date).Value,
		Name:            r.Name,
		Closed:          closed,
		OpenTime:        p.clock("open_time", r.OpenTime),
		CloseTime:       p.clock("close_time", r.CloseTime),
		RecurringYearly: r.RecurringYearly,
		Notes:           r.Notes,
	}
	return sd, p.err()
}

func (r SpecialDayPatchRequest) ToPatch() (domain.SpecialDayPatch, error) {
	var p parser
	patch := domain.SpecialDayPatch{
		Date:            p.optionalDate("date", r.Date),
		Name:            r.Name,
		Closed:          r.IsClosed,
		OpenTime:        p.optionalClock("open_time", r.OpenTime),
		CloseTime:       p.optionalClock("close_time", r.CloseTime),
		RecurringYearly: r.RecurringYearly,
		Notes:           r.Notes,
	}
	return patch, p.err()
}

func (r OverrideRequest) ToDomain() (domain.Override, error) {
	var p parser
	o := domain.Override{
		StartDate: p.date("start_date", r.StartDate).Value,
		EndDate:   p.date("end_date", r.EndDate).Value,
		Reason:    r.Reason,
		Closed:    r.IsClosed,
		OpenTime:  p.clock("open_time", r.OpenTime),
		CloseTime: p.clock("close_time", r.CloseTime),
	}
	return o, p.err()
}

func (r OverridePatchRequest) ToPatch() (domain.OverridePatch, error) {
	var p parser
	patch := domain.OverridePatch{
		StartDate: p.optionalDate("start_date", r.StartDate),
		EndDate:   p.optionalDate("end_date", r.EndDate),
		Reason:    r.Reason,
		Closed:    r.IsClosed,
		OpenTime:  p.optionalClock("open_time", r.OpenTime),
		CloseTime: p.optionalClock("close_time", r.CloseTime),
	}
	return patch, p.err()
}
