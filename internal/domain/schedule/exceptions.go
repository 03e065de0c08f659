package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

// DateOf truncates t to its calendar day, expressed at UTC midnight so dates
// compare and round-trip independently of the caller's location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func sameMonthDay(a, b time.Time) bool {
	return a.Month() == b.Month() && a.Day() == b.Day()
}

// SpecialDay is a single-date exception, optionally recurring every year on
// the same month and day.
type SpecialDay struct {
	ID              uuid.UUID
	HubID           uuid.UUID
	Date            time.Time
	Name            string
	Closed          bool
	OpenTime        *Clock
	CloseTime       *Clock
	RecurringYearly bool
	Notes           string
	CreatedAt       time.Time
}

func (s SpecialDay) Hours() (Interval, bool) { return timedRange(s.OpenTime, s.CloseTime) }

// MatchesRecurring reports whether the entry repeats onto date.
func (s SpecialDay) MatchesRecurring(date time.Time) bool {
	return s.RecurringYearly && sameMonthDay(s.Date, date)
}

func (s SpecialDay) Validate() error {
	var errs ValidationErrors
	if s.Date.IsZero() {
		errs.add("date", "date is required")
	}
	validateLabel(&errs, "name", s.Name)

	if !s.Closed {
		if s.OpenTime == nil || s.CloseTime == nil {
			errs.add("open_time", "open time and close time are required when the day is not fully closed")
		} else if *s.OpenTime >= *s.CloseTime {
			errs.add("open_time", "open time must be before close time")
		}
	}
	return errs.err()
}

// Override changes the schedule for an inclusive date range.
type Override struct {
	ID        uuid.UUID
	HubID     uuid.UUID
	StartDate time.Time
	EndDate   time.Time
	Reason    string
	Closed    bool
	OpenTime  *Clock
	CloseTime *Clock
	CreatedAt time.Time
}

func (o Override) Hours() (Interval, bool) { return timedRange(o.OpenTime, o.CloseTime) }

// Covers reports whether date lies in [StartDate, EndDate].
func (o Override) Covers(date time.Time) bool {
	d := DateOf(date)
	return !d.Before(DateOf(o.StartDate)) && !d.After(DateOf(o.EndDate))
}

func (o Override) Validate() error {
	var errs ValidationErrors
	if o.StartDate.IsZero() {
		errs.add("start_date", "start date is required")
	}
	if o.EndDate.IsZero() {
		errs.add("end_date", "end date is required")
	}
	if !o.StartDate.IsZero() && !o.EndDate.IsZero() && DateOf(o.StartDate).After(DateOf(o.EndDate)) {
		errs.add("start_date", "start date must be on or before end date")
	}
	validateLabel(&errs, "reason", o.Reason)

	if (o.OpenTime == nil) != (o.CloseTime == nil) {
		errs.add("open_time", "open time and close time must be set together")
	} else if !o.Closed && o.OpenTime != nil && *o.OpenTime >= *o.CloseTime {
		errs.add("open_time", "open time must be before close time")
	}
	return errs.err()
}

func validateLabel(errs *ValidationErrors, field, v string) {
	switch {
	case strings.TrimSpace(v) == "":
		errs.add(field, field+" is required")
	case len([]rune(v)) > maxLabelLength:
		errs.add(field, fmt.Sprintf("%s must be at most %d characters", field, maxLabelLength))
	}
}
