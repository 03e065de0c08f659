package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned by repositories when a scoped record does not exist
// or has been soft-deleted.
var ErrNotFound = errors.New("schedule: record not found")

// ErrConflict is returned when a write would break a uniqueness rule, such as a
// second live special day on the same date.
var ErrConflict = errors.New("schedule: conflicting record")

// DaySnapshot holds every live record that can decide availability on a date.
type DaySnapshot struct {
	Date      time.Time
	Weekly    []WeeklyEntry
	Specials  []SpecialDay
	Overrides []Override
}

func (s DaySnapshot) Calendar() *Calendar       { return NewCalendar(s.Specials, s.Overrides) }
func (s DaySnapshot) WeeklyTable() WeeklyTable { return NewWeeklyTable(s.Weekly) }

// Repository is the storage contract. Every method is scoped to hubID and never
// returns soft-deleted rows.
type Repository interface {
	// -------- Settings --------
	GetOrCreateSettings(
		ctx context.Context,
		hubID uuid.UUID,
	) (*Settings, error)

	SaveSettings(
		ctx context.Context,
		s *Settings,
	) error

	// -------- Weekly hours --------
	ListWeeklyEntries(
		ctx context.Context,
		hubID uuid.UUID,
	) ([]WeeklyEntry, error)

	GetWeeklyEntry(
		ctx context.Context,
		hubID uuid.UUID,
		weekday Weekday,
	) (*WeeklyEntry, error)

	UpsertWeeklyEntry(
		ctx context.Context,
		e *WeeklyEntry,
	) error

	// -------- Special days --------
	ListSpecialDays(
		ctx context.Context,
		hubID uuid.UUID,
	) ([]SpecialDay, error)

	GetSpecialDay(
		ctx context.Context,
		hubID uuid.UUID,
		id uuid.UUID,
	) (*SpecialDay, error)

	CreateSpecialDay(
		ctx context.Context,
		s *SpecialDay,
	) error

	UpdateSpecialDay(
		ctx context.Context,
		s *SpecialDay,
	) error

	DeleteSpecialDay(
		ctx context.Context,
		hubID uuid.UUID,
		id uuid.UUID,
	) error

	FindExactSpecial(
		ctx context.Context,
		hubID uuid.UUID,
		date time.Time,
	) (*SpecialDay, error)

	FindRecurringSpecial(
		ctx context.Context,
		hubID uuid.UUID,
		date time.Time,
	) (*SpecialDay, error)

	UpcomingSpecials(
		ctx context.Context,
		hubID uuid.UUID,
		from time.Time,
		limit int,
	) ([]SpecialDay, error)

	// -------- Overrides --------
	ListOverrides(
		ctx context.Context,
		hubID uuid.UUID,
	) ([]Override, error)

	GetOverride(
		ctx context.Context,
		hubID uuid.UUID,
		id uuid.UUID,
	) (*Override, error)

	CreateOverride(
		ctx context.Context,
		o *Override,
	) error

	UpdateOverride(
		ctx context.Context,
		o *Override,
	) error

	DeleteOverride(
		ctx context.Context,
		hubID uuid.UUID,
		id uuid.UUID,
	) error

	FindOverride(
		ctx context.Context,
		hubID uuid.UUID,
		date time.Time,
	) (*Override, error)

	// -------- Resolution --------
	LoadDay(
		ctx context.Context,
		hubID uuid.UUID,
		date time.Time,
	) (*DaySnapshot, error)
}
