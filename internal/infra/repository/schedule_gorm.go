package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/hub-schedules/internal/domain/schedule"
	"github.com/BruksfildServices01/hub-schedules/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

var _ schedule.Repository = (*ScheduleGormRepository)(nil)

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return schedule.ErrNotFound
	}
	return err
}

// conflict maps a unique-index violation to schedule.ErrConflict, using the
// dialect's translator when the connection was opened without TranslateError.
func conflict(db *gorm.DB, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return schedule.ErrConflict
	}
	if t, ok := db.Dialector.(gorm.ErrorTranslator); ok {
		if errors.Is(t.Translate(err), gorm.ErrDuplicatedKey) {
			return schedule.ErrConflict
		}
	}
	return err
}

// --------------------------------------------------
// Settings
// --------------------------------------------------

func (r *ScheduleGormRepository) GetOrCreateSettings(
	ctx context.Context,
	hubID uuid.UUID,
) (*schedule.Settings, error) {

	rec, err := r.findSettings(ctx, hubID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		rec, err = r.createSettings(ctx, hubID)
	}
	if err != nil {
		return nil, err
	}

	if rec.DeletedAt.Valid {
		// A deleted singleton is brought back rather than duplicated.
		rec.DeletedAt = gorm.DeletedAt{}
		if err := r.db.WithContext(ctx).Unscoped().Save(rec).Error; err != nil {
			return nil, err
		}
	}

	s := rec.ToDomain()
	return &s, nil
}

func (r *ScheduleGormRepository) findSettings(ctx context.Context, hubID uuid.UUID) (*models.ScheduleSettings, error) {
	var rec models.ScheduleSettings
	err := r.db.WithContext(ctx).
		Unscoped().
		Where("hub_id = ?", hubID).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// createSettings inserts the defaults unless a concurrent request already
// did, then returns whichever row won.
func (r *ScheduleGormRepository) createSettings(ctx context.Context, hubID uuid.UUID) (*models.ScheduleSettings, error) {
	var rec models.ScheduleSettings
	rec.Assign(schedule.DefaultSettings(hubID))

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "hub_id"}}, DoNothing: true}).
		Create(&rec).Error; err != nil {
		return nil, err
	}
	return r.findSettings(ctx, hubID)
}

func (r *ScheduleGormRepository) SaveSettings(
	ctx context.Context,
	s *schedule.Settings,
) error {

	var rec models.ScheduleSettings
	if err := r.db.WithContext(ctx).
		Where("hub_id = ?", s.HubID).
		First(&rec).Error; err != nil {
		return notFound(err)
	}

	rec.Assign(*s)
	if err := r.db.WithContext(ctx).Save(&rec).Error; err != nil {
		return err
	}
	s.ID = rec.ID
	return nil
}

// --------------------------------------------------
// Weekly hours
// --------------------------------------------------

func (r *ScheduleGormRepository) ListWeeklyEntries(
	ctx context.Context,
	hubID uuid.UUID,
) ([]schedule.WeeklyEntry, error) {

	var recs []models.BusinessHours
	if err := r.db.WithContext(ctx).
		Where("hub_id = ?", hubID).
		Order("day_of_week ASC").
		Find(&recs).Error; err != nil {
		return nil, err
	}

	out := make([]schedule.WeeklyEntry, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.ToDomain())
	}
	return out, nil
}

func (r *ScheduleGormRepository) GetWeeklyEntry(
	ctx context.Context,
	hubID uuid.UUID,
	weekday schedule.Weekday,
) (*schedule.WeeklyEntry, error) {

	var rec models.BusinessHours
	if err := r.db.WithContext(ctx).
		Where("hub_id = ? AND day_of_week = ?", hubID, int(weekday)).
		First(&rec).Error; err != nil {
		return nil, notFound(err)
	}
	e := rec.ToDomain()
	return &e, nil
}

// UpsertWeeklyEntry writes the single row for (hub, weekday). A soft-deleted
// row for the same weekday is restored in place so the unique index holds.
func (r *ScheduleGormRepository) UpsertWeeklyEntry(
	ctx context.Context,
	e *schedule.WeeklyEntry,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec models.BusinessHours
		err := tx.Unscoped().
			Where("hub_id = ? AND day_of_week = ?", e.HubID, int(e.Weekday)).
			First(&rec).Error

		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		rec.Assign(*e)
		if err != nil {
			if err := tx.Create(&rec).Error; err != nil {
				return err
			}
		} else {
			rec.DeletedAt = gorm.DeletedAt{}
			if err := tx.Unscoped().Save(&rec).Error; err != nil {
				return err
			}
		}

		e.ID = rec.ID
		return nil
	})
}

// --------------------------------------------------
// Special days
// --------------------------------------------------

func (r *ScheduleGormRepository) ListSpecialDays(
	ctx context.Context,
	hubID uuid.UUID,
) ([]schedule.SpecialDay, error) {

	var recs []models.SpecialDay
	if err := r.db.WithContext(ctx).
		Where("hub_id = ?", hubID).
		Order("date ASC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return specialsToDomain(recs), nil
}

func (r *ScheduleGormRepository) GetSpecialDay(
	ctx context.Context,
	hubID uuid.UUID,
	id uuid.UUID,
) (*schedule.SpecialDay, error) {

	var rec models.SpecialDay
	if err := r.db.WithContext(ctx).
		Where("hub_id = ? AND id = ?", hubID, id).
		First(&rec).Error; err != nil {
		return nil, notFound(err)
	}
	s := rec.ToDomain()
	return &s, nil
}

func (r *ScheduleGormRepository) CreateSpecialDay(
	ctx context.Context,
	s *schedule.SpecialDay,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureDateFree(tx, s.HubID, s.Date, uuid.Nil); err != nil {
			return err
		}

		var rec models.SpecialDay
		rec.Assign(*s)
		if err := tx.Create(&rec).Error; err != nil {
			return conflict(tx, err)
		}

		s.ID = rec.ID
		s.Date = schedule.DateOf(rec.Date)
		s.CreatedAt = rec.CreatedAt
		return nil
	})
}

func (r *ScheduleGormRepository) UpdateSpecialDay(
	ctx context.Context,
	s *schedule.SpecialDay,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec models.SpecialDay
		if err := tx.
			Where("hub_id = ? AND id = ?", s.HubID, s.ID).
			First(&rec).Error; err != nil {
			return notFound(err)
		}

		if err := ensureDateFree(tx, s.HubID, s.Date, s.ID); err != nil {
			return err
		}

		rec.Assign(*s)
		return conflict(tx, tx.Save(&rec).Error)
	})
}

// ensureDateFree reports a taken (hub, date) before the insert so the common
// case never reaches the unique index.
func ensureDateFree(tx *gorm.DB, hubID uuid.UUID, date time.Time, except uuid.UUID) error {
	q := tx.Model(&models.SpecialDay{}).
		Where("hub_id = ? AND date = ?", hubID, schedule.DateOf(date))
	if except != uuid.Nil {
		q = q.Where("id <> ?", except)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return schedule.ErrConflict
	}
	return nil
}

func (r *ScheduleGormRepository) DeleteSpecialDay(
	ctx context.Context,
	hubID uuid.UUID,
	id uuid.UUID,
) error {

	res := r.db.WithContext(ctx).
		Where("hub_id = ? AND id = ?", hubID, id).
		Delete(&models.SpecialDay{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return schedule.ErrNotFound
	}
	return nil
}

func (r *ScheduleGormRepository) FindExactSpecial(
	ctx context.Context,
	hubID uuid.UUID,
	date time.Time,
) (*schedule.SpecialDay, error) {

	var rec models.SpecialDay
	if err := r.db.WithContext(ctx).
		Where("hub_id = ? AND date = ?", hubID, schedule.DateOf(date)).
		First(&rec).Error; err != nil {
		return nil, notFound(err)
	}
	s := rec.ToDomain()
	return &s, nil
}

// FindRecurringSpecial matches yearly entries on month and day from any year;
// the earliest stored date wins.
func (r *ScheduleGormRepository) FindRecurringSpecial(
	ctx context.Context,
	hubID uuid.UUID,
	date time.Time,
) (*schedule.SpecialDay, error) {

	var rec models.SpecialDay
	if err := r.db.WithContext(ctx).
		Where(
			"hub_id = ? AND recurring_yearly = ? AND recur_month = ? AND recur_day = ?",
			hubID, true, int(date.Month()), date.Day(),
		).
		Order("date ASC").
		First(&rec).Error; err != nil {
		return nil, notFound(err)
	}
	s := rec.ToDomain()
	return &s, nil
}

func (r *ScheduleGormRepository) UpcomingSpecials(
	ctx context.Context,
	hubID uuid.UUID,
	from time.Time,
	limit int,
) ([]schedule.SpecialDay, error) {

	q := r.db.WithContext(ctx).
		Where("hub_id = ? AND date >= ?", hubID, schedule.DateOf(from)).
		Order("date ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var recs []models.SpecialDay
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	return specialsToDomain(recs), nil
}

func specialsToDomain(recs []models.SpecialDay) []schedule.SpecialDay {
	out := make([]schedule.SpecialDay, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.ToDomain())
	}
	return out
}

// --------------------------------------------------
// Overrides
// --------------------------------------------------

func (r *ScheduleGormRepository) ListOverrides(
	ctx context.Context,
	hubID uuid.UUID,
) ([]schedule.Override, error) {

	var recs []models.ScheduleOverride
	if err := r.db.WithContext(ctx).
		Where("hub_id = ?", hubID).
		Order("start_date DESC").
		Order("created_at DESC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return overridesToDomain(recs), nil
}

func (r *ScheduleGormRepository) GetOverride(
	ctx context.Context,
	hubID uuid.UUID,
	id uuid.UUID,
) (*schedule.Override, error) {

	var rec models.ScheduleOverride
	if err := r.db.WithContext(ctx).
		Where("hub_id = ? AND id = ?", hubID, id).
		First(&rec).Error; err != nil {
		return nil, notFound(err)
	}
	o := rec.ToDomain()
	return &o, nil
}

func (r *ScheduleGormRepository) CreateOverride(
	ctx context.Context,
	o *schedule.Override,
) error {

	var rec models.ScheduleOverride
	rec.Assign(*o)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return err
	}
	o.ID = rec.ID
	o.CreatedAt = rec.CreatedAt
	return nil
}

func (r *ScheduleGormRepository) UpdateOverride(
	ctx context.Context,
	o *schedule.Override,
) error {

	var rec models.ScheduleOverride
	if err := r.db.WithContext(ctx).
		Where("hub_id = ? AND id = ?", o.HubID, o.ID).
		First(&rec).Error; err != nil {
		return notFound(err)
	}

	rec.Assign(*o)
	return r.db.WithContext(ctx).Save(&rec).Error
}

func (r *ScheduleGormRepository) DeleteOverride(
	ctx context.Context,
	hubID uuid.UUID,
	id uuid.UUID,
) error {

	res := r.db.WithContext(ctx).
		Where("hub_id = ? AND id = ?", hubID, id).
		Delete(&models.ScheduleOverride{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return schedule.ErrNotFound
	}
	return nil
}

// FindOverride returns the override covering date. Overlaps are settled by
// the same precedence the in-memory calendar applies.
func (r *ScheduleGormRepository) FindOverride(
	ctx context.Context,
	hubID uuid.UUID,
	date time.Time,
) (*schedule.Override, error) {

	covering, err := r.overridesCovering(ctx, hubID, date)
	if err != nil {
		return nil, err
	}

	o, ok := schedule.NewCalendar(nil, covering).FindOverride(date)
	if !ok {
		return nil, schedule.ErrNotFound
	}
	return o, nil
}

func (r *ScheduleGormRepository) overridesCovering(
	ctx context.Context,
	hubID uuid.UUID,
	date time.Time,
) ([]schedule.Override, error) {

	d := schedule.DateOf(date)

	var recs []models.ScheduleOverride
	if err := r.db.WithContext(ctx).
		Where("hub_id = ? AND start_date <= ? AND end_date >= ?", hubID, d, d).
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return overridesToDomain(recs), nil
}

func overridesToDomain(recs []models.ScheduleOverride) []schedule.Override {
	out := make([]schedule.Override, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.ToDomain())
	}
	return out
}

// --------------------------------------------------
// Resolution
// --------------------------------------------------

// LoadDay fetches, in one read transaction, every live record that can decide
// availability on date: the weekly table, exact and recurring special days for
// that month/day, and overrides covering it.
func (r *ScheduleGormRepository) LoadDay(
	ctx context.Context,
	hubID uuid.UUID,
	date time.Time,
) (*schedule.DaySnapshot, error) {

	d := schedule.DateOf(date)
	snap := &schedule.DaySnapshot{Date: d}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var hours []models.BusinessHours
		if err := tx.
			Where("hub_id = ?", hubID).
			Find(&hours).Error; err != nil {
			return err
		}
		for _, h := range hours {
			snap.Weekly = append(snap.Weekly, h.ToDomain())
		}

		var specials []models.SpecialDay
		if err := tx.
			Where("hub_id = ?", hubID).
			Where(
				tx.Where("date = ?", d).
					Or("recurring_yearly = ? AND recur_month = ? AND recur_day = ?", true, int(d.Month()), d.Day()),
			).
			Find(&specials).Error; err != nil {
			return err
		}
		snap.Specials = specialsToDomain(specials)

		var overrides []models.ScheduleOverride
		if err := tx.
			Where("hub_id = ? AND start_date <= ? AND end_date >= ?", hubID, d, d).
			Find(&overrides).Error; err != nil {
			return err
		}
		snap.Overrides = overridesToDomain(overrides)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}
