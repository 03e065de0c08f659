package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/hub-schedules/internal/domain/schedule"
)

// DashboardView is the weekly grid plus everything that affects today.
type DashboardView struct {
	Week          []*domain.WeeklyEntry
	Today         time.Time
	Weekday       domain.Weekday
	Now           domain.Clock
	IsOpen        bool
	Status        domain.Status
	TodayHours    *domain.WeeklyEntry
	EffectiveDay  *domain.WeeklyEntry
	SpecialToday  *domain.SpecialDay
	OverrideToday *domain.Override
	NextSpecial   *domain.SpecialDay
	Timezone      string
}

type Dashboard struct {
	repo     domain.Repository
	settings SettingsSource
}

func NewDashboard(repo domain.Repository, settings SettingsSource) *Dashboard {
	return &Dashboard{repo: repo, settings: settings}
}

func (uc *Dashboard) Execute(
	ctx context.Context,
	hubID uuid.UUID,
	now time.Time,
) (*DashboardView, error) {

	s, err := uc.settings.Execute(ctx, hubID)
	if err != nil {
		return nil, err
	}
	today, clock := localMoment(s, now)

	snap, err := uc.repo.LoadDay(ctx, hubID, today)
	if err != nil {
		return nil, fmt.Errorf("load day: %w", err)
	}
	cal := snap.Calendar()
	week := snap.WeeklyTable()

	view := &DashboardView{
		Week:     week.Week(),
		Today:    today,
		Weekday:  domain.WeekdayOf(today),
		Now:      clock,
		IsOpen:   domain.DashboardOpen(cal, week, today, clock),
		Status:   domain.Resolve(cal, week, today, clock),
		Timezone: s.Timezone,
	}

	if e, ok := week.EntryFor(view.Weekday); ok {
		view.TodayHours = &e
	}
	if e, _, ok := domain.EffectiveEntry(cal, week, today); ok {
		view.EffectiveDay = &e
	}
	if sd, ok := cal.FindExactSpecial(today); ok {
		view.SpecialToday = sd
	} else if sd, ok := cal.FindRecurringSpecial(today); ok {
		view.SpecialToday = sd
	}
	if o, ok := cal.FindOverride(today); ok {
		view.OverrideToday = o
	}

	next, err := uc.repo.UpcomingSpecials(ctx, hubID, today, 1)
	if err != nil {
		return nil, fmt.Errorf("upcoming specials: %w", err)
	}
	if len(next) > 0 {
		view.NextSpecial = &next[0]
	}

	return view, nil
}
