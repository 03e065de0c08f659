package schedule

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/hub-schedules/internal/domain/schedule"
)

type ListHours struct {
	repo domain.Repository
}

func NewListHours(repo domain.Repository) *ListHours {
	return &ListHours{repo: repo}
}

// Execute returns Monday..Sunday with nil for days that were never configured.
func (uc *ListHours) Execute(
	ctx context.Context,
	hubID uuid.UUID,
) ([]*domain.WeeklyEntry, error) {

	entries, err := uc.repo.ListWeeklyEntries(ctx, hubID)
	if err != nil {
		return nil, fmt.Errorf("list hours: %w", err)
	}
	return domain.NewWeeklyTable(entries).Week(), nil
}

type UpsertHours struct {
	repo domain.Repository
	Effects
}

func NewUpsertHours(repo domain.Repository, fx Effects) *UpsertHours {
	return &UpsertHours{repo: repo, Effects: fx}
}

// Execute creates or replaces the entry for e.Weekday.
func (uc *UpsertHours) Execute(
	ctx context.Context,
	actor Actor,
	e domain.WeeklyEntry,
) (*domain.WeeklyEntry, error) {

	e.HubID = actor.HubID
	if err := uc.validate("business_hours", e.Validate()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpsertWeeklyEntry(ctx, &e); err != nil {
		return nil, fmt.Errorf("upsert hours: %w", err)
	}

	uc.record(actor, "business_hours", "upsert", e.ID, map[string]any{
		"day_of_week": int(e.Weekday),
		"is_closed":   e.Closed,
	})
	return &e, nil
}

// WeeklySlots lists slot starts for a configured weekday, ignoring exceptions.
type WeeklySlots struct {
	repo     domain.Repository
	settings SettingsSource
}

func NewWeeklySlots(repo domain.Repository, settings SettingsSource) *WeeklySlots {
	return &WeeklySlots{repo: repo, settings: settings}
}

func (uc *WeeklySlots) Execute(
	ctx context.Context,
	hubID uuid.UUID,
	weekday domain.Weekday,
) ([]domain.Clock, error) {

	s, err := uc.settings.Execute(ctx, hubID)
	if err != nil {
		return nil, err
	}

	e, err := uc.repo.GetWeeklyEntry(ctx, hubID, weekday)
	if err != nil {
		return nil, storeErr("get hours", err, "hours_not_found")
	}
	return domain.GenerateSlots(*e, s.Stride()), nil
}
