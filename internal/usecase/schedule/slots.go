package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/hub-schedules/internal/domain/schedule"
	"github.com/BruksfildServices01/hub-schedules/internal/metrics"
)

type DateSlotsResult struct {
	Date   time.Time
	Source domain.Source
	Stride int
	Slots  []domain.Clock
}

// DateSlots lists slot starts for a calendar date, honouring overrides and
// special days.
type DateSlots struct {
	repo     domain.Repository
	settings SettingsSource
	metrics  *metrics.ScheduleMetrics
}

func NewDateSlots(
	repo domain.Repository,
	settings SettingsSource,
	m *metrics.ScheduleMetrics,
) *DateSlots {
	return &DateSlots{repo: repo, settings: settings, metrics: m}
}

func (uc *DateSlots) Execute(
	ctx context.Context,
	hubID uuid.UUID,
	date time.Time,
) (*DateSlotsResult, error) {

	s, err := uc.settings.Execute(ctx, hubID)
	if err != nil {
		return nil, err
	}

	day := domain.DateOf(date)
	snap, err := uc.repo.LoadDay(ctx, hubID, day)
	if err != nil {
		return nil, fmt.Errorf("load day: %w", err)
	}

	slots, src := domain.SlotsForDate(snap.Calendar(), snap.WeeklyTable(), day, s.Stride())
	uc.metrics.ObserveSlots(string(src), len(slots))

	return &DateSlotsResult{
		Date:   day,
		Source: src,
		Stride: s.Stride(),
		Slots:  slots,
	}, nil
}
