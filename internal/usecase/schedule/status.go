package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/hub-schedules/internal/domain/schedule"
	"github.com/BruksfildServices01/hub-schedules/internal/metrics"
)

// StatusResult is a resolution plus the local date and time it was made for.
type StatusResult struct {
	domain.Status
	Date     time.Time
	Time     domain.Clock
	Timezone string
}

// localMoment converts an instant to the hub's calendar date and wall clock.
func localMoment(s *domain.Settings, at time.Time) (time.Time, domain.Clock) {
	local := at.In(s.Location())
	return domain.DateOf(local), domain.ClockOf(local)
}

type ResolveStatus struct {
	repo     domain.Repository
	settings SettingsSource
	metrics  *metrics.ScheduleMetrics
}

func NewResolveStatus(
	repo domain.Repository,
	settings SettingsSource,
	m *metrics.ScheduleMetrics,
) *ResolveStatus {
	return &ResolveStatus{repo: repo, settings: settings, metrics: m}
}

// Execute answers whether the hub is open at the instant at, evaluated in the
// hub's configured timezone.
func (uc *ResolveStatus) Execute(
	ctx context.Context,
	hubID uuid.UUID,
	at time.Time,
) (*StatusResult, error) {

	s, err := uc.settings.Execute(ctx, hubID)
	if err != nil {
		return nil, err
	}

	date, clock := localMoment(s, at)

	snap, err := uc.repo.LoadDay(ctx, hubID, date)
	if err != nil {
		return nil, fmt.Errorf("load day: %w", err)
	}

	st := domain.Resolve(snap.Calendar(), snap.WeeklyTable(), date, clock)
	uc.metrics.ObserveResolution(string(st.Source), st.IsOpen)

	return &StatusResult{
		Status:   st,
		Date:     date,
		Time:     clock,
		Timezone: s.Timezone,
	}, nil
}
