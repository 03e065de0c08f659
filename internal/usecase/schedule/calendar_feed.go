package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/hub-schedules/internal/calendar"
	domain "github.com/BruksfildServices01/hub-schedules/internal/domain/schedule"
)

// ExportCalendar renders every live special day and override as iCalendar.
type ExportCalendar struct {
	repo     domain.Repository
	settings SettingsSource
}

func NewExportCalendar(repo domain.Repository, settings SettingsSource) *ExportCalendar {
	return &ExportCalendar{repo: repo, settings: settings}
}

func (uc *ExportCalendar) Execute(
	ctx context.Context,
	hubID uuid.UUID,
	name string,
	now time.Time,
) (string, error) {

	s, err := uc.settings.Execute(ctx, hubID)
	if err != nil {
		return "", err
	}

	specials, err := uc.repo.ListSpecialDays(ctx, hubID)
	if err != nil {
		return "", fmt.Errorf("list special days: %w", err)
	}
	overrides, err := uc.repo.ListOverrides(ctx, hubID)
	if err != nil {
		return "", fmt.Errorf("list overrides: %w", err)
	}

	return calendar.Export(name, specials, overrides, s.Location(), now.UTC()), nil
}
