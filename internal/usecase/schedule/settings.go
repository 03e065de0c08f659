package schedule

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/hub-schedules/internal/domain/schedule"
	"github.com/BruksfildServices01/hub-schedules/internal/metrics"
)

// GetSettings reads a hub's settings through the optional cache, creating
// defaults on first access.
type GetSettings struct {
	repo    domain.Repository
	cache   SettingsCache
	metrics *metrics.ScheduleMetrics
	log     zerolog.Logger
}

func NewGetSettings(
	repo domain.Repository,
	cache SettingsCache,
	m *metrics.ScheduleMetrics,
	log zerolog.Logger,
) *GetSettings {
	return &GetSettings{repo: repo, cache: cache, metrics: m, log: log}
}

func (uc *GetSettings) Execute(
	ctx context.Context,
	hubID uuid.UUID,
) (*domain.Settings, error) {

	if uc.cache != nil {
		s, ok, err := uc.cache.Get(ctx, hubID)
		if err != nil {
			uc.log.Warn().Err(err).Str("hub_id", hubID.String()).Msg("settings cache read failed")
		}
		uc.metrics.ObserveCache(ok)
		if ok {
			return s, nil
		}
	}

	s, err := uc.repo.GetOrCreateSettings(ctx, hubID)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, s); err != nil {
			uc.log.Warn().Err(err).Str("hub_id", hubID.String()).Msg("settings cache write failed")
		}
	}
	return s, nil
}

type UpdateSettings struct {
	repo  domain.Repository
	cache SettingsCache
	log   zerolog.Logger
	Effects
}

func NewUpdateSettings(
	repo domain.Repository,
	cache SettingsCache,
	fx Effects,
	log zerolog.Logger,
) *UpdateSettings {
	return &UpdateSettings{repo: repo, cache: cache, log: log, Effects: fx}
}

// Execute applies only the supplied fields, then validates the whole record.
func (uc *UpdateSettings) Execute(
	ctx context.Context,
	actor Actor,
	patch domain.SettingsPatch,
) (*domain.Settings, error) {

	s, err := uc.repo.GetOrCreateSettings(ctx, actor.HubID)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	patch.Apply(s)
	if err := uc.validate("settings", s.Validate()); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveSettings(ctx, s); err != nil {
		return nil, storeErr("save settings", err, "settings_not_found")
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, actor.HubID); err != nil {
			uc.log.Warn().Err(err).Str("hub_id", actor.HubID.String()).Msg("settings cache invalidation failed")
		}
	}

	uc.record(actor, "settings", "update", s.ID, s)
	return s, nil
}
