package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/hub-schedules/internal/audit"
	domain "github.com/BruksfildServices01/hub-schedules/internal/domain/schedule"
	"github.com/BruksfildServices01/hub-schedules/internal/httperr"
	"github.com/BruksfildServices01/hub-schedules/internal/metrics"
)

// Actor identifies who performs a mutation.
type Actor struct {
	HubID   uuid.UUID
	Subject string
}

// SettingsCache is satisfied by cache.SettingsCache.
type SettingsCache interface {
	Get(ctx context.Context, hubID uuid.UUID) (*domain.Settings, bool, error)
	Set(ctx context.Context, s *domain.Settings) error
	Invalidate(ctx context.Context, hubID uuid.UUID) error
}

// SettingsSource is what read paths need to localize "now" and pick a stride.
type SettingsSource interface {
	Execute(ctx context.Context, hubID uuid.UUID) (*domain.Settings, error)
}

// Effects are the side effects shared by every write use case. Both fields
// may be nil.
type Effects struct {
	Audit   *audit.Dispatcher
	Metrics *metrics.ScheduleMetrics
}

func (m Effects) record(actor Actor, entity, action string, id uuid.UUID, meta any) {
	m.Metrics.ObserveWrite(entity, action)

	ev := audit.Event{
		HubID:    actor.HubID,
		Subject:  actor.Subject,
		Action:   entity + "." + action,
		Entity:   entity,
		Metadata: meta,
	}
	if id != uuid.Nil {
		eid := id
		ev.EntityID = &eid
	}
	m.Audit.Dispatch(ev)
}

func (m Effects) validate(entity string, err error) error {
	if err != nil {
		m.Metrics.ObserveRejected(entity)
	}
	return err
}

// storeErr maps repository sentinels to business codes and wraps the rest.
func storeErr(op string, err error, notFoundCode string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNotFound):
		return httperr.ErrBusiness(notFoundCode)
	case errors.Is(err, domain.ErrConflict):
		return httperr.ErrBusiness("special_day_exists")
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
