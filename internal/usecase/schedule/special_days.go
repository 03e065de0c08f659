package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/hub-schedules/internal/domain/schedule"
)

const entitySpecialDay = "special_day"

type ListSpecialDays struct {
	repo domain.Repository
}

func NewListSpecialDays(repo domain.Repository) *ListSpecialDays {
	return &ListSpecialDays{repo: repo}
}

func (uc *ListSpecialDays) Execute(
	ctx context.Context,
	hubID uuid.UUID,
) ([]domain.SpecialDay, error) {

	list, err := uc.repo.ListSpecialDays(ctx, hubID)
	if err != nil {
		return nil, fmt.Errorf("list special days: %w", err)
	}
	return list, nil
}

// UpcomingSpecialDays lists special days from the hub's current date onward.
type UpcomingSpecialDays struct {
	repo     domain.Repository
	settings SettingsSource
}

const DefaultUpcomingLimit = 20

func NewUpcomingSpecialDays(repo domain.Repository, settings SettingsSource) *UpcomingSpecialDays {
	return &UpcomingSpecialDays{repo: repo, settings: settings}
}

func (uc *UpcomingSpecialDays) Execute(
	ctx context.Context,
	hubID uuid.UUID,
	now time.Time,
	limit int,
) ([]domain.SpecialDay, error) {

	s, err := uc.settings.Execute(ctx, hubID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}

	today, _ := localMoment(s, now)
	list, err := uc.repo.UpcomingSpecials(ctx, hubID, today, limit)
	if err != nil {
		return nil, fmt.Errorf("upcoming special days: %w", err)
	}
	return list, nil
}

type CreateSpecialDay struct {
	repo domain.Repository
	Effects
}

func NewCreateSpecialDay(repo domain.Repository, fx Effects) *CreateSpecialDay {
	return &CreateSpecialDay{repo: repo, Effects: fx}
}

func (uc *CreateSpecialDay) Execute(
	ctx context.Context,
	actor Actor,
	sd domain.SpecialDay,
) (*domain.SpecialDay, error) {

	sd.ID = uuid.Nil
	sd.HubID = actor.HubID
	sd.Date = domain.DateOf(sd.Date)
	if err := uc.validate(entitySpecialDay, sd.Validate()); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateSpecialDay(ctx, &sd); err != nil {
		return nil, storeErr("create special day", err, "special_day_not_found")
	}

	uc.record(actor, entitySpecialDay, "create", sd.ID, map[string]any{
		"date": sd.Date.Format(domain.DateLayout),
		"name": sd.Name,
	})
	return &sd, nil
}

type UpdateSpecialDay struct {
	repo domain.Repository
	Effects
}

func NewUpdateSpecialDay(repo domain.Repository, fx Effects) *UpdateSpecialDay {
	return &UpdateSpecialDay{repo: repo, Effects: fx}
}

// Execute applies the supplied fields to the stored record and re-validates
// the result before saving.
func (uc *UpdateSpecialDay) Execute(
	ctx context.Context,
	actor Actor,
	id uuid.UUID,
	patch domain.SpecialDayPatch,
) (*domain.SpecialDay, error) {

	sd, err := uc.repo.GetSpecialDay(ctx, actor.HubID, id)
	if err != nil {
		return nil, storeErr("get special day", err, "special_day_not_found")
	}

	patch.Apply(sd)
	if err := uc.validate(entitySpecialDay, sd.Validate()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateSpecialDay(ctx, sd); err != nil {
		return nil, storeErr("update special day", err, "special_day_not_found")
	}

	uc.record(actor, entitySpecialDay, "update", sd.ID, map[string]any{
		"date": sd.Date.Format(domain.DateLayout),
		"name": sd.Name,
	})
	return sd, nil
}

type DeleteSpecialDay struct {
	repo domain.Repository
	Effects
}

func NewDeleteSpecialDay(repo domain.Repository, fx Effects) *DeleteSpecialDay {
	return &DeleteSpecialDay{repo: repo, Effects: fx}
}

func (uc *DeleteSpecialDay) Execute(
	ctx context.Context,
	actor Actor,
	id uuid.UUID,
) error {

	if err := uc.repo.DeleteSpecialDay(ctx, actor.HubID, id); err != nil {
		return storeErr("delete special day", err, "special_day_not_found")
	}
	uc.record(actor, entitySpecialDay, "delete", id, nil)
	return nil
}
