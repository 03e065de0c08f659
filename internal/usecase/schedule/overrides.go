package schedule

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/hub-schedules/internal/domain/schedule"
)

const entityOverride = "override"

type ListOverrides struct {
	repo domain.Repository
}

func NewListOverrides(repo domain.Repository) *ListOverrides {
	return &ListOverrides{repo: repo}
}

// Execute lists overrides newest range first.
func (uc *ListOverrides) Execute(
	ctx context.Context,
	hubID uuid.UUID,
) ([]domain.Override, error) {

	list, err := uc.repo.ListOverrides(ctx, hubID)
	if err != nil {
		return nil, fmt.Errorf("list overrides: %w", err)
	}
	return list, nil
}

type CreateOverride struct {
	repo domain.Repository
	Effects
}

func NewCreateOverride(repo domain.Repository, fx Effects) *CreateOverride {
	return &CreateOverride{repo: repo, Effects: fx}
}

func (uc *CreateOverride) Execute(
	ctx context.Context,
	actor Actor,
	o domain.Override,
) (*domain.Override, error) {

	o.ID = uuid.Nil
	o.HubID = actor.HubID
	o.StartDate = domain.DateOf(o.StartDate)
	o.EndDate = domain.DateOf(o.EndDate)
	if err := uc.validate(entityOverride, o.Validate()); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateOverride(ctx, &o); err != nil {
		return nil, storeErr("create override", err, "override_not_found")
	}

	uc.record(actor, entityOverride, "create", o.ID, overrideMeta(o))
	return &o, nil
}

type UpdateOverride struct {
	repo domain.Repository
	Effects
}

func NewUpdateOverride(repo domain.Repository, fx Effects) *UpdateOverride {
	return &UpdateOverride{repo: repo, Effects: fx}
}

func (uc *UpdateOverride) Execute(
	ctx context.Context,
	actor Actor,
	id uuid.UUID,
	patch domain.OverridePatch,
) (*domain.Override, error) {

	o, err := uc.repo.GetOverride(ctx, actor.HubID, id)
	if err != nil {
		return nil, storeErr("get override", err, "override_not_found")
	}

	patch.Apply(o)
	if err := uc.validate(entityOverride, o.Validate()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateOverride(ctx, o); err != nil {
		return nil, storeErr("update override", err, "override_not_found")
	}

	uc.record(actor, entityOverride, "update", o.ID, overrideMeta(*o))
	return o, nil
}

type DeleteOverride struct {
	repo domain.Repository
	Effects
}

func NewDeleteOverride(repo domain.Repository, fx Effects) *DeleteOverride {
	return &DeleteOverride{repo: repo, Effects: fx}
}

func (uc *DeleteOverride) Execute(
	ctx context.Context,
	actor Actor,
	id uuid.UUID,
) error {

	if err := uc.repo.DeleteOverride(ctx, actor.HubID, id); err != nil {
		return storeErr("delete override", err, "override_not_found")
	}
	uc.record(actor, entityOverride, "delete", id, nil)
	return nil
}

func overrideMeta(o domain.Override) map[string]any {
	return map[string]any{
		"start_date": o.StartDate.Format(domain.DateLayout),
		"end_date":   o.EndDate.Format(domain.DateLayout),
		"reason":     o.Reason,
		"is_closed":  o.Closed,
	}
}
