package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/hub-schedules/internal/dto"
	"github.com/BruksfildServices01/hub-schedules/internal/httperr"
	"github.com/BruksfildServices01/hub-schedules/internal/httpresp"
	"github.com/BruksfildServices01/hub-schedules/internal/middleware"
	ucSchedule "github.com/BruksfildServices01/hub-schedules/internal/usecase/schedule"
)

type OverrideHandler struct {
	list   *ucSchedule.ListOverrides
	create *ucSchedule.CreateOverride
	update *ucSchedule.UpdateOverride
	remove *ucSchedule.DeleteOverride
	log    zerolog.Logger
}

func NewOverrideHandler(
	list *ucSchedule.ListOverrides,
	create *ucSchedule.CreateOverride,
	update *ucSchedule.UpdateOverride,
	remove *ucSchedule.DeleteOverride,
	log zerolog.Logger,
) *OverrideHandler {
	return &OverrideHandler{
		list:   list,
		create: create,
		update: update,
		remove: remove,
		log:    log,
	}
}

func (h *OverrideHandler) List(c *gin.Context) {
	list, err := h.list.Execute(c.Request.Context(), middleware.HubID(c))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.List(c, dto.Overrides(list))
}

func (h *OverrideHandler) Create(c *gin.Context) {
	var req dto.OverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	o, err := req.ToDomain()
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	created, err := h.create.Execute(c.Request.Context(), actorFrom(c), o)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.Created(c, dto.Override(*created))
}

func (h *OverrideHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.OverridePatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	patch, err := req.ToPatch()
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	updated, err := h.update.Execute(c.Request.Context(), actorFrom(c), id, patch)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, dto.Override(*updated))
}

func (h *OverrideHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), actorFrom(c), id); err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.NoContent(c)
}
