package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/hub-schedules/internal/domain/schedule"
	"github.com/BruksfildServices01/hub-schedules/internal/httperr"
	"github.com/BruksfildServices01/hub-schedules/internal/httpresp"
	"github.com/BruksfildServices01/hub-schedules/internal/middleware"
	ucSchedule "github.com/BruksfildServices01/hub-schedules/internal/usecase/schedule"
)

type SettingsHandler struct {
	get    *ucSchedule.GetSettings
	update *ucSchedule.UpdateSettings
	log    zerolog.Logger
}

func NewSettingsHandler(
	get *ucSchedule.GetSettings,
	update *ucSchedule.UpdateSettings,
	log zerolog.Logger,
) *SettingsHandler {
	return &SettingsHandler{get: get, update: update, log: log}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	s, err := h.get.Execute(c.Request.Context(), middleware.HubID(c))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, s)
}

// Patch changes only the fields present in the body.
func (h *SettingsHandler) Patch(c *gin.Context) {
	var patch domain.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	s, err := h.update.Execute(c.Request.Context(), actorFrom(c), patch)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, s)
}
