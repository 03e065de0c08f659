package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/hub-schedules/internal/dto"
	"github.com/BruksfildServices01/hub-schedules/internal/httperr"
	"github.com/BruksfildServices01/hub-schedules/internal/httpresp"
	"github.com/BruksfildServices01/hub-schedules/internal/middleware"
	ucSchedule "github.com/BruksfildServices01/hub-schedules/internal/usecase/schedule"
)

type SpecialDayHandler struct {
	list     *ucSchedule.ListSpecialDays
	upcoming *ucSchedule.UpcomingSpecialDays
	create   *ucSchedule.CreateSpecialDay
	update   *ucSchedule.UpdateSpecialDay
	remove   *ucSchedule.DeleteSpecialDay
	now      func() time.Time
	log      zerolog.Logger
}

func NewSpecialDayHandler(
	list *ucSchedule.ListSpecialDays,
	upcoming *ucSchedule.UpcomingSpecialDays,
	create *ucSchedule.CreateSpecialDay,
	update *ucSchedule.UpdateSpecialDay,
	remove *ucSchedule.DeleteSpecialDay,
	now func() time.Time,
	log zerolog.Logger,
) *SpecialDayHandler {
	if now == nil {
		now = time.Now
	}
	return &SpecialDayHandler{
		list:     list,
		upcoming: upcoming,
		create:   create,
		update:   update,
		remove:   remove,
		now:      now,
		log:      log,
	}
}

func (h *SpecialDayHandler) List(c *gin.Context) {
	list, err := h.list.Execute(c.Request.Context(), middleware.HubID(c))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.List(c, dto.SpecialDays(list))
}

func (h *SpecialDayHandler) Upcoming(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	list, err := h.upcoming.Execute(c.Request.Context(), middleware.HubID(c), h.now(), limit)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.List(c, dto.SpecialDays(list))
}

func (h *SpecialDayHandler) Create(c *gin.Context) {
	var req dto.SpecialDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	sd, err := req.ToDomain()
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	created, err := h.create.Execute(c.Request.Context(), actorFrom(c), sd)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.Created(c, dto.SpecialDay(*created))
}

func (h *SpecialDayHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.SpecialDayPatchRequest
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
	httpresp.OK(c, dto.SpecialDay(*updated))
}

func (h *SpecialDayHandler) Delete(c *gin.Context) {
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

// pathID parses :id, answering 404 for malformed ids.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "not_found", "Resource not found.")
		return uuid.Nil, false
	}
	return id, true
}
