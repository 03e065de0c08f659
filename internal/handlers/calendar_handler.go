package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/hub-schedules/internal/calendar"
	"github.com/BruksfildServices01/hub-schedules/internal/middleware"
	ucSchedule "github.com/BruksfildServices01/hub-schedules/internal/usecase/schedule"
)

type CalendarHandler struct {
	export *ucSchedule.ExportCalendar
	now    func() time.Time
	log    zerolog.Logger
}

func NewCalendarHandler(export *ucSchedule.ExportCalendar, now func() time.Time, log zerolog.Logger) *CalendarHandler {
	if now == nil {
		now = time.Now
	}
	return &CalendarHandler{export: export, now: now, log: log}
}

// GET /api/schedules/calendar.ics[?name=]
func (h *CalendarHandler) Feed(c *gin.Context) {
	name := c.DefaultQuery("name", "Schedule")

	body, err := h.export.Execute(c.Request.Context(), middleware.HubID(c), name, h.now())
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+calendar.Filename(name)+`"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(body))
}
