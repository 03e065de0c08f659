package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/hub-schedules/internal/dto"
	"github.com/BruksfildServices01/hub-schedules/internal/httperr"
	"github.com/BruksfildServices01/hub-schedules/internal/middleware"
	"github.com/BruksfildServices01/hub-schedules/internal/timezone"
	ucSchedule "github.com/BruksfildServices01/hub-schedules/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type StatusHandler struct {
	dashboard *ucSchedule.Dashboard
	resolve   *ucSchedule.ResolveStatus
	settings  ucSchedule.SettingsSource
	now       func() time.Time
	log       zerolog.Logger
}

func NewStatusHandler(
	dashboard *ucSchedule.Dashboard,
	resolve *ucSchedule.ResolveStatus,
	settings ucSchedule.SettingsSource,
	now func() time.Time,
	log zerolog.Logger,
) *StatusHandler {
	if now == nil {
		now = time.Now
	}
	return &StatusHandler{
		dashboard: dashboard,
		resolve:   resolve,
		settings:  settings,
		now:       now,
		log:       log,
	}
}

// ======================================================
// GET /api/schedules/is-open[?at=]
// ======================================================

// IsOpen resolves the current instant, or ?at= given as RFC3339 or as a
// wall-clock "YYYY-MM-DDTHH:MM" in the hub's timezone.
func (h *StatusHandler) IsOpen(c *gin.Context) {
	hubID := middleware.HubID(c)
	at := h.now()

	if raw := c.Query("at"); raw != "" {
		s, err := h.settings.Execute(c.Request.Context(), hubID)
		if err != nil {
			writeError(c, h.log, err)
			return
		}
		parsed, err := timezone.ParseInstant(raw, s.Location())
		if err != nil {
			httperr.BadRequest(c, "invalid_at", "Parameter 'at' must be RFC3339 or YYYY-MM-DDTHH:MM.")
			return
		}
		at = parsed
	}

	res, err := h.resolve.Execute(c.Request.Context(), hubID, at)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.Status(res.Status, res.Date, res.Time, res.Timezone))
}

// ======================================================
// GET /api/schedules/dashboard
// ======================================================

func (h *StatusHandler) Dashboard(c *gin.Context) {
	view, err := h.dashboard.Execute(c.Request.Context(), middleware.HubID(c), h.now())
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	out := dto.DashboardDTO{
		Week:        dto.Week(view.Week),
		Today:       view.Today.Format("2006-01-02"),
		DayOfWeek:   int(view.Weekday),
		DayLabel:    view.Weekday.String(),
		CurrentTime: view.Now.String(),
		IsOpen:      view.IsOpen,
		Reason:      view.Status.Reason,
		Source:      string(view.Status.Source),
		Timezone:    view.Timezone,
	}
	if view.TodayHours != nil {
		e := dto.WeeklyEntry(view.Weekday, view.TodayHours)
		out.TodayHours = &e
	}
	if view.EffectiveDay != nil {
		e := dto.WeeklyEntry(view.Weekday, view.EffectiveDay)
		out.EffectiveHours = &e
	}
	if view.SpecialToday != nil {
		s := dto.SpecialDay(*view.SpecialToday)
		out.SpecialToday = &s
	}
	if view.OverrideToday != nil {
		o := dto.Override(*view.OverrideToday)
		out.OverrideToday = &o
	}
	if view.NextSpecial != nil {
		s := dto.SpecialDay(*view.NextSpecial)
		out.NextSpecial = &s
	}

	c.JSON(http.StatusOK, out)
}
