package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/hub-schedules/internal/domain/schedule"
	"github.com/BruksfildServices01/hub-schedules/internal/dto"
	"github.com/BruksfildServices01/hub-schedules/internal/httperr"
	"github.com/BruksfildServices01/hub-schedules/internal/httpresp"
	"github.com/BruksfildServices01/hub-schedules/internal/middleware"
	ucSchedule "github.com/BruksfildServices01/hub-schedules/internal/usecase/schedule"
)

type HoursHandler struct {
	list        *ucSchedule.ListHours
	upsert      *ucSchedule.UpsertHours
	weeklySlots *ucSchedule.WeeklySlots
	dateSlots   *ucSchedule.DateSlots
	settings    ucSchedule.SettingsSource
	now         func() time.Time
	log         zerolog.Logger
}

func NewHoursHandler(
	list *ucSchedule.ListHours,
	upsert *ucSchedule.UpsertHours,
	weeklySlots *ucSchedule.WeeklySlots,
	dateSlots *ucSchedule.DateSlots,
	settings ucSchedule.SettingsSource,
	now func() time.Time,
	log zerolog.Logger,
) *HoursHandler {
	if now == nil {
		now = time.Now
	}
	return &HoursHandler{
		list:        list,
		upsert:      upsert,
		weeklySlots: weeklySlots,
		dateSlots:   dateSlots,
		settings:    settings,
		now:         now,
		log:         log,
	}
}

// GET /api/schedules/hours
func (h *HoursHandler) List(c *gin.Context) {
	week, err := h.list.Execute(c.Request.Context(), middleware.HubID(c))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.List(c, dto.Week(week))
}

// PUT /api/schedules/hours
func (h *HoursHandler) Upsert(c *gin.Context) {
	var req dto.HoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	entry, err := req.ToDomain()
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	saved, err := h.upsert.Execute(c.Request.Context(), actorFrom(c), entry)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.WeeklyEntry(saved.Weekday, saved))
}

// GET /api/schedules/hours/:weekday/slots
func (h *HoursHandler) WeeklySlots(c *gin.Context) {
	n, err := strconv.Atoi(c.Param("weekday"))
	weekday := domain.Weekday(n)
	if err != nil || !weekday.Valid() {
		httperr.BadRequest(c, "invalid_weekday", "Weekday must be 0 (Monday) to 6 (Sunday).")
		return
	}

	hubID := middleware.HubID(c)
	slots, err := h.weeklySlots.Execute(c.Request.Context(), hubID, weekday)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	s, err := h.settings.Execute(c.Request.Context(), hubID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	day := int(weekday)
	c.JSON(http.StatusOK, dto.SlotsDTO{
		DayOfWeek:    &day,
		SlotDuration: s.Stride(),
		Slots:        domain.FormatSlots(slots),
	})
}

// GET /api/schedules/slots?date=YYYY-MM-DD
// Without a date, today in the hub's timezone is used.
func (h *HoursHandler) DateSlots(c *gin.Context) {
	hubID := middleware.HubID(c)

	var date time.Time
	if raw := c.Query("date"); raw != "" {
		d, err := domain.ParseDate(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Parameter 'date' must be YYYY-MM-DD.")
			return
		}
		date = d
	} else {
		s, err := h.settings.Execute(c.Request.Context(), hubID)
		if err != nil {
			writeError(c, h.log, err)
			return
		}
		date = domain.DateOf(h.now().In(s.Location()))
	}

	res, err := h.dateSlots.Execute(c.Request.Context(), hubID, date)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.SlotsDTO{
		Date:         res.Date.Format(domain.DateLayout),
		Source:       string(res.Source),
		SlotDuration: res.Stride,
		Slots:        domain.FormatSlots(res.Slots),
	})
}
