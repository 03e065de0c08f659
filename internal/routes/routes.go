package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BruksfildServices01/hub-schedules/internal/app"
	"github.com/BruksfildServices01/hub-schedules/internal/config"
	"github.com/BruksfildServices01/hub-schedules/internal/handlers"
	"github.com/BruksfildServices01/hub-schedules/internal/middleware"
)

const PermissionManageSettings = "schedules.manage_settings"

// RegisterRoutes mounts the schedules API. gatherer may be nil, in which
// case /metrics is not exposed. now may be nil to use the wall clock.
func RegisterRoutes(
	r *gin.Engine,
	a *app.App,
	cfg *config.Config,
	gatherer prometheus.Gatherer,
	now func() time.Time,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	r.Use(middleware.RequestLogger(a.Log, a.Metrics))

	// ======================================================
	// HANDLERS
	// ======================================================
	statusHandler := handlers.NewStatusHandler(a.Dashboard, a.ResolveStatus, a.GetSettings, now, a.Log)
	hoursHandler := handlers.NewHoursHandler(a.ListHours, a.UpsertHours, a.WeeklySlots, a.DateSlots, a.GetSettings, now, a.Log)

	specialDayHandler := handlers.NewSpecialDayHandler(
		a.ListSpecialDays,
		a.UpcomingSpecialDays,
		a.CreateSpecialDay,
		a.UpdateSpecialDay,
		a.DeleteSpecialDay,
		now,
		a.Log,
	)

	overrideHandler := handlers.NewOverrideHandler(
		a.ListOverrides,
		a.CreateOverride,
		a.UpdateOverride,
		a.DeleteOverride,
		a.Log,
	)

	settingsHandler := handlers.NewSettingsHandler(a.GetSettings, a.UpdateSettings, a.Log)
	calendarHandler := handlers.NewCalendarHandler(a.ExportCalendar, now, a.Log)
	auditLogsHandler := handlers.NewAuditLogsHandler(a.AuditLog, a.Log)
	healthHandler := handlers.NewHealthHandler(a.DB, a.Redis)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.GET("/health", healthHandler.Check)

	if cfg.MetricsEnabled && gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	// ======================================================
	// API (JSON, per hub)
	// ======================================================
	secured := r.Group("/api/schedules")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.GET("/dashboard", statusHandler.Dashboard)
		secured.GET("/is-open", statusHandler.IsOpen)

		secured.GET("/hours", hoursHandler.List)
		secured.PUT("/hours", hoursHandler.Upsert)
		secured.GET("/hours/:weekday/slots", hoursHandler.WeeklySlots)
		secured.GET("/slots", hoursHandler.DateSlots)

		secured.GET("/special-days", specialDayHandler.List)
		secured.GET("/special-days/upcoming", specialDayHandler.Upcoming)
		secured.POST("/special-days", specialDayHandler.Create)
		secured.PATCH("/special-days/:id", specialDayHandler.Update)
		secured.DELETE("/special-days/:id", specialDayHandler.Delete)

		secured.GET("/overrides", overrideHandler.List)
		secured.POST("/overrides", overrideHandler.Create)
		secured.PATCH("/overrides/:id", overrideHandler.Update)
		secured.DELETE("/overrides/:id", overrideHandler.Delete)

		secured.GET("/calendar.ics", calendarHandler.Feed)
		secured.GET("/audit-logs", auditLogsHandler.List)

		managed := secured.Group("/settings")
		managed.Use(middleware.RequirePermission(PermissionManageSettings))
		{
			managed.GET("", settingsHandler.Get)
			managed.PATCH("", settingsHandler.Patch)
		}
	}
}
