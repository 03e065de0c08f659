package app

import (
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/hub-schedules/internal/audit"
	"github.com/BruksfildServices01/hub-schedules/internal/cache"
	"github.com/BruksfildServices01/hub-schedules/internal/config"
	infraRepo "github.com/BruksfildServices01/hub-schedules/internal/infra/repository"
	"github.com/BruksfildServices01/hub-schedules/internal/metrics"
	ucSchedule "github.com/BruksfildServices01/hub-schedules/internal/usecase/schedule"
)

// App holds the singletons and use cases shared by the HTTP server and the CLI.
type App struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Log     zerolog.Logger
	Metrics *metrics.ScheduleMetrics

	AuditLog   *audit.Logger
	Dispatcher *audit.Dispatcher

	GetSettings    *ucSchedule.GetSettings
	UpdateSettings *ucSchedule.UpdateSettings

	ResolveStatus *ucSchedule.ResolveStatus
	Dashboard     *ucSchedule.Dashboard

	ListHours   *ucSchedule.ListHours
	UpsertHours *ucSchedule.UpsertHours
	WeeklySlots *ucSchedule.WeeklySlots
	DateSlots   *ucSchedule.DateSlots

	ListSpecialDays     *ucSchedule.ListSpecialDays
	UpcomingSpecialDays *ucSchedule.UpcomingSpecialDays
	CreateSpecialDay    *ucSchedule.CreateSpecialDay
	UpdateSpecialDay    *ucSchedule.UpdateSpecialDay
	DeleteSpecialDay    *ucSchedule.DeleteSpecialDay

	ListOverrides  *ucSchedule.ListOverrides
	CreateOverride *ucSchedule.CreateOverride
	UpdateOverride *ucSchedule.UpdateOverride
	DeleteOverride *ucSchedule.DeleteOverride

	ExportCalendar *ucSchedule.ExportCalendar
}

// New wires every use case. rdb may be nil to run without the settings cache;
// reg may be nil to skip metrics.
func New(
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	reg prometheus.Registerer,
	log zerolog.Logger,
) *App {
	a := &App{DB: db, Redis: rdb, Log: log}

	if reg != nil {
		a.Metrics = metrics.NewScheduleMetrics(reg)
	}

	repo := infraRepo.NewScheduleGormRepository(db)

	var settingsCache ucSchedule.SettingsCache
	if rdb != nil {
		settingsCache = cache.NewSettingsCache(rdb, cfg.SettingsCacheTTL)
	}

	a.AuditLog = audit.New(db)
	a.Dispatcher = audit.NewDispatcher(a.AuditLog, log)

	fx := ucSchedule.Effects{Audit: a.Dispatcher, Metrics: a.Metrics}

	a.GetSettings = ucSchedule.NewGetSettings(repo, settingsCache, a.Metrics, log)
	a.UpdateSettings = ucSchedule.NewUpdateSettings(repo, settingsCache, fx, log)

	a.ResolveStatus = ucSchedule.NewResolveStatus(repo, a.GetSettings, a.Metrics)
	a.Dashboard = ucSchedule.NewDashboard(repo, a.GetSettings)

	a.ListHours = ucSchedule.NewListHours(repo)
	a.UpsertHours = ucSchedule.NewUpsertHours(repo, fx)
	a.WeeklySlots = ucSchedule.NewWeeklySlots(repo, a.GetSettings)
	a.DateSlots = ucSchedule.NewDateSlots(repo, a.GetSettings, a.Metrics)

	a.ListSpecialDays = ucSchedule.NewListSpecialDays(repo)
	a.UpcomingSpecialDays = ucSchedule.NewUpcomingSpecialDays(repo, a.GetSettings)
	a.CreateSpecialDay = ucSchedule.NewCreateSpecialDay(repo, fx)
	a.UpdateSpecialDay = ucSchedule.NewUpdateSpecialDay(repo, fx)
	a.DeleteSpecialDay = ucSchedule.NewDeleteSpecialDay(repo, fx)

	a.ListOverrides = ucSchedule.NewListOverrides(repo)
	a.CreateOverride = ucSchedule.NewCreateOverride(repo, fx)
	a.UpdateOverride = ucSchedule.NewUpdateOverride(repo, fx)
	a.DeleteOverride = ucSchedule.NewDeleteOverride(repo, fx)

	a.ExportCalendar = ucSchedule.NewExportCalendar(repo, a.GetSettings)

	return a
}

// Close flushes pending audit events. Connections are owned by the caller.
func (a *App) Close() {
	a.Dispatcher.Close()
}
