package metrics

import "github.com/prometheus/client_golang/prometheus"

// ScheduleMetrics exposes counters/histograms for availability lookups and
// schedule edits.
type ScheduleMetrics struct {
	resolutions   *prometheus.CounterVec
	slotsServed   *prometheus.HistogramVec
	writes        *prometheus.CounterVec
	cacheLookups  *prometheus.CounterVec
	rejected      *prometheus.CounterVec
	httpDurations *prometheus.HistogramVec
}

func NewScheduleMetrics(reg prometheus.Registerer) *ScheduleMetrics {
	m := &ScheduleMetrics{
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hub",
			Subsystem: "schedules",
			Name:      "resolutions_total",
			Help:      "Open/closed resolutions by deciding source and outcome",
		}, []string{"source", "open"}),
		slotsServed: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hub",
			Subsystem: "schedules",
			Name:      "slots_generated",
			Help:      "Number of slot start times returned per request",
			Buckets:   []float64{0, 4, 8, 16, 32, 64, 128},
		}, []string{"source"}),
		writes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hub",
			Subsystem: "schedules",
			Name:      "writes_total",
			Help:      "Schedule mutations by entity and action",
		}, []string{"entity", "action"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hub",
			Subsystem: "schedules",
			Name:      "settings_cache_total",
			Help:      "Settings cache lookups by result",
		}, []string{"result"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hub",
			Subsystem: "schedules",
			Name:      "validation_failures_total",
			Help:      "Mutations rejected by validation, by entity",
		}, []string{"entity"}),
		httpDurations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hub",
			Subsystem: "schedules",
			Name:      "http_request_duration_seconds",
			Help:      "Latency of schedule API requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.resolutions, m.slotsServed, m.writes, m.cacheLookups, m.rejected, m.httpDurations)
	return m
}

func (m *ScheduleMetrics) ObserveResolution(source string, open bool) {
	if m == nil {
		return
	}
	label := "false"
	if open {
		label = "true"
	}
	m.resolutions.WithLabelValues(source, label).Inc()
}

func (m *ScheduleMetrics) ObserveSlots(source string, count int) {
	if m == nil {
		return
	}
	m.slotsServed.WithLabelValues(source).Observe(float64(count))
}

func (m *ScheduleMetrics) ObserveWrite(entity, action string) {
	if m == nil {
		return
	}
	m.writes.WithLabelValues(entity, action).Inc()
}

func (m *ScheduleMetrics) ObserveCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

func (m *ScheduleMetrics) ObserveRejected(entity string) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(entity).Inc()
}

func (m *ScheduleMetrics) ObserveRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.httpDurations.WithLabelValues(method, route, status).Observe(seconds)
}
