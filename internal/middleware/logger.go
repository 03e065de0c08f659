package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/hub-schedules/internal/metrics"
)

// RequestLogger logs one line per request and feeds the latency histogram.
// m may be nil.
func RequestLogger(log zerolog.Logger, m *metrics.ScheduleMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		elapsed := time.Since(start)
		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		m.ObserveRequest(c.Request.Method, route, strconv.Itoa(status), elapsed.Seconds())

		ev := log.Info()
		switch {
		case status >= 500:
			ev = log.Error()
		case status >= 400:
			ev = log.Warn()
		}
		if hub, ok := c.Get(ContextHubID); ok {
			ev = ev.Interface("hub_id", hub)
		}
		ev.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", elapsed).
			Msg("request")
	}
}
