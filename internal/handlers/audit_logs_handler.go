package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/hub-schedules/internal/audit"
	"github.com/BruksfildServices01/hub-schedules/internal/httperr"
	"github.com/BruksfildServices01/hub-schedules/internal/middleware"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *audit.Logger
	log  zerolog.Logger
}

func NewAuditLogsHandler(logs *audit.Logger, log zerolog.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, log: log}
}

// List answers GET /api/schedules/audit-logs with optional
// action, entity, from, to, page and limit filters.
func (h *AuditLogsHandler) List(c *gin.Context) {
	f := audit.Filter{
		HubID:  middleware.HubID(c),
		Action: c.Query("action"),
		Entity: c.Query("entity"),
	}
	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))

	if from, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		f.From = &from
	}
	if to, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		f.To = &to
	}

	f.Normalize()

	logs, total, err := h.logs.Query(c.Request.Context(), f)
	if err != nil {
		h.log.Error().Err(err).Msg("audit list failed")
		httperr.Internal(c, "audit_list_failed", "Could not list audit logs.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":  f.Page,
		"limit": f.Limit,
		"total": total,
		"logs":  logs,
	})
}
