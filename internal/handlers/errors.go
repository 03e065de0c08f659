package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/hub-schedules/internal/domain/schedule"
	"github.com/BruksfildServices01/hub-schedules/internal/httperr"
	"github.com/BruksfildServices01/hub-schedules/internal/middleware"
	ucSchedule "github.com/BruksfildServices01/hub-schedules/internal/usecase/schedule"
)

// writeError maps use case errors onto the JSON error contract.
func writeError(c *gin.Context, log zerolog.Logger, err error) {
	if ve, ok := domain.AsValidation(err); ok {
		httperr.Validation(c, ve)
		return
	}

	if httperr.Business(c, err) {
		return
	}

	log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	httperr.Internal(c, "internal_error", "Unexpected error.")
}

func actorFrom(c *gin.Context) ucSchedule.Actor {
	return ucSchedule.Actor{
		HubID:   middleware.HubID(c),
		Subject: middleware.Subject(c),
	}
}
