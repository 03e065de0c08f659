package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/hub-schedules/internal/domain/schedule"
	"github.com/BruksfildServices01/hub-schedules/internal/httperr"
)

func TestWriteErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", domain.ValidationErrors{{Field: "open_time", Message: "required"}}, http.StatusUnprocessableEntity, "validation_failed"},
		{"not found", httperr.ErrBusiness("override_not_found"), http.StatusNotFound, "override_not_found"},
		{"conflict", fmt.Errorf("create: %w", httperr.ErrBusiness("special_day_exists")), http.StatusConflict, "special_day_exists"},
		{"business", httperr.ErrBusiness("something_else"), http.StatusBadRequest, "something_else"},
		{"unexpected", errors.New("db down"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			writeError(c, zerolog.Nop(), tc.err)

			assert.Equal(t, tc.status, w.Code)
			var body httperr.HTTPError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.code, body.Code)
		})
	}
}
