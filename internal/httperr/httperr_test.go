package httperr

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBusiness(t *testing.T) {
	err := fmt.Errorf("create: %w", ErrBusiness("special_day_exists"))
	assert.True(t, IsBusiness(err, "special_day_exists"))
	assert.False(t, IsBusiness(err, "not_found"))
	assert.False(t, IsBusiness(fmt.Errorf("plain"), "not_found"))
}

func TestBusinessStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for code, status := range map[string]int{
		"override_not_found": http.StatusNotFound,
		"special_day_exists": http.StatusConflict,
		"invalid_date":       http.StatusBadRequest,
	} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		require.True(t, Business(c, fmt.Errorf("op: %w", ErrBusiness(code))))
		assert.Equal(t, status, w.Code, code)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	assert.False(t, Business(c, fmt.Errorf("plain")))
}

func TestValidationBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Validation(c, []map[string]string{{"field": "open_time", "message": "required"}})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var body HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "validation_failed", body.Code)
	assert.NotNil(t, body.Details)
}

func TestWriteOmitsDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Forbidden(c, "missing_permission", "nope")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NotContains(t, w.Body.String(), "details")
}
