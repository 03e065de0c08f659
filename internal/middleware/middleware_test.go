package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/hub-schedules/internal/config"
)

func signed(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return tok
}

func newRouter(cfg *config.Config, perm string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware(cfg.CORSOrigins))
	g := r.Group("/", AuthMiddleware(cfg))
	g.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"hub": HubID(c).String(), "sub": Subject(c)})
	})
	g.GET("/admin", RequirePermission(perm), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	r := newRouter(cfg, "schedules.manage_settings")
	hub := uuid.New()

	tests := []struct {
		name   string
		header string
		path   string
		want   int
	}{
		{name: "missing header", path: "/me", want: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", path: "/me", want: http.StatusUnauthorized},
		{name: "bad signature", header: "Bearer " + signed(t, "other", jwt.MapClaims{"sub": "u1", "hub_id": hub.String()}), path: "/me", want: http.StatusUnauthorized},
		{name: "missing hub", header: "Bearer " + signed(t, "secret", jwt.MapClaims{"sub": "u1"}), path: "/me", want: http.StatusUnauthorized},
		{name: "expired", header: "Bearer " + signed(t, "secret", jwt.MapClaims{"sub": "u1", "hub_id": hub.String(), "exp": time.Now().Add(-time.Hour).Unix()}), path: "/me", want: http.StatusUnauthorized},
		{name: "valid", header: "Bearer " + signed(t, "secret", jwt.MapClaims{"sub": "u1", "hub_id": hub.String()}), path: "/me", want: http.StatusOK},
		{name: "lacks permission", header: "Bearer " + signed(t, "secret", jwt.MapClaims{"sub": "u1", "hub_id": hub.String()}), path: "/admin", want: http.StatusForbidden},
		{name: "has permission", header: "Bearer " + signed(t, "secret", jwt.MapClaims{"sub": "u1", "hub_id": hub.String(), "permissions": []string{"schedules.manage_settings"}}), path: "/admin", want: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.Contains(t, w.Body.String(), hub.String())
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	r := newRouter(&config.Config{JWTSecret: "secret"}, "x")
	req := httptest.NewRequest(http.MethodOptions, "/me", nil)
	req.Header.Set("Origin", "https://hub.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://hub.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Content-Disposition", w.Header().Get("Access-Control-Expose-Headers"))
}

func TestCORSAllowList(t *testing.T) {
	r := newRouter(&config.Config{JWTSecret: "secret", CORSOrigins: []string{"https://admin.example/"}}, "x")

	for origin, want := range map[string]string{
		"https://admin.example": "https://admin.example",
		"https://evil.example":  "",
	} {
		req := httptest.NewRequest(http.MethodOptions, "/me", nil)
		req.Header.Set("Origin", origin)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, want, w.Header().Get("Access-Control-Allow-Origin"), origin)
	}
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestLogger(zerolog.New(&buf), nil))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Contains(t, buf.String(), `"status":418`)
	assert.Contains(t, buf.String(), `"level":"warn"`)
}
