package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithSkipPaths(t *testing.T) {
	var cfg middleware.RequestLoggerConfig

	WithSkipPaths()(&cfg)
	assert.Nil(t, cfg.Skipper)

	WithSkipPaths("/health")(&cfg)
	require.NotNil(t, cfg.Skipper)

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())
	c.SetPath("/health")
	assert.True(t, cfg.Skipper(c))

	c.SetPath("/v1/scores")
	assert.False(t, cfg.Skipper(c))
}

func TestLogger_PassesThrough(t *testing.T) {
	e := echo.New()
	e.Use(Logger(func(cfg *middleware.RequestLoggerConfig) { cfg.LogLatency = false }))
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		name string
		v    middleware.RequestLoggerValues
		want slog.Level
	}{
		{"ok", middleware.RequestLoggerValues{Status: http.StatusOK}, slog.LevelInfo},
		{"bad request", middleware.RequestLoggerValues{Status: http.StatusBadRequest}, slog.LevelWarn},
		{"server error", middleware.RequestLoggerValues{Status: http.StatusBadGateway}, slog.LevelError},
		{"handler error", middleware.RequestLoggerValues{Status: http.StatusOK, Error: echo.ErrInternalServerError}, slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, levelFor(tt.v))
		})
	}
}
