package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type LoggerOpts func(*middleware.RequestLoggerConfig)

// Logger logs one line per request; 4xx at warn and 5xx or handler errors
// at error.
func Logger(opts ...LoggerOpts) echo.MiddlewareFunc {
	cfg := middleware.RequestLoggerConfig{
		LogStatus:     true,
		LogLatency:    true,
		LogURI:        true,
		LogMethod:     true,
		LogError:      true,
		HandleError:   true,
		LogValuesFunc: logRequest,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return middleware.RequestLoggerWithConfig(cfg)
}

// WithSkipPaths disables request logging for the given route paths, e.g. health probes.
func WithSkipPaths(paths ...string) LoggerOpts {
	return func(cfg *middleware.RequestLoggerConfig) {
		if len(paths) == 0 {
			return
		}
		cfg.Skipper = func(c echo.Context) bool {
			return slices.Contains(paths, c.Path())
		}
	}
}

func logRequest(_ echo.Context, v middleware.RequestLoggerValues) error {
	attrs := []slog.Attr{
		slog.String("method", v.Method),
		slog.String("uri", v.URI),
		slog.Int("status", v.Status),
		slog.Duration("latency", v.Latency),
	}
	if v.Error != nil {
		attrs = append(attrs, slog.String("err", v.Error.Error()))
	}
	slog.LogAttrs(context.Background(), levelFor(v), "REQUEST", attrs...)
	return nil
}

func levelFor(v middleware.RequestLoggerValues) slog.Level {
	switch {
	case v.Status >= http.StatusInternalServerError:
		return slog.LevelError
	case v.Status >= http.StatusBadRequest:
		return slog.LevelWarn
	case v.Error != nil:
		return slog.LevelError
	}
	return slog.LevelInfo
}
