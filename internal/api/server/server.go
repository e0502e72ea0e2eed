package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DjordjeVuckovic/uplift-hunter/internal/apperr"
	mw "github.com/DjordjeVuckovic/uplift-hunter/pkg/middleware"
	pkgserver "github.com/DjordjeVuckovic/uplift-hunter/pkg/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const (
	GracefulShutdownTimeout = 10 * time.Second
)

type Server struct {
	Echo *echo.Echo

	cfg      *Config
	health   pkgserver.HealthChecker
	ctx      context.Context
	cancel   context.CancelFunc
	shutdown chan struct{}
	skipLogs []string
}

func New(cfg *Config, hc pkgserver.HealthChecker) *Server {
	e := echo.New()
	e.HideBanner = true
	e.DisableHTTP2 = !cfg.UseHttp2

	if hc == nil {
		hc = pkgserver.NewOkHealthChecker()
	}
	if cfg.BodyLimit == "" {
		cfg.BodyLimit = DefaultBodyLimit
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		Echo:     e,
		cfg:      cfg,
		health:   hc,
		ctx:      ctx,
		cancel:   cancel,
		shutdown: make(chan struct{}),
	}
}

// Context is cancelled once shutdown begins.
func (s *Server) Context() context.Context {
	return s.ctx
}

// ShutdownSignal is closed once shutdown begins.
func (s *Server) ShutdownSignal() <-chan struct{} {
	return s.shutdown
}

func (s *Server) SetupMiddlewares() *Server {
	s.Echo.Use(mw.Logger(mw.WithSkipPaths(s.skipLogs...)))
	s.Echo.Use(middleware.Recover())
	s.Echo.Use(middleware.BodyLimit(s.cfg.BodyLimit))
	s.Echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: s.cfg.CorsOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete},
	}))
	return s
}

func (s *Server) SetupErrorHandler() *Server {
	s.Echo.HTTPErrorHandler = apperr.GlobalErrorHandler()
	return s
}

func (s *Server) SetupHealthChecks(path string) *Server {
	s.skipLogs = append(s.skipLogs, path)
	s.Echo.GET(path, func(c echo.Context) error {
		if !s.health.Healthy(c.Request().Context()) {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	return s
}

func (s *Server) SetupOpenApi(path string) *Server {
	s.Echo.GET(path, echoSwagger.WrapHandler)
	return s
}

func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", s.cfg.Port, "http2", s.cfg.UseHttp2)
		if err := s.Echo.Start(":" + s.cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var startErr error
	select {
	case <-ctx.Done():
	case startErr = <-errCh:
	}

	close(s.shutdown)
	s.cancel()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
	defer cancel()

	if err := s.Echo.Shutdown(shutdownCtx); err != nil {
		return errors.Join(startErr, err)
	}
	return startErr
}
