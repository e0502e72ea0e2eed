// Package main Uplift Hunter API
// @title Uplift Hunter API
// @version 1.0
// @description Uplift model evaluation: uplift and Qini curves, normalized AUC scores, top-k uplift and percentile tables
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.email support@uplifthunter.io
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/uplift-hunter/docs"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/api/router"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/api/server"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/storage/factory"
	pkgserver "github.com/DjordjeVuckovic/uplift-hunter/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration", "error", err)
		os.Exit(1)
	}

	backend, err := factory.NewStorer(context.Background(), storageCfg)
	if err != nil {
		slog.Error("Failed to create report storer", "type", storageCfg.Type, "error", err)
		os.Exit(1)
	}
	slog.Info("Report storage ready", "type", storageCfg.Type)

	// Health turns 503 once shutdown begins so load balancers stop routing.
	var s *server.Server
	serving := pkgserver.HealthCheckerFunc(func(context.Context) bool {
		return s.Context().Err() == nil
	})

	s = server.New(sCfg, pkgserver.AllHealthy(backend.Health, serving)).
		SetupHealthChecks("/health").
		SetupMiddlewares().
		SetupErrorHandler().
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Uplift Hunter API is running")
	})

	router.NewMetricsRouter(s.Echo).Bind()
	router.NewEvaluationRouter(s.Echo, backend.Storer).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
		backend.Close()
	}()

	if err = s.Start(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
