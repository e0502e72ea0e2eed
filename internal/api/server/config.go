package server

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/uplift-hunter/pkg/config/env"
	"github.com/DjordjeVuckovic/uplift-hunter/pkg/utils"
)

const (
	DefaultEnvPath   = "cmd/uplift_api/.env"
	DefaultPort      = "8080"
	DefaultBodyLimit = "16M"
)

// Config drives the API server. Score vectors arrive in request bodies,
// so BodyLimit bounds the size of a single evaluation.
type Config struct {
	Port        string
	UseHttp2    bool
	CorsOrigins []string
	BodyLimit   string
}

func LoadConfig() (*Config, error) {
	if err := env.LoadDotEnv(os.Getenv("APP_ENV"), DefaultEnvPath); err != nil {
		slog.Info("Skipping .env", "error", err)
	}

	cfg := &Config{
		Port:        env.GetOrDefault("PORT", DefaultPort),
		UseHttp2:    strings.EqualFold(os.Getenv("USE_HTTP2"), "true"),
		CorsOrigins: utils.SplitList(os.Getenv("CORS_ORIGINS"), ","),
		BodyLimit:   strings.ToUpper(env.GetOrDefault("BODY_LIMIT", DefaultBodyLimit)),
	}
	if len(cfg.CorsOrigins) == 0 {
		cfg.CorsOrigins = []string{"*"}
	}

	if err := validatePort(cfg.Port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}
	if err := validateBodyLimit(cfg.BodyLimit); err != nil {
		return nil, fmt.Errorf("invalid body limit: %w", err)
	}
	return cfg, nil
}

func validatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil {
		return errors.New("port must be a number")
	}
	if n < 1 || n > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	return nil
}

// validateBodyLimit accepts the echo BodyLimit format: digits with an
// optional B, K, M, G, T or P suffix.
func validateBodyLimit(limit string) error {
	digits := strings.TrimRight(limit, "BKMGTP")
	if len(limit)-len(digits) > 1 {
		return fmt.Errorf("%q has more than one unit suffix", limit)
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return fmt.Errorf("%q should be a positive size such as 8M", limit)
	}
	return nil
}
