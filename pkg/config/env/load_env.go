package env

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads ENV_PATH, or defaultPath when it is unset. A missing file
// is an error only for the local (or unnamed) environment.
func LoadDotEnv(env string, defaultPath string) error {
	envPath := os.Getenv("ENV_PATH")
	if envPath == "" {
		slog.Info("ENV_PATH is not set, using default path", "defaultPath", defaultPath)
		envPath = defaultPath
	}

	if err := godotenv.Load(envPath); err != nil {
		if env == "local" || env == "" {
			slog.Error("Failed to load environment variables in local mode", "path", envPath, "error", err)
			return err
		}
		slog.Debug("Skipping .env ...", "path", envPath, "env", env)
	}

	return nil
}

// GetOrDefault returns the value of key, or fallback when it is unset or empty.
func GetOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
