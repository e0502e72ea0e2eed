package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("UPLIFT_TEST_BINS=4\n"), 0o644))

	t.Setenv("ENV_PATH", path)
	t.Setenv("UPLIFT_TEST_BINS", "")
	require.NoError(t, os.Unsetenv("UPLIFT_TEST_BINS"))

	require.NoError(t, LoadDotEnv("local", "unused.env"))
	assert.Equal(t, "4", os.Getenv("UPLIFT_TEST_BINS"))
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	t.Setenv("ENV_PATH", "")
	missing := filepath.Join(t.TempDir(), "missing.env")

	assert.Error(t, LoadDotEnv("local", missing))
	assert.Error(t, LoadDotEnv("", missing))
	assert.NoError(t, LoadDotEnv("production", missing))
}

func TestGetOrDefault(t *testing.T) {
	t.Setenv("UPLIFT_TEST_PORT", "")
	assert.Equal(t, "8080", GetOrDefault("UPLIFT_TEST_PORT", "8080"))

	t.Setenv("UPLIFT_TEST_PORT", "9090")
	assert.Equal(t, "9090", GetOrDefault("UPLIFT_TEST_PORT", "8080"))
}
