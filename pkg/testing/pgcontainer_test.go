package testing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpMigrations(t *testing.T) {
	files, err := UpMigrations(migrationsDir())
	require.NoError(t, err)
	require.NotEmpty(t, files)
	assert.Equal(t, "001_evaluations.up.sql", filepath.Base(files[0]))

	dir := t.TempDir()
	for _, name := range []string{"002_b.up.sql", "001_a.up.sql", "001_a.down.sql"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o644))
	}
	files, err = UpMigrations(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "001_a.up.sql"), filepath.Join(dir, "002_b.up.sql")}, files)

	_, err = UpMigrations(t.TempDir())
	assert.Error(t, err)
}

func TestImage(t *testing.T) {
	t.Setenv("TEST_PG_IMAGE", "")
	assert.Equal(t, DefaultPGImage, image("TEST_PG_IMAGE", DefaultPGImage))

	t.Setenv("TEST_PG_IMAGE", "postgres:16")
	assert.Equal(t, "postgres:16", image("TEST_PG_IMAGE", DefaultPGImage))
}
