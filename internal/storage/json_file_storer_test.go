package storage_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/uplift-hunter/internal/storage"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/storage/storagetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJsonFileStorer(t *testing.T) {
	s, err := storage.NewJsonFileStorer(filepath.Join(t.TempDir(), "reports"))
	require.NoError(t, err)

	storagetest.Run(t, s)
}

func TestJsonFileStorer_SkipsForeignFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := storage.NewJsonFileStorer(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0644))

	r := storagetest.NewReport("only", time.Now())
	id, err := s.Save(t.Context(), r)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, id.String()+".json"))

	items, total, err := s.List(t.Context(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, id, items[0].ID)
}

func TestType_Validate(t *testing.T) {
	for _, typ := range []storage.Type{storage.ES, storage.PG, storage.InMem, storage.JSON} {
		assert.NoError(t, typ.Validate(), typ)
	}
	assert.ErrorContains(t, storage.Type("mysql").Validate(), "unsupported storer type: mysql")
}
