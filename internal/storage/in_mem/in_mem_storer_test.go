package in_mem

import (
	"testing"
	"time"

	"github.com/DjordjeVuckovic/uplift-hunter/internal/storage/storagetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemStorer(t *testing.T) {
	storagetest.Run(t, NewInMemStorer())
}

func TestInMemStorer_StoresCopy(t *testing.T) {
	s := NewInMemStorer()
	r := storagetest.NewReport("copy", time.Now())

	id, err := s.Save(t.Context(), r)
	require.NoError(t, err)

	r.Meta.Name = "changed"
	got, err := s.Get(t.Context(), id)
	require.NoError(t, err)
	assert.Equal(t, "copy", got.Meta.Name)

	_, err = s.Save(t.Context(), r)
	require.NoError(t, err)
	_, total, err := s.List(t.Context(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}
