//go:build integration

package es

import (
	"testing"

	"github.com/DjordjeVuckovic/uplift-hunter/internal/storage/storagetest"
	tc "github.com/DjordjeVuckovic/uplift-hunter/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorer_Integration(t *testing.T) {
	ctx := t.Context()
	container := tc.NewESContainer(ctx, t)

	s, err := NewStorer(ctx, ClientConfig{
		Addresses: []string{container.Address},
		IndexName: "evaluations_test",
	})
	require.NoError(t, err)
	assert.True(t, NewHealthChecker(s).Healthy(ctx))

	// a second storer must find the index created by the first one
	_, err = NewStorer(ctx, ClientConfig{
		Addresses: []string{container.Address},
		IndexName: "evaluations_test",
	})
	require.NoError(t, err)

	storagetest.Run(t, s)
}
