// Package storagetest holds the behaviour every storage.Storer must share.
package storagetest

import (
	"testing"
	"time"

	"github.com/DjordjeVuckovic/uplift-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/storage"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/metrics"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/report"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewReport builds a small report created at the given time.
func NewReport(name string, createdAt time.Time) *report.Report {
	return &report.Report{
		Meta: report.EvalMeta{
			Name:      name,
			Version:   report.Version,
			Timestamp: createdAt.UTC().Truncate(time.Millisecond),
			Samples:   6,
		},
		Config: report.ReportConfig{Params: metrics.DefaultMetricParams(), BalanceWindow: 2},
		Ranking: []report.RankedModel{
			{Rank: 1, Model: "solo", QiniAUC: 0.8, UpliftAUC: 0.6},
		},
		Models: []report.ModelReport{
			{
				Model:  "solo",
				Scores: map[string]float64{metrics.MetricQiniAUC: 0.8, metrics.MetricUpliftAUC: 0.6},
				QiniCurve: &metrics.Curve{
					X: []float64{0, 3, 6},
					Y: []float64{0, 2, 1},
				},
			},
		},
	}
}

// Run exercises save, get and list on an empty storer.
func Run(t *testing.T, s storage.Storer) {
	t.Helper()
	ctx := t.Context()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("save assigns id and get returns the report", func(t *testing.T) {
		r := NewReport("first", base)
		id, err := s.Save(ctx, r)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
		assert.Equal(t, id, r.ID)

		got, err := s.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, "first", got.Meta.Name)
		assert.True(t, r.Meta.Timestamp.Equal(got.Meta.Timestamp))
		assert.Equal(t, r.Ranking, got.Ranking)
		assert.Equal(t, metrics.DefaultK, got.Config.Params.K)
		require.Len(t, got.Models, 1)
		assert.Equal(t, r.Models[0].QiniCurve, got.Models[0].QiniCurve)
	})

	t.Run("save keeps a preset id", func(t *testing.T) {
		r := NewReport("second", base.Add(time.Hour))
		r.ID = uuid.New()
		id, err := s.Save(ctx, r)
		require.NoError(t, err)
		assert.Equal(t, r.ID, id)
	})

	t.Run("get unknown id is not found", func(t *testing.T) {
		_, err := s.Get(ctx, uuid.New())
		var nf *apperr.NotFoundError
		assert.ErrorAs(t, err, &nf)
	})

	t.Run("list pages newest first", func(t *testing.T) {
		_, err := s.Save(ctx, NewReport("third", base.Add(2*time.Hour)))
		require.NoError(t, err)

		items, total, err := s.List(ctx, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, items, 2)
		assert.Equal(t, "third", items[0].Name)
		assert.Equal(t, "second", items[1].Name)
		assert.Equal(t, "solo", items[0].Best)
		assert.Equal(t, 1, items[0].Models)

		items, _, err = s.List(ctx, 2, 2)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "first", items[0].Name)

		items, _, err = s.List(ctx, 5, 2)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("nil report", func(t *testing.T) {
		_, err := s.Save(ctx, nil)
		assert.ErrorIs(t, err, storage.ErrNilReport)
	})
}
