package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpliftAtK(t *testing.T) {
	tests := []struct {
		name     string
		sample   Sample
		strategy Strategy
		k        K
		want     float64
	}{
		{name: "tied scores by group", sample: tiedSample(), strategy: StrategyByGroup, k: Count(1), want: 1},
		{name: "overall count", sample: rankedSample(), strategy: StrategyOverall, k: Count(2), want: 1},
		{name: "overall fraction", sample: rankedSample(), strategy: StrategyOverall, k: Fraction(0.5), want: 1},
		{name: "by group fraction", sample: rankedSample(), strategy: StrategyByGroup, k: Fraction(0.5), want: 1},
		{name: "reversed overall count", sample: reversedSample(), strategy: StrategyOverall, k: Count(2), want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UpliftAtK(tt.sample.YTrue, tt.sample.Uplift, tt.sample.Treatment, tt.strategy, tt.k)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestUpliftAtK_Errors(t *testing.T) {
	s := tiedSample()

	tests := []struct {
		name     string
		strategy Strategy
		k        K
		wantErr  error
	}{
		{name: "k bigger than control group", strategy: StrategyByGroup, k: Count(2), wantErr: ErrInvalidK},
		{name: "zero count", strategy: StrategyOverall, k: Count(0), wantErr: ErrInvalidK},
		{name: "count equal to samples", strategy: StrategyOverall, k: Count(3), wantErr: ErrInvalidK},
		{name: "fraction of one", strategy: StrategyOverall, k: Fraction(1.0), wantErr: ErrInvalidK},
		{name: "negative fraction", strategy: StrategyOverall, k: Fraction(-0.5), wantErr: ErrInvalidK},
		{name: "unknown strategy", strategy: Strategy("new_strategy"), k: Count(1), wantErr: ErrInvalidStrategy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UpliftAtK(s.YTrue, s.Uplift, s.Treatment, tt.strategy, tt.k)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpliftAtK_InvalidTreatment(t *testing.T) {
	_, err := UpliftAtK([]float64{0, 1}, []float64{0.1, 0.2}, []float64{1, 1}, StrategyOverall, Count(1))
	assert.ErrorIs(t, err, ErrNotBinary)

	_, err = UpliftAtK([]float64{0, 1, 1}, []float64{0.1, 0.2}, []float64{0, 1}, StrategyOverall, Count(1))
	assert.ErrorIs(t, err, ErrLengthMismatch)
}
