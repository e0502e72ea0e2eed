package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpliftAUCScore(t *testing.T) {
	tests := []struct {
		name      string
		yTrue     []float64
		uplift    []float64
		treatment []float64
		want      float64
	}{
		{
			name:      "control responder ranked first",
			yTrue:     []float64{0, 1},
			uplift:    []float64{0.1, 0.3},
			treatment: []float64{1, 0},
			want:      0,
		},
		{
			name:      "treated responder ranked first",
			yTrue:     []float64{0, 1},
			uplift:    []float64{0.1, 0.3},
			treatment: []float64{0, 1},
			want:      1,
		},
		{
			name:      "treated non-responder ranked first",
			yTrue:     []float64{1, 0},
			uplift:    []float64{0.1, 0.3},
			treatment: []float64{0, 1},
			want:      1,
		},
		{
			name:      "ideal ordering",
			yTrue:     rankedSample().YTrue,
			uplift:    rankedSample().Uplift,
			treatment: rankedSample().Treatment,
			want:      1,
		},
		{
			name:      "reversed ordering is worse than random",
			yTrue:     reversedSample().YTrue,
			uplift:    reversedSample().Uplift,
			treatment: reversedSample().Treatment,
			want:      -1.2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UpliftAUCScore(tt.yTrue, tt.uplift, tt.treatment)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestQiniAUCScore(t *testing.T) {
	tests := []struct {
		name           string
		yTrue          []float64
		uplift         []float64
		treatment      []float64
		negativeEffect bool
		want           float64
	}{
		{
			name:           "control responder ranked first",
			yTrue:          []float64{0, 1},
			uplift:         []float64{0.1, 0.3},
			treatment:      []float64{1, 0},
			negativeEffect: true,
			want:           1,
		},
		{
			name:           "treated responder ranked first",
			yTrue:          []float64{0, 1},
			uplift:         []float64{0.1, 0.3},
			treatment:      []float64{0, 1},
			negativeEffect: true,
			want:           1,
		},
		{
			name:           "treated non-responder ranked first",
			yTrue:          []float64{1, 0},
			uplift:         []float64{0.1, 0.3},
			treatment:      []float64{0, 1},
			negativeEffect: true,
			want:           1,
		},
		{
			name:           "ideal ordering",
			yTrue:          rankedSample().YTrue,
			uplift:         rankedSample().Uplift,
			treatment:      rankedSample().Treatment,
			negativeEffect: true,
			want:           1,
		},
		{
			name:           "plateau reference without negative effect",
			yTrue:          rankedSample().YTrue,
			uplift:         rankedSample().Uplift,
			treatment:      rankedSample().Treatment,
			negativeEffect: false,
			want:           2.6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := QiniAUCScore(tt.yTrue, tt.uplift, tt.treatment, tt.negativeEffect)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestAUCScores_AtMostOneWithNegativeEffect(t *testing.T) {
	rng := newTestRand()
	for iter := 0; iter < 30; iter++ {
		s := randomSample(rng, 20+rng.Intn(100))

		u, err := UpliftAUCScore(s.YTrue, s.Uplift, s.Treatment)
		require.NoError(t, err)
		assert.LessOrEqual(t, u, 1+1e-9)

		q, err := QiniAUCScore(s.YTrue, s.Uplift, s.Treatment, true)
		require.NoError(t, err)
		assert.LessOrEqual(t, q, 1+1e-9)
	}
}

func TestAUCScores_Errors(t *testing.T) {
	_, err := UpliftAUCScore([]float64{1, 1}, []float64{0.1, 0.3}, []float64{0, 1})
	assert.ErrorIs(t, err, ErrNotBinary)

	_, err = QiniAUCScore([]float64{0, 1, 2}, []float64{0.1, 0.3, 0.9}, []float64{0, 1, 0}, true)
	assert.ErrorIs(t, err, ErrNotBinary)

	_, err = QiniAUCScore([]float64{0, 1}, []float64{0.1}, []float64{0, 1}, true)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestQiniAUCScore_NegativePlateauIsRejected(t *testing.T) {
	// treatment hurts: the plateau reference would run backwards on x
	y := []float64{0, 0, 1, 1}
	trmnt := []float64{1, 1, 0, 0}
	uplift := []float64{0.4, 0.3, 0.2, 0.1}

	_, err := QiniAUCScore(y, uplift, trmnt, false)
	assert.ErrorIs(t, err, ErrNonMonotonic)
}

func TestAUC(t *testing.T) {
	area, err := AUC(Curve{X: []float64{0, 1, 3}, Y: []float64{0, 2, 2}})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, area, 1e-12)

	area, err = AUC(Curve{X: []float64{0}, Y: []float64{0}})
	require.NoError(t, err)
	assert.Zero(t, area)

	_, err = AUC(Curve{X: []float64{0, 2, 1}, Y: []float64{0, 1, 1}})
	assert.ErrorIs(t, err, ErrNonMonotonic)
}
