package dto

import (
	"encoding/json"
	"testing"

	"github.com/DjordjeVuckovic/uplift-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricParams_ToParams(t *testing.T) {
	var req ScoresRequest
	body := `{"y_true":[0,1],"uplift":[0.1,0.2],"treatment":[0,1],"params":{"k":3,"strategy":"by_group","negative_effect":false}}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	p := req.Params.ToParams()
	assert.Equal(t, metrics.Count(3), p.K)
	assert.Equal(t, metrics.StrategyByGroup, p.Strategy)
	assert.Equal(t, 10, p.Bins)
	assert.False(t, p.NegativeEffect)
	assert.Equal(t, []float64{0, 1}, req.YTrue)

	assert.Equal(t, metrics.DefaultMetricParams(), MetricParams{}.ToParams())
}

func TestSampleRequest_Validate(t *testing.T) {
	req := SampleRequest{}
	err := req.Validate()
	var ve *apperr.ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.ErrorIs(t, err, metrics.ErrEmptyInput)

	req = SampleRequest{YTrue: []float64{0, 1}, Uplift: []float64{0.1}, Treatment: []float64{0, 1}}
	assert.ErrorIs(t, req.Validate(), metrics.ErrLengthMismatch)
}

func TestPercentileRequest_Options(t *testing.T) {
	numeric := false
	req := PercentileRequest{Std: true, Total: true, StringPercentiles: &numeric}
	assert.Len(t, req.Options(), 3)
	assert.Empty(t, (&PercentileRequest{}).Options())
}

func TestBalanceRequest_Validate(t *testing.T) {
	req := BalanceRequest{Uplift: []float64{0.1, 0.2, 0.3}, Treatment: []float64{0, 1, 1}}
	require.NoError(t, req.Validate())
	assert.Equal(t, 3, req.Winsize)

	assert.ErrorIs(t, (&BalanceRequest{}).Validate(), metrics.ErrEmptyInput)
}

func TestEvaluationRequest(t *testing.T) {
	req := EvaluationRequest{
		Name:        "campaign",
		Target:      []float64{0, 1},
		Treatment:   []float64{1, 0},
		Predictions: map[string][]float64{"solo": {0.2, 0.1}},
	}
	require.NoError(t, req.Validate())

	frame, err := req.Frame()
	require.NoError(t, err)
	assert.Equal(t, []string{"solo"}, frame.Models)

	req.Predictions["short"] = []float64{0.3}
	_, err = req.Frame()
	var ve *apperr.ValidationError
	assert.ErrorAs(t, err, &ve)

	assert.Error(t, (&EvaluationRequest{Target: []float64{1}}).Validate())
	assert.Error(t, (&EvaluationRequest{Name: "n", Target: []float64{1}}).Validate())
}

func TestEvaluationRequest_ValidateSharedInputs(t *testing.T) {
	valid := func() EvaluationRequest {
		return EvaluationRequest{
			Name:        "campaign",
			Target:      []float64{0, 1, 1},
			Treatment:   []float64{1, 0, 1},
			Predictions: map[string][]float64{"solo": {0.2, 0.1, 0.5}},
		}
	}
	negative := -1
	zeroK := metrics.Fraction(0)

	tests := []struct {
		name   string
		mutate func(r *EvaluationRequest)
		field  string
		target error
	}{
		{"non binary treatment", func(r *EvaluationRequest) { r.Treatment = []float64{2, 2, 2} }, "treatment", metrics.ErrNotBinary},
		{"constant target", func(r *EvaluationRequest) { r.Target = []float64{1, 1, 1} }, "target", metrics.ErrNotBinary},
		{"zero k", func(r *EvaluationRequest) { r.Params.K = &zeroK }, "params", metrics.ErrInvalidK},
		{"negative bins", func(r *EvaluationRequest) { r.Params.Bins = negative }, "params", metrics.ErrInvalidBins},
		{"unknown strategy", func(r *EvaluationRequest) { r.Params.Strategy = "all" }, "params", nil},
		{"negative window", func(r *EvaluationRequest) { r.BalanceWindow = negative }, "balance_window", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			require.NoError(t, req.Validate())

			tt.mutate(&req)
			err := req.Validate()
			var ve *apperr.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}
