package metrics

import (
	"fmt"
	"slices"

	"github.com/DjordjeVuckovic/uplift-hunter/internal/apperr"
)

const (
	MetricUpliftAUC             = "uplift_auc_score"
	MetricQiniAUC               = "qini_auc_score"
	MetricUpliftAtK             = "uplift_at_k"
	MetricWeightedAverageUplift = "weighted_average_uplift"
)

// MetricParams carries the knobs of the parameterized metrics.
type MetricParams struct {
	Strategy       Strategy `json:"strategy"`
	K              K        `json:"k"`
	Bins           int      `json:"bins"`
	NegativeEffect bool     `json:"negative_effect"`
}

func DefaultMetricParams() MetricParams {
	return MetricParams{
		Strategy:       StrategyOverall,
		K:              DefaultK,
		Bins:           10,
		NegativeEffect: true,
	}
}

// Validate checks the parameters that do not depend on the data.
func (p MetricParams) Validate() error {
	if err := p.Strategy.Validate(); err != nil {
		return err
	}
	if err := p.K.ValidateRange(); err != nil {
		return err
	}
	if p.Bins <= 0 {
		return apperr.NewValidationWrap(fmt.Sprintf("bins=%d should be a positive integer", p.Bins), ErrInvalidBins)
	}
	return nil
}

type ScoreFunc func(yTrue, uplift, treatment []float64, p MetricParams) (float64, error)

var scoreFuncs = map[string]ScoreFunc{
	MetricUpliftAUC: func(y, u, t []float64, _ MetricParams) (float64, error) {
		return UpliftAUCScore(y, u, t)
	},
	MetricQiniAUC: func(y, u, t []float64, p MetricParams) (float64, error) {
		return QiniAUCScore(y, u, t, p.NegativeEffect)
	},
	MetricUpliftAtK: func(y, u, t []float64, p MetricParams) (float64, error) {
		return UpliftAtK(y, u, t, p.Strategy, p.K)
	},
	MetricWeightedAverageUplift: func(y, u, t []float64, p MetricParams) (float64, error) {
		return WeightedAverageUplift(y, u, t, p.Strategy, p.Bins)
	},
}

// MetricNames lists the metrics available by name, sorted.
func MetricNames() []string {
	names := make([]string, 0, len(scoreFuncs))
	for name := range scoreFuncs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func lookup(name string) (ScoreFunc, error) {
	fn, ok := scoreFuncs[name]
	if !ok {
		return nil, apperr.NewValidationWrap(
			fmt.Sprintf("metric %q is not supported, expected one of %v", name, MetricNames()),
			ErrUnknownMetric,
		)
	}
	return fn, nil
}

// Score computes a metric by name.
func Score(name string, yTrue, uplift, treatment []float64, p MetricParams) (float64, error) {
	fn, err := lookup(name)
	if err != nil {
		return 0, err
	}
	return fn(yTrue, uplift, treatment, p)
}

// Scorer binds a named metric to a fixed treatment vector, so model
// selection code can score (y_true, uplift) pairs directly. Score expects
// full-length inputs; ScoreAt scores a subset such as a cross-validation fold.
type Scorer struct {
	name      string
	fn        ScoreFunc
	treatment []float64
	params    MetricParams
}

func NewScorer(name string, treatment []float64, params MetricParams) (*Scorer, error) {
	fn, err := lookup(name)
	if err != nil {
		return nil, err
	}
	if len(treatment) == 0 {
		return nil, apperr.NewValidationWrap("scorer requires a non-empty treatment vector", ErrEmptyInput)
	}
	return &Scorer{
		name:      name,
		fn:        fn,
		treatment: slices.Clone(treatment),
		params:    params,
	}, nil
}

func (s *Scorer) Name() string { return s.name }

func (s *Scorer) Score(yTrue, uplift []float64) (float64, error) {
	return s.fn(yTrue, uplift, s.treatment, s.params)
}

// ScoreAt scores predictions for the rows idx of the bound treatment vector.
// yTrue and uplift are aligned with idx.
func (s *Scorer) ScoreAt(idx []int, yTrue, uplift []float64) (float64, error) {
	if len(idx) != len(yTrue) || len(idx) != len(uplift) {
		return 0, apperr.NewValidationWrap(
			fmt.Sprintf("index of length %d does not match y_true %d and uplift %d", len(idx), len(yTrue), len(uplift)),
			ErrLengthMismatch,
		)
	}
	treatment := make([]float64, len(idx))
	for i, j := range idx {
		if j < 0 || j >= len(s.treatment) {
			return 0, apperr.NewValidationWrap(
				fmt.Sprintf("index %d is outside the treatment vector of length %d", j, len(s.treatment)),
				ErrIndexOutOfRange,
			)
		}
		treatment[i] = s.treatment[j]
	}
	return s.fn(yTrue, uplift, treatment, s.params)
}
