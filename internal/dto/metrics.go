package dto

import (
	"github.com/DjordjeVuckovic/uplift-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/metrics"
)

// SampleRequest carries one aligned evaluation set.
type SampleRequest struct {
	YTrue     []float64 `json:"y_true"`
	Uplift    []float64 `json:"uplift"`
	Treatment []float64 `json:"treatment"`
}

func (r *SampleRequest) Validate() error {
	return r.Sample().Validate()
}

func (r *SampleRequest) Sample() metrics.Sample {
	return metrics.Sample{YTrue: r.YTrue, Uplift: r.Uplift, Treatment: r.Treatment}
}

type CurveRequest struct {
	SampleRequest
	// NegativeEffect only applies to the Qini AUC.
	NegativeEffect *bool `json:"negative_effect,omitempty"`
}

type PerfectCurveRequest struct {
	YTrue          []float64 `json:"y_true"`
	Treatment      []float64 `json:"treatment"`
	NegativeEffect *bool     `json:"negative_effect,omitempty"`
}

func (r *PerfectCurveRequest) Validate() error {
	if len(r.YTrue) == 0 {
		return apperr.NewValidationWrap("y_true is empty", metrics.ErrEmptyInput)
	}
	return nil
}

type BalanceRequest struct {
	Uplift    []float64 `json:"uplift"`
	Treatment []float64 `json:"treatment"`
	Winsize   int       `json:"winsize"`
}

func (r *BalanceRequest) Validate() error {
	if len(r.Treatment) == 0 {
		return apperr.NewValidationWrap("treatment is empty", metrics.ErrEmptyInput)
	}
	if r.Winsize == 0 {
		r.Winsize = min(100, len(r.Treatment))
	}
	return nil
}

type CurveResponse struct {
	X   []float64 `json:"x"`
	Y   []float64 `json:"y"`
	AUC *float64  `json:"auc,omitempty"`
}

func NewCurveResponse(c metrics.Curve) CurveResponse {
	return CurveResponse{X: c.X, Y: c.Y}
}

// MetricParams is the optional parameter block of metric requests; unset
// fields take the engine defaults.
type MetricParams struct {
	Strategy       string     `json:"strategy,omitempty"`
	K              *metrics.K `json:"k,omitempty"`
	Bins           int        `json:"bins,omitempty"`
	NegativeEffect *bool      `json:"negative_effect,omitempty"`
}

func (p MetricParams) ToParams() metrics.MetricParams {
	out := metrics.DefaultMetricParams()
	if p.Strategy != "" {
		out.Strategy = metrics.Strategy(p.Strategy)
	}
	if p.K != nil {
		out.K = *p.K
	}
	if p.Bins != 0 {
		out.Bins = p.Bins
	}
	if p.NegativeEffect != nil {
		out.NegativeEffect = *p.NegativeEffect
	}
	return out
}

type ScoresRequest struct {
	SampleRequest
	// Metrics defaults to every registered metric.
	Metrics []string     `json:"metrics,omitempty"`
	Params  MetricParams `json:"params"`
}

type ScoresResponse struct {
	Scores map[string]float64 `json:"scores"`
}

type UpliftAtKRequest struct {
	SampleRequest
	Strategy string     `json:"strategy,omitempty"`
	K        *metrics.K `json:"k,omitempty"`
}

type ValueResponse struct {
	Value float64 `json:"value"`
}

type PercentileRequest struct {
	SampleRequest
	Strategy          string `json:"strategy,omitempty"`
	Bins              int    `json:"bins,omitempty"`
	Std               bool   `json:"std"`
	Total             bool   `json:"total"`
	StringPercentiles *bool  `json:"string_percentiles,omitempty"`
}

func (r *PercentileRequest) Options() []metrics.PercentileOption {
	var opts []metrics.PercentileOption
	if r.Std {
		opts = append(opts, metrics.WithStd())
	}
	if r.Total {
		opts = append(opts, metrics.WithTotal())
	}
	if r.StringPercentiles != nil && !*r.StringPercentiles {
		opts = append(opts, metrics.WithNumericPercentiles())
	}
	return opts
}

type PercentileResponse struct {
	Table                 *metrics.PercentileTable `json:"table"`
	WeightedAverageUplift float64                  `json:"weighted_average_uplift"`
}

type ResponseRateRequest struct {
	SampleRequest
	Group    string `json:"group"`
	Strategy string `json:"strategy,omitempty"`
	Bins     int    `json:"bins,omitempty"`
}
