package report

import (
	"runtime"
	"time"

	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/metrics"
	"github.com/google/uuid"
)

const Version = "1.0"

type Report struct {
	ID      uuid.UUID     `json:"id"`
	Meta    EvalMeta      `json:"meta"`
	Config  ReportConfig  `json:"config"`
	Ranking []RankedModel `json:"ranking"`
	Models  []ModelReport `json:"models"`
}

type EvalMeta struct {
	Name        string          `json:"name"`
	Version     string          `json:"version"`
	Timestamp   time.Time       `json:"timestamp"`
	Samples     int             `json:"samples"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

type ReportConfig struct {
	Params        metrics.MetricParams `json:"params"`
	BalanceWindow int                  `json:"balance_window"`
}

type RankedModel struct {
	Rank      int     `json:"rank"`
	Model     string  `json:"model"`
	QiniAUC   float64 `json:"qini_auc_score"`
	UpliftAUC float64 `json:"uplift_auc_score"`
}

type ModelReport struct {
	Model       string                   `json:"model"`
	Scores      map[string]float64       `json:"scores,omitempty"`
	Percentiles *metrics.PercentileTable `json:"percentiles,omitempty"`
	UpliftCurve *metrics.Curve           `json:"uplift_curve,omitempty"`
	QiniCurve   *metrics.Curve           `json:"qini_curve,omitempty"`
	Balance     *metrics.Curve           `json:"treatment_balance,omitempty"`
	DurationMs  float64                  `json:"duration_ms"`
	Error       string                   `json:"error,omitempty"`
}

// Summary is the listing view of a stored report.
type Summary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	Samples   int       `json:"samples"`
	Models    int       `json:"models"`
	Best      string    `json:"best_model,omitempty"`
}

func (r *Report) Summary() Summary {
	s := Summary{
		ID:        r.ID,
		Name:      r.Meta.Name,
		CreatedAt: r.Meta.Timestamp,
		Samples:   r.Meta.Samples,
		Models:    len(r.Models),
	}
	if len(r.Ranking) > 0 {
		s.Best = r.Ranking[0].Model
	}
	return s
}
