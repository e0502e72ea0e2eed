package runner

import (
	"time"

	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/metrics"
)

// ScoreAverageSquaredDeviation is reported when a train frame is supplied.
const ScoreAverageSquaredDeviation = "average_squared_deviation"

// ScoreSet maps a metric name to its value.
type ScoreSet map[string]float64

type ModelResult struct {
	Model       string
	Scores      ScoreSet
	Percentiles *metrics.PercentileTable
	UpliftCurve metrics.Curve
	QiniCurve   metrics.Curve
	Balance     metrics.Curve
	Duration    time.Duration
	Error       error
}

type EvaluationResult struct {
	Name    string
	Samples int
	Models  []ModelResult
	Config  Config
}

func (er *EvaluationResult) FailedModels() []string {
	var names []string
	for _, mr := range er.Models {
		if mr.Error != nil {
			names = append(names, mr.Model)
		}
	}
	return names
}
