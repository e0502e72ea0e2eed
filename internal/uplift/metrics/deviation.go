package metrics

import "fmt"

// AverageSquaredDeviation measures how stable a model is between two
// samples: the mean squared difference of per-bin uplift between the train
// and validation percentile tables.
func AverageSquaredDeviation(train, val Sample, strategy Strategy, bins int) (float64, error) {
	if err := validatePercentile(train.YTrue, train.Uplift, train.Treatment, strategy, bins); err != nil {
		return 0, fmt.Errorf("train: %w", err)
	}
	if err := validatePercentile(val.YTrue, val.Uplift, val.Treatment, strategy, bins); err != nil {
		return 0, fmt.Errorf("validation: %w", err)
	}
	warnSingleBin(bins)

	o := percentileOptions{stringPercentiles: true}
	trainTable := upliftByPercentile(train.YTrue, train.Uplift, train.Treatment, strategy, bins, o)
	valTable := upliftByPercentile(val.YTrue, val.Uplift, val.Treatment, strategy, bins, o)

	var sum float64
	for i := range trainTable.Rows {
		d := trainTable.Rows[i].Uplift - valTable.Rows[i].Uplift
		sum += d * d
	}
	return sum / float64(bins), nil
}
