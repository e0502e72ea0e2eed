package metrics

import (
	"fmt"

	"github.com/DjordjeVuckovic/uplift-hunter/internal/apperr"
	"gonum.org/v1/gonum/stat"
)

// UpliftAtK computes the difference between treatment and control response
// rates among the top k of the ranking.
//
// With StrategyOverall the top k are taken from the pooled population. With
// StrategyByGroup k is applied to each group separately.
func UpliftAtK(yTrue, uplift, treatment []float64, strategy Strategy, k K) (float64, error) {
	if err := validateInputs(yTrue, uplift, treatment); err != nil {
		return 0, err
	}
	if err := strategy.Validate(); err != nil {
		return 0, err
	}
	n := len(yTrue)
	if err := k.Validate(n); err != nil {
		return 0, err
	}

	order := descendingOrder(uplift)
	y := permute(yTrue, order)
	trmnt := permute(treatment, order)

	if strategy == StrategyOverall {
		size := k.size(n)
		top, topTrmnt := y[:size], trmnt[:size]
		return mean(selectGroup(top, topTrmnt, 1)) - mean(selectGroup(top, topTrmnt, 0)), nil
	}

	yTrmnt := selectGroup(y, trmnt, 1)
	yCtrl := selectGroup(y, trmnt, 0)
	nTrmnt, nCtrl := k.size(len(yTrmnt)), k.size(len(yCtrl))
	if nCtrl > len(yCtrl) {
		return 0, apperr.NewValidationWrap(
			fmt.Sprintf("with k=%s the number of the first k observations is bigger than the number of samples in the control group: %d", k, len(yCtrl)),
			ErrInvalidK,
		)
	}
	if nTrmnt > len(yTrmnt) {
		return 0, apperr.NewValidationWrap(
			fmt.Sprintf("with k=%s the number of the first k observations is bigger than the number of samples in the treatment group: %d", k, len(yTrmnt)),
			ErrInvalidK,
		)
	}
	return mean(yTrmnt[:nTrmnt]) - mean(yCtrl[:nCtrl]), nil
}

// selectGroup keeps the outcomes whose treatment flag equals flag.
func selectGroup(y, treatment []float64, flag float64) []float64 {
	out := make([]float64, 0, len(y))
	for i := range y {
		if treatment[i] == flag {
			out = append(out, y[i])
		}
	}
	return out
}

// mean of an empty slice is 0.
func mean(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	return stat.Mean(v, nil)
}
