package metrics

import (
	"fmt"

	"github.com/DjordjeVuckovic/uplift-hunter/internal/apperr"
	"gonum.org/v1/gonum/floats"
)

// TreatmentBalanceCurve slides a window of winsize over the ranking and
// reports the share of treated individuals inside each window. X is spread
// evenly over [1, 100].
func TreatmentBalanceCurve(uplift, treatment []float64, winsize int) (Curve, error) {
	if err := CheckConsistentLength(uplift, treatment); err != nil {
		return Curve{}, err
	}
	if err := CheckFinite(uplift); err != nil {
		return Curve{}, fmt.Errorf("uplift: %w", err)
	}
	if err := CheckBinary(treatment); err != nil {
		return Curve{}, fmt.Errorf("treatment: %w", err)
	}
	n := len(treatment)
	if winsize < 1 || winsize > n {
		return Curve{}, apperr.NewValidationWrap(
			fmt.Sprintf("winsize=%d should be in the [1, %d] range", winsize, n),
			ErrInvalidWindow,
		)
	}

	trmnt := permute(treatment, descendingOrder(uplift))
	m := n - winsize + 1
	w := float64(winsize)

	balance := make([]float64, m)
	var window float64
	for i := 0; i < winsize; i++ {
		window += trmnt[i]
	}
	balance[0] = window / w
	for i := 1; i < m; i++ {
		window += trmnt[i+winsize-1] - trmnt[i-1]
		balance[i] = window / w
	}

	x := []float64{1}
	if m > 1 {
		x = floats.Span(make([]float64, m), 1, 100)
	}
	return Curve{X: x, Y: balance}, nil
}
