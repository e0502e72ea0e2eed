package metrics

import (
	"math"
	"sort"

	"github.com/DjordjeVuckovic/uplift-hunter/internal/apperr"
	"gonum.org/v1/gonum/integrate"
)

// degenerateTolerance is the relative size below which the area between the
// perfect and the baseline curve counts as zero.
const degenerateTolerance = 1e-12

// UpliftAUCScore computes the normalized area under the uplift curve:
// (actual - baseline) / (perfect - baseline), where the baseline is the
// straight line from the origin to the end of the perfect curve.
func UpliftAUCScore(yTrue, uplift, treatment []float64) (float64, error) {
	if err := validateBinaryInputs(yTrue, uplift, treatment); err != nil {
		return 0, err
	}
	actual := upliftCurve(yTrue, uplift, treatment)
	perfect := perfectUpliftCurve(yTrue, treatment)
	return normalizedAUC(actual, perfect)
}

// QiniAUCScore computes the normalized area under the Qini curve.
func QiniAUCScore(yTrue, uplift, treatment []float64, negativeEffect bool) (float64, error) {
	if err := validateBinaryInputs(yTrue, uplift, treatment); err != nil {
		return 0, err
	}
	actual := qiniCurve(yTrue, uplift, treatment)
	perfect := perfectQiniCurve(yTrue, treatment, negativeEffect)
	return normalizedAUC(actual, perfect)
}

// AUC computes the trapezoidal area under a curve with non-decreasing x.
func AUC(c Curve) (float64, error) {
	if c.Len() < 2 {
		return 0, nil
	}
	if !sort.Float64sAreSorted(c.X) {
		return 0, apperr.NewValidationWrap("curve x should be non-decreasing to compute its area", ErrNonMonotonic)
	}
	return integrate.Trapezoidal(c.X, c.Y), nil
}

func normalizedAUC(actual, perfect Curve) (float64, error) {
	lastX, lastY := perfect.Last()
	baseline := Curve{X: []float64{0, lastX}, Y: []float64{0, lastY}}

	baselineArea, err := AUC(baseline)
	if err != nil {
		return 0, err
	}
	perfectArea, err := AUC(perfect)
	if err != nil {
		return 0, err
	}
	actualArea, err := AUC(actual)
	if err != nil {
		return 0, err
	}

	perfectGain := perfectArea - baselineArea
	actualGain := actualArea - baselineArea

	tol := degenerateTolerance * math.Max(1, math.Abs(perfectArea))
	if math.Abs(perfectGain) <= tol {
		// the ideal ranking does no better than random targeting
		if math.Abs(actualGain) <= tol {
			return 1, nil
		}
		return 0, nil
	}
	return actualGain / perfectGain, nil
}
