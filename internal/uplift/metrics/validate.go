package metrics

import (
	"fmt"
	"math"
	"slices"

	"github.com/DjordjeVuckovic/uplift-hunter/internal/apperr"
)

const maxReportedValues = 5

// CheckBinary verifies that the distinct values of v are exactly {0, 1}.
// A constant vector is rejected.
func CheckBinary(v []float64) error {
	var hasZero, hasOne bool
	for _, x := range v {
		switch x {
		case 0:
			hasZero = true
		case 1:
			hasOne = true
		default:
			return notBinary(v)
		}
	}
	if !hasZero || !hasOne {
		return notBinary(v)
	}
	return nil
}

func notBinary(v []float64) error {
	return apperr.NewValidationWrap(
		fmt.Sprintf("input array should contain only the values 0 and 1, both present; got values %s", formatDistinct(v)),
		ErrNotBinary,
	)
}

func formatDistinct(v []float64) string {
	seen := make(map[float64]struct{})
	var distinct []float64
	for _, x := range v {
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		distinct = append(distinct, x)
	}
	slices.Sort(distinct)
	if len(distinct) > maxReportedValues {
		return fmt.Sprintf("%v...", distinct[:maxReportedValues])
	}
	return fmt.Sprintf("%v", distinct)
}

// CheckConsistentLength verifies that all vectors have the same length.
func CheckConsistentLength(vs ...[]float64) error {
	if len(vs) == 0 {
		return nil
	}
	n := len(vs[0])
	for _, v := range vs[1:] {
		if len(v) != n {
			lengths := make([]int, len(vs))
			for i := range vs {
				lengths[i] = len(vs[i])
			}
			return apperr.NewValidationWrap(
				fmt.Sprintf("found input variables with inconsistent numbers of samples: %v", lengths),
				ErrLengthMismatch,
			)
		}
	}
	return nil
}

// CheckFinite rejects NaN and infinite values, which have no place in a
// descending ranking.
func CheckFinite(v []float64) error {
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return apperr.NewValidationWrap(fmt.Sprintf("value %v at index %d is not finite", x, i), ErrNotFinite)
		}
	}
	return nil
}

func validateInputs(yTrue, uplift, treatment []float64) error {
	if err := CheckConsistentLength(yTrue, uplift, treatment); err != nil {
		return err
	}
	if err := CheckFinite(uplift); err != nil {
		return fmt.Errorf("uplift: %w", err)
	}
	if err := CheckBinary(treatment); err != nil {
		return fmt.Errorf("treatment: %w", err)
	}
	return nil
}

func validateBinaryInputs(yTrue, uplift, treatment []float64) error {
	if err := validateInputs(yTrue, uplift, treatment); err != nil {
		return err
	}
	if err := CheckBinary(yTrue); err != nil {
		return fmt.Errorf("y_true: %w", err)
	}
	return nil
}

func validateBins(bins, nSamples int) error {
	if bins <= 0 {
		return apperr.NewValidationWrap(fmt.Sprintf("bins=%d should be a positive integer", bins), ErrInvalidBins)
	}
	if bins >= nSamples {
		return apperr.NewValidationWrap(
			fmt.Sprintf("number of bins=%d should be smaller than the number of samples %d", bins, nSamples),
			ErrInvalidBins,
		)
	}
	return nil
}
