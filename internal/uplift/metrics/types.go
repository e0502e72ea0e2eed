package metrics

import (
	"fmt"

	"github.com/DjordjeVuckovic/uplift-hunter/internal/apperr"
)

type Strategy string

const (
	StrategyOverall Strategy = "overall"
	StrategyByGroup Strategy = "by_group"
)

func (s Strategy) Validate() error {
	switch s {
	case StrategyOverall, StrategyByGroup:
		return nil
	}
	return apperr.NewValidationWrap(
		fmt.Sprintf("strategy %q is not supported, expected one of %v", s, []Strategy{StrategyOverall, StrategyByGroup}),
		ErrInvalidStrategy,
	)
}

type Group string

const (
	GroupTreatment Group = "treatment"
	GroupControl   Group = "control"
)

func (g Group) Validate() error {
	switch g {
	case GroupTreatment, GroupControl:
		return nil
	}
	return apperr.NewValidationWrap(
		fmt.Sprintf("group %q is not supported, expected one of %v", g, []Group{GroupTreatment, GroupControl}),
		ErrInvalidGroup,
	)
}

func (g Group) flag() float64 {
	if g == GroupTreatment {
		return 1
	}
	return 0
}

// Curve is a step function from (0, 0) to (N, final value).
type Curve struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

func (c Curve) Len() int { return len(c.X) }

// Last returns the final point of the curve.
func (c Curve) Last() (x, y float64) {
	if len(c.X) == 0 {
		return 0, 0
	}
	return c.X[len(c.X)-1], c.Y[len(c.Y)-1]
}

// Sample is one aligned evaluation set.
type Sample struct {
	YTrue     []float64 `json:"y_true"`
	Uplift    []float64 `json:"uplift"`
	Treatment []float64 `json:"treatment"`
}

func (s Sample) Len() int { return len(s.YTrue) }

func (s Sample) Validate() error {
	if len(s.YTrue) == 0 {
		return apperr.NewValidationWrap("sample has no observations", ErrEmptyInput)
	}
	return validateInputs(s.YTrue, s.Uplift, s.Treatment)
}

type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ToFloat64 copies any numeric slice into a dense float64 buffer.
func ToFloat64[T Number](s []T) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}
	return out
}

func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
