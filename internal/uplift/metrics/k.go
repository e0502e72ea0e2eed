package metrics

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/uplift-hunter/internal/apperr"
)

// K selects the top of a ranking either as an absolute count or as a
// fraction of the available samples. The zero K is unset, so an explicit
// Fraction(0) stays distinguishable from a missing value.
type K struct {
	count    int
	fraction float64
	isCount  bool
	set      bool
}

// DefaultK is the top 30% of the ranking.
var DefaultK = Fraction(0.3)

func Count(n int) K { return K{count: n, isCount: true, set: true} }

func Fraction(f float64) K { return K{fraction: f, set: true} }

// ParseK reads a count from an integer literal ("5") and a fraction from a
// decimal literal ("0.3", "1.0", "3e-1").
func ParseK(s string) (K, error) {
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, ".eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return K{}, apperr.NewValidationWrap(fmt.Sprintf("invalid value for k: %q", s), ErrInvalidK)
		}
		return Fraction(f), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return K{}, apperr.NewValidationWrap(fmt.Sprintf("invalid value for k: %q", s), ErrInvalidK)
	}
	return Count(n), nil
}

func (k K) IsCount() bool { return k.isCount }

// IsZero reports whether k was never set.
func (k K) IsZero() bool { return !k.set }

func (k K) String() string {
	if k.isCount {
		return strconv.Itoa(k.count)
	}
	s := strconv.FormatFloat(k.fraction, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func (k K) MarshalJSON() ([]byte, error) {
	if !k.set {
		return []byte("null"), nil
	}
	return []byte(k.String()), nil
}

func (k *K) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*k = K{}
		return nil
	}
	parsed, err := ParseK(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ValidateRange checks the bounds that do not depend on the data: a
// positive count or a fraction in (0, 1).
func (k K) ValidateRange() error {
	if !k.set || k.isCount && k.count <= 0 || !k.isCount && (k.fraction <= 0 || k.fraction >= 1) {
		return apperr.NewValidationWrap(
			fmt.Sprintf("k=%s should be either a positive integer or a float in the (0, 1) range", k),
			ErrInvalidK,
		)
	}
	return nil
}

// Validate checks that a count lies in (0, n) and a fraction in (0, 1).
func (k K) Validate(n int) error {
	if !k.set || k.isCount && (k.count <= 0 || k.count >= n) ||
		!k.isCount && (k.fraction <= 0 || k.fraction >= 1) {
		return apperr.NewValidationWrap(
			fmt.Sprintf("k=%s should be either positive and smaller than the number of samples %d or a float in the (0, 1) range", k, n),
			ErrInvalidK,
		)
	}
	return nil
}

// size resolves k against a population of n samples.
func (k K) size(n int) int {
	if k.isCount {
		return k.count
	}
	return int(float64(n) * k.fraction)
}
