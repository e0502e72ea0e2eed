package metrics

import "errors"

var (
	ErrLengthMismatch  = errors.New("inconsistent input lengths")
	ErrNotBinary       = errors.New("array is not binary")
	ErrNotFinite       = errors.New("array has non-finite values")
	ErrEmptyInput      = errors.New("empty input")
	ErrInvalidStrategy = errors.New("invalid strategy")
	ErrInvalidGroup    = errors.New("invalid group")
	ErrInvalidBins     = errors.New("invalid number of bins")
	ErrInvalidK        = errors.New("invalid k")
	ErrInvalidWindow   = errors.New("invalid window size")
	ErrUnknownMetric   = errors.New("unknown metric")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNonMonotonic    = errors.New("curve x is not monotonic")
)
