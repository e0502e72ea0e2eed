package dataset

import (
	"errors"
	"fmt"
	"slices"

	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/metrics"
)

var (
	ErrMissingColumn = errors.New("missing column")
	ErrUnknownModel  = errors.New("unknown model")
	ErrInvalidValue  = errors.New("invalid value")
)

// ColumnMapping names the CSV columns holding the outcome, the treatment flag
// and the model predictions. An empty Predictions list means every other
// column is a prediction.
type ColumnMapping struct {
	Target      string
	Treatment   string
	Predictions []string
}

func (m ColumnMapping) Validate() error {
	if m.Target == "" {
		return fmt.Errorf("%w: target column is not set", ErrMissingColumn)
	}
	if m.Treatment == "" {
		return fmt.Errorf("%w: treatment column is not set", ErrMissingColumn)
	}
	if m.Target == m.Treatment {
		return fmt.Errorf("target and treatment use the same column %q", m.Target)
	}
	return nil
}

// Frame is a column store of one evaluation set. Rows keep their input order.
type Frame struct {
	Target      []float64
	Treatment   []float64
	Predictions map[string][]float64
	// Models lists prediction columns in header order.
	Models []string
}

// NewFrame builds a frame from already decoded columns. Models are ordered by
// name.
func NewFrame(target, treatment []float64, predictions map[string][]float64) (*Frame, error) {
	if len(predictions) == 0 {
		return nil, fmt.Errorf("%w: no prediction columns", ErrMissingColumn)
	}
	models := make([]string, 0, len(predictions))
	cols := [][]float64{target, treatment}
	for name, p := range predictions {
		models = append(models, name)
		cols = append(cols, p)
	}
	if err := metrics.CheckConsistentLength(cols...); err != nil {
		return nil, err
	}
	slices.Sort(models)

	return &Frame{
		Target:      target,
		Treatment:   treatment,
		Predictions: predictions,
		Models:      models,
	}, nil
}

func (f *Frame) Len() int { return len(f.Target) }

// Sample returns the aligned vectors for one model.
func (f *Frame) Sample(model string) (metrics.Sample, error) {
	p, ok := f.Predictions[model]
	if !ok {
		return metrics.Sample{}, fmt.Errorf("%w: %q", ErrUnknownModel, model)
	}
	return metrics.Sample{
		YTrue:     f.Target,
		Uplift:    p,
		Treatment: f.Treatment,
	}, nil
}
