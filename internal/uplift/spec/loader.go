package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/metrics"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBins          = 10
	DefaultBalanceWindow = 100
)

func LoadFromFile(path string) (*EvalSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spec file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, err
	}
	s.Dir = filepath.Dir(path)
	return s, nil
}

func Parse(data []byte) (*EvalSpec, error) {
	var s EvalSpec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse spec YAML: %w", err)
	}
	if err := validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

var validStorageTypes = map[string]bool{
	"":       true,
	"in_mem": true,
	"json":   true,
	"pg":     true,
	"es":     true,
}

// Validate checks a spec assembled in code and fills in the defaults, the same
// way Parse does.
func (s *EvalSpec) Validate() error {
	return validate(s)
}

func validate(s *EvalSpec) error {
	if s.Name == "" {
		return fmt.Errorf("spec has no name")
	}
	if s.Dataset.File == "" {
		return fmt.Errorf("dataset has no file")
	}
	if s.Dataset.Target == "" {
		return fmt.Errorf("dataset has no target column")
	}
	if s.Dataset.Treatment == "" {
		return fmt.Errorf("dataset has no treatment column")
	}
	if len(s.Models) == 0 {
		return fmt.Errorf("spec has no models")
	}

	seen := make(map[string]bool, len(s.Models))
	for i := range s.Models {
		m := &s.Models[i]
		if m.Name == "" {
			return fmt.Errorf("model at index %d has no name", i)
		}
		if seen[m.Name] {
			return fmt.Errorf("model %q is defined twice", m.Name)
		}
		seen[m.Name] = true
		if m.Column == "" {
			m.Column = m.Name
		}
	}

	if s.Metrics.K.IsZero() {
		s.Metrics.K = KValue{metrics.DefaultK}
	}
	if err := s.Metrics.K.ValidateRange(); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	if s.Metrics.Strategy == "" {
		s.Metrics.Strategy = string(metrics.StrategyOverall)
	}
	if err := metrics.Strategy(s.Metrics.Strategy).Validate(); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	if s.Metrics.Bins < 0 {
		return fmt.Errorf("metrics: bins=%d should be a positive integer: %w", s.Metrics.Bins, metrics.ErrInvalidBins)
	}
	if s.Metrics.Bins == 0 {
		s.Metrics.Bins = DefaultBins
	}
	if s.Metrics.NegativeEffect == nil {
		negativeEffect := true
		s.Metrics.NegativeEffect = &negativeEffect
	}
	if s.Metrics.BalanceWindow <= 0 {
		s.Metrics.BalanceWindow = DefaultBalanceWindow
	}

	if !validStorageTypes[s.Storage.Type] {
		return fmt.Errorf("storage has invalid type %q", s.Storage.Type)
	}
	return nil
}

// Columns lists the prediction column of every model, in spec order.
func (s *EvalSpec) Columns() []string {
	cols := make([]string, 0, len(s.Models))
	for _, m := range s.Models {
		cols = append(cols, m.Column)
	}
	return cols
}
