package spec

import (
	"fmt"
	"path/filepath"

	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/metrics"
	"gopkg.in/yaml.v3"
)

type EvalSpec struct {
	Name    string        `yaml:"name" json:"name" schema:"required,minLength=1"`
	Dataset Dataset       `yaml:"dataset" json:"dataset" schema:"required"`
	Models  []Model       `yaml:"models" json:"models" schema:"required,minItems=1"`
	Metrics MetricsConfig `yaml:"metrics" json:"metrics"`
	Storage StorageConfig `yaml:"storage,omitempty" json:"storage,omitempty"`

	// Dir is the directory of the evaluation file; relative dataset paths resolve
	// against it.
	Dir string `yaml:"-" json:"-"`
}

func (s *EvalSpec) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || s.Dir == "" {
		return path
	}
	return filepath.Join(s.Dir, path)
}

type Dataset struct {
	File      string `yaml:"file" json:"file" schema:"required" description:"CSV with one column per model prediction"`
	Target    string `yaml:"target" json:"target" schema:"required" description:"binary outcome column"`
	Treatment string `yaml:"treatment" json:"treatment" schema:"required" description:"binary treatment flag column"`
	// Train optionally points at the training set, scored for stability
	// against File.
	Train string `yaml:"train,omitempty" json:"train,omitempty"`
}

type Model struct {
	Name   string `yaml:"name" json:"name" schema:"required"`
	Column string `yaml:"column" json:"column" description:"prediction column, defaults to the model name"`
}

type MetricsConfig struct {
	K              KValue `yaml:"k" json:"k" schema:"type=number" description:"top-k size: an integer count or a fraction in (0, 1)"`
	Strategy       string `yaml:"strategy" json:"strategy" schema:"enum=overall|by_group,default=overall"`
	Bins           int    `yaml:"bins" json:"bins"`
	NegativeEffect *bool  `yaml:"negative_effect" json:"negative_effect"`
	BalanceWindow  int    `yaml:"balance_window" json:"balance_window"`
}

type StorageConfig struct {
	Type       string `yaml:"type" json:"type" schema:"enum=in_mem|json|pg|es"`
	Path       string `yaml:"path,omitempty" json:"path,omitempty"`
	Connection string `yaml:"connection,omitempty" json:"connection,omitempty"`
	Index      string `yaml:"index,omitempty" json:"index,omitempty"`
}

// Params resolves the metric section into engine parameters.
func (m MetricsConfig) Params() metrics.MetricParams {
	p := metrics.DefaultMetricParams()
	if !m.K.IsZero() {
		p.K = m.K.K
	}
	if m.Strategy != "" {
		p.Strategy = metrics.Strategy(m.Strategy)
	}
	if m.Bins > 0 {
		p.Bins = m.Bins
	}
	if m.NegativeEffect != nil {
		p.NegativeEffect = *m.NegativeEffect
	}
	return p
}

// KValue decodes k from YAML keeping the integer/float distinction of the
// scalar: "k: 5" is a count, "k: 0.5" a fraction.
type KValue struct {
	metrics.K
}

func (kv *KValue) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: k must be a scalar", value.Line)
	}
	switch value.ShortTag() {
	case "!!int":
		var n int
		if err := value.Decode(&n); err != nil {
			return err
		}
		kv.K = metrics.Count(n)
		return nil
	case "!!float":
		var f float64
		if err := value.Decode(&f); err != nil {
			return err
		}
		kv.K = metrics.Fraction(f)
		return nil
	}
	k, err := metrics.ParseK(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	kv.K = k
	return nil
}

func (kv KValue) MarshalYAML() (any, error) {
	if kv.IsZero() {
		return nil, nil
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Value: kv.String()}, nil
}
