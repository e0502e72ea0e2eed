package runner

import (
	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/metrics"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/spec"
)

const DefaultBalanceWindow = spec.DefaultBalanceWindow

type Config struct {
	Params metrics.MetricParams
	// Scores lists the registry metrics computed for every model. Empty means
	// all of them.
	Scores        []string
	BalanceWindow int
}

func DefaultConfig() Config {
	return Config{
		Params:        metrics.DefaultMetricParams(),
		Scores:        metrics.MetricNames(),
		BalanceWindow: DefaultBalanceWindow,
	}
}

func ConfigFromSpec(s *spec.EvalSpec) Config {
	cfg := DefaultConfig()
	cfg.Params = s.Metrics.Params()
	if s.Metrics.BalanceWindow > 0 {
		cfg.BalanceWindow = s.Metrics.BalanceWindow
	}
	return cfg
}

func (c Config) scoreNames() []string {
	if len(c.Scores) == 0 {
		return metrics.MetricNames()
	}
	return c.Scores
}
