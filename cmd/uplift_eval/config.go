package main

import (
	"flag"
	"fmt"
	"path/filepath"

	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/dataset"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/metrics"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/spec"
	"github.com/DjordjeVuckovic/uplift-hunter/pkg/utils"
)

type cliConfig struct {
	SpecPath      string
	DataPath      string
	TrainPath     string
	Target        string
	Treatment     string
	Models        string
	K             string
	Bins          int
	Strategy      string
	BalanceWindow int
	Output        string
	Store         string
	StorePath     string
}

func parseFlags(args []string) (cliConfig, error) {
	cfg := cliConfig{}
	fs := flag.NewFlagSet("uplift_eval", flag.ContinueOnError)

	fs.StringVar(&cfg.SpecPath, "spec", "", "Path to evaluation spec YAML")
	fs.StringVar(&cfg.DataPath, "data", "", "CSV dataset (quick mode)")
	fs.StringVar(&cfg.TrainPath, "train", "", "Optional train CSV for the average squared deviation (quick mode)")
	fs.StringVar(&cfg.Target, "target", "y", "Outcome column (quick mode)")
	fs.StringVar(&cfg.Treatment, "treatment", "treatment", "Treatment flag column (quick mode)")
	fs.StringVar(&cfg.Models, "models", "", "Prediction columns, comma-separated; empty means every other column (quick mode)")
	fs.StringVar(&cfg.K, "k", "", "Top-k size: integer count or fraction in (0, 1)")
	fs.IntVar(&cfg.Bins, "bins", 0, "Number of percentile bins")
	fs.StringVar(&cfg.Strategy, "strategy", "", "Metric strategy: overall or by_group")
	fs.IntVar(&cfg.BalanceWindow, "window", 0, "Treatment balance window size")
	fs.StringVar(&cfg.Output, "output", "", "Output path for the JSON report")
	fs.StringVar(&cfg.Store, "store", "", "Persist the report: in_mem, json, pg or es (overrides the spec file)")
	fs.StringVar(&cfg.StorePath, "store-path", "", "Directory, connection string or ES addresses of the -store backend")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.SpecPath == "" && cfg.DataPath == "" {
		return cfg, fmt.Errorf("either -spec or -data is required")
	}
	return cfg, nil
}

// buildSpec loads the evaluation file or assembles one from the quick mode flags,
// then applies flag overrides.
func (c cliConfig) buildSpec() (*spec.EvalSpec, error) {
	var (
		s   *spec.EvalSpec
		err error
	)
	if c.SpecPath != "" {
		if s, err = spec.LoadFromFile(c.SpecPath); err != nil {
			return nil, err
		}
	} else {
		s = &spec.EvalSpec{
			Name: "quick",
			Dataset: spec.Dataset{
				File:      c.DataPath,
				Train:     c.TrainPath,
				Target:    c.Target,
				Treatment: c.Treatment,
			},
		}
		for _, m := range utils.SplitList(c.Models, ",") {
			s.Models = append(s.Models, spec.Model{Name: m, Column: m})
		}
	}

	if c.K != "" {
		k, err := metrics.ParseK(c.K)
		if err != nil {
			return nil, err
		}
		s.Metrics.K = spec.KValue{K: k}
	}
	if c.Bins > 0 {
		s.Metrics.Bins = c.Bins
	}
	if c.Strategy != "" {
		s.Metrics.Strategy = c.Strategy
	}
	if c.BalanceWindow > 0 {
		s.Metrics.BalanceWindow = c.BalanceWindow
	}
	if c.Store != "" {
		if s.Storage, err = storageFromFlags(c.Store, c.StorePath); err != nil {
			return nil, err
		}
	} else if s.Storage.Type == "json" {
		s.Storage.Path = s.Resolve(s.Storage.Path)
	}

	if len(s.Models) == 0 {
		if s.Models, err = discoverModels(s); err != nil {
			return nil, err
		}
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid evaluation spec: %w", err)
	}
	return s, nil
}

// storageFromFlags maps -store and -store-path onto a spec storage section.
// A relative JSON directory is taken from the working directory.
func storageFromFlags(storeType, target string) (spec.StorageConfig, error) {
	sc := spec.StorageConfig{Type: storeType}
	switch storeType {
	case "json":
		if target == "" {
			return sc, nil
		}
		abs, err := filepath.Abs(target)
		if err != nil {
			return sc, fmt.Errorf("resolve store path: %w", err)
		}
		sc.Path = abs
	case "pg", "es":
		sc.Connection = target
	}
	return sc, nil
}

// discoverModels treats every column except target and treatment as a model.
func discoverModels(s *spec.EvalSpec) ([]spec.Model, error) {
	frame, err := dataset.LoadCSV(s.Resolve(s.Dataset.File), dataset.ColumnMapping{
		Target:    s.Dataset.Target,
		Treatment: s.Dataset.Treatment,
	})
	if err != nil {
		return nil, err
	}
	models := make([]spec.Model, 0, len(frame.Models))
	for _, name := range frame.Models {
		models = append(models, spec.Model{Name: name, Column: name})
	}
	return models, nil
}
