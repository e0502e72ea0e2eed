package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/uplift-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/dataset"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/metrics"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/spec"
)

var ErrEmptyFrame = errors.New("dataset has no rows")

type Runner struct {
	config Config
}

func New(cfg Config) *Runner {
	return &Runner{config: cfg}
}

// RunSpec loads the evaluation dataset (and the train dataset when given) and
// evaluates every model it declares.
func (r *Runner) RunSpec(ctx context.Context, s *spec.EvalSpec) (*EvaluationResult, error) {
	val, err := loadModels(s, s.Resolve(s.Dataset.File))
	if err != nil {
		return nil, err
	}

	var train *dataset.Frame
	if s.Dataset.Train != "" {
		if train, err = loadModels(s, s.Resolve(s.Dataset.Train)); err != nil {
			return nil, err
		}
	}
	return r.RunWithTrain(ctx, s.Name, val, train)
}

func (r *Runner) Run(ctx context.Context, name string, frame *dataset.Frame) (*EvaluationResult, error) {
	return r.RunWithTrain(ctx, name, frame, nil)
}

// RunWithTrain evaluates every model of frame. When train is not nil, models
// present in both frames also get their average squared deviation.
func (r *Runner) RunWithTrain(ctx context.Context, name string, frame, train *dataset.Frame) (*EvaluationResult, error) {
	if frame == nil || frame.Len() == 0 {
		return nil, ErrEmptyFrame
	}
	if err := r.config.Params.Validate(); err != nil {
		return nil, fmt.Errorf("evaluation %q: %w", name, err)
	}
	for _, f := range []*dataset.Frame{frame, train} {
		if err := checkShared(f); err != nil {
			return nil, fmt.Errorf("evaluation %q: %w", name, err)
		}
	}

	er := &EvaluationResult{
		Name:    name,
		Samples: frame.Len(),
		Config:  r.config,
	}

	for _, model := range frame.Models {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("evaluation %q interrupted: %w", name, err)
		}

		mr := r.evaluate(frame, train, model)
		switch {
		case mr.Error == nil:
			slog.Info("model evaluated", "evaluation", name, "model", model, "duration", mr.Duration)
		case apperr.IsValidation(mr.Error):
			slog.Warn("model evaluation failed", "evaluation", name, "model", model, "error", mr.Error)
		default:
			slog.Error("model evaluation failed", "evaluation", name, "model", model, "error", mr.Error)
		}
		er.Models = append(er.Models, mr)
	}

	return er, nil
}

func (r *Runner) evaluate(frame, train *dataset.Frame, model string) ModelResult {
	start := time.Now()
	mr := ModelResult{Model: model, Scores: make(ScoreSet)}

	fail := func(err error) ModelResult {
		mr.Error = err
		mr.Duration = time.Since(start)
		return mr
	}

	s, err := frame.Sample(model)
	if err != nil {
		return fail(err)
	}
	if err := s.Validate(); err != nil {
		return fail(err)
	}

	p := r.config.Params
	for _, name := range r.config.scoreNames() {
		v, err := metrics.Score(name, s.YTrue, s.Uplift, s.Treatment, p)
		if err != nil {
			return fail(fmt.Errorf("%s: %w", name, err))
		}
		mr.Scores[name] = v
	}

	if mr.UpliftCurve, err = metrics.UpliftCurve(s.YTrue, s.Uplift, s.Treatment); err != nil {
		return fail(fmt.Errorf("uplift curve: %w", err))
	}
	if mr.QiniCurve, err = metrics.QiniCurve(s.YTrue, s.Uplift, s.Treatment); err != nil {
		return fail(fmt.Errorf("qini curve: %w", err))
	}

	mr.Percentiles, err = metrics.UpliftByPercentile(s.YTrue, s.Uplift, s.Treatment, p.Strategy, p.Bins,
		metrics.WithStd(), metrics.WithTotal())
	if err != nil {
		return fail(fmt.Errorf("uplift by percentile: %w", err))
	}

	winsize := min(max(r.config.BalanceWindow, 1), s.Len())
	if mr.Balance, err = metrics.TreatmentBalanceCurve(s.Uplift, s.Treatment, winsize); err != nil {
		return fail(fmt.Errorf("treatment balance: %w", err))
	}

	if train != nil {
		if ts, err := train.Sample(model); err == nil {
			dev, err := metrics.AverageSquaredDeviation(ts, s, p.Strategy, p.Bins)
			if err != nil {
				return fail(fmt.Errorf("%s: %w", ScoreAverageSquaredDeviation, err))
			}
			mr.Scores[ScoreAverageSquaredDeviation] = dev
		}
	}

	mr.Duration = time.Since(start)
	return mr
}

// loadModels reads the prediction columns of the configured models and keys them by
// model name.
func loadModels(s *spec.EvalSpec, path string) (*dataset.Frame, error) {
	raw, err := dataset.LoadCSV(path, dataset.ColumnMapping{
		Target:      s.Dataset.Target,
		Treatment:   s.Dataset.Treatment,
		Predictions: s.Columns(),
	})
	if err != nil {
		return nil, err
	}

	frame := &dataset.Frame{
		Target:      raw.Target,
		Treatment:   raw.Treatment,
		Predictions: make(map[string][]float64, len(s.Models)),
	}
	for _, m := range s.Models {
		frame.Predictions[m.Name] = raw.Predictions[m.Column]
		frame.Models = append(frame.Models, m.Name)
	}
	return frame, nil
}

// checkShared validates the columns every model is scored against, so a bad
// target or treatment fails the evaluation once instead of every model.
func checkShared(f *dataset.Frame) error {
	if f == nil {
		return nil
	}
	if err := metrics.CheckBinary(f.Target); err != nil {
		return fmt.Errorf("target: %w", err)
	}
	if err := metrics.CheckBinary(f.Treatment); err != nil {
		return fmt.Errorf("treatment: %w", err)
	}
	return nil
}
