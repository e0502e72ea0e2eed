package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/DjordjeVuckovic/uplift-hunter/internal/storage/factory"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/report"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/runner"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/spec"
)

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Invalid arguments", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s, err := cfg.buildSpec()
	if err != nil {
		slog.Error("Failed to build evaluation spec", "error", err)
		os.Exit(1)
	}

	result, err := runner.New(runner.ConfigFromSpec(s)).RunSpec(ctx, s)
	if err != nil {
		slog.Error("Evaluation failed", "name", s.Name, "error", err)
		os.Exit(1)
	}
	if failed := result.FailedModels(); len(failed) > 0 {
		slog.Warn("Some models could not be evaluated", "models", failed)
	}

	rpt := report.Generate(result)
	report.WriteTable(rpt, os.Stdout)

	if cfg.Output != "" {
		if err := report.WriteJSON(rpt, cfg.Output); err != nil {
			slog.Error("Failed to write JSON report", "error", err)
			os.Exit(1)
		}
		slog.Info("Report written", "path", cfg.Output)
	}

	if s.Storage.Type != "" {
		if err := store(ctx, s.Storage, rpt); err != nil {
			slog.Error("Failed to store report", "type", s.Storage.Type, "error", err)
			os.Exit(1)
		}
	}
}

func store(ctx context.Context, sc spec.StorageConfig, rpt *report.Report) error {
	storageCfg, err := factory.FromSpec(sc)
	if err != nil {
		return err
	}
	backend, err := factory.NewStorer(ctx, storageCfg)
	if err != nil {
		return err
	}
	defer backend.Close()

	id, err := backend.Storer.Save(ctx, rpt)
	if err != nil {
		return err
	}
	slog.Info("Report stored", "type", storageCfg.Type, "id", id)
	return nil
}
