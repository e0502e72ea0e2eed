package es

import (
	"context"
	"log/slog"
)

type HealthChecker struct {
	storer *Storer
}

func NewHealthChecker(storer *Storer) *HealthChecker {
	return &HealthChecker{storer: storer}
}

func (hc *HealthChecker) Healthy(ctx context.Context) bool {
	if hc.storer == nil {
		return false
	}
	ok, err := hc.storer.client.Ping().Do(ctx)
	if err != nil {
		slog.Warn("Elasticsearch health check failed", "error", err)
		return false
	}
	return ok
}
