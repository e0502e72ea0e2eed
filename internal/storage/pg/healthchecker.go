package pg

import (
	"context"
	"log/slog"
)

type HealthChecker struct {
	pool *ConnectionPool
}

func NewHealthChecker(pool *ConnectionPool) *HealthChecker {
	return &HealthChecker{pool: pool}
}

// Healthy pings through the pool; the ping timeout comes from PoolConfig.
func (hc *HealthChecker) Healthy(ctx context.Context) bool {
	if hc == nil || hc.pool == nil {
		return false
	}
	if err := hc.pool.Ping(ctx); err != nil {
		slog.Warn("PostgreSQL health check failed", "error", err)
		return false
	}
	return true
}
