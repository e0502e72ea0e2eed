package server

import "context"

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// HealthCheckerFunc adapts a plain function to HealthChecker.
type HealthCheckerFunc func(ctx context.Context) bool

func (f HealthCheckerFunc) Healthy(ctx context.Context) bool {
	return f(ctx)
}

type OkHealthChecker struct {
}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}

// AllHealthy reports healthy only when every checker does.
func AllHealthy(checkers ...HealthChecker) HealthChecker {
	return HealthCheckerFunc(func(ctx context.Context) bool {
		for _, hc := range checkers {
			if !hc.Healthy(ctx) {
				return false
			}
		}
		return true
	})
}
