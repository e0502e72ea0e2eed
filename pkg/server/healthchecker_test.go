package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllHealthy(t *testing.T) {
	up := HealthCheckerFunc(func(context.Context) bool { return true })
	down := HealthCheckerFunc(func(context.Context) bool { return false })

	assert.True(t, AllHealthy().Healthy(t.Context()))
	assert.True(t, AllHealthy(up, NewOkHealthChecker()).Healthy(t.Context()))
	assert.False(t, AllHealthy(up, down).Healthy(t.Context()))
}
