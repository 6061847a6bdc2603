package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("SUBSCRIPTION_SWEEP_INTERVAL", "")

	cfg := Load()

	assert.Equal(t, "", cfg.App.Port) // explicitly set to empty wins over fallback
	assert.Equal(t, time.Hour, cfg.Subscription.SweepInterval)
	assert.Equal(t, 5*1024*1024, cfg.Upload.MaxBytes)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("GO_ENV", "production")
	t.Setenv("SUBSCRIPTION_SWEEP_INTERVAL", "15m")
	t.Setenv("PLAN_CACHE_TTL", "not-a-duration")
	t.Setenv("RATE_LIMIT_RPS", "0.5")
	t.Setenv("UPLOAD_MAX_BYTES", "1024")
	t.Setenv("OTEL_ENABLED", "true")

	cfg := Load()

	assert.Equal(t, "8080", cfg.App.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 15*time.Minute, cfg.Subscription.SweepInterval)
	assert.Equal(t, 5*time.Minute, cfg.Subscription.PlanCacheTTL)
	assert.Equal(t, 0.5, cfg.RateLimit.RPS)
	assert.Equal(t, 1024, cfg.Upload.MaxBytes)
	assert.True(t, cfg.Tracing.Enabled)
}
