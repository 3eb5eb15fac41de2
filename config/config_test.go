package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "ACT/365F", cfg.DayCount)
	assert.Equal(t, 2, cfg.FixedFrequency)
	assert.Equal(t, "exp_cont", cfg.DiscountingStrategy)
	assert.Equal(t, "linear_zero", cfg.InterpStrategy)
	assert.Equal(t, "clamp", cfg.ExtrapolationPolicy)
	assert.Equal(t, "SwapRates_*.csv", cfg.CurveGlob)
	assert.Equal(t, 300*time.Second, cfg.CurveCacheTTL)
	assert.True(t, cfg.CurveCacheEnabled)
	assert.False(t, cfg.EnableAuth)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DAY_COUNT", "ACT/360")
	t.Setenv("FIXED_FREQUENCY", "4")
	t.Setenv("DISCOUNTING_STRATEGY", "comp_2")
	t.Setenv("CURVE_CACHE_TTL_SECONDS", "60")

	cfg := Load()
	assert.Equal(t, "ACT/360", cfg.DayCount)
	assert.Equal(t, 4, cfg.FixedFrequency)
	assert.Equal(t, "comp_2", cfg.DiscountingStrategy)
	assert.Equal(t, 60*time.Second, cfg.CurveCacheTTL)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("FIXED_FREQUENCY", "5")
	t.Setenv("EXTRAPOLATION_POLICY", "banana")
	t.Setenv("INTERP_STRATEGY", "cubic_spline")
	t.Setenv("CURVE_CACHE_MAXSIZE", "0")
	t.Setenv("NOTIONAL_MAX", "not-a-number")

	cfg := Load()
	assert.Equal(t, 2, cfg.FixedFrequency)
	assert.Equal(t, "clamp", cfg.ExtrapolationPolicy)
	assert.Equal(t, "linear_zero", cfg.InterpStrategy)
	assert.Equal(t, 4, cfg.CurveCacheMaxSize)
	assert.Equal(t, 1e11, cfg.NotionalMax)
}

func TestLoad_ProductionTightensDefaults(t *testing.T) {
	t.Setenv("ENV", "production")

	cfg := Load()
	assert.True(t, cfg.EnableAuth)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Empty(t, cfg.CORSAllowedOrigins)
}
