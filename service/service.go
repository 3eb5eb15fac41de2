// Package service binds configuration, curve loading and the pricing engine
// into a dependency container consumed by the CLI and HTTP layers.
package service

import (
	"time"

	"github.com/NicholasMeacoe/irdpricer/config"
	"github.com/NicholasMeacoe/irdpricer/curve"
	"github.com/NicholasMeacoe/irdpricer/marketdata"
	"github.com/NicholasMeacoe/irdpricer/swap"
)

// Services is the dependency container for one configured engine instance.
type Services struct {
	Config *config.AppConfig
	Cache  *CurveCache
}

// New builds a Services container from loaded configuration.
func New(cfg *config.AppConfig) *Services {
	return &Services{
		Config: cfg,
		Cache:  NewCurveCache(cfg.CurveCacheMaxSize, cfg.CurveCacheTTL, cfg.CurveCacheEnabled),
	}
}

// Limits returns the curve loading limits derived from config.
func (s *Services) Limits() marketdata.Limits {
	l := marketdata.DefaultLimits()
	l.MaxPoints = s.Config.CurveMaxPoints
	return l
}

// PricingConfig returns the per-call engine config derived from the service
// configuration.
func (s *Services) PricingConfig() swap.PricingConfig {
	return swap.PricingConfig{
		FixedFrequency:      s.Config.FixedFrequency,
		DayCount:            s.Config.DayCount,
		DiscountingStrategy: s.Config.DiscountingStrategy,
		InterpStrategy:      s.Config.InterpStrategy,
		ExtrapolationPolicy: s.Config.ExtrapolationPolicy,
	}
}

// LoadCurve locates the freshest curve file under the configured data
// directory and loads it through the cache.
func (s *Services) LoadCurve() (*curve.Curve, string, error) {
	path, err := marketdata.FindCurveFile(s.Config.DataDir, s.Config.CurveGlob)
	if err != nil {
		return nil, "", err
	}
	crv, err := s.Cache.Load(path, s.Limits())
	if err != nil {
		return nil, "", err
	}
	return crv, path, nil
}

// PriceSwap prices a payer-of-fixed swap with the configured conventions.
func (s *Services) PriceSwap(notional, fixedRate float64, maturity time.Time, crv *curve.Curve) (float64, []swap.ScheduleRow, error) {
	return swap.PriceSwap(notional, fixedRate, maturity, crv, s.PricingConfig(), time.Time{})
}

// SolveParRate solves the par fixed rate with the configured conventions.
func (s *Services) SolveParRate(notional float64, maturity time.Time, crv *curve.Curve) (float64, error) {
	return swap.SolveParRate(notional, maturity, crv, s.PricingConfig(), time.Time{})
}
