// Package swap prices plain-vanilla fixed-for-floating interest rate swaps
// against a supplied zero-rate curve and solves for the par fixed rate.
package swap

import (
	"time"
)

// PricingConfig carries the conventions for a single pricing call.
//
// The engine holds no persistent configuration state: a config is supplied per
// call, which keeps concurrent use safe and avoids hidden global mutation.
// Unknown convention strings resolve to documented defaults at the factory
// level rather than failing the call.
type PricingConfig struct {
	// FixedFrequency is the number of fixed-leg payments per year.
	FixedFrequency int

	// DayCount names the day count convention (see utils.YearFraction).
	DayCount string

	// DiscountingStrategy names the compounding strategy
	// (see utils.BuildDiscountFunc).
	DiscountingStrategy string

	// InterpStrategy selects the curve interpolation space
	// (curve.StrategyLinearZero or curve.StrategyLogLinearDF).
	InterpStrategy string

	// ExtrapolationPolicy selects behavior outside the curve's node range
	// (curve.PolicyClamp or curve.PolicyError).
	ExtrapolationPolicy string
}

// DefaultPricingConfig returns the engine defaults: semi-annual fixed leg,
// ACT/365F accrual, continuous discounting, linear zero-rate interpolation,
// clamped extrapolation.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		FixedFrequency:      2,
		DayCount:            "ACT/365F",
		DiscountingStrategy: "exp_cont",
		InterpStrategy:      "linear_zero",
		ExtrapolationPolicy: "clamp",
	}
}

// withDefaults fills zero-valued fields from DefaultPricingConfig.
func (c PricingConfig) withDefaults() PricingConfig {
	def := DefaultPricingConfig()
	if c.FixedFrequency == 0 {
		c.FixedFrequency = def.FixedFrequency
	}
	if c.DayCount == "" {
		c.DayCount = def.DayCount
	}
	if c.DiscountingStrategy == "" {
		c.DiscountingStrategy = def.DiscountingStrategy
	}
	if c.InterpStrategy == "" {
		c.InterpStrategy = def.InterpStrategy
	}
	if c.ExtrapolationPolicy == "" {
		c.ExtrapolationPolicy = def.ExtrapolationPolicy
	}
	return c
}

// ScheduleRow is the per-period pricing record returned alongside the NPV.
// Rows are chronological and immutable once produced.
type ScheduleRow struct {
	// PaymentDate is the scheduled payment date.
	PaymentDate time.Time

	// Days is the payment date's offset from the valuation date.
	Days int

	FixedPayment    float64
	FloatingPayment float64
	DiscountFactor  float64
	PVFixed         float64
	PVFloating      float64
}
