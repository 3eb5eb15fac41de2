package curve

import (
	"fmt"
	"math"
	"sort"

	"github.com/NicholasMeacoe/irdpricer/utils"
)

// epsilon floors node times in discount-factor space to avoid division by zero
// at the t=0 node.
const epsilon = 1e-9

// RateAt interpolates the zero rate at targetDays according to the given
// interpolation strategy and extrapolation policy.
//
// Policies: PolicyClamp clamps targetDays into the node range; PolicyError
// returns an error wrapping ErrOutOfRange when targetDays falls strictly
// outside it. The error aborts the caller's whole pricing operation; no
// partial result is produced.
//
// Strategies: StrategyLinearZero interpolates zero rates linearly against day
// offsets. StrategyLogLinearDF converts node rates to discount factors via
// disc, interpolates ln(DF) over year fractions, and inverts the result with
// rate = -ln(DF)/t. The inversion is always continuously compounded, even when
// simple or comp_N discounting is configured downstream; the single
// continuous-compounding round trip is an accepted approximation of this
// interpolation space. Unknown strategies fall back to StrategyLinearZero.
func (c *Curve) RateAt(targetDays int, policy, strategy string, disc utils.DiscountFunc) (float64, error) {
	if len(c.nodes) == 0 {
		return 0, ErrEmptyCurve
	}

	days := targetDays
	if days < c.MinDays() {
		if policy == PolicyError {
			return 0, fmt.Errorf("target %d days before curve start %d: %w", days, c.MinDays(), ErrOutOfRange)
		}
		days = c.MinDays()
	}
	if days > c.MaxDays() {
		if policy == PolicyError {
			return 0, fmt.Errorf("target %d days beyond curve end %d: %w", days, c.MaxDays(), ErrOutOfRange)
		}
		days = c.MaxDays()
	}

	if strategy == StrategyLogLinearDF {
		return c.logLinearDF(days, disc), nil
	}
	return c.linearZero(days), nil
}

// linearZero interpolates zero rates linearly over day offsets.
// days must already be clamped into the node range.
func (c *Curve) linearZero(days int) float64 {
	xs := make([]float64, len(c.nodes))
	ys := make([]float64, len(c.nodes))
	for i, n := range c.nodes {
		xs[i] = float64(n.Days)
		ys[i] = n.Rate
	}
	return interp(float64(days), xs, ys)
}

// logLinearDF interpolates the natural log of discount factors over year
// fractions and converts the result back to a continuously-compounded rate.
// days must already be clamped into the node range.
func (c *Curve) logLinearDF(days int, disc utils.DiscountFunc) float64 {
	tNodes := make([]float64, len(c.nodes))
	lnDFs := make([]float64, len(c.nodes))
	for i, n := range c.nodes {
		tNode := float64(n.Days) / 365.0
		lnDFs[i] = math.Log(disc(n.Rate, math.Max(tNode, epsilon)))
		tNodes[i] = tNode
	}

	t := math.Max(float64(days)/365.0, epsilon)
	df := math.Exp(interp(t, tNodes, lnDFs))
	return -math.Log(math.Max(df, epsilon)) / t
}

// interp performs piecewise-linear interpolation of ys over xs at x.
// xs must be strictly increasing and x within [xs[0], xs[len-1]].
func interp(x float64, xs, ys []float64) float64 {
	if len(xs) == 1 {
		return ys[0]
	}
	// First index with xs[i] >= x.
	i := sort.SearchFloat64s(xs, x)
	if i <= 0 {
		return ys[0]
	}
	if i >= len(xs) {
		return ys[len(ys)-1]
	}
	if xs[i] == x {
		return ys[i]
	}
	w := (x - xs[i-1]) / (xs[i] - xs[i-1])
	return ys[i-1] + w*(ys[i]-ys[i-1])
}
