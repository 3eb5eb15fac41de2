package utils

import (
	"math"
	"strconv"
	"strings"
)

// DiscountFunc maps an annualized rate and a year fraction to a discount factor.
// Implementations must be pure: callers share them across interpolation and
// leg pricing without synchronization.
type DiscountFunc func(rate, t float64) float64

// BuildDiscountFunc returns a discounting function D(rate, t) for the named strategy.
//
// Supported strategies:
//   - exp_cont: D = exp(-r*t), continuous compounding (default)
//   - simple:   D = 1 / (1 + r*t)
//   - comp_N:   D = 1 / (1 + r/N)^(N*t), N a positive integer (comp_1 annual,
//     comp_2 semi-annual, comp_4 quarterly, ...)
//
// Unknown strategies fall back to exp_cont; a malformed or non-positive N in
// comp_N falls back to N=1. Both are documented fallbacks, not errors.
func BuildDiscountFunc(strategy string) DiscountFunc {
	st := strings.ToLower(strings.TrimSpace(strategy))
	if st == "simple" {
		return func(r, t float64) float64 { return 1.0 / (1.0 + r*t) }
	}
	if rest, ok := strings.CutPrefix(st, "comp_"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil || n <= 0 {
			n = 1
		}
		fn := float64(n)
		return func(r, t float64) float64 {
			return 1.0 / math.Pow(1.0+r/fn, fn*t)
		}
	}
	return func(r, t float64) float64 { return math.Exp(-r * t) }
}
