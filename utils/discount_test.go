package utils

import (
	"math"
	"testing"
)

func TestBuildDiscountFunc_Strategies(t *testing.T) {
	t.Parallel()

	r, tt := 0.05, 2.0

	expCont := BuildDiscountFunc("exp_cont")
	if got, want := expCont(r, tt), math.Exp(-r*tt); !almostEqual(got, want, 1e-15) {
		t.Fatalf("exp_cont: got %.15f want %.15f", got, want)
	}

	simple := BuildDiscountFunc("simple")
	if got, want := simple(r, tt), 1.0/(1.0+r*tt); !almostEqual(got, want, 1e-15) {
		t.Fatalf("simple: got %.15f want %.15f", got, want)
	}

	comp4 := BuildDiscountFunc("comp_4")
	if got, want := comp4(r, tt), 1.0/math.Pow(1.0+r/4.0, 4.0*tt); !almostEqual(got, want, 1e-15) {
		t.Fatalf("comp_4: got %.15f want %.15f", got, want)
	}
}

func TestBuildDiscountFunc_Fallbacks(t *testing.T) {
	t.Parallel()

	r, tt := 0.03, 1.5
	annual := 1.0 / math.Pow(1.0+r, tt)

	// Malformed or non-positive N falls back to annual compounding.
	for _, s := range []string{"comp_", "comp_x", "comp_0", "comp_-2"} {
		if got := BuildDiscountFunc(s)(r, tt); !almostEqual(got, annual, 1e-15) {
			t.Fatalf("%s: got %.15f want annual %.15f", s, got, annual)
		}
	}

	// Unknown strategy falls back to continuous compounding.
	if got, want := BuildDiscountFunc("bogus")(r, tt), math.Exp(-r*tt); !almostEqual(got, want, 1e-15) {
		t.Fatalf("unknown strategy: got %.15f want %.15f", got, want)
	}
	if got, want := BuildDiscountFunc("")(r, tt), math.Exp(-r*tt); !almostEqual(got, want, 1e-15) {
		t.Fatalf("empty strategy: got %.15f want %.15f", got, want)
	}
}

func TestDiscountFactorRange(t *testing.T) {
	t.Parallel()

	funcs := map[string]DiscountFunc{
		"exp_cont": BuildDiscountFunc("exp_cont"),
		"simple":   BuildDiscountFunc("simple"),
		"comp_2":   BuildDiscountFunc("comp_2"),
	}
	for name, fn := range funcs {
		for _, r := range []float64{0.0, 0.001, 0.05, 0.25} {
			for _, tt := range []float64{0.01, 1.0, 10.0, 50.0} {
				df := fn(r, tt)
				if df <= 0.0 || df > 1.0 {
					t.Fatalf("%s: DF(%g, %g) = %.15f outside (0, 1]", name, r, tt, df)
				}
			}
		}
		// Extreme r*t must stay finite and positive, never NaN or negative.
		df := fn(0.5, 200.0)
		if math.IsNaN(df) || math.IsInf(df, 0) || df < 0.0 {
			t.Fatalf("%s: DF at extreme horizon = %v", name, df)
		}
	}
}
