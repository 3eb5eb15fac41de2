package utils

import (
	"math"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestYearFraction_Act365F(t *testing.T) {
	t.Parallel()

	got := YearFraction(date(2023, 1, 1), date(2023, 1, 31), "ACT/365F")
	want := 30.0 / 365.0
	if !almostEqual(got, want, 1e-12) {
		t.Fatalf("ACT/365F: got %.12f want %.12f", got, want)
	}

	if YearFraction(date(2023, 1, 1), date(2023, 1, 31), "ACT/365") != got {
		t.Fatalf("ACT/365 should match ACT/365F here")
	}
}

func TestYearFraction_Act360AndAct36525(t *testing.T) {
	t.Parallel()

	start, end := date(2023, 1, 1), date(2023, 7, 1)
	days := 181.0

	if got := YearFraction(start, end, "ACT/360"); !almostEqual(got, days/360.0, 1e-12) {
		t.Fatalf("ACT/360: got %.12f", got)
	}
	if got := YearFraction(start, end, "ACT/365.25"); !almostEqual(got, days/365.25, 1e-12) {
		t.Fatalf("ACT/365.25: got %.12f", got)
	}
}

func TestYearFraction_Thirty360FebruaryRule(t *testing.T) {
	t.Parallel()

	// Both dates clamp to day 30: Jan 31 caps at 30, Feb 28 is February.
	got := YearFraction(date(2024, 1, 31), date(2024, 2, 28), "30/360")
	want := 30.0 / 360.0
	if !almostEqual(got, want, 1e-12) {
		t.Fatalf("30/360: got %.12f want %.12f", got, want)
	}

	// A plain mid-month pair counts month and day differences.
	got = YearFraction(date(2023, 1, 15), date(2023, 4, 15), "30/360")
	if !almostEqual(got, 90.0/360.0, 1e-12) {
		t.Fatalf("30/360 quarter: got %.12f", got)
	}
}

func TestYearFraction_ActAct(t *testing.T) {
	t.Parallel()

	// Spans the 2023->2024 year boundary: 184 days in 2023, 182 in leap 2024.
	got := YearFraction(date(2023, 7, 1), date(2024, 7, 1), "ACT/ACT")
	want := 184.0/365.0 + 182.0/366.0
	if !almostEqual(got, want, 1e-12) {
		t.Fatalf("ACT/ACT: got %.12f want %.12f", got, want)
	}

	if got := YearFraction(date(2024, 7, 1), date(2023, 7, 1), "ACT/ACT"); got != 0.0 {
		t.Fatalf("ACT/ACT reversed: got %.12f want 0", got)
	}
}

func TestYearFraction_Act365L(t *testing.T) {
	t.Parallel()

	// Interval spans Feb 29 2024.
	got := YearFraction(date(2024, 2, 28), date(2024, 3, 2), "ACT/365L")
	want := 3.0 / 366.0
	if !almostEqual(got, want, 1e-12) {
		t.Fatalf("ACT/365L leap: got %.12f want %.12f", got, want)
	}

	// Same length interval that misses Feb 29 uses 365.
	got = YearFraction(date(2023, 2, 27), date(2023, 3, 2), "ACT/365L")
	if !almostEqual(got, 3.0/365.0, 1e-12) {
		t.Fatalf("ACT/365L non-leap: got %.12f", got)
	}

	if got := YearFraction(date(2024, 3, 2), date(2024, 2, 28), "ACT/365L"); got != 0.0 {
		t.Fatalf("ACT/365L reversed: got %.12f want 0", got)
	}
}

func TestYearFraction_UnknownConventionFallsBack(t *testing.T) {
	t.Parallel()

	got := YearFraction(date(2023, 1, 1), date(2023, 12, 31), "NO/SUCH")
	want := YearFraction(date(2023, 1, 1), date(2023, 12, 31), "ACT/365F")
	if got != want {
		t.Fatalf("unknown convention: got %.12f want %.12f", got, want)
	}
}

func TestIsLeapYear(t *testing.T) {
	t.Parallel()

	cases := map[int]bool{2024: true, 2023: false, 2000: true, 1900: false, 2100: false}
	for y, want := range cases {
		if got := IsLeapYear(y); got != want {
			t.Fatalf("IsLeapYear(%d) = %v, want %v", y, got, want)
		}
	}
}
