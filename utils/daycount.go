package utils

import (
	"strings"
	"time"
)

// YearFraction computes the year fraction between two dates using the specified
// day count convention.
//
// Supported conventions: ACT/365F, ACT/365, ACT/365.25, ACT/360, 30/360,
// ACT/ACT, ACT/365L. Unknown conventions fall back to ACT/365F; this is a
// documented lenient default, not a silent failure.
func YearFraction(start, end time.Time, convention string) float64 {
	switch strings.ToUpper(strings.TrimSpace(convention)) {
	case "ACT/365F", "ACT/365":
		return Days(start, end) / 365.0
	case "ACT/365.25":
		return Days(start, end) / 365.25
	case "ACT/360":
		return Days(start, end) / 360.0
	case "30/360":
		return thirty360(start, end)
	case "ACT/ACT", "ACT/ACT(ISDA)":
		return actAct(start, end)
	case "ACT/365L":
		return act365L(start, end)
	default:
		return Days(start, end) / 365.0
	}
}

// thirty360 implements a simplified 30/360 US convention: both day components
// are capped at 30, and any date falling in February is treated as day 30.
// Deliberately not full ISDA 30E/360.
func thirty360(start, end time.Time) float64 {
	y1, m1 := start.Year(), int(start.Month())
	y2, m2 := end.Year(), int(end.Month())

	d1 := start.Day()
	if d1 > 30 {
		d1 = 30
	}
	d2 := end.Day()
	if d2 > 30 {
		d2 = 30
	}
	if m1 == 2 {
		d1 = 30
	}
	if m2 == 2 {
		d2 = 30
	}
	return float64(360*(y2-y1)+30*(m2-m1)+(d2-d1)) / 360.0
}

// actAct approximates ACT/ACT by prorating each calendar-year segment of the
// interval by that year's true length (365 or 366). No coupon schedule
// awareness, unlike ACT/ACT(ISMA).
func actAct(start, end time.Time) float64 {
	if !end.After(start) {
		return 0.0
	}
	total := 0.0
	cur := start
	for cur.Before(end) {
		nextJan1 := time.Date(cur.Year()+1, time.January, 1, 0, 0, 0, 0, cur.Location())
		segEnd := end
		if end.After(nextJan1) {
			segEnd = nextJan1
		}
		denom := 365.0
		if IsLeapYear(cur.Year()) {
			denom = 366.0
		}
		total += Days(cur, segEnd) / denom
		cur = segEnd
	}
	return total
}

// act365L uses a 366 denominator when the interval includes February 29 of any
// spanned leap year, and 365 otherwise.
func act365L(start, end time.Time) float64 {
	if !end.After(start) {
		return 0.0
	}
	denom := 365.0
	for y := start.Year(); y <= end.Year(); y++ {
		if !IsLeapYear(y) {
			continue
		}
		feb29 := time.Date(y, time.February, 29, 0, 0, 0, 0, start.Location())
		if !feb29.Before(start) && !feb29.After(end) {
			denom = 366.0
			break
		}
	}
	return Days(start, end) / denom
}

// IsLeapYear reports whether y is a Gregorian leap year.
func IsLeapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}
