package utils

import (
	"fmt"
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate converts YYYY-MM-DD to time.Time.
func ParseDate(strDate string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", strDate, err)
	}
	return t, nil
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// Days returns the day count between two dates as a float.
func Days(start, end time.Time) float64 {
	return end.Sub(start).Hours() / 24
}

// DaysInt returns the whole-day count between two dates.
func DaysInt(start, end time.Time) int {
	return int(Days(start, end))
}

// MonthInt returns the numeric month.
func MonthInt(t time.Time) int {
	return int(t.Month())
}

// AddMonth behaves like Excel's EDATE, avoiding Go's month normalization surprises:
// the day of month is clamped to the last valid day of the target month
// (Jan 31 + 1 month = Feb 28/29, not Mar 2/3).
func AddMonth(t time.Time, months int) time.Time {
	target := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, months, 0)
	if target.Month() == t.AddDate(0, months, 0).Month() {
		return t.AddDate(0, months, 0)
	}

	d := t.AddDate(0, months, 0)
	origMonth := MonthInt(d)
	for MonthInt(d) == origMonth {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

// RoundTo rounds a float to the specified decimal places.
func RoundTo(val float64, decimals uint32) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(val*pow) / pow
}
