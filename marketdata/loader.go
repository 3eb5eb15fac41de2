// Package marketdata loads zero-rate curve tables from SwapRates CSV files
// and validates them at the engine boundary.
package marketdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/NicholasMeacoe/irdpricer/curve"
)

// ErrNoCurveFile is returned when no curve file matches the configured glob.
var ErrNoCurveFile = errors.New("no SwapRates file found")

// Limits bounds curve inputs at the loading boundary. The pricing engine does
// not re-validate; this is the caller-side contract.
type Limits struct {
	// MaxPoints caps the number of curve rows.
	MaxPoints int

	// MinRatePct and MaxRatePct bound rates as quoted in percent.
	MinRatePct float64
	MaxRatePct float64
}

// DefaultLimits matches the service defaults: 200 points, rates in [-10%, 50%].
func DefaultLimits() Limits {
	return Limits{MaxPoints: 200, MinRatePct: -10.0, MaxRatePct: 50.0}
}

var fileDateRe = regexp.MustCompile(`.*_(\d{8})\.csv$`)

// ParseValuationDate extracts the valuation date from a curve filename like
// SwapRates_20240115.csv. It falls back to today when no date token is found.
func ParseValuationDate(path string) time.Time {
	m := fileDateRe.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return truncateToDay(time.Now())
	}
	t, err := time.Parse("20060102", m[1])
	if err != nil {
		return truncateToDay(time.Now())
	}
	return t
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FindCurveFile locates the curve file matching the glob under dir, preferring
// the latest YYYYMMDD token when several match.
func FindCurveFile(dir, glob string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, glob))
	if err != nil {
		return "", fmt.Errorf("FindCurveFile: bad pattern %q: %w", glob, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("FindCurveFile: %q in %s: %w", glob, dir, ErrNoCurveFile)
	}

	type dated struct {
		token string
		path  string
	}
	var withDates []dated
	for _, m := range matches {
		if sm := fileDateRe.FindStringSubmatch(filepath.Base(m)); sm != nil {
			withDates = append(withDates, dated{token: sm[1], path: m})
		}
	}
	if len(withDates) > 0 {
		sort.Slice(withDates, func(i, j int) bool { return withDates[i].token > withDates[j].token })
		return withDates[0].path, nil
	}
	return matches[0], nil
}

// LoadCurveCSV reads a two-column CSV (maturity in years, rate in percent)
// into a curve anchored at valuation. A zero valuation date is parsed from the
// filename date token, falling back to today.
//
// Rates are converted from percent to decimal; maturities become day offsets
// of int(years * 365). Rows must be finite, rates within limits, maturities
// non-negative and strictly increasing.
func LoadCurveCSV(path string, valuation time.Time, limits Limits) (*curve.Curve, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadCurveCSV: %w", err)
	}
	defer f.Close()

	if valuation.IsZero() {
		valuation = ParseValuationDate(path)
	}

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("LoadCurveCSV: read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("LoadCurveCSV: %s is empty", path)
	}

	// Skip a non-numeric header row if present.
	start := 0
	if len(records[0]) > 0 {
		if _, err := strconv.ParseFloat(strings.TrimSpace(records[0][0]), 64); err != nil {
			start = 1
		}
	}

	rows := records[start:]
	if len(rows) == 0 {
		return nil, fmt.Errorf("LoadCurveCSV: %s has no data rows", path)
	}
	if limits.MaxPoints > 0 && len(rows) > limits.MaxPoints {
		return nil, fmt.Errorf("LoadCurveCSV: %s has %d rows; maximum is %d", path, len(rows), limits.MaxPoints)
	}

	years := make([]float64, 0, len(rows))
	ratesPct := make([]float64, 0, len(rows))
	for i, rec := range rows {
		if len(rec) < 2 {
			return nil, fmt.Errorf("LoadCurveCSV: row %d needs two columns (maturity years, rate percent), got %d", start+i+1, len(rec))
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("LoadCurveCSV: row %d: bad maturity %q", start+i+1, rec[0])
		}
		rp, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("LoadCurveCSV: row %d: bad rate %q", start+i+1, rec[1])
		}
		years = append(years, y)
		ratesPct = append(ratesPct, rp)
	}

	if err := ValidateCurveData(years, ratesPct, limits); err != nil {
		return nil, fmt.Errorf("LoadCurveCSV: %s: %w", path, err)
	}

	nodes := make([]curve.Node, len(years))
	for i := range years {
		nodes[i] = curve.Node{
			Days: int(years[i] * 365.0),
			Rate: ratesPct[i] / 100.0,
		}
	}
	return curve.New(valuation, nodes), nil
}

// BuildCurve constructs a validated curve from parallel maturity-year and
// percent-rate slices, as submitted through the web form.
func BuildCurve(valuation time.Time, years, ratesPct []float64, limits Limits) (*curve.Curve, error) {
	if len(years) != len(ratesPct) {
		return nil, fmt.Errorf("BuildCurve: length mismatch between maturities (%d) and rates (%d)", len(years), len(ratesPct))
	}
	if len(years) == 0 {
		return nil, fmt.Errorf("BuildCurve: at least one curve point is required")
	}
	if limits.MaxPoints > 0 && len(years) > limits.MaxPoints {
		return nil, fmt.Errorf("BuildCurve: %d points; maximum is %d", len(years), limits.MaxPoints)
	}
	if err := ValidateCurveData(years, ratesPct, limits); err != nil {
		return nil, fmt.Errorf("BuildCurve: %w", err)
	}

	nodes := make([]curve.Node, len(years))
	for i := range years {
		nodes[i] = curve.Node{
			Days: int(years[i] * 365.0),
			Rate: ratesPct[i] / 100.0,
		}
	}
	return curve.New(valuation, nodes), nil
}

// ValidateCurveData checks finiteness, rate bounds, non-negative maturities,
// and strict maturity ordering.
func ValidateCurveData(years, ratesPct []float64, limits Limits) error {
	for _, y := range years {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return fmt.Errorf("maturities must be finite numbers")
		}
		if y < 0 {
			return fmt.Errorf("maturity years must be non-negative")
		}
	}
	for _, r := range ratesPct {
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return fmt.Errorf("rates must be finite numbers")
		}
		if r < limits.MinRatePct || r > limits.MaxRatePct {
			return fmt.Errorf("rates must be between %.0f%% and %.0f%%", limits.MinRatePct, limits.MaxRatePct)
		}
	}
	for i := 1; i < len(years); i++ {
		if years[i] <= years[i-1] {
			return fmt.Errorf("maturities must be strictly increasing")
		}
	}
	return nil
}
