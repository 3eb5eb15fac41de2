package service

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidInput marks user-input failures that the HTTP layer maps to 400.
var ErrInvalidInput = errors.New("invalid input")

var (
	notionalRe = regexp.MustCompile(`^(\d+\.?\d*)\s*([mkb])?$`)
	tenorRe    = regexp.MustCompile(`^(\d+)\s*(y|m|d)?$`)
)

// ParseNotional parses a notional token such as "1000000", "250k", "10m" or
// "1b" into an amount, enforcing positivity and the max cap.
func ParseNotional(s string, max float64) (float64, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	if token == "" {
		return 0, fmt.Errorf("%w: notional cannot be empty", ErrInvalidInput)
	}

	m := notionalRe.FindStringSubmatch(token)
	if m == nil {
		return 0, fmt.Errorf("%w: invalid notional format %q (examples: 1000000, 10m, 250k)", ErrInvalidInput, s)
	}

	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid numeric value %q", ErrInvalidInput, m[1])
	}
	switch m[2] {
	case "k":
		v *= 1_000
	case "m":
		v *= 1_000_000
	case "b":
		v *= 1_000_000_000
	}

	if v <= 0 {
		return 0, fmt.Errorf("%w: notional must be positive", ErrInvalidInput)
	}
	if max > 0 && v > max {
		return 0, fmt.Errorf("%w: notional exceeds maximum of %.0f", ErrInvalidInput, max)
	}
	return v, nil
}

// ParseMaturity parses a maturity token: an ISO date ("2028-12-31") or a tenor
// ("5y", "18m", "30d"; a bare number means years). The resulting date must be
// in the future relative to now and within maxYears.
func ParseMaturity(s string, now time.Time, maxYears int) (time.Time, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	if token == "" {
		return time.Time{}, fmt.Errorf("%w: maturity cannot be empty", ErrInvalidInput)
	}

	if dt, err := time.Parse("2006-01-02", token); err == nil {
		if !dt.After(now) {
			return time.Time{}, fmt.Errorf("%w: maturity date must be in the future", ErrInvalidInput)
		}
		return dt, nil
	}

	m := tenorRe.FindStringSubmatch(token)
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: invalid maturity format %q (examples: 2028-12-31, 5y, 18m, 30d)", ErrInvalidInput, s)
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid numeric value %q", ErrInvalidInput, m[1])
	}
	if n <= 0 {
		return time.Time{}, fmt.Errorf("%w: maturity tenor must be positive", ErrInvalidInput)
	}

	var days int
	var inYears float64
	switch m[2] {
	case "", "y":
		days = n * 365
		inYears = float64(n)
	case "m":
		days = n * 30
		inYears = float64(n) / 12.0
	case "d":
		days = n
		inYears = float64(n) / 365.0
	}
	if maxYears > 0 && inYears > float64(maxYears) {
		return time.Time{}, fmt.Errorf("%w: maturity exceeds maximum of %d years", ErrInvalidInput, maxYears)
	}
	return now.AddDate(0, 0, days), nil
}
