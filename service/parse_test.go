package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNotional(t *testing.T) {
	t.Parallel()

	cases := map[string]float64{
		"1000000": 1_000_000,
		"250k":    250_000,
		"10m":     10_000_000,
		"1b":      1_000_000_000,
		"2.5m":    2_500_000,
		" 10M ":   10_000_000,
	}
	for in, want := range cases {
		got, err := ParseNotional(in, 1e11)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseNotional_Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "abc", "-5m", "10q", "1 000"} {
		_, err := ParseNotional(in, 1e11)
		assert.ErrorIs(t, err, ErrInvalidInput, in)
	}

	// Zero parses but fails the positivity check.
	_, err := ParseNotional("0", 1e11)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Cap enforcement.
	_, err = ParseNotional("2b", 1e9)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseMaturity_Tenors(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	got, err := ParseMaturity("5y", now, 100)
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 0, 5*365), got)

	got, err = ParseMaturity("18m", now, 100)
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 0, 18*30), got)

	got, err = ParseMaturity("30d", now, 100)
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 0, 30), got)

	// A bare number means years.
	got, err = ParseMaturity("7", now, 100)
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 0, 7*365), got)
}

func TestParseMaturity_ISODate(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	got, err := ParseMaturity("2028-12-31", now, 100)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2028, 12, 31, 0, 0, 0, 0, time.UTC), got)

	// Past dates are rejected.
	_, err = ParseMaturity("2020-01-01", now, 100)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseMaturity_Invalid(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	for _, in := range []string{"", "soon", "0y", "-5y", "5w"} {
		_, err := ParseMaturity(in, now, 100)
		assert.ErrorIs(t, err, ErrInvalidInput, in)
	}

	// Beyond the max horizon.
	_, err := ParseMaturity("150y", now, 100)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
