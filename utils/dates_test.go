package utils

import (
	"testing"
)

func TestAddMonth_ClampsToMonthEnd(t *testing.T) {
	t.Parallel()

	got := AddMonth(date(2024, 1, 31), 1)
	if !got.Equal(date(2024, 2, 29)) {
		t.Fatalf("Jan 31 + 1M: got %s", FormatDate(got))
	}

	got = AddMonth(date(2023, 1, 31), 1)
	if !got.Equal(date(2023, 2, 28)) {
		t.Fatalf("Jan 31 + 1M (non-leap): got %s", FormatDate(got))
	}

	got = AddMonth(date(2023, 1, 15), 6)
	if !got.Equal(date(2023, 7, 15)) {
		t.Fatalf("Jan 15 + 6M: got %s", FormatDate(got))
	}
}

func TestDays(t *testing.T) {
	t.Parallel()

	if got := Days(date(2023, 1, 1), date(2023, 1, 31)); got != 30.0 {
		t.Fatalf("Days: got %f", got)
	}
	if got := DaysInt(date(2023, 12, 31), date(2024, 12, 31)); got != 366 {
		t.Fatalf("DaysInt leap year: got %d", got)
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	got, err := ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("ParseDate error: %v", err)
	}
	if !got.Equal(date(2024, 2, 29)) {
		t.Fatalf("ParseDate: got %s", FormatDate(got))
	}

	if _, err := ParseDate("29/02/2024"); err == nil {
		t.Fatal("ParseDate should reject non-ISO input")
	}
}

func TestRoundTo(t *testing.T) {
	t.Parallel()

	if got := RoundTo(3.14159, 2); got != 3.14 {
		t.Fatalf("RoundTo: got %f", got)
	}
	if got := RoundTo(2.675, 0); got != 3.0 {
		t.Fatalf("RoundTo: got %f", got)
	}
}
