package swap

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
)

// TestGeneratePaymentSchedule_Golden pins the full date sequence for a
// representative set of schedules. Regenerate with: go test ./swap -update
func TestGeneratePaymentSchedule_Golden(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		start    time.Time
		maturity time.Time
		freq     int
	}{
		{"semiannual_two_years", date(2023, 1, 15), date(2025, 1, 15), 2},
		{"quarterly_one_year", date(2024, 1, 31), date(2025, 1, 31), 4},
	}

	g := goldie.New(t)
	for _, tc := range cases {
		dates := GeneratePaymentSchedule(tc.start, tc.maturity, tc.freq)
		out := make([]string, len(dates))
		for i, d := range dates {
			out[i] = d.Format("2006-01-02")
		}
		buf, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		g.Assert(t, tc.name, buf)
	}
}
