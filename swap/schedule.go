package swap

import (
	"math"
	"time"

	"github.com/NicholasMeacoe/irdpricer/utils"
)

// maxScheduleIters caps schedule generation so pathological frequency/date
// combinations terminate. Past the cap the loop stops silently, yielding a
// truncated schedule; callers should treat a schedule that never reaches
// maturity as a data-quality signal.
const maxScheduleIters = 10000

// GeneratePaymentSchedule builds the ordered payment dates between start and
// maturity at the given annual frequency.
//
// Stepping is month-based (12/frequency months per period, day-of-month
// clamped to the end of the target month) whenever 12 is divisible by the
// frequency, which covers 1, 2, 3, 4, 6 and 12 payments per year. Other
// frequencies step by floor(365/frequency) calendar days. Each step advances
// from the previously generated date, so a month-end clamp carries forward.
//
// Dates past maturity are clamped to maturity exactly, so a non-empty schedule
// always ends on the maturity date. Only dates strictly after start are
// included; maturity <= start yields an empty schedule.
func GeneratePaymentSchedule(start, maturity time.Time, frequency int) []time.Time {
	if !maturity.After(start) {
		return nil
	}

	useMonths := frequency > 0 && 12%frequency == 0
	stepMonths := 0
	if useMonths {
		stepMonths = 12 / frequency
	}
	stepDays := int(365.0 / math.Max(1.0, float64(frequency)))

	schedule := make([]time.Time, 0, 16)
	current := start
	for iters := 0; current.Before(maturity) && iters < maxScheduleIters; iters++ {
		if useMonths {
			current = utils.AddMonth(current, stepMonths)
		} else {
			current = current.AddDate(0, 0, stepDays)
		}
		if current.After(maturity) {
			current = maturity
		}
		if current.After(start) {
			schedule = append(schedule, current)
		}
	}
	return schedule
}
