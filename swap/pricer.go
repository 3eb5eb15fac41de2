package swap

import (
	"fmt"
	"time"

	"github.com/NicholasMeacoe/irdpricer/curve"
	"github.com/NicholasMeacoe/irdpricer/utils"
)

// resolveValuationDate defaults a zero valuation date to the curve's first
// node date, or to today when the curve is empty.
func resolveValuationDate(valuation time.Time, crv *curve.Curve) time.Time {
	if !valuation.IsZero() {
		return valuation
	}
	if crv.Len() > 0 {
		return crv.FirstNodeDate()
	}
	return time.Now()
}

// PriceSwap computes the NPV of a payer-of-fixed swap (receive floating, pay
// fixed) and returns the per-period schedule rows in chronological order.
//
// A zero valuation date defaults to the curve's first node date. For each
// scheduled payment the accrual is measured against the previous payment date
// (the valuation date for the first period) under cfg.DayCount; periods with a
// non-positive valuation-to-payment year fraction are skipped while still
// advancing the accrual cursor, so degenerate zero-length periods never
// contaminate the totals.
//
// Interpolation failures under curve.PolicyError abort the whole call: the
// returned error wraps curve.ErrOutOfRange and no partial NPV or rows are
// produced.
func PriceSwap(notional, fixedRate float64, maturity time.Time, crv *curve.Curve, cfg PricingConfig, valuation time.Time) (float64, []ScheduleRow, error) {
	cfg = cfg.withDefaults()
	valuation = resolveValuationDate(valuation, crv)
	// Interpolation targets are day offsets from the valuation date, so the
	// curve's node offsets must share that anchor.
	crv = crv.Rebase(valuation)
	disc := utils.BuildDiscountFunc(cfg.DiscountingStrategy)
	paymentDates := GeneratePaymentSchedule(valuation, maturity, cfg.FixedFrequency)

	rows := make([]ScheduleRow, 0, len(paymentDates))
	totalPVFixed := 0.0
	totalPVFloating := 0.0
	prevDate := valuation

	for _, paymentDate := range paymentDates {
		t := utils.YearFraction(valuation, paymentDate, cfg.DayCount)
		if t <= 0 {
			prevDate = paymentDate
			continue
		}

		maturityDays := utils.DaysInt(valuation, paymentDate)
		marketRate, err := crv.RateAt(maturityDays, cfg.ExtrapolationPolicy, cfg.InterpStrategy, disc)
		if err != nil {
			return 0, nil, fmt.Errorf("PriceSwap: rate at %s: %w", utils.FormatDate(paymentDate), err)
		}
		discountFactor := disc(marketRate, t)

		accrual := utils.YearFraction(prevDate, paymentDate, cfg.DayCount)
		if accrual < 0 {
			accrual = 0
		}

		fixedPayment := notional * fixedRate * accrual
		pvFixed := fixedPayment * discountFactor
		totalPVFixed += pvFixed

		floatingPayment := notional * marketRate * accrual
		pvFloating := floatingPayment * discountFactor
		totalPVFloating += pvFloating

		rows = append(rows, ScheduleRow{
			PaymentDate:     paymentDate,
			Days:            maturityDays,
			FixedPayment:    fixedPayment,
			FloatingPayment: floatingPayment,
			DiscountFactor:  discountFactor,
			PVFixed:         pvFixed,
			PVFloating:      pvFloating,
		})

		prevDate = paymentDate
	}

	return totalPVFloating - totalPVFixed, rows, nil
}

// SolveParRate returns the fixed rate at which the swap's NPV is zero.
//
// The solver is closed form, not iterative: NPV is linear in the fixed rate
// for a vanilla fixed-for-floating swap, so the par rate is the floating-leg
// PV divided by the fixed-leg annuity (sum of accrual times discount factor,
// scaled by notional). A zero annuity from a degenerate or empty schedule
// yields 0.0 rather than a division by zero.
//
// Pricing via PriceSwap at the returned rate yields an NPV within floating
// point tolerance of zero; that round trip is the solver's defining property.
func SolveParRate(notional float64, maturity time.Time, crv *curve.Curve, cfg PricingConfig, valuation time.Time) (float64, error) {
	cfg = cfg.withDefaults()
	valuation = resolveValuationDate(valuation, crv)
	crv = crv.Rebase(valuation)
	disc := utils.BuildDiscountFunc(cfg.DiscountingStrategy)
	paymentDates := GeneratePaymentSchedule(valuation, maturity, cfg.FixedFrequency)

	annuity := 0.0
	floatingLegPV := 0.0
	prevDate := valuation

	for _, paymentDate := range paymentDates {
		t := utils.YearFraction(valuation, paymentDate, cfg.DayCount)
		if t <= 0 {
			prevDate = paymentDate
			continue
		}

		maturityDays := utils.DaysInt(valuation, paymentDate)
		marketRate, err := crv.RateAt(maturityDays, cfg.ExtrapolationPolicy, cfg.InterpStrategy, disc)
		if err != nil {
			return 0, fmt.Errorf("SolveParRate: rate at %s: %w", utils.FormatDate(paymentDate), err)
		}
		discountFactor := disc(marketRate, t)

		accrual := utils.YearFraction(prevDate, paymentDate, cfg.DayCount)
		if accrual < 0 {
			accrual = 0
		}

		annuity += accrual * discountFactor
		floatingLegPV += notional * marketRate * accrual * discountFactor
		prevDate = paymentDate
	}

	if annuity == 0 {
		return 0.0, nil
	}
	return floatingLegPV / (notional * annuity), nil
}
