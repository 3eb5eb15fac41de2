package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/NicholasMeacoe/irdpricer/curve"
	"github.com/NicholasMeacoe/irdpricer/logger"
	"github.com/NicholasMeacoe/irdpricer/marketdata"
	"github.com/NicholasMeacoe/irdpricer/service"
	"github.com/NicholasMeacoe/irdpricer/swap"
	"github.com/NicholasMeacoe/irdpricer/utils"
)

// CurvePoint is one user-supplied curve observation: maturity in years, rate
// in percent.
type CurvePoint struct {
	MaturityYears float64 `json:"maturity_years"`
	RatePct       float64 `json:"rate_pct"`
}

// PriceRequest is the body of POST /api/price. Curve is optional; when absent
// the freshest curve file from the data directory is used.
type PriceRequest struct {
	Notional     string       `json:"notional"`
	FixedRatePct float64      `json:"fixed_rate_pct"`
	Maturity     string       `json:"maturity"`
	Curve        []CurvePoint `json:"curve,omitempty"`
}

// ParRateRequest is the body of POST /api/par-rate.
type ParRateRequest struct {
	Notional string       `json:"notional"`
	Maturity string       `json:"maturity"`
	Curve    []CurvePoint `json:"curve,omitempty"`
}

// ScheduleRowDTO mirrors swap.ScheduleRow with an ISO payment date.
type ScheduleRowDTO struct {
	PaymentDate     string  `json:"payment_date"`
	Days            int     `json:"days"`
	FixedPayment    float64 `json:"fixed_payment"`
	FloatingPayment float64 `json:"floating_payment"`
	DiscountFactor  float64 `json:"discount_factor"`
	PVFixed         float64 `json:"pv_fixed"`
	PVFloating      float64 `json:"pv_floating"`
}

// PriceResponse is the body returned by POST /api/price.
type PriceResponse struct {
	NPV          float64          `json:"npv"`
	ParRate      float64          `json:"par_rate"`
	Notional     float64          `json:"notional"`
	FixedRatePct float64          `json:"fixed_rate_pct"`
	MaturityDate string           `json:"maturity_date"`
	Schedule     []ScheduleRowDTO `json:"schedule"`
}

// ParRateResponse is the body returned by POST /api/par-rate.
type ParRateResponse struct {
	ParRate      float64 `json:"par_rate"`
	ParRatePct   float64 `json:"par_rate_pct"`
	Notional     float64 `json:"notional"`
	MaturityDate string  `json:"maturity_date"`
}

func (s *Server) handlePrice(w http.ResponseWriter, r *http.Request) {
	var req PriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSONError(w, "invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return
	}

	notional, maturity, crv, ok := s.resolveInputs(w, req.Notional, req.Maturity, req.Curve)
	if !ok {
		return
	}

	npv, rows, err := s.svc.PriceSwap(notional, req.FixedRatePct/100.0, maturity, crv)
	if err != nil {
		s.sendPricingError(w, r, err)
		return
	}
	parRate, err := s.svc.SolveParRate(notional, maturity, crv)
	if err != nil {
		s.sendPricingError(w, r, err)
		return
	}

	sendJSON(w, http.StatusOK, PriceResponse{
		NPV:          npv,
		ParRate:      parRate,
		Notional:     notional,
		FixedRatePct: req.FixedRatePct,
		MaturityDate: utils.FormatDate(maturity),
		Schedule:     toScheduleDTOs(rows),
	})
}

func (s *Server) handleParRate(w http.ResponseWriter, r *http.Request) {
	var req ParRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSONError(w, "invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return
	}

	notional, maturity, crv, ok := s.resolveInputs(w, req.Notional, req.Maturity, req.Curve)
	if !ok {
		return
	}

	parRate, err := s.svc.SolveParRate(notional, maturity, crv)
	if err != nil {
		s.sendPricingError(w, r, err)
		return
	}

	sendJSON(w, http.StatusOK, ParRateResponse{
		ParRate:      parRate,
		ParRatePct:   parRate * 100.0,
		Notional:     notional,
		MaturityDate: utils.FormatDate(maturity),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	code := http.StatusOK
	curveFile := ""

	if path, err := marketdata.FindCurveFile(s.svc.Config.DataDir, s.svc.Config.CurveGlob); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	} else {
		curveFile = path
	}

	sendJSON(w, code, map[string]any{
		"status":     status,
		"curve_file": curveFile,
		"time":       time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	cfg := s.svc.Config
	// Non-secret view only; auth credentials are never echoed.
	sendJSON(w, http.StatusOK, map[string]any{
		"env":                  cfg.Env,
		"data_dir":             cfg.DataDir,
		"curve_glob":           cfg.CurveGlob,
		"day_count":            cfg.DayCount,
		"fixed_frequency":      cfg.FixedFrequency,
		"discounting_strategy": cfg.DiscountingStrategy,
		"interp_strategy":      cfg.InterpStrategy,
		"extrapolation_policy": cfg.ExtrapolationPolicy,
		"curve_max_points":     cfg.CurveMaxPoints,
		"maturity_max_years":   cfg.MaturityMaxYears,
		"notional_max":         cfg.NotionalMax,
	})
}

func (s *Server) handleCacheMetrics(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, s.svc.Cache.Metrics())
}

// resolveInputs parses the notional and maturity tokens and resolves the
// curve (inline points when provided, otherwise the freshest curve file).
// On failure it writes the error response and returns ok=false.
func (s *Server) resolveInputs(w http.ResponseWriter, notionalStr, maturityStr string, points []CurvePoint) (float64, time.Time, *curve.Curve, bool) {
	cfg := s.svc.Config

	notional, err := service.ParseNotional(notionalStr, cfg.NotionalMax)
	if err != nil {
		sendJSONError(w, err.Error(), http.StatusBadRequest)
		return 0, time.Time{}, nil, false
	}
	maturity, err := service.ParseMaturity(maturityStr, time.Now(), cfg.MaturityMaxYears)
	if err != nil {
		sendJSONError(w, err.Error(), http.StatusBadRequest)
		return 0, time.Time{}, nil, false
	}

	var crv *curve.Curve
	if len(points) > 0 {
		years := make([]float64, len(points))
		rates := make([]float64, len(points))
		for i, p := range points {
			years[i] = p.MaturityYears
			rates[i] = p.RatePct
		}
		crv, err = marketdata.BuildCurve(time.Now(), years, rates, s.svc.Limits())
		if err != nil {
			sendJSONError(w, err.Error(), http.StatusBadRequest)
			return 0, time.Time{}, nil, false
		}
	} else {
		crv, _, err = s.svc.LoadCurve()
		if err != nil {
			code := http.StatusInternalServerError
			if errors.Is(err, marketdata.ErrNoCurveFile) {
				code = http.StatusServiceUnavailable
			}
			sendJSONError(w, err.Error(), code)
			return 0, time.Time{}, nil, false
		}
	}
	return notional, maturity, crv, true
}

// sendPricingError maps engine errors to HTTP statuses: an extrapolation
// failure is a client error (the requested maturity is outside the curve),
// anything else is a server error.
func (s *Server) sendPricingError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, curve.ErrOutOfRange) {
		sendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	logger.L.Error("pricing failed", "error", err, "requestID", requestID(r.Context()))
	sendJSONError(w, "pricing failed: "+err.Error(), http.StatusInternalServerError)
}

func toScheduleDTOs(rows []swap.ScheduleRow) []ScheduleRowDTO {
	out := make([]ScheduleRowDTO, len(rows))
	for i, row := range rows {
		out[i] = ScheduleRowDTO{
			PaymentDate:     utils.FormatDate(row.PaymentDate),
			Days:            row.Days,
			FixedPayment:    row.FixedPayment,
			FloatingPayment: row.FloatingPayment,
			DiscountFactor:  row.DiscountFactor,
			PVFixed:         row.PVFixed,
			PVFloating:      row.PVFloating,
		}
	}
	return out
}

func sendJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.L.Error("failed to encode response", "error", err)
	}
}

func sendJSONError(w http.ResponseWriter, msg string, code int) {
	sendJSON(w, code, map[string]string{"error": msg})
}
