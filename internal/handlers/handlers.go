package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/internal/calculator"
	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/pkg/oddsmath"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	engine *calculator.Engine
}

// NewHandler creates a new handler around the staking engine
func NewHandler(engine *calculator.Engine) *Handler {
	return &Handler{
		engine: engine,
	}
}

// HealthCheck returns service health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "kelly-calculator",
	})
}

// StakeRequest is one staking computation. Odds accepts a JSON number
// or a numeric string ("-110", "+150")
type StakeRequest struct {
	Odds           any      `json:"odds"`
	Probability    *float64 `json:"probability"`
	BankrollCapPct float64  `json:"bankroll_cap_pct,omitempty"`
}

// StakeResponse carries the recommendation. Computable false means the
// inputs could not produce one; callers render N/A
type StakeResponse struct {
	Computable          bool    `json:"computable"`
	BankrollFractionPct float64 `json:"bankroll_fraction_pct,omitempty"`
	DecimalOdds         float64 `json:"decimal_odds,omitempty"`
	ImpliedProbability  float64 `json:"implied_probability,omitempty"`
}

// CalculateStake computes a capped Kelly bankroll fraction for one
// (odds, probability) pair
func (h *Handler) CalculateStake(w http.ResponseWriter, r *http.Request) {
	var req StakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	if req.Probability == nil {
		respondJSON(w, http.StatusOK, StakeResponse{Computable: false})
		return
	}

	american, err := coerceOdds(req.Odds)
	if err != nil {
		respondJSON(w, http.StatusOK, StakeResponse{Computable: false})
		return
	}

	engine := h.engine
	if req.BankrollCapPct > 0 {
		engine = calculator.New(req.BankrollCapPct)
	}

	fraction, err := engine.BankrollFraction(american, *req.Probability)
	if err != nil {
		respondJSON(w, http.StatusOK, StakeResponse{Computable: false})
		return
	}

	decimal, _ := oddsmath.AmericanToDecimal(american)
	implied, _ := oddsmath.ImpliedProbability(american)

	respondJSON(w, http.StatusOK, StakeResponse{
		Computable:          true,
		BankrollFractionPct: fraction,
		DecimalOdds:         decimal,
		ImpliedProbability:  implied,
	})
}

// coerceOdds accepts the two JSON shapes odds arrive in
func coerceOdds(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case string:
		return oddsmath.ParseAmerican(v)
	default:
		return 0, fmt.Errorf("odds must be a number or numeric string")
	}
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
