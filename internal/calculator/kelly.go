package calculator

import (
	"errors"
	"math"

	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/pkg/models"
	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/pkg/oddsmath"
)

// ErrNotComputable signals that a stake could not be derived from the
// given inputs (zero odds, probability out of range). Callers display
// N/A per game instead of aborting the batch
var ErrNotComputable = errors.New("stake not computable")

// DefaultBankrollCapPct is the risk-control ceiling: no recommendation
// exceeds this fraction of bankroll regardless of computed edge
const DefaultBankrollCapPct = 25.0

// Engine converts (American odds, model win probability) pairs into
// capped bankroll-fraction recommendations via the Kelly criterion
type Engine struct {
	capPct float64
}

// New creates a staking engine with the given bankroll cap percentage.
// A non-positive cap falls back to the default
func New(capPct float64) *Engine {
	if capPct <= 0 {
		capPct = DefaultBankrollCapPct
	}
	return &Engine{capPct: capPct}
}

// CapPct returns the configured bankroll ceiling
func (e *Engine) CapPct() float64 {
	return e.capPct
}

// BankrollFraction calculates the recommended fraction of bankroll, as a
// percentage, to wager at the given odds and model probability.
// Negative-edge bets floor to 0; results are capped and rounded to 2 dp
func (e *Engine) BankrollFraction(americanOdds, modelProb float64) (float64, error) {
	if math.IsNaN(modelProb) || modelProb < 0 || modelProb > 1 {
		return 0, ErrNotComputable
	}

	decimal, err := oddsmath.AmericanToDecimal(americanOdds)
	if err != nil {
		return 0, ErrNotComputable
	}

	fraction := ((decimal*modelProb - (1 - modelProb)) / decimal) * 100

	fraction = math.Min(math.Max(0, fraction), e.capPct)

	return oddsmath.Round2(fraction), nil
}

// BankrollFractionFromString is BankrollFraction for odds arriving as
// numeric strings (manual entry, HTTP payloads)
func (e *Engine) BankrollFractionFromString(odds string, modelProb float64) (float64, error) {
	american, err := oddsmath.ParseAmerican(odds)
	if err != nil {
		return 0, ErrNotComputable
	}
	return e.BankrollFraction(american, modelProb)
}

// Recommend builds a StakeRecommendation for one side of a game.
// Non-computable inputs produce a recommendation with Computable false
func (e *Engine) Recommend(side string, americanOdds int, modelProb float64) models.StakeRecommendation {
	rec := models.StakeRecommendation{
		Side:         side,
		AmericanOdds: americanOdds,
		Probability:  modelProb,
	}

	fraction, err := e.BankrollFraction(float64(americanOdds), modelProb)
	if err != nil {
		return rec
	}

	rec.BankrollFractionPct = fraction
	rec.Computable = true
	return rec
}
