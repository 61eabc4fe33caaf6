package models

// StakeRecommendation is the staking engine's output for one side of one
// game. Computable is false when the inputs could not produce a
// recommendation (zero odds, missing probability); callers render N/A
// instead of aborting the batch. Ephemeral, never persisted
type StakeRecommendation struct {
	Side                string  `json:"side"` // "home" or "away"
	AmericanOdds        int     `json:"american_odds"`
	Probability         float64 `json:"probability"`
	BankrollFractionPct float64 `json:"bankroll_fraction_pct"`
	Computable          bool    `json:"computable"`
}
