package oddsmath

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AmericanToDecimal converts American odds to decimal odds
// American +150 → Decimal 2.50
// American -150 → Decimal 1.67
//
// The result is rounded to 2 decimal places. The staking models were
// trained against 2-dp decimal odds, so the rounding is part of the
// conversion, not a display concern
func AmericanToDecimal(american float64) (float64, error) {
	if american == 0 {
		return 0, fmt.Errorf("invalid American odds: cannot be 0")
	}

	var decimal float64
	if american >= 100 {
		// Positive odds: (american / 100) + 1
		decimal = (american / 100.0) + 1.0
	} else {
		// Negative odds: (-100 / american) + 1
		decimal = (-100.0 / american) + 1.0
	}

	return Round2(decimal), nil
}

// ImpliedProbability converts American odds directly to the implied
// probability of the quoted side
// -110 → 0.5236 (on the 2-dp decimal 1.91)
func ImpliedProbability(american float64) (float64, error) {
	decimal, err := AmericanToDecimal(american)
	if err != nil {
		return 0, err
	}

	return 1.0 / decimal, nil
}

// ParseAmerican parses an American odds value from a string, accepting
// an optional leading + sign ("+150", "-110", "150")
func ParseAmerican(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "+"))
	if s == "" {
		return 0, fmt.Errorf("empty odds value")
	}

	american, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("non-numeric odds %q", s)
	}

	return american, nil
}

// Round2 rounds a value to 2 decimal places
func Round2(val float64) float64 {
	return math.Round(val*100) / 100
}
