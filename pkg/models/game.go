package models

import (
	"fmt"
	"time"
)

// Game identifies a single scheduled matchup by canonical team names
type Game struct {
	HomeTeam string `json:"home_team"`
	AwayTeam string `json:"away_team"`
}

// Key returns the canonical "home:away" identifier used to match games
// against odds feed entries
func (g Game) Key() string {
	return fmt.Sprintf("%s:%s", g.HomeTeam, g.AwayTeam)
}

// ScheduleEntry is one game on the full-season calendar, loaded once per
// run from the source of record
type ScheduleEntry struct {
	Date     time.Time `json:"date"`
	HomeTeam string    `json:"home_team"`
	AwayTeam string    `json:"away_team"`
}

// ReconciledGame is a game that survived reconciliation: odds attached
// (from the feed or manual entry) and rest days computed for both teams
type ReconciledGame struct {
	Game          Game    `json:"game"`
	OverUnder     float64 `json:"over_under"`
	HomeMoneyline int     `json:"home_moneyline"`
	AwayMoneyline int     `json:"away_moneyline"`
	HomeDaysRest  int     `json:"home_days_rest"`
	AwayDaysRest  int     `json:"away_days_rest"`
}
