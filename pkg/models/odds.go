package models

import "time"

// OddsRecord is one normalized per-game entry from the odds feed: both
// moneylines plus the totals line. A record only exists when the h2h and
// totals markets were both fully resolvable for the game
type OddsRecord struct {
	OverUnder     float64 `json:"over_under"`
	HomeMoneyline int     `json:"home_moneyline"`
	AwayMoneyline int     `json:"away_moneyline"`
}

// FeedGame is one game object in the raw odds feed payload
type FeedGame struct {
	ID         string      `json:"id"`
	SportKey   string      `json:"sport_key"`
	HomeTeam   string      `json:"home_team"`
	AwayTeam   string      `json:"away_team"`
	Bookmakers []Bookmaker `json:"bookmakers"`
}

// Bookmaker is one sportsbook's set of markets for a game
type Bookmaker struct {
	Key     string   `json:"key"`
	Title   string   `json:"title"`
	Markets []Market `json:"markets"`
}

// Market is a single market (h2h, totals) quoted by a bookmaker
type Market struct {
	Key        string    `json:"key"`
	LastUpdate time.Time `json:"last_update"`
	Outcomes   []Outcome `json:"outcomes"`
}

// Outcome is one priced side of a market. Point is only set for markets
// with a line (totals, spreads)
type Outcome struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Point float64 `json:"point"`
}
