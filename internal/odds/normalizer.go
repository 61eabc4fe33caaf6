package odds

import (
	"sort"
	"strings"

	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/pkg/models"
)

// Market keys used by the odds feed
const (
	MarketHeadToHead = "h2h"
	MarketTotals     = "totals"
	OutcomeOver      = "Over"
)

// Normalize turns a raw odds feed payload into per-game OddsRecords for
// the requested bookmaker, keyed by "home:away". Games missing the
// bookmaker, either market, or any required outcome are skipped silently;
// an empty map is a valid "no data" result, never an error
func Normalize(games []models.FeedGame, bookmaker string) map[string]models.OddsRecord {
	normalized := make(map[string]models.OddsRecord)

	for _, game := range games {
		book, ok := findBookmaker(game.Bookmakers, bookmaker)
		if !ok {
			continue
		}

		h2h, ok := findMarket(book.Markets, MarketHeadToHead)
		if !ok {
			continue
		}
		totals, ok := findMarket(book.Markets, MarketTotals)
		if !ok {
			continue
		}

		homePrice, ok := findOutcome(h2h.Outcomes, game.HomeTeam)
		if !ok {
			continue
		}
		awayPrice, ok := findOutcome(h2h.Outcomes, game.AwayTeam)
		if !ok {
			continue
		}
		over, ok := findOutcome(totals.Outcomes, OutcomeOver)
		if !ok {
			continue
		}

		key := models.Game{HomeTeam: game.HomeTeam, AwayTeam: game.AwayTeam}.Key()
		normalized[key] = models.OddsRecord{
			OverUnder:     over.Point,
			HomeMoneyline: int(homePrice.Price),
			AwayMoneyline: int(awayPrice.Price),
		}
	}

	return normalized
}

// GamesFromOdds derives the game list from an odds mapping's keys,
// sorted for deterministic processing order
func GamesFromOdds(odds map[string]models.OddsRecord) []models.Game {
	keys := make([]string, 0, len(odds))
	for key := range odds {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	games := make([]models.Game, 0, len(keys))
	for _, key := range keys {
		home, away, ok := strings.Cut(key, ":")
		if !ok {
			continue
		}
		games = append(games, models.Game{HomeTeam: home, AwayTeam: away})
	}
	return games
}

func findBookmaker(books []models.Bookmaker, key string) (models.Bookmaker, bool) {
	for _, b := range books {
		if b.Key == key {
			return b, true
		}
	}
	return models.Bookmaker{}, false
}

func findMarket(markets []models.Market, key string) (models.Market, bool) {
	for _, m := range markets {
		if m.Key == key {
			return m, true
		}
	}
	return models.Market{}, false
}

func findOutcome(outcomes []models.Outcome, name string) (models.Outcome, bool) {
	for _, o := range outcomes {
		if o.Name == name {
			return o, true
		}
	}
	return models.Outcome{}, false
}
