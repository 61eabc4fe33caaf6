package odds_test

import (
	"testing"

	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/internal/odds"
	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/internal/testutil"
	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/pkg/models"
)

func TestNormalize(t *testing.T) {
	feed := []models.FeedGame{
		testutil.FeedGameFixture("Boston Celtics", "Miami Heat"),
	}

	got := odds.Normalize(feed, "fanduel")

	record, ok := got["Boston Celtics:Miami Heat"]
	if !ok {
		t.Fatalf("expected record for Boston Celtics:Miami Heat, got keys %v", keys(got))
	}
	if record.HomeMoneyline != -150 || record.AwayMoneyline != 130 {
		t.Errorf("moneylines = %d/%d, want -150/130", record.HomeMoneyline, record.AwayMoneyline)
	}
	if record.OverUnder != 224.5 {
		t.Errorf("over/under = %v, want 224.5", record.OverUnder)
	}
}

func TestNormalizeSkipsMissingBookmaker(t *testing.T) {
	feed := []models.FeedGame{
		testutil.FeedGameFixture("Boston Celtics", "Miami Heat"),
	}

	got := odds.Normalize(feed, "draftkings")
	if len(got) != 0 {
		t.Errorf("expected empty map for unknown bookmaker, got %v", keys(got))
	}
}

func TestNormalizeSkipsPartialMarkets(t *testing.T) {
	tests := []struct {
		name     string
		override func(*models.FeedGame)
	}{
		{
			name: "Missing totals market",
			override: func(g *models.FeedGame) {
				g.Bookmakers[0].Markets = g.Bookmakers[0].Markets[:1]
			},
		},
		{
			name: "Missing h2h market",
			override: func(g *models.FeedGame) {
				g.Bookmakers[0].Markets = g.Bookmakers[0].Markets[1:]
			},
		},
		{
			name: "Missing home price",
			override: func(g *models.FeedGame) {
				g.Bookmakers[0].Markets[0].Outcomes = g.Bookmakers[0].Markets[0].Outcomes[1:]
			},
		},
		{
			name: "Missing Over outcome",
			override: func(g *models.FeedGame) {
				g.Bookmakers[0].Markets[1].Outcomes = g.Bookmakers[0].Markets[1].Outcomes[1:]
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feed := []models.FeedGame{
				testutil.FeedGameFixture("Boston Celtics", "Miami Heat", tt.override),
				testutil.FeedGameFixture("Utah Jazz", "Phoenix Suns"),
			}

			got := odds.Normalize(feed, "fanduel")

			if _, ok := got["Boston Celtics:Miami Heat"]; ok {
				t.Error("partial game should have been dropped")
			}
			if _, ok := got["Utah Jazz:Phoenix Suns"]; !ok {
				t.Error("complete game should have survived the batch")
			}
		})
	}
}

func TestNormalizeEmptyFeed(t *testing.T) {
	if got := odds.Normalize(nil, "fanduel"); len(got) != 0 {
		t.Errorf("expected empty map for empty feed, got %v", keys(got))
	}
}

func TestGamesFromOdds(t *testing.T) {
	mapping := map[string]models.OddsRecord{
		"Utah Jazz:Phoenix Suns":        {OverUnder: 230.5},
		"Boston Celtics:Miami Heat":     {OverUnder: 224.5},
		"Chicago Bulls:Detroit Pistons": {OverUnder: 218.0},
	}

	games := odds.GamesFromOdds(mapping)
	if len(games) != 3 {
		t.Fatalf("got %d games, want 3", len(games))
	}

	// Sorted by key for deterministic processing order
	want := []models.Game{
		{HomeTeam: "Boston Celtics", AwayTeam: "Miami Heat"},
		{HomeTeam: "Chicago Bulls", AwayTeam: "Detroit Pistons"},
		{HomeTeam: "Utah Jazz", AwayTeam: "Phoenix Suns"},
	}
	for i, g := range games {
		if g != want[i] {
			t.Errorf("games[%d] = %+v, want %+v", i, g, want[i])
		}
	}
}

func keys(m map[string]models.OddsRecord) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
