package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/pkg/models"
)

// FeedGameFixture creates a test odds feed game with a fully priced
// fanduel h2h + totals book and sensible defaults
func FeedGameFixture(home, away string, overrides ...func(*models.FeedGame)) models.FeedGame {
	game := models.FeedGame{
		ID:       "test-event-1",
		SportKey: "basketball_nba",
		HomeTeam: home,
		AwayTeam: away,
		Bookmakers: []models.Bookmaker{
			{
				Key:   "fanduel",
				Title: "FanDuel",
				Markets: []models.Market{
					{
						Key: "h2h",
						Outcomes: []models.Outcome{
							{Name: home, Price: -150},
							{Name: away, Price: 130},
						},
					},
					{
						Key: "totals",
						Outcomes: []models.Outcome{
							{Name: "Over", Price: -110, Point: 224.5},
							{Name: "Under", Price: -110, Point: 224.5},
						},
					},
				},
			},
		},
	}

	// Apply overrides
	for _, override := range overrides {
		override(&game)
	}

	return game
}

// StatsTableFixture creates a stats table with identifying columns and
// three numeric columns, one row per team in index order
func StatsTableFixture(teams ...string) *models.TeamStatsTable {
	table := &models.TeamStatsTable{
		Columns: []string{"TEAM_ID", "TEAM_NAME", "PTS", "REB", "AST"},
	}

	for i, team := range teams {
		table.Rows = append(table.Rows, []any{
			float64(1610612737 + i),
			team,
			float64(110 + i),
			float64(44 + i),
			float64(25 + i),
		})
	}

	return table
}

// Entry creates a schedule entry from a date string ("2006-01-02" or
// RFC 3339)
func Entry(date, home, away string) models.ScheduleEntry {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, date)
		if err != nil {
			panic(fmt.Sprintf("bad fixture date %q: %v", date, err))
		}
	}
	return models.ScheduleEntry{Date: parsed, HomeTeam: home, AwayTeam: away}
}

// StubManualProvider returns fixed odds for every game and records the
// games it was asked about
type StubManualProvider struct {
	Record models.OddsRecord
	Err    error
	Asked  []models.Game
}

func (s *StubManualProvider) OddsFor(game models.Game) (models.OddsRecord, error) {
	s.Asked = append(s.Asked, game)
	if s.Err != nil {
		return models.OddsRecord{}, s.Err
	}
	return s.Record, nil
}

// StubPredictor returns canned probabilities
type StubPredictor struct {
	Name       string
	Normalized bool
	Probs      []float64
	Err        error
	GotRows    [][]float64
}

func (s *StubPredictor) Key() string {
	if s.Name == "" {
		return "stub"
	}
	return s.Name
}

func (s *StubPredictor) WantsNormalized() bool {
	return s.Normalized
}

func (s *StubPredictor) Predict(ctx context.Context, features [][]float64) ([]float64, error) {
	s.GotRows = features
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Probs, nil
}
