package contracts

import (
	"context"

	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/pkg/models"
)

// OddsSource fetches the raw odds feed payload. Errors are "no data"
// signals: the pipeline falls back rather than aborting
type OddsSource interface {
	FetchOdds(ctx context.Context) ([]models.FeedGame, error)
}

// GameSource fetches today's scheduled games from a scoreboard feed
type GameSource interface {
	FetchTodaysGames(ctx context.Context) ([]models.Game, error)
}

// StatsSource fetches the season team-stats table. A failure here is
// fatal for the run
type StatsSource interface {
	FetchTeamStats(ctx context.Context) (*models.TeamStatsTable, error)
}

// ScheduleSource loads the full-season calendar once per run
type ScheduleSource interface {
	Load(ctx context.Context) ([]models.ScheduleEntry, error)
}

// ManualOddsProvider supplies odds for a game when the automated odds
// path is unavailable. Any implementation (stdin prompts, UI dialog,
// test stub) is acceptable
type ManualOddsProvider interface {
	OddsFor(game models.Game) (models.OddsRecord, error)
}
