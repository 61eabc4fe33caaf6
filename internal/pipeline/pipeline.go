package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/internal/cache"
	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/internal/calculator"
	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/internal/features"
	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/internal/odds"
	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/internal/publisher"
	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/internal/reconciler"
	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/internal/registry"
	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/pkg/contracts"
	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/pkg/models"
)

// Deps wires the pipeline's collaborators. OddsSource, Cache and
// Publisher are optional; everything else is required
type Deps struct {
	OddsSource     contracts.OddsSource
	GameSource     contracts.GameSource
	StatsSource    contracts.StatsSource
	ScheduleSource contracts.ScheduleSource
	Manual         contracts.ManualOddsProvider
	Predictors     *registry.PredictorRegistry
	Engine         *calculator.Engine
	Cache          *cache.RedisWriter
	Publisher      *publisher.StreamPublisher

	TeamIndex     map[string]int
	Bookmaker     string    // empty selects manual odds mode
	ReferenceDate time.Time // zero means "now"
}

// GameStakes pairs the two per-side staking recommendations for one game
type GameStakes struct {
	Home models.StakeRecommendation `json:"home"`
	Away models.StakeRecommendation `json:"away"`
}

// PredictionSet is one predictor's output across all games in the run
type PredictionSet struct {
	Predictor     string       `json:"predictor"`
	Probabilities []float64    `json:"probabilities"`
	Stakes        []GameStakes `json:"stakes"`
}

// RunResult is everything a single pipeline run produced
type RunResult struct {
	RunID       string                  `json:"run_id"`
	Games       []models.ReconciledGame `json:"games"`
	Matrix      *models.FeatureMatrix   `json:"matrix"`
	ManualOdds  bool                    `json:"manual_odds"`
	Predictions []PredictionSet         `json:"predictions"`
}

// Pipeline runs the game-day flow once: feeds → reconciliation →
// feature assembly → predictors → staking. Sequential by design; each
// game's record is independent
type Pipeline struct {
	deps  Deps
	runID string
}

// New creates a pipeline for a single run
func New(deps Deps) *Pipeline {
	return &Pipeline{
		deps:  deps,
		runID: uuid.New().String(),
	}
}

// RunID returns this run's identifier
func (p *Pipeline) RunID() string {
	return p.runID
}

// Run executes the pipeline. Fatal conditions: schedule or stats load
// failure, zero reconciled games, assembly failure, predictor row-count
// mismatch. Odds feed failures are not fatal: they select the manual
// entry path
func (p *Pipeline) Run(ctx context.Context) (*RunResult, error) {
	refDate := p.deps.ReferenceDate
	if refDate.IsZero() {
		refDate = time.Now()
	}

	entries, err := p.deps.ScheduleSource.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading schedule: %w", err)
	}
	fmt.Printf("[Pipeline] run %s: loaded %d schedule entries\n", p.runID, len(entries))

	stats, err := p.deps.StatsSource.FetchTeamStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching team stats: %w", err)
	}

	games, oddsMap := p.resolveGames(ctx)
	if len(games) == 0 {
		return nil, reconciler.ErrNoProcessableGames
	}

	// A stale batch must be discarded before anything downstream sees it:
	// snapshotting or publishing it would hand consumers odds for a slate
	// that is not today's
	if reconciler.StaleOdds(games, oddsMap) {
		fmt.Printf("[Pipeline] discarding stale odds batch (%s not priced), falling back to manual entry\n", games[0].Key())
		oddsMap = nil
	}

	p.snapshot(ctx, refDate, games, oddsMap)

	rec := reconciler.New(p.deps.TeamIndex, entries, p.deps.Manual, refDate)
	reconciled, err := rec.Reconcile(games, oddsMap)
	if err != nil {
		return nil, err
	}
	fmt.Printf("[Pipeline] run %s: %d of %d games reconciled\n", p.runID, len(reconciled), len(games))

	matrix, err := features.Assemble(reconciled, stats, p.deps.TeamIndex)
	if err != nil {
		return nil, fmt.Errorf("assembling features: %w", err)
	}

	result := &RunResult{
		RunID:      p.runID,
		Games:      reconciled,
		Matrix:     matrix,
		ManualOdds: oddsMap == nil,
	}

	for _, predictor := range p.deps.Predictors.GetAll() {
		set, err := p.predict(ctx, predictor, reconciled, matrix)
		if err != nil {
			return nil, fmt.Errorf("predictor %s: %w", predictor.Key(), err)
		}
		result.Predictions = append(result.Predictions, *set)
	}

	return result, nil
}

// resolveGames determines today's games and the odds mapping to use.
// Precedence: scoreboard games with a fresh odds batch; games derived
// from odds keys when the scoreboard is down; manual mode when the odds
// feed is unusable or stale
func (p *Pipeline) resolveGames(ctx context.Context) ([]models.Game, map[string]models.OddsRecord) {
	var oddsMap map[string]models.OddsRecord

	if p.deps.Bookmaker != "" && p.deps.OddsSource != nil {
		feed, err := p.deps.OddsSource.FetchOdds(ctx)
		if err != nil {
			fmt.Printf("[Pipeline] odds feed unavailable, falling back to manual entry: %v\n", err)
		} else {
			oddsMap = odds.Normalize(feed, p.deps.Bookmaker)
			if len(oddsMap) == 0 {
				fmt.Printf("[Pipeline] no usable odds for bookmaker %s, falling back to manual entry\n", p.deps.Bookmaker)
				oddsMap = nil
			}
		}
	}

	games, err := p.deps.GameSource.FetchTodaysGames(ctx)
	if err != nil || len(games) == 0 {
		if oddsMap != nil {
			fmt.Printf("[Pipeline] scoreboard unavailable, deriving games from odds feed\n")
			return odds.GamesFromOdds(oddsMap), oddsMap
		}
		fmt.Printf("[Pipeline] scoreboard unavailable and no odds feed: %v\n", err)
		return nil, nil
	}

	// Staleness is decided by the reconciler; passing the batch through
	// keeps the decision in one place
	return games, oddsMap
}

// predict runs one predictor over the matrix and derives staking
// recommendations for both sides of every game
func (p *Pipeline) predict(ctx context.Context, predictor contracts.Predictor, games []models.ReconciledGame, matrix *models.FeatureMatrix) (*PredictionSet, error) {
	rows := matrix.Rows
	if predictor.WantsNormalized() {
		rows = features.NormalizeRows(rows)
	}

	probs, err := predictor.Predict(ctx, rows)
	if err != nil {
		return nil, err
	}
	if len(probs) != len(games) {
		return nil, fmt.Errorf("returned %d probabilities for %d games", len(probs), len(games))
	}

	set := &PredictionSet{
		Predictor:     predictor.Key(),
		Probabilities: probs,
		Stakes:        make([]GameStakes, len(games)),
	}

	for i, game := range games {
		set.Stakes[i] = GameStakes{
			Home: p.deps.Engine.Recommend("home", game.HomeMoneyline, probs[i]),
			Away: p.deps.Engine.Recommend("away", game.AwayMoneyline, 1-probs[i]),
		}
	}

	return set, nil
}

// snapshot best-effort caches and publishes the run's inputs. Failures
// are warnings, never fatal
func (p *Pipeline) snapshot(ctx context.Context, refDate time.Time, games []models.Game, oddsMap map[string]models.OddsRecord) {
	if p.deps.Cache != nil {
		if err := p.deps.Cache.WriteTodaysGames(ctx, refDate, games); err != nil {
			fmt.Printf("[Pipeline] warning: caching today's games: %v\n", err)
		}
		if oddsMap != nil {
			if err := p.deps.Cache.WriteOddsSnapshot(ctx, p.deps.Bookmaker, oddsMap); err != nil {
				fmt.Printf("[Pipeline] warning: caching odds snapshot: %v\n", err)
			}
		}
	}

	if p.deps.Publisher != nil && oddsMap != nil {
		if err := p.deps.Publisher.PublishOdds(ctx, p.runID, oddsMap); err != nil {
			fmt.Printf("[Pipeline] warning: publishing odds: %v\n", err)
		}
	}
}
