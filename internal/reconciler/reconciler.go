package reconciler

import (
	"errors"
	"fmt"
	"time"

	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/internal/schedule"
	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/pkg/contracts"
	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/pkg/models"
)

// ErrNoProcessableGames is returned when every game was filtered out.
// An empty feature matrix has no downstream use, so this one condition
// is fatal for the run
var ErrNoProcessableGames = errors.New("no processable games")

// Reconciler matches today's games against the odds mapping and the
// season schedule, producing one enriched record per surviving game.
// Per-game problems are absorbed as skips; only zero survivors fails
type Reconciler struct {
	teamIndex map[string]int
	schedule  []models.ScheduleEntry
	manual    contracts.ManualOddsProvider
	refDate   time.Time
}

// New creates a reconciler. refDate is the reference instant for
// rest-day computation, shared by every game in the run
func New(teamIndex map[string]int, entries []models.ScheduleEntry, manual contracts.ManualOddsProvider, refDate time.Time) *Reconciler {
	return &Reconciler{
		teamIndex: teamIndex,
		schedule:  entries,
		manual:    manual,
		refDate:   refDate,
	}
}

// StaleOdds reports whether a non-empty odds batch should be discarded
// wholesale: the canonical key of the first scoreboard game is absent
// from the odds mapping, meaning the snapshot predates today's slate
func StaleOdds(games []models.Game, odds map[string]models.OddsRecord) bool {
	if len(games) == 0 || len(odds) == 0 {
		return false
	}
	_, ok := odds[games[0].Key()]
	return !ok
}

// Reconcile enriches each game with odds and rest days. A nil odds map
// selects the manual-entry path for every game. Games are dropped, not
// fatal, when a team fails to resolve, the odds key is missing, or
// manual entry fails; the run continues with the remainder
func (r *Reconciler) Reconcile(games []models.Game, odds map[string]models.OddsRecord) ([]models.ReconciledGame, error) {
	if odds != nil && StaleOdds(games, odds) {
		fmt.Printf("[Reconciler] odds batch is stale (%s not found), falling back to manual entry\n", games[0].Key())
		odds = nil
	}

	reconciled := make([]models.ReconciledGame, 0, len(games))

	for _, game := range games {
		if _, ok := r.teamIndex[game.HomeTeam]; !ok {
			fmt.Printf("[Reconciler] skipping %s vs %s: %s not found in team index\n", game.HomeTeam, game.AwayTeam, game.HomeTeam)
			continue
		}
		if _, ok := r.teamIndex[game.AwayTeam]; !ok {
			fmt.Printf("[Reconciler] skipping %s vs %s: %s not found in team index\n", game.HomeTeam, game.AwayTeam, game.AwayTeam)
			continue
		}

		var record models.OddsRecord
		if odds != nil {
			found, ok := odds[game.Key()]
			if !ok {
				fmt.Printf("[Reconciler] skipping %s: no odds found\n", game.Key())
				continue
			}
			record = found
		} else {
			entered, err := r.manual.OddsFor(game)
			if err != nil {
				fmt.Printf("[Reconciler] skipping %s: manual entry failed: %v\n", game.Key(), err)
				continue
			}
			record = entered
		}

		reconciled = append(reconciled, models.ReconciledGame{
			Game:          game,
			OverUnder:     record.OverUnder,
			HomeMoneyline: record.HomeMoneyline,
			AwayMoneyline: record.AwayMoneyline,
			HomeDaysRest:  schedule.DaysRest(r.schedule, game.HomeTeam, r.refDate),
			AwayDaysRest:  schedule.DaysRest(r.schedule, game.AwayTeam, r.refDate),
		})
	}

	if len(reconciled) == 0 {
		return nil, ErrNoProcessableGames
	}

	return reconciled, nil
}
