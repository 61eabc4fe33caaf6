package schedule

import (
	"time"

	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/pkg/models"
)

// DefaultRestDays is assumed when a team has no prior game in the
// schedule (preseason, first game of season)
const DefaultRestDays = 7

// DaysRest computes how many full days the team has rested as of the
// reference date: whole days of (ref - most recent prior game) plus one.
// The +1 day offset means a team that played earlier today counts as 1
// day of rest, not 0 — the predictors were trained against this
// convention, so it must hold exactly
func DaysRest(entries []models.ScheduleEntry, team string, ref time.Time) int {
	var last time.Time
	found := false

	for _, e := range entries {
		if e.HomeTeam != team && e.AwayTeam != team {
			continue
		}
		if e.Date.After(ref) {
			continue
		}
		if !found || e.Date.After(last) {
			last = e.Date
			found = true
		}
	}

	if !found {
		return DefaultRestDays
	}

	return int((24*time.Hour + ref.Sub(last)).Hours() / 24)
}
