package schedule_test

import (
	"testing"
	"time"

	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/internal/schedule"
	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/internal/testutil"
	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/pkg/models"
)

func TestDaysRest(t *testing.T) {
	ref := time.Date(2025, 1, 10, 19, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		entries []models.ScheduleEntry
		team    string
		want    int
	}{
		{
			name: "Last game two days before reference",
			entries: []models.ScheduleEntry{
				testutil.Entry("2025-01-08", "Boston Celtics", "Miami Heat"),
			},
			team: "Boston Celtics",
			want: 3, // +1 day convention
		},
		{
			name: "Played earlier today",
			entries: []models.ScheduleEntry{
				{Date: time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC), HomeTeam: "Boston Celtics", AwayTeam: "Miami Heat"},
			},
			team: "Boston Celtics",
			want: 1,
		},
		{
			name:    "No prior games defaults to seven",
			entries: nil,
			team:    "Boston Celtics",
			want:    schedule.DefaultRestDays,
		},
		{
			name: "Future games are ignored",
			entries: []models.ScheduleEntry{
				testutil.Entry("2025-01-12", "Boston Celtics", "Miami Heat"),
				testutil.Entry("2025-01-07", "Miami Heat", "Boston Celtics"),
			},
			team: "Boston Celtics",
			want: 4,
		},
		{
			name: "Away appearances count",
			entries: []models.ScheduleEntry{
				testutil.Entry("2025-01-09", "Miami Heat", "Boston Celtics"),
			},
			team: "Boston Celtics",
			want: 2,
		},
		{
			name: "Most recent of several prior games wins",
			entries: []models.ScheduleEntry{
				testutil.Entry("2025-01-02", "Boston Celtics", "Chicago Bulls"),
				testutil.Entry("2025-01-08", "Boston Celtics", "Miami Heat"),
				testutil.Entry("2025-01-05", "Utah Jazz", "Boston Celtics"),
			},
			team: "Boston Celtics",
			want: 3,
		},
		{
			name: "Tie on the most recent date",
			entries: []models.ScheduleEntry{
				testutil.Entry("2025-01-08", "Boston Celtics", "Miami Heat"),
				testutil.Entry("2025-01-08", "Chicago Bulls", "Boston Celtics"),
			},
			team: "Boston Celtics",
			want: 3, // only the date matters, not the opponent
		},
		{
			name: "Team never in schedule defaults to seven",
			entries: []models.ScheduleEntry{
				testutil.Entry("2025-01-08", "Miami Heat", "Chicago Bulls"),
			},
			team: "Boston Celtics",
			want: schedule.DefaultRestDays,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := schedule.DaysRest(tt.entries, tt.team, ref)
			if got != tt.want {
				t.Errorf("DaysRest(%s) = %d, want %d", tt.team, got, tt.want)
			}
		})
	}
}
