package schedule

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/pkg/models"
)

// csvDateLayout matches the season calendar export (UTC, day first)
const csvDateLayout = "02/01/2006 15:04"

// CSVSource loads the season schedule from a fixture CSV with Date,
// Home Team and Away Team columns
type CSVSource struct {
	path string
}

// NewCSVSource creates a schedule source backed by the given CSV file
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

// Load reads and parses the schedule. An unreadable file or missing
// required column is fatal; individual malformed rows are skipped with
// a warning so one bad row cannot sink the run
func (s *CSVSource) Load(ctx context.Context) ([]models.ScheduleEntry, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening schedule file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading schedule file: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("schedule file %s has no data rows", s.path)
	}

	header := records[0]
	dateIdx, homeIdx, awayIdx := -1, -1, -1
	for i, col := range header {
		switch col {
		case "Date":
			dateIdx = i
		case "Home Team":
			homeIdx = i
		case "Away Team":
			awayIdx = i
		}
	}
	if dateIdx < 0 || homeIdx < 0 || awayIdx < 0 {
		return nil, fmt.Errorf("schedule file %s missing Date/Home Team/Away Team columns", s.path)
	}

	entries := make([]models.ScheduleEntry, 0, len(records)-1)
	skipped := 0
	for _, row := range records[1:] {
		if len(row) <= dateIdx || len(row) <= homeIdx || len(row) <= awayIdx {
			skipped++
			continue
		}

		date, err := time.Parse(csvDateLayout, row[dateIdx])
		if err != nil {
			skipped++
			continue
		}

		entries = append(entries, models.ScheduleEntry{
			Date:     date,
			HomeTeam: row[homeIdx],
			AwayTeam: row[awayIdx],
		})
	}

	if skipped > 0 {
		fmt.Printf("[Schedule] skipped %d malformed rows in %s\n", skipped, s.path)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("schedule file %s has no parseable rows", s.path)
	}

	return entries, nil
}
