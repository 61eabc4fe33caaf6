package schedule

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/pkg/models"
)

// PostgresSource loads the season schedule from the source-of-record
// database instead of a CSV fixture
type PostgresSource struct {
	db *sql.DB
}

// OpenPostgres opens a schedule database connection and verifies it
func OpenPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening schedule database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging schedule database: %w", err)
	}

	return db, nil
}

// NewPostgresSource creates a schedule source backed by Postgres
func NewPostgresSource(db *sql.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

// Load reads the full-season calendar ordered by date
func (s *PostgresSource) Load(ctx context.Context) ([]models.ScheduleEntry, error) {
	query := `
		SELECT game_date, home_team, away_team
		FROM schedule
		ORDER BY game_date
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query schedule: %w", err)
	}
	defer rows.Close()

	var entries []models.ScheduleEntry
	for rows.Next() {
		var e models.ScheduleEntry
		if err := rows.Scan(&e.Date, &e.HomeTeam, &e.AwayTeam); err != nil {
			return nil, fmt.Errorf("scan schedule row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedule rows: %w", err)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("schedule table is empty")
	}

	return entries, nil
}
