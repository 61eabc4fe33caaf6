package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/internal/calculator"
)

// Config holds pipeline configuration, loaded from environment
type Config struct {
	OddsAPIKey    string
	OddsAPIURL    string
	Sportsbook    string // bookmaker key; empty selects manual odds mode
	ScoreboardURL string
	StatsURL      string

	ScheduleCSV string
	ScheduleDSN string // when set, Postgres is the schedule source

	RedisAddr string

	ModelURL        string
	ModelKey        string
	ModelNormalized bool

	BankrollCapPct float64
	ReferenceDate  time.Time // zero means "now"

	KellyServicePort int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		OddsAPIKey:       os.Getenv("ODDS_API_KEY"),
		OddsAPIURL:       os.Getenv("ODDS_API_URL"),
		Sportsbook:       os.Getenv("SPORTSBOOK"),
		ScoreboardURL:    os.Getenv("SCOREBOARD_URL"),
		StatsURL:         os.Getenv("STATS_URL"),
		ScheduleCSV:      getEnvString("SCHEDULE_CSV", "Data/nba-2024-UTC.csv"),
		ScheduleDSN:      os.Getenv("SCHEDULE_DSN"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		ModelURL:         os.Getenv("MODEL_URL"),
		ModelKey:         getEnvString("MODEL_KEY", "xgboost"),
		ModelNormalized:  getEnvBool("MODEL_NORMALIZED", false),
		BankrollCapPct:   getEnvFloat("BANKROLL_CAP_PCT", calculator.DefaultBankrollCapPct),
		KellyServicePort: getEnvInt("KELLY_SERVICE_PORT", 8084),
	}

	if raw := os.Getenv("REFERENCE_DATE"); raw != "" {
		ref, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid REFERENCE_DATE %q: %w", raw, err)
		}
		cfg.ReferenceDate = ref
	}

	return cfg, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
