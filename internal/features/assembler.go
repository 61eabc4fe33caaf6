package features

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/pkg/models"
)

// Identifying columns stripped before numeric casting
const (
	ColumnTeamID   = "TEAM_ID"
	ColumnTeamName = "TEAM_NAME"
)

// Rest-day column labels, matching the training column contract
const (
	ColumnDaysRestHome = "Days-Rest-Home"
	ColumnDaysRestAway = "Days-Rest-Away"
)

// Assemble builds the per-game feature matrix: home stats, then away
// stats, then the two rest-day columns, with identifying columns
// stripped. Any row that fails numeric casting is a fatal assembly
// error since it would corrupt matrix shape for every downstream
// predictor call
func Assemble(games []models.ReconciledGame, stats *models.TeamStatsTable, teamIndex map[string]int) (*models.FeatureMatrix, error) {
	idIdx := stats.ColumnIndex(ColumnTeamID)
	nameIdx := stats.ColumnIndex(ColumnTeamName)
	if idIdx < 0 || nameIdx < 0 {
		return nil, fmt.Errorf("stats table missing %s/%s columns", ColumnTeamID, ColumnTeamName)
	}

	numericCols := make([]int, 0, len(stats.Columns)-2)
	for i := range stats.Columns {
		if i == idIdx || i == nameIdx {
			continue
		}
		numericCols = append(numericCols, i)
	}

	columns := make([]string, 0, 2*len(numericCols)+2)
	for _, i := range numericCols {
		columns = append(columns, stats.Columns[i])
	}
	for _, i := range numericCols {
		columns = append(columns, stats.Columns[i])
	}
	columns = append(columns, ColumnDaysRestHome, ColumnDaysRestAway)

	rows := make([][]float64, 0, len(games))
	for _, game := range games {
		row := make([]float64, 0, len(columns))

		for _, side := range []struct {
			team string
			name string
		}{
			{game.Game.HomeTeam, "home"},
			{game.Game.AwayTeam, "away"},
		} {
			statsRow, err := stats.Row(teamIndex[side.team])
			if err != nil {
				return nil, fmt.Errorf("assembling %s: %s row: %w", game.Game.Key(), side.name, err)
			}

			for _, i := range numericCols {
				if i >= len(statsRow) {
					return nil, fmt.Errorf("assembling %s: %s stats row too short", game.Game.Key(), side.name)
				}
				value, err := toFloat(statsRow[i])
				if err != nil {
					return nil, fmt.Errorf("assembling %s: column %s for %s: %w", game.Game.Key(), stats.Columns[i], side.team, err)
				}
				row = append(row, value)
			}
		}

		row = append(row, float64(game.HomeDaysRest), float64(game.AwayDaysRest))
		rows = append(rows, row)
	}

	return &models.FeatureMatrix{Columns: columns, Rows: rows}, nil
}

// NormalizeRows L2-normalizes each row independently, for predictors
// trained on row-normalized input. Rows with zero norm are copied as-is
func NormalizeRows(rows [][]float64) [][]float64 {
	normalized := make([][]float64, len(rows))
	for i, row := range rows {
		out := make([]float64, len(row))

		var sumSquares float64
		for _, v := range row {
			sumSquares += v * v
		}

		if sumSquares == 0 {
			copy(out, row)
		} else {
			norm := math.Sqrt(sumSquares)
			for j, v := range row {
				out[j] = v / norm
			}
		}

		normalized[i] = out
	}
	return normalized
}

// toFloat casts a stats cell to float64. The feed decodes numbers as
// float64, but rows sourced elsewhere may carry json.Number, ints or
// numeric strings
func toFloat(cell any) (float64, error) {
	switch v := cell.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		return v.Float64()
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("non-numeric value %q", v)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("non-numeric value of type %T", cell)
	}
}
