package models

import "fmt"

// TeamStatsTable holds per-team season aggregate statistics, one row per
// team, positionally indexed by the external team-index mapping. Cells
// are kept untyped until feature assembly: the identifying columns
// (TEAM_ID, TEAM_NAME) are non-numeric and are stripped there
type TeamStatsTable struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// ColumnIndex returns the position of a named column, or -1 if absent
func (t *TeamStatsTable) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// Row returns the stats row at the given position
func (t *TeamStatsTable) Row(i int) ([]any, error) {
	if i < 0 || i >= len(t.Rows) {
		return nil, fmt.Errorf("stats row %d out of range (have %d rows)", i, len(t.Rows))
	}
	return t.Rows[i], nil
}
