package models

// FeatureMatrix is the per-game numeric matrix handed to predictors.
// Column order is load-bearing: it must match the order the predictor
// was trained on (home stats, away stats, then the two rest-day columns).
// Columns double as the labeled view for display
type FeatureMatrix struct {
	Columns []string    `json:"columns"`
	Rows    [][]float64 `json:"rows"`
}

// RowCount returns the number of games in the matrix
func (m *FeatureMatrix) RowCount() int {
	return len(m.Rows)
}

// ColumnCount returns the matrix width, identical for every row
func (m *FeatureMatrix) ColumnCount() int {
	return len(m.Columns)
}
