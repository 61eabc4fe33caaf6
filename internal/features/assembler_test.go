package features_test

import (
	"math"
	"testing"

	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/internal/features"
	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/internal/testutil"
	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/pkg/models"
)

var assemblerIndex = map[string]int{
	"Boston Celtics": 0,
	"Miami Heat":     1,
	"Utah Jazz":      2,
	"Phoenix Suns":   3,
}

func reconciledFixture() []models.ReconciledGame {
	return []models.ReconciledGame{
		{
			Game:         models.Game{HomeTeam: "Boston Celtics", AwayTeam: "Miami Heat"},
			OverUnder:    224.5,
			HomeDaysRest: 3,
			AwayDaysRest: 2,
		},
		{
			Game:         models.Game{HomeTeam: "Utah Jazz", AwayTeam: "Phoenix Suns"},
			OverUnder:    230.0,
			HomeDaysRest: 1,
			AwayDaysRest: 7,
		},
	}
}

func TestAssemble(t *testing.T) {
	stats := testutil.StatsTableFixture("Boston Celtics", "Miami Heat", "Utah Jazz", "Phoenix Suns")

	matrix, err := features.Assemble(reconciledFixture(), stats, assemblerIndex)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 2 * (stats columns - 2 identifying) + 2 rest-day columns
	wantCols := 2*(len(stats.Columns)-2) + 2
	if matrix.ColumnCount() != wantCols {
		t.Errorf("column count = %d, want %d", matrix.ColumnCount(), wantCols)
	}
	if matrix.RowCount() != 2 {
		t.Fatalf("row count = %d, want 2", matrix.RowCount())
	}
	for i, row := range matrix.Rows {
		if len(row) != wantCols {
			t.Errorf("row %d width = %d, want %d", i, len(row), wantCols)
		}
	}

	// Home stats first (Boston row 0: PTS 110), then away (Miami row 1:
	// PTS 111), then the rest-day pair
	first := matrix.Rows[0]
	if first[0] != 110 {
		t.Errorf("first home stat = %v, want 110", first[0])
	}
	if first[3] != 111 {
		t.Errorf("first away stat = %v, want 111", first[3])
	}
	if first[wantCols-2] != 3 || first[wantCols-1] != 2 {
		t.Errorf("rest-day columns = %v/%v, want 3/2", first[wantCols-2], first[wantCols-1])
	}

	// Labels: identifying columns stripped, rest-day labels trailing
	for _, col := range matrix.Columns {
		if col == features.ColumnTeamID || col == features.ColumnTeamName {
			t.Errorf("identifying column %s not stripped", col)
		}
	}
	if matrix.Columns[wantCols-2] != features.ColumnDaysRestHome || matrix.Columns[wantCols-1] != features.ColumnDaysRestAway {
		t.Errorf("trailing columns = %v, want rest-day labels", matrix.Columns[wantCols-2:])
	}
}

func TestAssembleCastFailureIsFatal(t *testing.T) {
	stats := testutil.StatsTableFixture("Boston Celtics", "Miami Heat", "Utah Jazz", "Phoenix Suns")
	stats.Rows[1][2] = "not-a-number" // Miami PTS

	_, err := features.Assemble(reconciledFixture(), stats, assemblerIndex)
	if err == nil {
		t.Fatal("expected fatal error on numeric cast failure")
	}
}

func TestAssembleMissingIdentifyingColumns(t *testing.T) {
	stats := &models.TeamStatsTable{
		Columns: []string{"PTS", "REB"},
		Rows:    [][]any{{1.0, 2.0}},
	}

	_, err := features.Assemble(reconciledFixture(), stats, assemblerIndex)
	if err == nil {
		t.Fatal("expected error when identifying columns are absent")
	}
}

func TestAssembleNumericStringsAndIntsCast(t *testing.T) {
	stats := testutil.StatsTableFixture("Boston Celtics", "Miami Heat", "Utah Jazz", "Phoenix Suns")
	stats.Rows[0][2] = "113.5"
	stats.Rows[0][3] = 47

	matrix, err := features.Assemble(reconciledFixture(), stats, assemblerIndex)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if matrix.Rows[0][0] != 113.5 || matrix.Rows[0][1] != 47 {
		t.Errorf("cast values = %v/%v, want 113.5/47", matrix.Rows[0][0], matrix.Rows[0][1])
	}
}

func TestNormalizeRows(t *testing.T) {
	rows := [][]float64{
		{3, 4},
		{0, 0},
	}

	got := features.NormalizeRows(rows)

	if math.Abs(got[0][0]-0.6) > 1e-9 || math.Abs(got[0][1]-0.8) > 1e-9 {
		t.Errorf("normalized row = %v, want [0.6 0.8]", got[0])
	}
	if got[1][0] != 0 || got[1][1] != 0 {
		t.Errorf("zero row changed: %v", got[1])
	}

	// Unit norm for every non-zero row
	var sum float64
	for _, v := range got[0] {
		sum += v * v
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("row norm² = %v, want 1", sum)
	}

	// Input untouched
	if rows[0][0] != 3 {
		t.Error("NormalizeRows mutated its input")
	}
}
