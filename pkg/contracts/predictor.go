package contracts

import "context"

// Predictor is an opaque trained model: it accepts the assembled feature
// matrix and returns one home-win probability per row. The pipeline makes
// no assumption about model internals beyond shape
type Predictor interface {
	// Key identifies the predictor in the registry and in output
	Key() string

	// WantsNormalized reports whether the predictor was trained on
	// L2 row-normalized input
	WantsNormalized() bool

	// Predict returns one probability-like value per feature row
	Predict(ctx context.Context, features [][]float64) ([]float64, error)
}
