package predict_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/internal/predict"
)

func TestHTTPPredictorPredict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Features [][]float64 `json:"features"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if len(req.Features) != 2 {
			t.Errorf("got %d feature rows, want 2", len(req.Features))
		}

		json.NewEncoder(w).Encode(map[string]any{
			"probabilities": []float64{0.62, 0.41},
		})
	}))
	defer server.Close()

	p := predict.NewHTTPPredictor(server.URL, "xgboost", false)
	if p.Key() != "xgboost" || p.WantsNormalized() {
		t.Errorf("unexpected predictor identity: %s/%v", p.Key(), p.WantsNormalized())
	}

	probs, err := p.Predict(context.Background(), [][]float64{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(probs) != 2 || probs[0] != 0.62 || probs[1] != 0.41 {
		t.Errorf("probs = %v, want [0.62 0.41]", probs)
	}
}

func TestHTTPPredictorRowMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"probabilities": []float64{0.62},
		})
	}))
	defer server.Close()

	p := predict.NewHTTPPredictor(server.URL, "xgboost", false)
	if _, err := p.Predict(context.Background(), [][]float64{{1}, {2}}); err == nil {
		t.Fatal("expected error on probability/row mismatch")
	}
}

func TestHTTPPredictorServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer server.Close()

	p := predict.NewHTTPPredictor(server.URL, "nn", true)
	if _, err := p.Predict(context.Background(), [][]float64{{1}}); err == nil {
		t.Fatal("expected error on server failure")
	}
}
