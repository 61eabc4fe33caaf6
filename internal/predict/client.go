package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPPredictor calls an external model server over HTTP. The model is
// a black box: the feature matrix goes in, one probability per row
// comes out
type HTTPPredictor struct {
	httpClient *http.Client
	url        string
	key        string
	normalized bool
}

// NewHTTPPredictor creates a predictor client. key names the model in
// output; normalized marks models trained on row-normalized input
func NewHTTPPredictor(url, key string, normalized bool) *HTTPPredictor {
	return &HTTPPredictor{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		url:        url,
		key:        key,
		normalized: normalized,
	}
}

func (p *HTTPPredictor) Key() string {
	return p.key
}

func (p *HTTPPredictor) WantsNormalized() bool {
	return p.normalized
}

type predictRequest struct {
	Features [][]float64 `json:"features"`
}

type predictResponse struct {
	Probabilities []float64 `json:"probabilities"`
}

// Predict posts the feature matrix and returns per-row probabilities.
// A row-count mismatch is an error: it would desynchronize predictions
// from games
func (p *HTTPPredictor) Predict(ctx context.Context, features [][]float64) ([]float64, error) {
	payload, err := json.Marshal(predictRequest{Features: features})
	if err != nil {
		return nil, fmt.Errorf("marshaling features: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model server error: status=%d", resp.StatusCode)
	}

	var result predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if len(result.Probabilities) != len(features) {
		return nil, fmt.Errorf("model %s returned %d probabilities for %d rows", p.key, len(result.Probabilities), len(features))
	}

	return result.Probabilities, nil
}
