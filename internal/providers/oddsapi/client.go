package oddsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/pkg/models"
)

// DefaultBaseURL is the-odds-api v4 NBA odds endpoint
const DefaultBaseURL = "https://api.the-odds-api.com/v4/sports/basketball_nba/odds/"

// Client handles the-odds-api requests. One fetch per run; errors are
// treated by callers as "no data" and trigger the manual fallback path
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// New creates a new odds API client. An empty baseURL uses the default
func New(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// FetchOdds fetches American-format h2h and totals markets for all of
// today's games
func (c *Client) FetchOdds(ctx context.Context) ([]models.FeedGame, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("no odds API key configured")
	}

	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("regions", "us")
	params.Set("markets", "h2h,totals")
	params.Set("oddsFormat", "american")

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("odds API error: status=%d", resp.StatusCode)
	}

	var games []models.FeedGame
	if err := json.NewDecoder(resp.Body).Decode(&games); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if len(games) == 0 {
		return nil, fmt.Errorf("no games data received from odds API")
	}

	return games, nil
}
