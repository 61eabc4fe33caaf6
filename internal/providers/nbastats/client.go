package nbastats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/pkg/models"
)

// Default NBA feed endpoints
const (
	DefaultScoreboardURL = "https://data.nba.com/data/10s/v2015/json/mobile_teams/nba/2024/scores/00_todays_scores.json"
	DefaultStatsURL      = "https://stats.nba.com/stats/leaguedashteamstats?" +
		"Conference=&DateFrom=&DateTo=&Division=&GameScope=&" +
		"GameSegment=&LastNGames=0&LeagueID=00&Location=&" +
		"MeasureType=Base&Month=0&OpponentTeamID=0&Outcome=&" +
		"PORound=0&PaceAdjust=N&PerMode=PerGame&Period=0&" +
		"PlayerExperience=&PlayerPosition=&PlusMinus=N&Rank=N&" +
		"Season=2024-25&SeasonSegment=&SeasonType=Regular+Season&ShotClockRange=&" +
		"StarterBench=&TeamID=0&TwoWay=0&VsConference=&VsDivision="
)

// Client handles the NBA scoreboard and season-stats feeds. Both are
// required sources: a failed fetch is fatal for the run
type Client struct {
	httpClient    *http.Client
	scoreboardURL string
	statsURL      string
	userAgent     string
}

// New creates a new NBA feeds client. Empty URLs use the defaults
func New(scoreboardURL, statsURL string) *Client {
	if scoreboardURL == "" {
		scoreboardURL = DefaultScoreboardURL
	}
	if statsURL == "" {
		statsURL = DefaultStatsURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		scoreboardURL: scoreboardURL,
		statsURL:      statsURL,
		userAgent:     "Mozilla/5.0 (compatible; FortunaBot/1.0)",
	}
}

// scoreboard feed shapes: gs.g[] with h (home) and v (visitor) teams,
// each carrying city ("tc") and nickname ("tn")
type scoreboardResponse struct {
	Scores struct {
		Games []scoreboardGame `json:"g"`
	} `json:"gs"`
}

type scoreboardGame struct {
	Home    scoreboardTeam `json:"h"`
	Visitor scoreboardTeam `json:"v"`
}

type scoreboardTeam struct {
	City string `json:"tc"`
	Name string `json:"tn"`
}

// FetchTodaysGames fetches today's scheduled games from the scoreboard
// feed. Team names are assembled as "City Nickname" to match the
// canonical names used by the team index
func (c *Client) FetchTodaysGames(ctx context.Context) ([]models.Game, error) {
	body, err := c.fetch(ctx, c.scoreboardURL)
	if err != nil {
		return nil, err
	}

	var sb scoreboardResponse
	if err := json.Unmarshal(body, &sb); err != nil {
		return nil, fmt.Errorf("decoding scoreboard: %w", err)
	}

	games := make([]models.Game, 0, len(sb.Scores.Games))
	for _, g := range sb.Scores.Games {
		if g.Home.Name == "" || g.Visitor.Name == "" {
			continue
		}
		games = append(games, models.Game{
			HomeTeam: g.Home.City + " " + g.Home.Name,
			AwayTeam: g.Visitor.City + " " + g.Visitor.Name,
		})
	}

	return games, nil
}

// stats feed shape: resultSets[0] carries column headers and one row of
// season aggregates per team
type statsResponse struct {
	ResultSets []struct {
		Headers []string `json:"headers"`
		RowSet  [][]any  `json:"rowSet"`
	} `json:"resultSets"`
}

// FetchTeamStats fetches the season team-stats table, refreshed once
// per run
func (c *Client) FetchTeamStats(ctx context.Context) (*models.TeamStatsTable, error) {
	body, err := c.fetch(ctx, c.statsURL)
	if err != nil {
		return nil, err
	}

	var stats statsResponse
	if err := json.Unmarshal(body, &stats); err != nil {
		return nil, fmt.Errorf("decoding team stats: %w", err)
	}

	if len(stats.ResultSets) == 0 {
		return nil, fmt.Errorf("team stats response has no result sets")
	}

	rs := stats.ResultSets[0]
	if len(rs.Headers) == 0 || len(rs.RowSet) == 0 {
		return nil, fmt.Errorf("team stats result set is empty")
	}

	return &models.TeamStatsTable{
		Columns: rs.Headers,
		Rows:    rs.RowSet,
	}, nil
}

// fetch makes an HTTP GET request and returns the response body.
// The stats endpoint rejects requests without browser-like headers
func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Referer", "https://www.nba.com/")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("NBA feed error: status=%d, url=%s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	return body, nil
}
