package cfbd

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"cfb-scout-service/internal/config"
	"cfb-scout-service/internal/domain/players"
	"cfb-scout-service/internal/domain/teams"
	"cfb-scout-service/internal/metrics"
	"cfb-scout-service/internal/providers"
)

// Client fetches teams and rosters from the CollegeFootballData API and maps
// them to the canonical shapes.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient providers.Doer
	logger     *slog.Logger
	metrics    *metrics.Recorder
}

// NewClient constructs a CFBD client with the provided configuration.
func NewClient(cfg config.CFBDConfig, httpClient *http.Client, logger *slog.Logger, rec *metrics.Recorder) *Client {
	return &Client{
		baseURL:    providers.NormalizeBaseURL(cfg.BaseURL, "https://api.collegefootballdata.com"),
		apiKey:     cfg.APIKey,
		httpClient: providers.ResolveHTTPClient(httpClient),
		logger:     logger,
		metrics:    rec,
	}
}

// FetchTeams retrieves every team for the season and normalizes each record.
// Records missing identity fields normalize to empty strings rather than
// failing the batch.
func (c *Client) FetchTeams(ctx context.Context, year int) ([]teams.Team, error) {
	req, err := c.buildRequest(ctx, "/teams", map[string]string{"year": strconv.Itoa(year)})
	if err != nil {
		return nil, err
	}

	var records []teamRecord
	if err := providers.DoJSON(c.httpClient, req, providerName, c.metrics, c.logger, &records); err != nil {
		return nil, err
	}

	out := make([]teams.Team, 0, len(records))
	for _, rec := range records {
		out = append(out, mapTeam(rec))
	}
	return out, nil
}

// FetchRoster retrieves the roster for a team name and season.
func (c *Client) FetchRoster(ctx context.Context, team string, year int) ([]players.Player, error) {
	req, err := c.buildRequest(ctx, "/roster", map[string]string{
		"team": team,
		"year": strconv.Itoa(year),
	})
	if err != nil {
		return nil, err
	}

	var records []rosterRecord
	if err := providers.DoJSON(c.httpClient, req, providerName, c.metrics, c.logger, &records); err != nil {
		return nil, err
	}

	out := make([]players.Player, 0, len(records))
	for _, rec := range records {
		out = append(out, mapPlayer(rec))
	}
	return out, nil
}

func (c *Client) buildRequest(ctx context.Context, path string, query map[string]string) (*http.Request, error) {
	if c.apiKey == "" {
		return nil, &config.MissingError{Key: config.EnvCFBDAPIKey}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	for key, val := range query {
		q.Set(key, val)
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	return req, nil
}
