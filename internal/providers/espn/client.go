package espn

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"cfb-scout-service/internal/config"
	"cfb-scout-service/internal/domain/players"
	"cfb-scout-service/internal/domain/teams"
	"cfb-scout-service/internal/metrics"
	"cfb-scout-service/internal/providers"
)

// Client fetches teams and rosters from the ESPN site API and maps them to
// the canonical shapes. The API is public; no credential is attached.
type Client struct {
	baseURL    string
	httpClient providers.Doer
	logger     *slog.Logger
	metrics    *metrics.Recorder
}

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg config.ESPNConfig, httpClient *http.Client, logger *slog.Logger, rec *metrics.Recorder) *Client {
	return &Client{
		baseURL:    providers.NormalizeBaseURL(cfg.BaseURL, "https://site.api.espn.com/apis/site/v2/sports/football/college-football"),
		httpClient: providers.ResolveHTTPClient(httpClient),
		logger:     logger,
		metrics:    rec,
	}
}

// FetchTeams retrieves the full team listing and normalizes each record. The
// listing is not season-scoped upstream; the year parameter is accepted for
// interface symmetry.
func (c *Client) FetchTeams(ctx context.Context, year int) ([]teams.Team, error) {
	records, err := c.fetchTeamRecords(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]teams.Team, 0, len(records))
	for _, rec := range records {
		out = append(out, mapTeam(rec))
	}
	return out, nil
}

// FetchRoster retrieves the roster for a team name and season. There is no
// name-to-id endpoint upstream, so the full team list is fetched first to
// resolve the id.
func (c *Client) FetchRoster(ctx context.Context, team string, year int) ([]players.Player, error) {
	id, displayName, err := c.resolveTeam(ctx, team)
	if err != nil {
		return nil, err
	}

	req, err := c.buildRequest(ctx, "/teams/"+url.PathEscape(id)+"/roster", map[string]string{
		"season": strconv.Itoa(year),
	})
	if err != nil {
		return nil, err
	}

	var payload rosterResponse
	if err := providers.DoJSON(c.httpClient, req, providerName, c.metrics, c.logger, &payload); err != nil {
		return nil, err
	}

	var out []players.Player
	for _, envelope := range payload.Athletes {
		for _, rec := range envelope.players {
			out = append(out, mapPlayer(rec, displayName))
		}
	}
	return out, nil
}

func (c *Client) resolveTeam(ctx context.Context, team string) (id, displayName string, err error) {
	records, err := c.fetchTeamRecords(ctx)
	if err != nil {
		return "", "", err
	}

	for _, rec := range records {
		if rec.DisplayName == team {
			return rec.ID.String(), rec.DisplayName, nil
		}
	}
	return "", "", &providers.NotFoundError{Provider: providerName, Kind: "team", Name: team}
}

func (c *Client) fetchTeamRecords(ctx context.Context) ([]teamRecord, error) {
	req, err := c.buildRequest(ctx, "/teams", map[string]string{"limit": teamListLimit})
	if err != nil {
		return nil, err
	}

	var payload teamListResponse
	if err := providers.DoJSON(c.httpClient, req, providerName, c.metrics, c.logger, &payload); err != nil {
		return nil, err
	}

	var records []teamRecord
	for _, sport := range payload.Sports {
		for _, league := range sport.Leagues {
			for _, entry := range league.Teams {
				records = append(records, entry.Team)
			}
		}
	}
	return records, nil
}

func (c *Client) buildRequest(ctx context.Context, path string, query map[string]string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	for key, val := range query {
		q.Set(key, val)
	}
	req.URL.RawQuery = q.Encode()

	return req, nil
}
