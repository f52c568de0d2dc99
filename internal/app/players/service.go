package players

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	domainplayers "cfb-scout-service/internal/domain/players"
	domainteams "cfb-scout-service/internal/domain/teams"
	"cfb-scout-service/internal/logging"
	"cfb-scout-service/internal/providers"
)

// Service answers roster queries: normalize the upstream roster, attach the
// owning team's colors/logos, then apply search predicates.
type Service struct {
	registry *providers.Registry
	logger   *slog.Logger
}

// NewService constructs a Service over the provider registry.
func NewService(registry *providers.Registry, logger *slog.Logger) *Service {
	return &Service{registry: registry, logger: logger}
}

// Query describes one roster request.
type Query struct {
	Team     string
	Year     int
	Search   string
	Position string
}

// Roster fetches and normalizes a team's roster. The roster fetch and the
// team-list fetch backing the color join are independent and run
// concurrently; a join failure degrades to fallback colors and never fails
// the request.
func (s *Service) Roster(ctx context.Context, tag providers.Tag, q Query) ([]domainplayers.Player, error) {
	src, ok := s.registry.Source(tag)
	if !ok {
		return nil, fmt.Errorf("no source registered for provider %q", tag)
	}

	var (
		roster   []domainplayers.Player
		teamList []domainteams.Team
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		roster, err = src.FetchRoster(gctx, q.Team, q.Year)
		return err
	})
	g.Go(func() error {
		list, err := src.FetchTeams(gctx, q.Year)
		if err != nil {
			logging.Warn(s.logger, "team lookup for color join failed, using fallback colors",
				slog.String(logging.FieldProvider, string(tag)),
				slog.String("error", err.Error()))
			return nil
		}
		teamList = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	index := indexByDisplayName(teamList)
	filter := Filter{Name: q.Search, Position: q.Position}

	out := make([]domainplayers.Player, 0, len(roster))
	for _, p := range roster {
		attachTeamColors(&p, index)
		if filter.Matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func indexByDisplayName(list []domainteams.Team) map[string]domainteams.Team {
	index := make(map[string]domainteams.Team, len(list))
	for _, t := range list {
		index[t.DisplayName] = t
	}
	return index
}

// attachTeamColors joins the owning team's colors/logos by exact displayName
// equality. A miss populates neutral colors and leaves logos empty.
func attachTeamColors(p *domainplayers.Player, index map[string]domainteams.Team) {
	t, ok := index[p.Team]
	if !ok {
		p.TeamPrimaryColor = domainplayers.FallbackPrimaryColor
		p.TeamSecondaryColor = domainplayers.FallbackSecondaryColor
		return
	}
	p.TeamPrimaryColor = t.PrimaryColor
	p.TeamSecondaryColor = t.SecondaryColor
	p.TeamLogoURL = t.LogoURL
	p.TeamDarkLogoURL = t.DarkLogoURL
}
