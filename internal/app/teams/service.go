package teams

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	domainteams "cfb-scout-service/internal/domain/teams"
	"cfb-scout-service/internal/providers"
)

// Service answers team queries by routing to the normalizing source matching
// the provider tag. Results are built fresh per request; nothing is cached.
type Service struct {
	registry *providers.Registry
}

// NewService constructs a Service over the provider registry.
func NewService(registry *providers.Registry) *Service {
	return &Service{registry: registry}
}

// SelectableTeams returns the teams exposed in team pickers: FBS and FCS
// only, FBS group first, alphabetical within each group.
func (s *Service) SelectableTeams(ctx context.Context, tag providers.Tag, year int) ([]domainteams.Team, error) {
	all, err := s.fetch(ctx, tag, year)
	if err != nil {
		return nil, err
	}

	selectable := make([]domainteams.Team, 0, len(all))
	for _, t := range all {
		if t.Classification.Selectable() {
			selectable = append(selectable, t)
		}
	}

	c := collate.New(language.AmericanEnglish)
	sort.SliceStable(selectable, func(i, j int) bool {
		a, b := selectable[i], selectable[j]
		if a.Classification != b.Classification {
			return classificationRank(a.Classification) < classificationRank(b.Classification)
		}
		return c.CompareString(a.DisplayName, b.DisplayName) < 0
	})

	return selectable, nil
}

// TeamByName returns the team whose displayName matches exactly.
func (s *Service) TeamByName(ctx context.Context, tag providers.Tag, name string, year int) (domainteams.Team, error) {
	all, err := s.fetch(ctx, tag, year)
	if err != nil {
		return domainteams.Team{}, err
	}

	for _, t := range all {
		if t.DisplayName == name {
			return t, nil
		}
	}
	return domainteams.Team{}, &providers.NotFoundError{Provider: string(tag), Kind: "team", Name: name}
}

func (s *Service) fetch(ctx context.Context, tag providers.Tag, year int) ([]domainteams.Team, error) {
	src, ok := s.registry.Source(tag)
	if !ok {
		return nil, fmt.Errorf("no source registered for provider %q", tag)
	}
	return src.FetchTeams(ctx, year)
}

func classificationRank(c domainteams.Classification) int {
	switch c {
	case domainteams.FBS:
		return 0
	case domainteams.FCS:
		return 1
	default:
		return 2
	}
}
