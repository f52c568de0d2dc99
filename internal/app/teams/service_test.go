package teams

import (
	"context"
	"errors"
	"testing"

	domainplayers "cfb-scout-service/internal/domain/players"
	domainteams "cfb-scout-service/internal/domain/teams"
	"cfb-scout-service/internal/providers"
)

type stubSource struct {
	teams    []domainteams.Team
	teamsErr error
}

func (s *stubSource) FetchTeams(ctx context.Context, year int) ([]domainteams.Team, error) {
	return s.teams, s.teamsErr
}

func (s *stubSource) FetchRoster(ctx context.Context, team string, year int) ([]domainplayers.Player, error) {
	return nil, nil
}

func newService(src providers.Source) *Service {
	registry := providers.NewRegistry()
	registry.Register(providers.TagCFBD, src)
	return NewService(registry)
}

func TestSelectableTeamsExcludesOtherTiers(t *testing.T) {
	svc := newService(&stubSource{teams: []domainteams.Team{
		{DisplayName: "Ohio State", Classification: domainteams.FBS},
		{DisplayName: "Mount Union", Classification: domainteams.Other},
		{DisplayName: "Montana", Classification: domainteams.FCS},
	}})

	got, err := svc.SelectableTeams(context.Background(), providers.TagCFBD, 2023)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 selectable teams, got %d", len(got))
	}
	for _, team := range got {
		if team.Classification == domainteams.Other {
			t.Fatalf("non-selectable tier leaked: %+v", team)
		}
	}
}

func TestSelectableTeamsOrdersFBSBeforeFCS(t *testing.T) {
	svc := newService(&stubSource{teams: []domainteams.Team{
		{DisplayName: "Montana", Classification: domainteams.FCS},
		{DisplayName: "Wyoming", Classification: domainteams.FBS},
		{DisplayName: "Alabama", Classification: domainteams.FBS},
		{DisplayName: "Delaware", Classification: domainteams.FCS},
	}})

	got, err := svc.SelectableTeams(context.Background(), providers.TagCFBD, 2023)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Alabama", "Wyoming", "Delaware", "Montana"}
	if len(got) != len(want) {
		t.Fatalf("expected %d teams, got %d", len(want), len(got))
	}
	for i, name := range want {
		if got[i].DisplayName != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, got[i].DisplayName)
		}
	}
}

func TestSelectableTeamsPropagatesFetchError(t *testing.T) {
	svc := newService(&stubSource{teamsErr: errors.New("boom")})

	if _, err := svc.SelectableTeams(context.Background(), providers.TagCFBD, 2023); err == nil {
		t.Fatal("expected fetch error to propagate")
	}
}

func TestSelectableTeamsUnknownProvider(t *testing.T) {
	svc := NewService(providers.NewRegistry())

	if _, err := svc.SelectableTeams(context.Background(), providers.TagESPN, 2023); err == nil {
		t.Fatal("expected error for unregistered provider")
	}
}

func TestTeamByNameExactMatch(t *testing.T) {
	svc := newService(&stubSource{teams: []domainteams.Team{
		{DisplayName: "Ohio State", Classification: domainteams.FBS},
		{DisplayName: "Ohio", Classification: domainteams.FBS},
	}})

	team, err := svc.TeamByName(context.Background(), providers.TagCFBD, "Ohio", 2023)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if team.DisplayName != "Ohio" {
		t.Fatalf("expected exact match, got %s", team.DisplayName)
	}
}

func TestTeamByNameMiss(t *testing.T) {
	svc := newService(&stubSource{teams: []domainteams.Team{
		{DisplayName: "Ohio State", Classification: domainteams.FBS},
	}})

	_, err := svc.TeamByName(context.Background(), providers.TagCFBD, "ohio state", 2023)

	nf, ok := providers.AsNotFoundError(err)
	if !ok {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if nf.Name != "ohio state" {
		t.Fatalf("unexpected not-found error %+v", nf)
	}
}
