package espn

import (
	"context"
	"net/http"
	"testing"

	"cfb-scout-service/internal/config"
	"cfb-scout-service/internal/providers"
	"cfb-scout-service/internal/testutil"
)

const teamListBody = `{
	"sports": [{
		"leagues": [{
			"teams": [
				{"team": {"id": "194", "displayName": "Ohio State Buckeyes", "nickname": "Buckeyes", "type": "FBS", "conference": {"name": "Big Ten"}, "color": "bb0000", "alternateColor": "666666"}},
				{"team": {"id": "61", "displayName": "Georgetown Hoyas", "nickname": "Hoyas", "type": "FCS", "conference": {"name": "Patriot"}, "color": "041E42"}},
				{"team": {"id": "350", "displayName": "Emory Eagles", "type": "Other"}}
			]
		}]
	}]
}`

const rosterGroupedBody = `{
	"athletes": [
		{"position": "Offense", "items": [
			{"id": "4567048", "firstName": "TreVeyon", "lastName": "Henderson", "fullName": "TreVeyon Henderson", "jersey": "32", "height": 70, "weight": 208, "position": {"abbreviation": "RB"}, "hometown": {"city": "Hopewell", "state": "VA"}}
		]},
		{"id": "4832310", "fullName": "Caleb Downs", "position": {"abbreviation": "S"}}
	]
}`

func newTestClient(t *testing.T, routes map[string]string) (*Client, *testutil.FakeUpstream) {
	t.Helper()
	upstream := testutil.NewFakeUpstream(routes)
	t.Cleanup(upstream.Close)

	client := NewClient(config.ESPNConfig{BaseURL: upstream.URL()}, nil, nil, nil)
	return client, upstream
}

func TestFetchTeamsFlattensNestedListing(t *testing.T) {
	client, upstream := newTestClient(t, map[string]string{"/teams": teamListBody})

	list, err := client.FetchTeams(context.Background(), 2023)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 teams from the nested listing, got %d", len(list))
	}
	if list[0].DisplayName != "Ohio State Buckeyes" || list[0].PrimaryColor != "#bb0000" {
		t.Fatalf("unexpected first team %+v", list[0])
	}

	reqs := upstream.Requests()
	if got := reqs[0].URL.Query().Get("limit"); got != teamListLimit {
		t.Fatalf("expected full-list limit %s, got %q", teamListLimit, got)
	}
}

func TestFetchRosterResolvesTeamID(t *testing.T) {
	client, upstream := newTestClient(t, map[string]string{
		"/teams":            teamListBody,
		"/teams/194/roster": rosterGroupedBody,
	})

	roster, err := client.FetchRoster(context.Background(), "Ohio State Buckeyes", 2023)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roster) != 2 {
		t.Fatalf("expected grouped and flat athletes, got %d", len(roster))
	}
	if roster[0].FullName != "TreVeyon Henderson" || roster[0].Team != "Ohio State Buckeyes" {
		t.Fatalf("unexpected first player %+v", roster[0])
	}
	if roster[0].JerseyNumber == nil || *roster[0].JerseyNumber != 32 {
		t.Fatalf("expected numeric-string jersey coerced, got %v", roster[0].JerseyNumber)
	}
	if roster[1].FullName != "Caleb Downs" {
		t.Fatalf("unexpected second player %+v", roster[1])
	}

	reqs := upstream.Requests()
	if len(reqs) != 2 {
		t.Fatalf("expected listing then roster call, got %d", len(reqs))
	}
	if got := reqs[1].URL.Query().Get("season"); got != "2023" {
		t.Fatalf("unexpected season param %q", got)
	}
}

func TestFetchRosterUnknownTeam(t *testing.T) {
	client, _ := newTestClient(t, map[string]string{"/teams": teamListBody})

	_, err := client.FetchRoster(context.Background(), "Nowhere State", 2023)

	nf, ok := providers.AsNotFoundError(err)
	if !ok {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if nf.Provider != providerName || nf.Name != "Nowhere State" {
		t.Fatalf("unexpected not-found error %+v", nf)
	}
}

func TestFetchTeamsUpstreamFailure(t *testing.T) {
	client, _ := newTestClient(t, map[string]string{})

	_, err := client.FetchTeams(context.Background(), 2023)

	ue, ok := providers.AsUpstreamError(err)
	if !ok {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if ue.StatusCode != http.StatusNotFound {
		t.Fatalf("unexpected status %d", ue.StatusCode)
	}
}
