package cfbd

import (
	"context"
	"net/http"
	"testing"

	"cfb-scout-service/internal/config"
	"cfb-scout-service/internal/providers"
	"cfb-scout-service/internal/testutil"
)

const teamsBody = `[
	{"id":194,"school":"Ohio State","mascot":"Buckeyes","conference":"Big Ten","classification":"fbs","color":"#bb0000","alt_color":"#666666","logos":["http://cdn/osu.png","http://cdn/osu-dark.png"]},
	{"id":61,"school":"Georgetown","mascot":"Hoyas","conference":"Patriot","classification":"fcs","color":"#041E42"},
	{"id":999,"school":"Mount Union","classification":"iii"}
]`

const rosterBody = `[
	{"id":"4361234","first_name":"Joe","last_name":"Burrow","team":"Ohio State","position":"QB","jersey":9,"height":76,"weight":216,"home_city":"The Plains","home_state":"OH"}
]`

func newTestClient(t *testing.T, routes map[string]string) (*Client, *testutil.FakeUpstream) {
	t.Helper()
	upstream := testutil.NewFakeUpstream(routes)
	t.Cleanup(upstream.Close)

	client := NewClient(config.CFBDConfig{
		BaseURL: upstream.URL(),
		APIKey:  "test-key",
	}, nil, nil, nil)
	return client, upstream
}

func TestFetchTeamsSendsBearerAndYear(t *testing.T) {
	client, upstream := newTestClient(t, map[string]string{"/teams": teamsBody})

	teams, err := client.FetchTeams(context.Background(), 2023)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(teams) != 3 {
		t.Fatalf("expected 3 normalized teams, got %d", len(teams))
	}

	reqs := upstream.Requests()
	if len(reqs) != 1 {
		t.Fatalf("expected 1 upstream call, got %d", len(reqs))
	}
	if got := reqs[0].Header.Get("Authorization"); got != "Bearer test-key" {
		t.Fatalf("unexpected auth header %q", got)
	}
	if got := reqs[0].URL.Query().Get("year"); got != "2023" {
		t.Fatalf("unexpected year param %q", got)
	}
}

func TestFetchRosterMapsRecords(t *testing.T) {
	client, upstream := newTestClient(t, map[string]string{"/roster": rosterBody})

	roster, err := client.FetchRoster(context.Background(), "Ohio State", 2019)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roster) != 1 || roster[0].FullName != "Joe Burrow" {
		t.Fatalf("unexpected roster %+v", roster)
	}

	reqs := upstream.Requests()
	if got := reqs[0].URL.Query().Get("team"); got != "Ohio State" {
		t.Fatalf("unexpected team param %q", got)
	}
}

func TestFetchRosterUpstream404(t *testing.T) {
	client, _ := newTestClient(t, map[string]string{})

	_, err := client.FetchRoster(context.Background(), "Nowhere State", 2023)

	ue, ok := providers.AsUpstreamError(err)
	if !ok {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if ue.StatusCode != http.StatusNotFound || ue.Provider != providerName {
		t.Fatalf("unexpected upstream error %+v", ue)
	}
}

func TestMissingAPIKeyIsConfigurationError(t *testing.T) {
	client := NewClient(config.CFBDConfig{BaseURL: "http://localhost:0"}, nil, nil, nil)

	_, err := client.FetchTeams(context.Background(), 2023)

	me, ok := config.AsMissingError(err)
	if !ok {
		t.Fatalf("expected missing-config error, got %v", err)
	}
	if me.Key != config.EnvCFBDAPIKey {
		t.Fatalf("unexpected key %q", me.Key)
	}
}
