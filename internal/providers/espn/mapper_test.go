package espn

import (
	"encoding/json"
	"testing"

	"cfb-scout-service/internal/domain/players"
	"cfb-scout-service/internal/domain/teams"
)

func decodeTeamRecord(t *testing.T, raw string) teamRecord {
	t.Helper()
	var rec teamRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		t.Fatalf("failed to decode record: %v", err)
	}
	return rec
}

func TestMapTeamPrefixesBareHexOnce(t *testing.T) {
	rec := decodeTeamRecord(t, `{
		"id": "194",
		"displayName": "Ohio State Buckeyes",
		"nickname": "Buckeyes",
		"type": "FBS",
		"conference": {"name": "Big Ten"},
		"color": "bb0000",
		"alternateColor": "#666666",
		"logos": [
			{"href": "http://cdn/osu.png", "rel": ["full", "default"]},
			{"href": "http://cdn/osu-dark.png", "rel": ["full", "dark"]}
		]
	}`)

	team := mapTeam(rec)

	if team.PrimaryColor != "#bb0000" {
		t.Fatalf("expected bare hex to gain a prefix, got %s", team.PrimaryColor)
	}
	if team.SecondaryColor != "#666666" {
		t.Fatalf("already-prefixed hex must keep a single prefix, got %s", team.SecondaryColor)
	}
	if team.LogoURL != "http://cdn/osu.png" || team.DarkLogoURL != "http://cdn/osu-dark.png" {
		t.Fatalf("unexpected logos %s/%s", team.LogoURL, team.DarkLogoURL)
	}
	if team.Classification != teams.FBS || team.Conference != "Big Ten" {
		t.Fatalf("unexpected team %+v", team)
	}
}

func TestMapTeamDefaults(t *testing.T) {
	team := mapTeam(decodeTeamRecord(t, `{"id": 2005, "displayName": "Army Black Knights", "type": "FBS"}`))

	if team.ID != "2005" {
		t.Fatalf("expected numeric id coerced to string, got %q", team.ID)
	}
	if team.Conference != teams.IndependentConference {
		t.Fatalf("expected Independent conference, got %s", team.Conference)
	}
	if team.PrimaryColor != teams.DefaultPrimaryColor || team.SecondaryColor != teams.DefaultSecondaryColor {
		t.Fatalf("expected fallback colors, got %s/%s", team.PrimaryColor, team.SecondaryColor)
	}
}

func TestMapClassificationExactMatch(t *testing.T) {
	cases := map[string]teams.Classification{
		"FBS": teams.FBS,
		"FCS": teams.FCS,
		"fbs": teams.Other,
		"Fcs": teams.Other,
		"":    teams.Other,
	}
	for input, expected := range cases {
		if got := mapClassification(input); got != expected {
			t.Fatalf("type %q expected %s, got %s", input, expected, got)
		}
	}
}

func TestPickLogosPrefersDarkRel(t *testing.T) {
	logo, dark := pickLogos([]logoRecord{
		{Href: "http://cdn/a.png", Rel: []string{"default"}},
		{Href: "http://cdn/b.png", Rel: []string{"dark"}},
	})
	if logo != "http://cdn/a.png" || dark != "http://cdn/b.png" {
		t.Fatalf("unexpected logos %s/%s", logo, dark)
	}

	logo, dark = pickLogos([]logoRecord{{Href: "http://cdn/only.png", Rel: []string{"default"}}})
	if dark != "http://cdn/only.png" {
		t.Fatalf("expected dark fallback to primary, got %s", dark)
	}
}

func TestMapPlayerSplitsFullNameWhenPartsMissing(t *testing.T) {
	rec := athleteRecord{FullName: "Marvin Harrison Jr."}

	p := mapPlayer(rec, "Ohio State Buckeyes")

	if p.FirstName != "Marvin" || p.LastName != "Harrison Jr." {
		t.Fatalf("unexpected name split %q/%q", p.FirstName, p.LastName)
	}
	if p.Team != "Ohio State Buckeyes" {
		t.Fatalf("unexpected team %q", p.Team)
	}
}

func TestMapPlayerComposesFullNameWhenMissing(t *testing.T) {
	p := mapPlayer(athleteRecord{FirstName: "Caleb", LastName: "Downs"}, "Ohio State Buckeyes")
	if p.FullName != "Caleb Downs" {
		t.Fatalf("unexpected full name %q", p.FullName)
	}
}

func TestMapPlayerPositionFallbacks(t *testing.T) {
	p := mapPlayer(athleteRecord{Position: positionRecord{Abbreviation: "QB", DisplayName: "Quarterback"}}, "X")
	if p.Position != "QB" {
		t.Fatalf("expected abbreviation preferred, got %s", p.Position)
	}

	p = mapPlayer(athleteRecord{Position: positionRecord{DisplayName: "Quarterback"}}, "X")
	if p.Position != "Quarterback" {
		t.Fatalf("expected display name fallback, got %s", p.Position)
	}

	p = mapPlayer(athleteRecord{}, "X")
	if p.Position != players.PositionUnknown {
		t.Fatalf("expected position sentinel, got %s", p.Position)
	}
}

func TestMapPlayerHometownDescriptionWins(t *testing.T) {
	p := mapPlayer(athleteRecord{Hometown: hometownRecord{City: "Tampa", State: "FL", Description: "Tampa, Fla."}}, "X")
	if p.Hometown == nil || *p.Hometown != "Tampa, Fla." {
		t.Fatalf("unexpected hometown %v", p.Hometown)
	}
}

func TestAthleteEnvelopeShapes(t *testing.T) {
	var grouped athleteEnvelope
	if err := json.Unmarshal([]byte(`{"position":"Offense","items":[{"id":"1","fullName":"A One"},{"id":"2","fullName":"B Two"}]}`), &grouped); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	if len(grouped.players) != 2 {
		t.Fatalf("expected 2 grouped athletes, got %d", len(grouped.players))
	}

	var flat athleteEnvelope
	if err := json.Unmarshal([]byte(`{"id":"3","fullName":"C Three"}`), &flat); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	if len(flat.players) != 1 || flat.players[0].FullName != "C Three" {
		t.Fatalf("unexpected flat athletes %+v", flat.players)
	}

	var junk athleteEnvelope
	if err := json.Unmarshal([]byte(`"not an object"`), &junk); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	if len(junk.players) != 0 {
		t.Fatalf("unrecognized shape should decode to nothing, got %+v", junk.players)
	}
}
