package cfbd

import (
	"strconv"
	"strings"

	"cfb-scout-service/internal/domain/players"
	"cfb-scout-service/internal/domain/teams"
)

func mapTeam(rec teamRecord) teams.Team {
	conference := strings.TrimSpace(rec.Conference)
	if conference == "" {
		conference = teams.IndependentConference
	}

	var id string
	if rec.ID != 0 {
		id = strconv.Itoa(rec.ID)
	}

	logo, darkLogo := pickLogos(rec.Logos)

	return teams.Team{
		ID:             id,
		DisplayName:    strings.TrimSpace(rec.School),
		Mascot:         strings.TrimSpace(rec.Mascot),
		Conference:     conference,
		Classification: mapClassification(rec.Classification),
		PrimaryColor:   teams.NormalizeColor(rec.Color, teams.DefaultPrimaryColor),
		SecondaryColor: teams.NormalizeColor(rec.AltColor, teams.DefaultSecondaryColor),
		LogoURL:        logo,
		DarkLogoURL:    darkLogo,
	}
}

// mapClassification compares case-insensitively; anything outside fbs/fcs is
// an open "other" bucket, never an error.
func mapClassification(raw string) teams.Classification {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "fbs":
		return teams.FBS
	case "fcs":
		return teams.FCS
	default:
		return teams.Other
	}
}

// pickLogos treats the first logo as the light variant and the second as the
// dark variant, falling back dark -> light -> empty.
func pickLogos(logos []string) (logo, darkLogo string) {
	if len(logos) > 0 {
		logo = logos[0]
	}
	if len(logos) > 1 {
		darkLogo = logos[1]
	} else {
		darkLogo = logo
	}
	return logo, darkLogo
}

func mapPlayer(rec rosterRecord) players.Player {
	first := strings.TrimSpace(rec.FirstName)
	last := strings.TrimSpace(rec.LastName)

	position := strings.TrimSpace(rec.Position)
	if position == "" {
		position = players.PositionUnknown
	}

	return players.Player{
		ID:           rec.ID.String(),
		FirstName:    first,
		LastName:     last,
		FullName:     players.JoinName(first, last),
		Position:     position,
		JerseyNumber: rec.Jersey.Ptr(),
		HeightInches: rec.Height.Ptr(),
		WeightPounds: rec.Weight.Ptr(),
		Hometown:     players.ComposeHometown(rec.HomeCity, rec.HomeState, ""),
		Team:         strings.TrimSpace(rec.Team),
	}
}
