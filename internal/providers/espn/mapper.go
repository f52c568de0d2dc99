package espn

import (
	"strings"

	"cfb-scout-service/internal/domain/players"
	"cfb-scout-service/internal/domain/teams"
)

func mapTeam(rec teamRecord) teams.Team {
	conference := strings.TrimSpace(rec.Conference.Name)
	if conference == "" {
		conference = teams.IndependentConference
	}

	logo, darkLogo := pickLogos(rec.Logos)

	return teams.Team{
		ID:             rec.ID.String(),
		DisplayName:    strings.TrimSpace(rec.DisplayName),
		Mascot:         strings.TrimSpace(rec.Nickname),
		Conference:     conference,
		Classification: mapClassification(rec.Type),
		// ESPN ships bare hex without the # prefix.
		PrimaryColor:   teams.NormalizeColor(rec.Color, teams.DefaultPrimaryColor),
		SecondaryColor: teams.NormalizeColor(rec.AlternateColor, teams.DefaultSecondaryColor),
		LogoURL:        logo,
		DarkLogoURL:    darkLogo,
	}
}

// mapClassification compares the type field by exact match; lowercase or
// unknown tiers land in the open "other" bucket.
func mapClassification(raw string) teams.Classification {
	switch raw {
	case "FBS":
		return teams.FBS
	case "FCS":
		return teams.FCS
	default:
		return teams.Other
	}
}

// pickLogos prefers a logo tagged "dark" for the dark variant, falling back
// dark -> primary -> empty.
func pickLogos(logos []logoRecord) (logo, darkLogo string) {
	for _, l := range logos {
		if logo == "" {
			logo = l.Href
		}
		for _, rel := range l.Rel {
			if rel == "dark" && darkLogo == "" {
				darkLogo = l.Href
			}
		}
	}
	if darkLogo == "" {
		darkLogo = logo
	}
	return logo, darkLogo
}

func mapPlayer(rec athleteRecord, team string) players.Player {
	first := strings.TrimSpace(rec.FirstName)
	last := strings.TrimSpace(rec.LastName)
	full := strings.TrimSpace(rec.FullName)

	if full == "" {
		full = players.JoinName(first, last)
	}
	if first == "" && last == "" {
		first, last = players.SplitName(full)
	}

	position := strings.TrimSpace(rec.Position.Abbreviation)
	if position == "" {
		position = strings.TrimSpace(rec.Position.DisplayName)
	}
	if position == "" {
		position = players.PositionUnknown
	}

	return players.Player{
		ID:           rec.ID.String(),
		FirstName:    first,
		LastName:     last,
		FullName:     full,
		Position:     position,
		JerseyNumber: rec.Jersey.Ptr(),
		HeightInches: rec.Height.Ptr(),
		WeightPounds: rec.Weight.Ptr(),
		Hometown:     players.ComposeHometown(rec.Hometown.City, rec.Hometown.State, rec.Hometown.Description),
		Team:         team,
	}
}
