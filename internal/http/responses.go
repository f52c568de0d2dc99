package http

import (
	domainplayers "cfb-scout-service/internal/domain/players"
	domainteams "cfb-scout-service/internal/domain/teams"
)

// TeamsResponse is the payload returned by GET /teams.
type TeamsResponse struct {
	Year   int                `json:"year"`
	Source string             `json:"source"`
	Teams  []domainteams.Team `json:"teams"`
}

// RosterResponse is the payload returned by GET /roster.
type RosterResponse struct {
	Team    string                 `json:"team"`
	Year    int                    `json:"year"`
	Source  string                 `json:"source"`
	Players []domainplayers.Player `json:"players"`
}

// NarrativeResponse is the payload returned by POST /players/narrative.
type NarrativeResponse struct {
	Narrative string `json:"narrative"`
}
