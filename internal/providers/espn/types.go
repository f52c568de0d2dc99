package espn

import (
	"encoding/json"

	"cfb-scout-service/internal/providers"
)

// Raw shapes returned by the ESPN site API. Team listings arrive nested under
// sports[0].leagues[0].teams[], rosters under athletes[].

type teamListResponse struct {
	Sports []sportEntry `json:"sports"`
}

type sportEntry struct {
	Leagues []leagueEntry `json:"leagues"`
}

type leagueEntry struct {
	Teams []teamEntry `json:"teams"`
}

type teamEntry struct {
	Team teamRecord `json:"team"`
}

type teamRecord struct {
	ID             providers.FlexString `json:"id"`
	DisplayName    string               `json:"displayName"`
	Nickname       string               `json:"nickname"`
	Type           string               `json:"type"`
	Conference     conferenceRecord     `json:"conference"`
	Color          string               `json:"color"`
	AlternateColor string               `json:"alternateColor"`
	Logos          []logoRecord         `json:"logos"`
}

type conferenceRecord struct {
	Name string `json:"name"`
}

type logoRecord struct {
	Href string   `json:"href"`
	Rel  []string `json:"rel"`
}

type rosterResponse struct {
	Athletes []athleteEnvelope `json:"athletes"`
}

// athleteEnvelope accepts both roster shapes: position groups carrying
// items[], and flat athlete entries. Entries that match neither shape decode
// to nothing instead of failing the batch.
type athleteEnvelope struct {
	players []athleteRecord
}

func (e *athleteEnvelope) UnmarshalJSON(data []byte) error {
	e.players = nil

	var group struct {
		Items []athleteRecord `json:"items"`
	}
	if err := json.Unmarshal(data, &group); err == nil && len(group.Items) > 0 {
		e.players = group.Items
		return nil
	}

	var one athleteRecord
	if err := json.Unmarshal(data, &one); err == nil {
		e.players = []athleteRecord{one}
	}
	return nil
}

type athleteRecord struct {
	ID        providers.FlexString `json:"id"`
	FirstName string               `json:"firstName"`
	LastName  string               `json:"lastName"`
	FullName  string               `json:"fullName"`
	Jersey    providers.FlexInt    `json:"jersey"`
	Height    providers.FlexInt    `json:"height"`
	Weight    providers.FlexInt    `json:"weight"`
	Position  positionRecord       `json:"position"`
	Hometown  hometownRecord       `json:"hometown"`
}

type positionRecord struct {
	Abbreviation string `json:"abbreviation"`
	DisplayName  string `json:"displayName"`
}

type hometownRecord struct {
	City        string `json:"city"`
	State       string `json:"state"`
	Description string `json:"description"`
}
