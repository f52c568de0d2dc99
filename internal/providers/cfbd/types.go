package cfbd

import "cfb-scout-service/internal/providers"

// Raw shapes returned by the CollegeFootballData API: flat arrays of
// snake_case records.

type teamRecord struct {
	ID             int      `json:"id"`
	School         string   `json:"school"`
	Mascot         string   `json:"mascot"`
	Conference     string   `json:"conference"`
	Classification string   `json:"classification"`
	Color          string   `json:"color"`
	AltColor       string   `json:"alt_color"`
	Logos          []string `json:"logos"`
}

type rosterRecord struct {
	ID        providers.FlexString `json:"id"`
	FirstName string               `json:"first_name"`
	LastName  string               `json:"last_name"`
	Team      string               `json:"team"`
	Position  string               `json:"position"`
	Jersey    providers.FlexInt    `json:"jersey"`
	Height    providers.FlexInt    `json:"height"`
	Weight    providers.FlexInt    `json:"weight"`
	HomeCity  string               `json:"home_city"`
	HomeState string               `json:"home_state"`
}
