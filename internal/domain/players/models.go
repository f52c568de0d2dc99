package players

import (
	"fmt"
	"strings"
)

// Sentinels for fields the upstream record did not supply.
const (
	PositionUnknown = "N/A"
	HeightUnknown   = "N/A"
)

// Neutral colors used when the team-color join finds no matching team or the
// team lookup itself fails.
const (
	FallbackPrimaryColor   = "#4A5568"
	FallbackSecondaryColor = "#A0AEC0"
)

// Player is the canonical player shape exposed by the service. Optional
// numerics are pointers so a malformed upstream field degrades to null
// without dropping the record. Team colors/logos are denormalized copies
// attached by the read-time join.
type Player struct {
	ID                 string  `json:"id"`
	FirstName          string  `json:"firstName"`
	LastName           string  `json:"lastName"`
	FullName           string  `json:"fullName"`
	Position           string  `json:"position"`
	JerseyNumber       *int    `json:"jerseyNumber,omitempty"`
	HeightInches       *int    `json:"heightInches,omitempty"`
	WeightPounds       *int    `json:"weightPounds,omitempty"`
	Hometown           *string `json:"hometown"`
	Team               string  `json:"team"`
	TeamPrimaryColor   string  `json:"teamPrimaryColor"`
	TeamSecondaryColor string  `json:"teamSecondaryColor"`
	TeamLogoURL        string  `json:"teamLogoUrl"`
	TeamDarkLogoURL    string  `json:"teamDarkLogoUrl"`
}

// DisplayHeight renders height as feet'inches" (74 -> 6'2"). Missing or
// non-positive heights render the sentinel instead of crashing.
func (p Player) DisplayHeight() string {
	if p.HeightInches == nil || *p.HeightInches <= 0 {
		return HeightUnknown
	}
	return fmt.Sprintf("%d'%d\"", *p.HeightInches/12, *p.HeightInches%12)
}

// JoinName builds a full name from first/last, trimming stray whitespace.
func JoinName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

// SplitName best-effort splits a combined name on the first space. A
// single-token name is treated as a last name.
func SplitName(full string) (first, last string) {
	full = strings.TrimSpace(full)
	if full == "" {
		return "", ""
	}
	if idx := strings.IndexByte(full, ' '); idx >= 0 {
		return full[:idx], strings.TrimSpace(full[idx+1:])
	}
	return "", full
}

// ComposeHometown builds the hometown display string. Precedence:
// "City, State" when both are present, then whichever half exists, then the
// free-text description, then nil.
func ComposeHometown(city, state, description string) *string {
	city = strings.TrimSpace(city)
	state = strings.TrimSpace(state)
	description = strings.TrimSpace(description)

	switch {
	case city != "" && state != "":
		s := city + ", " + state
		return &s
	case city != "":
		return &city
	case state != "":
		return &state
	case description != "":
		return &description
	}
	return nil
}
