package teams

import "strings"

// Classification is the competitive tier a program plays in.
type Classification string

const (
	FBS   Classification = "FBS"
	FCS   Classification = "FCS"
	Other Classification = "OTHER"
)

// Selectable reports whether teams of this tier appear in team pickers.
// Everything outside FBS/FCS is dropped silently.
func (c Classification) Selectable() bool {
	return c == FBS || c == FCS
}

// Fallbacks applied when an upstream record omits the field entirely.
const (
	DefaultPrimaryColor   = "#000000"
	DefaultSecondaryColor = "#FFFFFF"
	IndependentConference = "Independent"
)

// Team is the canonical team shape exposed by the service, independent of
// which upstream provider supplied the raw record.
type Team struct {
	ID             string         `json:"id"`
	DisplayName    string         `json:"displayName"`
	Mascot         string         `json:"mascot,omitempty"`
	Conference     string         `json:"conference"`
	Classification Classification `json:"classification"`
	PrimaryColor   string         `json:"primaryColor"`
	SecondaryColor string         `json:"secondaryColor"`
	LogoURL        string         `json:"logoUrl"`
	DarkLogoURL    string         `json:"darkLogoUrl"`
}

// NormalizeColor returns a #-prefixed hex color, substituting fallback when
// the raw value is absent. Already-prefixed values pass through unchanged so
// normalization is idempotent.
func NormalizeColor(raw, fallback string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	if strings.HasPrefix(raw, "#") {
		return raw
	}
	return "#" + raw
}
