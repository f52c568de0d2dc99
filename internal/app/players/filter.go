package players

import (
	"strings"

	domainplayers "cfb-scout-service/internal/domain/players"
)

// Filter holds the search predicates applied after normalization. Neither
// upstream supports free-text name search, so filtering always happens here.
type Filter struct {
	Name     string
	Position string
}

// Matches applies the name and position predicates as independent ANDs. The
// name matches case-insensitively as a substring of the full, first, or last
// name; the position matches case-insensitively but exactly.
func (f Filter) Matches(p domainplayers.Player) bool {
	if name := strings.TrimSpace(f.Name); name != "" {
		needle := strings.ToLower(name)
		if !strings.Contains(strings.ToLower(p.FullName), needle) &&
			!strings.Contains(strings.ToLower(p.FirstName), needle) &&
			!strings.Contains(strings.ToLower(p.LastName), needle) {
			return false
		}
	}

	if position := strings.TrimSpace(f.Position); position != "" {
		if !strings.EqualFold(position, p.Position) {
			return false
		}
	}

	return true
}
