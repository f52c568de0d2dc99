package providers

import (
	"context"
	"strings"

	"cfb-scout-service/internal/domain/players"
	"cfb-scout-service/internal/domain/teams"
)

// Tag identifies which upstream provider a payload came from. Provider
// identity is always carried explicitly; it is never inferred from the JSON
// shape, because the two schemas can coincidentally overlap.
type Tag string

const (
	TagCFBD Tag = "cfbd"
	TagESPN Tag = "espn"
)

// ParseTag resolves a user-supplied provider name to a known tag.
func ParseTag(raw string) (Tag, bool) {
	switch Tag(strings.ToLower(strings.TrimSpace(raw))) {
	case TagCFBD:
		return TagCFBD, true
	case TagESPN:
		return TagESPN, true
	}
	return "", false
}

// TeamSource fetches and normalizes team listings for a season.
type TeamSource interface {
	FetchTeams(ctx context.Context, year int) ([]teams.Team, error)
}

// RosterSource fetches and normalizes a team's roster for a season. The team
// argument is the canonical displayName; sources that key rosters by numeric
// id resolve the name themselves.
type RosterSource interface {
	FetchRoster(ctx context.Context, team string, year int) ([]players.Player, error)
}

// Source combines all capabilities of one upstream provider.
type Source interface {
	TeamSource
	RosterSource
}

// Registry maps provider tags to their normalizing sources so handlers never
// duplicate field-mapping logic per endpoint.
type Registry struct {
	sources map[Tag]Source
}

func NewRegistry() *Registry {
	return &Registry{sources: make(map[Tag]Source)}
}

// Register binds a source to its tag, replacing any previous binding.
func (r *Registry) Register(tag Tag, src Source) {
	r.sources[tag] = src
}

// Source returns the source registered for tag.
func (r *Registry) Source(tag Tag) (Source, bool) {
	src, ok := r.sources[tag]
	return src, ok
}

// Tags lists the registered provider tags.
func (r *Registry) Tags() []Tag {
	out := make([]Tag, 0, len(r.sources))
	for tag := range r.sources {
		out = append(out, tag)
	}
	return out
}
