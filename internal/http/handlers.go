package http

import (
	"context"
	"encoding/json"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"

	playersapp "cfb-scout-service/internal/app/players"
	"cfb-scout-service/internal/app/scout"
	"cfb-scout-service/internal/config"
	domainplayers "cfb-scout-service/internal/domain/players"
	domainteams "cfb-scout-service/internal/domain/teams"
	"cfb-scout-service/internal/providers"
)

// TeamsService is the slice of the teams app service the handlers need.
type TeamsService interface {
	SelectableTeams(ctx context.Context, tag providers.Tag, year int) ([]domainteams.Team, error)
	TeamByName(ctx context.Context, tag providers.Tag, name string, year int) (domainteams.Team, error)
}

// PlayersService is the slice of the players app service the handlers need.
type PlayersService interface {
	Roster(ctx context.Context, tag providers.Tag, q playersapp.Query) ([]domainplayers.Player, error)
}

// ScoutService is the slice of the scout app service the handlers need.
type ScoutService interface {
	Generate(ctx context.Context, req scout.Request) (string, error)
}

type nowFunc func() time.Time

// Handler wires HTTP routes to the app services.
type Handler struct {
	teams      TeamsService
	players    PlayersService
	scout      ScoutService
	rnd        *render.Render
	logger     *slog.Logger
	defaultTag providers.Tag
	now        nowFunc
}

// NewHandler constructs a Handler with defaults.
func NewHandler(teams TeamsService, players PlayersService, scoutSvc ScoutService, defaultTag providers.Tag, logger *slog.Logger) *Handler {
	return &Handler{
		teams:      teams,
		players:    players,
		scout:      scoutSvc,
		rnd:        render.New(),
		logger:     logger,
		defaultTag: defaultTag,
		now:        time.Now,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports readiness to serve traffic.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"})
}

// ListTeams returns the selectable teams for a season: FBS then FCS,
// alphabetical within each group.
func (h *Handler) ListTeams(w nethttp.ResponseWriter, r *nethttp.Request) {
	tag, ok := h.sourceTag(w, r)
	if !ok {
		return
	}
	year, ok := h.year(w, r)
	if !ok {
		return
	}

	list, err := h.teams.SelectableTeams(r.Context(), tag, year)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, nethttp.StatusOK, TeamsResponse{
		Year:   year,
		Source: string(tag),
		Teams:  list,
	})
}

// TeamByName returns a single team matched by exact displayName.
func (h *Handler) TeamByName(w nethttp.ResponseWriter, r *nethttp.Request) {
	name := chi.URLParam(r, "name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	if strings.TrimSpace(name) == "" {
		h.writeError(w, nethttp.StatusBadRequest, "missing team name")
		return
	}

	tag, ok := h.sourceTag(w, r)
	if !ok {
		return
	}
	year, ok := h.year(w, r)
	if !ok {
		return
	}

	team, err := h.teams.TeamByName(r.Context(), tag, name, year)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, nethttp.StatusOK, team)
}

// Roster returns a team's normalized roster with the team-color join applied
// and optional search/position filters.
func (h *Handler) Roster(w nethttp.ResponseWriter, r *nethttp.Request) {
	team := strings.TrimSpace(r.URL.Query().Get("team"))
	if team == "" {
		h.writeError(w, nethttp.StatusBadRequest, "missing team parameter")
		return
	}

	tag, ok := h.sourceTag(w, r)
	if !ok {
		return
	}
	year, ok := h.year(w, r)
	if !ok {
		return
	}

	query := playersapp.Query{
		Team:     team,
		Year:     year,
		Search:   r.URL.Query().Get("search"),
		Position: r.URL.Query().Get("position"),
	}

	roster, err := h.players.Roster(r.Context(), tag, query)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, nethttp.StatusOK, RosterResponse{
		Team:    team,
		Year:    year,
		Source:  string(tag),
		Players: roster,
	})
}

// Narrative generates the AI scouting overview for a player.
func (h *Handler) Narrative(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req scout.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, nethttp.StatusBadRequest, "malformed request body")
		return
	}
	if strings.TrimSpace(req.Player.FullName) == "" &&
		strings.TrimSpace(req.Player.FirstName) == "" &&
		strings.TrimSpace(req.Player.LastName) == "" {
		h.writeError(w, nethttp.StatusBadRequest, "missing player name")
		return
	}

	narrative, err := h.scout.Generate(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, nethttp.StatusOK, NarrativeResponse{Narrative: narrative})
}

func (h *Handler) sourceTag(w nethttp.ResponseWriter, r *nethttp.Request) (providers.Tag, bool) {
	raw := r.URL.Query().Get("source")
	if raw == "" {
		return h.defaultTag, true
	}
	tag, ok := providers.ParseTag(raw)
	if !ok {
		h.writeError(w, nethttp.StatusBadRequest, "unknown source: "+raw)
		return "", false
	}
	return tag, true
}

func (h *Handler) year(w nethttp.ResponseWriter, r *nethttp.Request) (int, bool) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return h.now().Year(), true
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year <= 0 {
		h.writeError(w, nethttp.StatusBadRequest, "invalid year: "+raw)
		return 0, false
	}
	return year, true
}

// writeServiceError maps app-layer failures onto HTTP statuses: the upstream
// status travels through verbatim so "team has zero players" is never
// conflated with "upstream unavailable".
func (h *Handler) writeServiceError(w nethttp.ResponseWriter, err error) {
	if _, ok := config.AsMissingError(err); ok {
		h.writeError(w, nethttp.StatusInternalServerError, err.Error())
		return
	}
	if _, ok := providers.AsNotFoundError(err); ok {
		h.writeError(w, nethttp.StatusNotFound, err.Error())
		return
	}
	if ue, ok := providers.AsUpstreamError(err); ok {
		status := nethttp.StatusBadGateway
		if ue.StatusCode >= 400 && ue.StatusCode < 600 {
			status = ue.StatusCode
		}
		h.writeError(w, status, ue.Error())
		return
	}
	h.writeError(w, nethttp.StatusInternalServerError, "internal error")
}

func (h *Handler) writeJSON(w nethttp.ResponseWriter, status int, payload any) {
	if err := h.rnd.JSON(w, status, payload); err != nil && h.logger != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w nethttp.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
