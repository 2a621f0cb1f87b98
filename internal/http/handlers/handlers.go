// Package handlers wires the JSON API consumed by the UI process to the
// aggregation client.
package handlers

import (
	"context"
	"errors"
	"log/slog"
	nethttp "net/http"
	"strconv"
	"strings"

	"sports-stats-service/internal/domain"
	"sports-stats-service/internal/providers"
	"sports-stats-service/internal/sports"
)

// StatsClient is the slice of the aggregation client the handlers need.
type StatsClient interface {
	ListTeams(ctx context.Context, sport string) ([]domain.Team, error)
	ResolveTeamID(ctx context.Context, name, sport string) (int, bool, error)
	TeamSeasonStats(ctx context.Context, teamID int, sport string, season int) (*domain.TeamSeasonStats, error)
	HeadToHead(ctx context.Context, teamA, teamB int, sport string) ([]domain.Game, error)
	GameStats(ctx context.Context, gameID int, sport string) ([]domain.PlayerGameStat, error)
	Quota() domain.Quota
}

// Handler maps HTTP requests onto the aggregation client.
type Handler struct {
	client StatsClient
	logger *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(client StatsClient, logger *slog.Logger) *Handler {
	return &Handler{client: client, logger: logger}
}

// Health reports service liveness.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Teams serves GET /teams?sport=.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	teams, err := h.client.ListTeams(r.Context(), r.URL.Query().Get("sport"))
	if err != nil {
		h.writeClientError(w, r, err, logger)
		return
	}
	if teams == nil {
		teams = []domain.Team{}
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{"teams": teams}, logger)
}

// ResolveTeam serves GET /teams/resolve?sport=&name=.
func (h *Handler) ResolveTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, r, nethttp.StatusBadRequest, "name is required", logger)
		return
	}

	id, ok, err := h.client.ResolveTeamID(r.Context(), name, r.URL.Query().Get("sport"))
	if err != nil {
		h.writeClientError(w, r, err, logger)
		return
	}
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "team not found", logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]int{"teamId": id}, logger)
}

// TeamSeasonStats serves GET /stats?sport=&team_id=&season=.
func (h *Handler) TeamSeasonStats(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	teamID, ok := intParam(r, "team_id")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "team_id is required", logger)
		return
	}
	season, ok := intParam(r, "season")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "season is required", logger)
		return
	}

	agg, err := h.client.TeamSeasonStats(r.Context(), teamID, r.URL.Query().Get("sport"), season)
	if err != nil {
		h.writeClientError(w, r, err, logger)
		return
	}
	if agg == nil {
		writeError(w, r, nethttp.StatusNotFound, "no stats available", logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, agg, logger)
}

// HeadToHead serves GET /h2h?sport=&team_a=&team_b=.
func (h *Handler) HeadToHead(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	teamA, okA := intParam(r, "team_a")
	teamB, okB := intParam(r, "team_b")
	if !okA || !okB {
		writeError(w, r, nethttp.StatusBadRequest, "team_a and team_b are required", logger)
		return
	}

	games, err := h.client.HeadToHead(r.Context(), teamA, teamB, r.URL.Query().Get("sport"))
	if err != nil {
		h.writeClientError(w, r, err, logger)
		return
	}
	if games == nil {
		games = []domain.Game{}
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{"games": games}, logger)
}

// GameStats serves GET /games/{id}/stats?sport=.
func (h *Handler) GameStats(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	gameID, ok := gameIDFromPath(r.URL.Path)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "not found", logger)
		return
	}

	lines, err := h.client.GameStats(r.Context(), gameID, r.URL.Query().Get("sport"))
	if err != nil {
		h.writeClientError(w, r, err, logger)
		return
	}
	if lines == nil {
		lines = []domain.PlayerGameStat{}
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{"stats": lines}, logger)
}

// Quota serves GET /quota with the last observed rate-limit snapshot.
func (h *Handler) Quota(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}
	writeJSON(w, nethttp.StatusOK, h.client.Quota(), loggerFromContext(r, h.logger))
}

func (h *Handler) writeClientError(w nethttp.ResponseWriter, r *nethttp.Request, err error, logger *slog.Logger) {
	switch {
	case errors.Is(err, sports.ErrUnknownSport):
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), logger)
	default:
		if rlErr, ok := providers.AsRateLimitError(err); ok {
			writeError(w, r, nethttp.StatusTooManyRequests, rlErr.Error(), logger)
			return
		}
		writeError(w, r, nethttp.StatusInternalServerError, "internal error", logger)
	}
}

func requireGet(w nethttp.ResponseWriter, r *nethttp.Request, logger *slog.Logger) bool {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", logger)
		return false
	}
	return true
}

func intParam(r *nethttp.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return val, true
}

// gameIDFromPath extracts the id from /games/{id}/stats.
func gameIDFromPath(path string) (int, bool) {
	trimmed := strings.TrimPrefix(path, "/games/")
	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 || parts[1] != "stats" {
		return 0, false
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	return id, true
}
