package http

import (
	nethttp "net/http"

	"sports-stats-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/teams", handler.Teams)
	mux.HandleFunc("/teams/resolve", handler.ResolveTeam)
	mux.HandleFunc("/stats", handler.TeamSeasonStats)
	mux.HandleFunc("/h2h", handler.HeadToHead)
	mux.HandleFunc("/games/", handler.GameStats)
	mux.HandleFunc("/quota", handler.Quota)
	return mux
}
