package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/okian/futebol/internal/domain/model"
	"github.com/okian/futebol/internal/domain/types"
)

// MatchDependencies defines the interface for event-log based operations.
type MatchDependencies interface {
	PlayerProfile(ctx context.Context, matchID int, player string) (model.PlayerStatistics, error)
	ComparePlayers(ctx context.Context, matchID int, player1, player2 string) (model.PlayerComparison, error)
	MatchSummary(ctx context.Context, matchID int, style types.Style) (model.MatchSummary, error)
	Timeline(ctx context.Context, matchID int, eventTypes []string, from, to int) ([]model.TimelineEntry, error)
}

// MatchHandler handles match summary and timeline requests.
type MatchHandler struct {
	deps MatchDependencies
}

// NewMatchHandler creates a new match handler.
func NewMatchHandler(deps MatchDependencies) *MatchHandler {
	return &MatchHandler{deps: deps}
}

// HandleSummary handles GET /resumo_partida/{matchId}?estilo= requests.
// A missing estilo lets the service apply its default style.
func (h *MatchHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	const op = "api.match_summary"
	matchID, err := pathInt(r, "matchId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	var style types.Style
	if raw := strings.TrimSpace(r.URL.Query().Get("estilo")); raw != "" {
		if style, err = types.ParseStyle(raw); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
	}
	sum, err := h.deps.MatchSummary(r.Context(), matchID, style)
	if err != nil {
		writeDomainError(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

// HandleTimeline handles GET /linha_tempo/{matchId} requests with optional
// tipos_eventos, minuto_inicial and minuto_final query parameters.
func (h *MatchHandler) HandleTimeline(w http.ResponseWriter, r *http.Request) {
	const op = "api.timeline"
	matchID, err := pathInt(r, "matchId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	from, to, err := windowParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	entries, err := h.deps.Timeline(r.Context(), matchID, queryList(r, "tipos_eventos"), from, to)
	if err != nil {
		writeDomainError(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
