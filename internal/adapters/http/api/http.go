// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/futebol/internal/domain/types"
	"github.com/okian/futebol/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	CatalogDependencies
	MatchDependencies
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler  *HealthHandler
	catalogHandler *CatalogHandler
	playerHandler  *PlayerHandler
	matchHandler   *MatchHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		catalogHandler: NewCatalogHandler(deps),
		playerHandler:  NewPlayerHandler(deps),
		matchHandler:   NewMatchHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	handle := func(pattern, endpoint string, h http.HandlerFunc) {
		mux.Handle(pattern, RequestIDMiddleware(MetricsMiddleware(h, endpoint)))
	}

	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /metrics", s.healthHandler.HandleMetrics)

	handle("GET /competicoes", "competicoes", s.catalogHandler.HandleCompetitions)
	handle("GET /temporadas/{competitionId}", "temporadas", s.catalogHandler.HandleSeasons)
	handle("GET /times/{competitionId}/{seasonId}", "times", s.catalogHandler.HandleTeams)
	handle("GET /partidas/{competitionId}/{seasonId}/{home}/{away}", "partidas", s.catalogHandler.HandleMatches)
	handle("GET /perfil_jogador/{matchId}/{player}", "perfil_jogador", s.playerHandler.HandleProfile)
	handle("GET /comparar_jogadores/{matchId}/{player1}/{player2}", "comparar_jogadores", s.playerHandler.HandleCompare)
	handle("GET /resumo_partida/{matchId}", "resumo_partida", s.matchHandler.HandleSummary)
	handle("GET /linha_tempo/{matchId}", "linha_tempo", s.matchHandler.HandleTimeline)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type healthResponse struct {
	Status string `json:"status"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError maps the error taxonomy to a status and code.
func writeDomainError(ctx context.Context, w http.ResponseWriter, op string, err error) {
	kind := types.KindOf(err)
	switch {
	case errors.Is(kind, types.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(kind, types.ErrValidation):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	case errors.Is(kind, types.ErrUnavailable):
		logger.Get().Named("api").Warn(ctx, "upstream unavailable", logger.String("op", op), logger.Error(err))
		writeError(w, http.StatusBadGateway, "unavailable", err)
	default:
		logger.Get().Named("api").Error(ctx, "request failed", logger.String("op", op), logger.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
