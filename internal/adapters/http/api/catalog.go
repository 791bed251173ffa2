package api

import (
	"context"
	"net/http"

	"github.com/okian/futebol/internal/domain/model"
)

// CatalogDependencies defines the interface for competition and match listings.
type CatalogDependencies interface {
	Competitions(ctx context.Context) ([]model.Competition, error)
	Seasons(ctx context.Context, competitionID int) ([]int, error)
	Teams(ctx context.Context, competitionID, seasonID int) ([]string, error)
	Matches(ctx context.Context, competitionID, seasonID int, home, away string) ([]model.Match, error)
}

// CatalogHandler handles competition, season, team and match listings.
type CatalogHandler struct {
	deps CatalogDependencies
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(deps CatalogDependencies) *CatalogHandler {
	return &CatalogHandler{deps: deps}
}

// HandleCompetitions handles GET /competicoes requests.
func (h *CatalogHandler) HandleCompetitions(w http.ResponseWriter, r *http.Request) {
	const op = "api.competitions"
	comps, err := h.deps.Competitions(r.Context())
	if err != nil {
		writeDomainError(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, comps)
}

// HandleSeasons handles GET /temporadas/{competitionId} requests.
func (h *CatalogHandler) HandleSeasons(w http.ResponseWriter, r *http.Request) {
	const op = "api.seasons"
	competitionID, err := pathInt(r, "competitionId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	seasons, err := h.deps.Seasons(r.Context(), competitionID)
	if err != nil {
		writeDomainError(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, seasons)
}

// HandleTeams handles GET /times/{competitionId}/{seasonId} requests.
func (h *CatalogHandler) HandleTeams(w http.ResponseWriter, r *http.Request) {
	const op = "api.teams"
	competitionID, err := pathInt(r, "competitionId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	seasonID, err := pathInt(r, "seasonId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	teams, err := h.deps.Teams(r.Context(), competitionID, seasonID)
	if err != nil {
		writeDomainError(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, teams)
}

// HandleMatches handles GET /partidas/{competitionId}/{seasonId}/{home}/{away} requests.
func (h *CatalogHandler) HandleMatches(w http.ResponseWriter, r *http.Request) {
	const op = "api.matches"
	competitionID, err := pathInt(r, "competitionId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	seasonID, err := pathInt(r, "seasonId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	home, err := pathString(r, "home")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	away, err := pathString(r, "away")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	matches, err := h.deps.Matches(r.Context(), competitionID, seasonID, home, away)
	if err != nil {
		writeDomainError(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, matches)
}
