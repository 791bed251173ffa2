package api

import (
	"net/http"
)

// PlayerHandler handles per-player statistics requests.
type PlayerHandler struct {
	deps MatchDependencies
}

// NewPlayerHandler creates a new player handler.
func NewPlayerHandler(deps MatchDependencies) *PlayerHandler {
	return &PlayerHandler{deps: deps}
}

// HandleProfile handles GET /perfil_jogador/{matchId}/{player} requests.
func (h *PlayerHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	const op = "api.player_profile"
	matchID, err := pathInt(r, "matchId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	player, err := pathString(r, "player")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	profile, err := h.deps.PlayerProfile(r.Context(), matchID, player)
	if err != nil {
		writeDomainError(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// HandleCompare handles GET /comparar_jogadores/{matchId}/{player1}/{player2} requests.
func (h *PlayerHandler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	const op = "api.compare_players"
	matchID, err := pathInt(r, "matchId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	p1, err := pathString(r, "player1")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	p2, err := pathString(r, "player2")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	cmp, err := h.deps.ComparePlayers(r.Context(), matchID, p1, p2)
	if err != nil {
		writeDomainError(r.Context(), w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, cmp)
}
