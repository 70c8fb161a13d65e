package handler

import (
	"net/http"

	"github.com/scoretab/scoretab/internal/api/apierr"
	"github.com/scoretab/scoretab/internal/api/response"
	"github.com/scoretab/scoretab/internal/services/ledger"
	"github.com/scoretab/scoretab/internal/services/standings"
)

// GameHandler handles derived-view and game control endpoints
type GameHandler struct {
	standings *standings.Service
	ledger    *ledger.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(standingsService *standings.Service, ledgerService *ledger.Service) *GameHandler {
	return &GameHandler{
		standings: standingsService,
		ledger:    ledgerService,
	}
}

// Standings handles GET /api/v1/standings
func (h *GameHandler) Standings(w http.ResponseWriter, r *http.Request) {
	rows, err := h.standings.Standings(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	out := make([]response.Standing, len(rows))
	for i, row := range rows {
		out[i] = response.StandingFromModel(row)
	}
	response.JSON(w, http.StatusOK, out)
}

// Statistics handles GET /api/v1/statistics
func (h *GameHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	rows, err := h.standings.Statistics(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	out := make([]response.PlayerStats, len(rows))
	for i, row := range rows {
		out[i] = response.PlayerStatsFromModel(row)
	}
	response.JSON(w, http.StatusOK, out)
}

// Reset handles POST /api/v1/game/reset
//
// Deletes every round in the active session. Clients gate this behind
// admin secret verification.
func (h *GameHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.ledger.Reset(r.Context()); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}
