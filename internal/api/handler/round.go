package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/scoretab/scoretab/internal/api/apierr"
	"github.com/scoretab/scoretab/internal/api/request"
	"github.com/scoretab/scoretab/internal/api/response"
	"github.com/scoretab/scoretab/internal/model"
	"github.com/scoretab/scoretab/internal/services/ledger"
)

// RoundHandler handles round-related endpoints
type RoundHandler struct {
	ledger *ledger.Service
}

// NewRoundHandler creates a new round handler
func NewRoundHandler(ledgerService *ledger.Service) *RoundHandler {
	return &RoundHandler{
		ledger: ledgerService,
	}
}

// List handles GET /api/v1/rounds
func (h *RoundHandler) List(w http.ResponseWriter, r *http.Request) {
	rounds, err := h.ledger.List(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoundsFromModels(rounds))
}

// Commit handles POST /api/v1/rounds
func (h *RoundHandler) Commit(w http.ResponseWriter, r *http.Request) {
	var req request.CommitRoundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.RecorderID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("recorder_id is required"))
		return
	}

	scores := make([]model.ScoreEntry, len(req.Scores))
	for i, s := range req.Scores {
		scores[i] = model.ScoreEntry{
			PlayerID: model.PlayerID(s.PlayerID),
			Delta:    s.Delta,
		}
	}

	round, err := h.ledger.Commit(r.Context(), scores, model.PlayerID(req.RecorderID))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.RoundFromModel(round))
}

// Delete handles DELETE /api/v1/rounds/{id}
func (h *RoundHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.RoundID(mux.Vars(r)["id"])

	if err := h.ledger.Delete(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}
