package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/scoretab/scoretab/internal/api/apierr"
	"github.com/scoretab/scoretab/internal/api/request"
	"github.com/scoretab/scoretab/internal/api/response"
	"github.com/scoretab/scoretab/internal/avatar"
	"github.com/scoretab/scoretab/internal/model"
	"github.com/scoretab/scoretab/internal/services/roster"
)

// PlayerHandler handles player-related endpoints
type PlayerHandler struct {
	roster  *roster.Service
	avatars *avatar.Store
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(rosterService *roster.Service, avatars *avatar.Store) *PlayerHandler {
	return &PlayerHandler{
		roster:  rosterService,
		avatars: avatars,
	}
}

// List handles GET /api/v1/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.roster.List(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	out := make([]response.Player, len(players))
	for i, p := range players {
		out[i] = response.PlayerFromModel(p)
	}
	response.JSON(w, http.StatusOK, out)
}

// Create handles POST /api/v1/players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.roster.Create(r.Context(), req.Name, req.Color)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}

// Get handles GET /api/v1/players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	player, err := h.roster.Get(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Update handles PATCH /api/v1/players/{id}
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	var req request.UpdatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.roster.Update(r.Context(), id, roster.Update{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Locked handles GET /api/v1/players/{id}/locked
//
// Clients query this before a delete so that a locked player's removal
// can be deferred behind the admin secret challenge.
func (h *PlayerHandler) Locked(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	if _, err := h.roster.Get(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	locked, err := h.roster.IsLocked(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LockedResponse{Locked: locked})
}

// Delete handles DELETE /api/v1/players/{id}
//
// Deleting a player with recorder history in the active session requires
// force=true, which clients send only after the admin secret has been verified.
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])
	force := r.URL.Query().Get("force") == "true"

	if err := h.roster.Delete(r.Context(), id, force); err != nil {
		apierr.WriteError(w, err)
		return
	}

	h.avatars.Remove(id)
	response.NoContent(w)
}

// UploadAvatar handles POST /api/v1/players/{id}/avatar
func (h *PlayerHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	if _, err := h.roster.Get(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("file field is required"))
		return
	}
	defer file.Close()

	path, err := h.avatars.Save(id, header.Filename, file)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	if _, err := h.roster.Update(r.Context(), id, roster.Update{AvatarPath: &path}); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AvatarResponse{AvatarPath: path})
}
