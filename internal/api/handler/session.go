package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/scoretab/scoretab/internal/api/apierr"
	"github.com/scoretab/scoretab/internal/api/request"
	"github.com/scoretab/scoretab/internal/api/response"
	"github.com/scoretab/scoretab/internal/model"
	"github.com/scoretab/scoretab/internal/services/session"
)

// SessionHandler handles session-related endpoints
type SessionHandler struct {
	sessions *session.Service
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *session.Service) *SessionHandler {
	return &SessionHandler{
		sessions: sessionService,
	}
}

// List handles GET /api/v1/sessions
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	infos, err := h.sessions.List(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	out := make([]response.Session, len(infos))
	for i, info := range infos {
		out[i] = response.SessionFromInfo(info)
	}
	response.JSON(w, http.StatusOK, out)
}

// Create handles POST /api/v1/sessions
//
// Creating a session does not make it active; clients load it explicitly.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	sess, err := h.sessions.Create(r.Context(), req.Name)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.Session{
		ID:        string(sess.ID),
		Name:      sess.Name,
		CreatedAt: sess.CreatedAt,
	})
}

// Active handles GET /api/v1/sessions/active
func (h *SessionHandler) Active(w http.ResponseWriter, r *http.Request) {
	info, err := h.sessions.Active(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	if info == nil {
		// No active session is a valid state; report it as a JSON null
		response.JSON(w, http.StatusOK, (*response.Session)(nil))
		return
	}

	out := response.SessionFromInfo(*info)
	response.JSON(w, http.StatusOK, &out)
}

// Load handles POST /api/v1/sessions/{id}/load
func (h *SessionHandler) Load(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	info, err := h.sessions.Load(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromInfo(*info))
}

// Rename handles PATCH /api/v1/sessions/{id}
func (h *SessionHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	var req request.RenameSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	sess, err := h.sessions.Rename(r.Context(), id, req.Name)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Session{
		ID:        string(sess.ID),
		Name:      sess.Name,
		CreatedAt: sess.CreatedAt,
	})
}

// Delete handles DELETE /api/v1/sessions/{id}
//
// The active session cannot be deleted; load another session first.
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	if err := h.sessions.Delete(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}
