package handler

import (
	"encoding/json"
	"net/http"

	"github.com/scoretab/scoretab/internal/api/apierr"
	"github.com/scoretab/scoretab/internal/api/request"
	"github.com/scoretab/scoretab/internal/api/response"
	"github.com/scoretab/scoretab/internal/services/admin"
)

// AdminHandler handles admin secret endpoints
type AdminHandler struct {
	admin *admin.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *admin.Service) *AdminHandler {
	return &AdminHandler{
		admin: adminService,
	}
}

// Verify handles POST /api/v1/admin/verify
func (h *AdminHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req request.VerifySecretRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.admin.Verify(r.Context(), req.Code); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.VerifyResponse{Valid: true})
}

// ChangeCode handles POST /api/v1/admin/code
func (h *AdminHandler) ChangeCode(w http.ResponseWriter, r *http.Request) {
	var req request.ChangeSecretRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.admin.Change(r.Context(), req.OldCode, req.NewCode); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}
