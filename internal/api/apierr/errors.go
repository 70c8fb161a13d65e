package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/scoretab/scoretab/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodePlayerNotFound    = "PLAYER_NOT_FOUND"
	CodeNameEmpty         = "NAME_EMPTY"
	CodeNameTaken         = "NAME_TAKEN"
	CodePlayerLocked      = "PLAYER_LOCKED"
	CodeRoundNotFound     = "ROUND_NOT_FOUND"
	CodeRoundNotZero      = "ROUND_NOT_ZERO"
	CodeRoundEmpty        = "ROUND_EMPTY"
	CodeSessionNotFound   = "SESSION_NOT_FOUND"
	CodeSessionActive     = "SESSION_ACTIVE"
	CodeNoActiveSession   = "NO_ACTIVE_SESSION"
	CodeInvalidSecret     = "INVALID_SECRET"
	CodeSecretEmpty       = "SECRET_EMPTY"
	CodeAvatarTooLarge    = "AVATAR_TOO_LARGE"
	CodeAvatarUnsupported = "AVATAR_UNSUPPORTED"
	CodeInternalError     = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrPlayerNameEmpty):
		return &httpError{http.StatusBadRequest, APIError{CodeNameEmpty, "Player name must not be empty"}}
	case errors.Is(err, model.ErrPlayerNameTaken):
		return &httpError{http.StatusConflict, APIError{CodeNameTaken, "Player name already exists"}}
	case errors.Is(err, model.ErrPlayerLocked):
		return &httpError{http.StatusConflict, APIError{CodePlayerLocked, "Player has recorder history; authorization required"}}
	case errors.Is(err, model.ErrRoundNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeRoundNotFound, "Round not found"}}
	case errors.Is(err, model.ErrRoundNotZero):
		return &httpError{http.StatusBadRequest, APIError{CodeRoundNotZero, "Round deltas must sum to zero"}}
	case errors.Is(err, model.ErrRoundEmpty):
		return &httpError{http.StatusBadRequest, APIError{CodeRoundEmpty, "Round must contain at least one score"}}
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Session not found"}}
	case errors.Is(err, model.ErrSessionNameEmpty):
		return &httpError{http.StatusBadRequest, APIError{CodeNameEmpty, "Session name must not be empty"}}
	case errors.Is(err, model.ErrSessionActive):
		return &httpError{http.StatusConflict, APIError{CodeSessionActive, "The active session cannot be deleted"}}
	case errors.Is(err, model.ErrNoActiveSession):
		return &httpError{http.StatusConflict, APIError{CodeNoActiveSession, "No session is active"}}
	case errors.Is(err, model.ErrInvalidSecret):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidSecret, "Invalid admin secret"}}
	case errors.Is(err, model.ErrSecretEmpty):
		return &httpError{http.StatusBadRequest, APIError{CodeSecretEmpty, "Admin secret must not be empty"}}
	case errors.Is(err, model.ErrAvatarTooLarge):
		return &httpError{http.StatusRequestEntityTooLarge, APIError{CodeAvatarTooLarge, "Avatar file too large"}}
	case errors.Is(err, model.ErrAvatarUnsupported):
		return &httpError{http.StatusBadRequest, APIError{CodeAvatarUnsupported, "Unsupported avatar file type"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
