package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/scoretab/scoretab/internal/api/request"
	"github.com/scoretab/scoretab/internal/api/response"
)

// APIError represents an error response from the API
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an API error
type ErrorResponse struct {
	Error APIError `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

// HasCode reports whether err is an APIError with the given code
func HasCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// Gateway is the client's view of the server API
type Gateway interface {
	ListPlayers(ctx context.Context) ([]response.Player, error)
	CreatePlayer(ctx context.Context, name, color string) (*response.Player, error)
	UpdatePlayer(ctx context.Context, id string, upd request.UpdatePlayerRequest) (*response.Player, error)
	DeletePlayer(ctx context.Context, id string, force bool) error
	PlayerLocked(ctx context.Context, id string) (bool, error)
	UploadAvatar(ctx context.Context, id, filename string, r io.Reader) (string, error)

	ListRounds(ctx context.Context) ([]response.Round, error)
	CommitRound(ctx context.Context, req request.CommitRoundRequest) (*response.Round, error)
	DeleteRound(ctx context.Context, id string) error

	Standings(ctx context.Context) ([]response.Standing, error)
	Statistics(ctx context.Context) ([]response.PlayerStats, error)
	ResetGame(ctx context.Context) error

	ListSessions(ctx context.Context) ([]response.Session, error)
	ActiveSession(ctx context.Context) (*response.Session, error)
	CreateSession(ctx context.Context, name string) (*response.Session, error)
	LoadSession(ctx context.Context, id string) (*response.Session, error)
	RenameSession(ctx context.Context, id, name string) (*response.Session, error)
	DeleteSession(ctx context.Context, id string) error

	VerifySecret(ctx context.Context, code string) error
	ChangeSecret(ctx context.Context, oldCode, newCode string) error

	Health(ctx context.Context) error
}

// HTTPGateway implements Gateway over the HTTP API
type HTTPGateway struct {
	baseURL    string
	httpClient *http.Client
}

var _ Gateway = (*HTTPGateway)(nil)

// NewHTTPGateway creates a gateway talking to the given server base URL
func NewHTTPGateway(baseURL string) *HTTPGateway {
	return &HTTPGateway{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// do performs an HTTP request against the API
func (g *HTTPGateway) do(ctx context.Context, method, path string, body, result any) error {
	url := g.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	// Check for error responses
	if resp.StatusCode >= 400 {
		var errResp ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error.Code != "" {
			return &APIError{Code: errResp.Error.Code, Message: errResp.Error.Message}
		}
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))
	}

	// Parse successful response
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}

// ListPlayers fetches all players
func (g *HTTPGateway) ListPlayers(ctx context.Context) ([]response.Player, error) {
	var players []response.Player
	if err := g.do(ctx, http.MethodGet, "/api/v1/players", nil, &players); err != nil {
		return nil, err
	}
	return players, nil
}

// CreatePlayer creates a player
func (g *HTTPGateway) CreatePlayer(ctx context.Context, name, color string) (*response.Player, error) {
	var player response.Player
	body := request.CreatePlayerRequest{Name: name, Color: color}
	if err := g.do(ctx, http.MethodPost, "/api/v1/players", body, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

// UpdatePlayer applies a partial update to a player
func (g *HTTPGateway) UpdatePlayer(ctx context.Context, id string, upd request.UpdatePlayerRequest) (*response.Player, error) {
	var player response.Player
	if err := g.do(ctx, http.MethodPatch, "/api/v1/players/"+id, upd, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

// DeletePlayer deletes a player; force bypasses the recorder lock
func (g *HTTPGateway) DeletePlayer(ctx context.Context, id string, force bool) error {
	path := "/api/v1/players/" + id
	if force {
		path += "?force=true"
	}
	return g.do(ctx, http.MethodDelete, path, nil, nil)
}

// PlayerLocked reports whether a player is delete-protected
func (g *HTTPGateway) PlayerLocked(ctx context.Context, id string) (bool, error) {
	var locked response.LockedResponse
	if err := g.do(ctx, http.MethodGet, "/api/v1/players/"+id+"/locked", nil, &locked); err != nil {
		return false, err
	}
	return locked.Locked, nil
}

// UploadAvatar uploads an avatar file and returns its public path
func (g *HTTPGateway) UploadAvatar(ctx context.Context, id, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(fw, r); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	url := g.baseURL + "/api/v1/players/" + id + "/avatar"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error.Code != "" {
			return "", &APIError{Code: errResp.Error.Code, Message: errResp.Error.Message}
		}
		return "", fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))
	}

	var avatarResp response.AvatarResponse
	if err := json.Unmarshal(respBody, &avatarResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	return avatarResp.AvatarPath, nil
}

// ListRounds fetches the active session's rounds, newest first
func (g *HTTPGateway) ListRounds(ctx context.Context) ([]response.Round, error) {
	var rounds []response.Round
	if err := g.do(ctx, http.MethodGet, "/api/v1/rounds", nil, &rounds); err != nil {
		return nil, err
	}
	return rounds, nil
}

// CommitRound commits a round to the active session
func (g *HTTPGateway) CommitRound(ctx context.Context, req request.CommitRoundRequest) (*response.Round, error) {
	var round response.Round
	if err := g.do(ctx, http.MethodPost, "/api/v1/rounds", req, &round); err != nil {
		return nil, err
	}
	return &round, nil
}

// DeleteRound deletes a single round
func (g *HTTPGateway) DeleteRound(ctx context.Context, id string) error {
	return g.do(ctx, http.MethodDelete, "/api/v1/rounds/"+id, nil, nil)
}

// Standings fetches the active session's standings
func (g *HTTPGateway) Standings(ctx context.Context) ([]response.Standing, error) {
	var standings []response.Standing
	if err := g.do(ctx, http.MethodGet, "/api/v1/standings", nil, &standings); err != nil {
		return nil, err
	}
	return standings, nil
}

// Statistics fetches the active session's per-player statistics
func (g *HTTPGateway) Statistics(ctx context.Context) ([]response.PlayerStats, error) {
	var stats []response.PlayerStats
	if err := g.do(ctx, http.MethodGet, "/api/v1/statistics", nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// ResetGame deletes every round in the active session
func (g *HTTPGateway) ResetGame(ctx context.Context) error {
	return g.do(ctx, http.MethodPost, "/api/v1/game/reset", nil, nil)
}

// ListSessions fetches all sessions
func (g *HTTPGateway) ListSessions(ctx context.Context) ([]response.Session, error) {
	var sessions []response.Session
	if err := g.do(ctx, http.MethodGet, "/api/v1/sessions", nil, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// ActiveSession fetches the active session, or nil if none is active
func (g *HTTPGateway) ActiveSession(ctx context.Context) (*response.Session, error) {
	var sess *response.Session
	if err := g.do(ctx, http.MethodGet, "/api/v1/sessions/active", nil, &sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// CreateSession creates a session without activating it
func (g *HTTPGateway) CreateSession(ctx context.Context, name string) (*response.Session, error) {
	var sess response.Session
	body := request.CreateSessionRequest{Name: name}
	if err := g.do(ctx, http.MethodPost, "/api/v1/sessions", body, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// LoadSession makes the given session active
func (g *HTTPGateway) LoadSession(ctx context.Context, id string) (*response.Session, error) {
	var sess response.Session
	if err := g.do(ctx, http.MethodPost, "/api/v1/sessions/"+id+"/load", nil, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// RenameSession renames a session
func (g *HTTPGateway) RenameSession(ctx context.Context, id, name string) (*response.Session, error) {
	var sess response.Session
	body := request.RenameSessionRequest{Name: name}
	if err := g.do(ctx, http.MethodPatch, "/api/v1/sessions/"+id, body, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// DeleteSession deletes a non-active session
func (g *HTTPGateway) DeleteSession(ctx context.Context, id string) error {
	return g.do(ctx, http.MethodDelete, "/api/v1/sessions/"+id, nil, nil)
}

// VerifySecret checks an admin secret against the server
func (g *HTTPGateway) VerifySecret(ctx context.Context, code string) error {
	body := request.VerifySecretRequest{Code: code}
	return g.do(ctx, http.MethodPost, "/api/v1/admin/verify", body, nil)
}

// ChangeSecret rotates the admin secret
func (g *HTTPGateway) ChangeSecret(ctx context.Context, oldCode, newCode string) error {
	body := request.ChangeSecretRequest{OldCode: oldCode, NewCode: newCode}
	return g.do(ctx, http.MethodPost, "/api/v1/admin/code", body, nil)
}

// Health checks server liveness
func (g *HTTPGateway) Health(ctx context.Context) error {
	return g.do(ctx, http.MethodGet, "/api/v1/health", nil, nil)
}
