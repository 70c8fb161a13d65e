package client

import (
	"context"

	"github.com/scoretab/scoretab/internal/api/response"
)

// Sessions manages the session list and the active session switch
type Sessions struct {
	gateway Gateway
	cache   *ViewCache
}

// NewSessions creates a sessions controller
func NewSessions(gateway Gateway, cache *ViewCache) *Sessions {
	return &Sessions{
		gateway: gateway,
		cache:   cache,
	}
}

// List returns all sessions, newest first
func (s *Sessions) List(ctx context.Context) ([]response.Session, error) {
	return Fetch(ctx, s.cache, KeySessions, s.gateway.ListSessions)
}

// Active returns the active session, or nil if none is active
func (s *Sessions) Active(ctx context.Context) (*response.Session, error) {
	return Fetch(ctx, s.cache, KeyActiveSession, s.gateway.ActiveSession)
}

// Create creates a session without switching to it
func (s *Sessions) Create(ctx context.Context, name string) (*response.Session, error) {
	sess, err := s.gateway.CreateSession(ctx, name)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(KeySessions)
	return sess, nil
}

// Load switches the active session. Every view depends on which
// session is active, so this drops the whole cache via the graph.
func (s *Sessions) Load(ctx context.Context, id string) (*response.Session, error) {
	sess, err := s.gateway.LoadSession(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(KeyActiveSession)
	return sess, nil
}

// Rename changes a session's name
func (s *Sessions) Rename(ctx context.Context, id, name string) (*response.Session, error) {
	sess, err := s.gateway.RenameSession(ctx, id, name)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(KeySessions)
	return sess, nil
}

// Delete removes a session. The server rejects deleting the active
// session, so callers switch away first.
func (s *Sessions) Delete(ctx context.Context, id string) error {
	if err := s.gateway.DeleteSession(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(KeySessions)
	return nil
}
