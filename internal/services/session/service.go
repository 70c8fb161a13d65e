package session

import (
	"context"
	"log/slog"
	"strings"

	"github.com/scoretab/scoretab/internal/dependencies/clock"
	"github.com/scoretab/scoretab/internal/dependencies/idgen"
	"github.com/scoretab/scoretab/internal/model"
	"github.com/scoretab/scoretab/internal/storage"
)

// Info is a session together with its derived state
type Info struct {
	Session    model.Session
	Active     bool
	RoundCount int
}

// Service manages sessions and the single-active invariant
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	idgen   idgen.Generator
	logger  *slog.Logger
}

// New creates a new session service
func New(storage storage.Storage, clk clock.Clock, gen idgen.Generator, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clk,
		idgen:   gen,
		logger:  logger,
	}
}

// List returns all sessions newest-first with round counts
func (s *Service) List(ctx context.Context) ([]Info, error) {
	sessions, err := s.storage.ListSessions(ctx)
	if err != nil {
		return nil, err
	}

	activeID, err := s.storage.ActiveSessionID(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]Info, 0, len(sessions))
	for _, sess := range sessions {
		count, err := s.storage.CountRounds(ctx, sess.ID)
		if err != nil {
			return nil, err
		}
		infos = append(infos, Info{
			Session:    *sess,
			Active:     sess.ID == activeID,
			RoundCount: count,
		})
	}
	return infos, nil
}

// Active returns the active session, or nil if none is active
func (s *Service) Active(ctx context.Context) (*Info, error) {
	activeID, err := s.storage.ActiveSessionID(ctx)
	if err != nil {
		return nil, err
	}
	if activeID == "" {
		return nil, nil
	}

	sess, err := s.storage.GetSession(ctx, activeID)
	if err != nil {
		return nil, err
	}

	count, err := s.storage.CountRounds(ctx, sess.ID)
	if err != nil {
		return nil, err
	}

	return &Info{Session: *sess, Active: true, RoundCount: count}, nil
}

// Create adds a new session. Creation does not activate it; loading is
// a separate operation.
func (s *Service) Create(ctx context.Context, name string) (*model.Session, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrSessionNameEmpty
	}

	session := &model.Session{
		ID:        model.SessionID(s.idgen.NewID("s_")),
		Name:      name,
		CreatedAt: s.clock.Now(),
	}

	if err := s.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("session created",
		slog.String("session_id", string(session.ID)),
		slog.String("name", session.Name),
	)

	return session, nil
}

// Load makes the given session active, deactivating any other
func (s *Service) Load(ctx context.Context, id model.SessionID) (*Info, error) {
	if _, err := s.storage.GetSession(ctx, id); err != nil {
		return nil, err
	}

	if err := s.storage.SetActiveSessionID(ctx, id); err != nil {
		return nil, err
	}

	s.logger.Info("session loaded", slog.String("session_id", string(id)))

	return s.Active(ctx)
}

// Rename changes a session's name
func (s *Service) Rename(ctx context.Context, id model.SessionID, name string) (*model.Session, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrSessionNameEmpty
	}

	sess, err := s.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *sess
	updated.Name = name
	if err := s.storage.SaveSession(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a session and its rounds. The active session cannot be
// deleted; load another session first.
func (s *Service) Delete(ctx context.Context, id model.SessionID) error {
	if _, err := s.storage.GetSession(ctx, id); err != nil {
		return err
	}

	activeID, err := s.storage.ActiveSessionID(ctx)
	if err != nil {
		return err
	}
	if id == activeID {
		return model.ErrSessionActive
	}

	if err := s.storage.DeleteRoundsForSession(ctx, id); err != nil {
		return err
	}
	if err := s.storage.DeleteSession(ctx, id); err != nil {
		return err
	}

	s.logger.Info("session deleted", slog.String("session_id", string(id)))
	return nil
}
