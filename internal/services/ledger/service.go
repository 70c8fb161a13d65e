package ledger

import (
	"context"
	"log/slog"

	"github.com/scoretab/scoretab/internal/dependencies/clock"
	"github.com/scoretab/scoretab/internal/dependencies/idgen"
	"github.com/scoretab/scoretab/internal/model"
	"github.com/scoretab/scoretab/internal/storage"
)

// Service manages the round ledger of the active session
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	idgen   idgen.Generator
	logger  *slog.Logger
}

// New creates a new ledger service
func New(storage storage.Storage, clk clock.Clock, gen idgen.Generator, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clk,
		idgen:   gen,
		logger:  logger,
	}
}

// Commit validates and commits a round to the active session's ledger.
// The deltas must sum to exactly zero and every referenced player must
// exist. Rounds are immutable once committed.
func (s *Service) Commit(ctx context.Context, scores []model.ScoreEntry, recorderID model.PlayerID) (*model.Round, error) {
	sessionID, err := s.storage.ActiveSessionID(ctx)
	if err != nil {
		return nil, err
	}
	if sessionID == "" {
		return nil, model.ErrNoActiveSession
	}

	if len(scores) == 0 {
		return nil, model.ErrRoundEmpty
	}

	total := 0
	for _, entry := range scores {
		total += entry.Delta
	}
	if total != 0 {
		return nil, model.ErrRoundNotZero
	}

	for _, entry := range scores {
		if _, err := s.storage.GetPlayer(ctx, entry.PlayerID); err != nil {
			return nil, err
		}
	}

	round := &model.Round{
		ID:         model.RoundID(s.idgen.NewID("r_")),
		SessionID:  sessionID,
		RecorderID: recorderID,
		CreatedAt:  s.clock.Now(),
		Scores:     append([]model.ScoreEntry(nil), scores...),
	}

	if err := s.storage.SaveRound(ctx, round); err != nil {
		return nil, err
	}

	s.logger.Info("round committed",
		slog.String("round_id", string(round.ID)),
		slog.String("session_id", string(sessionID)),
		slog.Int("scores", len(round.Scores)),
	)

	return round, nil
}

// List returns the active session's rounds newest-first.
// With no active session the ledger is empty.
func (s *Service) List(ctx context.Context) ([]*model.Round, error) {
	sessionID, err := s.storage.ActiveSessionID(ctx)
	if err != nil {
		return nil, err
	}
	if sessionID == "" {
		return []*model.Round{}, nil
	}
	return s.storage.ListRounds(ctx, sessionID)
}

// Delete removes a committed round. Callers are expected to delete the
// most recent round only; the ledger itself is not re-validated.
func (s *Service) Delete(ctx context.Context, id model.RoundID) error {
	if err := s.storage.DeleteRound(ctx, id); err != nil {
		return err
	}
	s.logger.Info("round deleted", slog.String("round_id", string(id)))
	return nil
}

// Reset clears every round of the active session
func (s *Service) Reset(ctx context.Context) error {
	sessionID, err := s.storage.ActiveSessionID(ctx)
	if err != nil {
		return err
	}
	if sessionID == "" {
		return model.ErrNoActiveSession
	}

	if err := s.storage.DeleteRoundsForSession(ctx, sessionID); err != nil {
		return err
	}

	s.logger.Info("ledger reset", slog.String("session_id", string(sessionID)))
	return nil
}
