package storage

import (
	"context"

	"github.com/scoretab/scoretab/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Player operations. ListPlayers returns players in creation order,
	// which is the stable order views rely on.
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	GetPlayerByName(ctx context.Context, name string) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// Round operations. ListRounds returns a session's rounds newest-first.
	SaveRound(ctx context.Context, round *model.Round) error
	GetRound(ctx context.Context, id model.RoundID) (*model.Round, error)
	ListRounds(ctx context.Context, sessionID model.SessionID) ([]*model.Round, error)
	CountRounds(ctx context.Context, sessionID model.SessionID) (int, error)
	DeleteRound(ctx context.Context, id model.RoundID) error
	DeleteRoundsForSession(ctx context.Context, sessionID model.SessionID) error

	// Session operations. ListSessions returns sessions newest-first.
	// The active session pointer is stored separately so that exactly one
	// session can be active at a time; an empty ID means none is active.
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	ListSessions(ctx context.Context) ([]*model.Session, error)
	DeleteSession(ctx context.Context, id model.SessionID) error
	ActiveSessionID(ctx context.Context) (model.SessionID, error)
	SetActiveSessionID(ctx context.Context, id model.SessionID) error

	// Settings operations (admin secret hash and similar key-value state)
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}
