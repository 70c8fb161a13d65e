package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/scoretab/scoretab/internal/model"
	"github.com/scoretab/scoretab/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	// Read the existing record so a rename can drop the old name index entry
	existing, err := s.GetPlayer(ctx, player.ID)
	if err != nil && !errors.Is(err, model.ErrPlayerNotFound) {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, playerKey(player.ID), data, 0)
	if existing == nil {
		pipe.RPush(ctx, playersIndexKey(), string(player.ID))
	} else if existing.Name != player.Name {
		pipe.HDel(ctx, playerNamesKey(), existing.Name)
	}
	pipe.HSet(ctx, playerNamesKey(), player.Name, string(player.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) GetPlayerByName(ctx context.Context, name string) (*model.Player, error) {
	id, err := s.client.HGet(ctx, playerNamesKey(), name).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}
	return s.GetPlayer(ctx, model.PlayerID(id))
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	ids, err := s.client.LRange(ctx, playersIndexKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	players := make([]*model.Player, 0, len(ids))
	for _, id := range ids {
		player, err := s.GetPlayer(ctx, model.PlayerID(id))
		if err != nil {
			if errors.Is(err, model.ErrPlayerNotFound) {
				continue
			}
			return nil, err
		}
		players = append(players, player)
	}
	return players, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	player, err := s.GetPlayer(ctx, id)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, playerKey(id))
	pipe.LRem(ctx, playersIndexKey(), 1, string(id))
	pipe.HDel(ctx, playerNamesKey(), player.Name)
	_, err = pipe.Exec(ctx)
	return err
}

// Round operations

func (s *Storage) SaveRound(ctx context.Context, round *model.Round) error {
	data, err := json.Marshal(round)
	if err != nil {
		return err
	}

	exists, err := s.client.Exists(ctx, roundKey(round.ID)).Result()
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, roundKey(round.ID), data, 0)
	if exists == 0 {
		// LPush keeps the index newest-first
		pipe.LPush(ctx, roundsIndexKey(round.SessionID), string(round.ID))
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetRound(ctx context.Context, id model.RoundID) (*model.Round, error) {
	data, err := s.client.Get(ctx, roundKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrRoundNotFound
		}
		return nil, err
	}

	var round model.Round
	if err := json.Unmarshal(data, &round); err != nil {
		return nil, err
	}
	return &round, nil
}

func (s *Storage) ListRounds(ctx context.Context, sessionID model.SessionID) ([]*model.Round, error) {
	ids, err := s.client.LRange(ctx, roundsIndexKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	rounds := make([]*model.Round, 0, len(ids))
	for _, id := range ids {
		round, err := s.GetRound(ctx, model.RoundID(id))
		if err != nil {
			if errors.Is(err, model.ErrRoundNotFound) {
				continue
			}
			return nil, err
		}
		rounds = append(rounds, round)
	}
	return rounds, nil
}

func (s *Storage) CountRounds(ctx context.Context, sessionID model.SessionID) (int, error) {
	n, err := s.client.LLen(ctx, roundsIndexKey(sessionID)).Result()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (s *Storage) DeleteRound(ctx context.Context, id model.RoundID) error {
	round, err := s.GetRound(ctx, id)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, roundKey(id))
	pipe.LRem(ctx, roundsIndexKey(round.SessionID), 1, string(id))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) DeleteRoundsForSession(ctx context.Context, sessionID model.SessionID) error {
	ids, err := s.client.LRange(ctx, roundsIndexKey(sessionID), 0, -1).Result()
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	for _, id := range ids {
		pipe.Del(ctx, roundKey(model.RoundID(id)))
	}
	pipe.Del(ctx, roundsIndexKey(sessionID))
	_, err = pipe.Exec(ctx)
	return err
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	exists, err := s.client.Exists(ctx, sessionKey(session.ID)).Result()
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, sessionKey(session.ID), data, 0)
	if exists == 0 {
		pipe.LPush(ctx, sessionsIndexKey(), string(session.ID))
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Storage) ListSessions(ctx context.Context) ([]*model.Session, error) {
	ids, err := s.client.LRange(ctx, sessionsIndexKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	sessions := make([]*model.Session, 0, len(ids))
	for _, id := range ids {
		session, err := s.GetSession(ctx, model.SessionID(id))
		if err != nil {
			if errors.Is(err, model.ErrSessionNotFound) {
				continue
			}
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	if _, err := s.GetSession(ctx, id); err != nil {
		return err
	}

	active, err := s.ActiveSessionID(ctx)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, sessionKey(id))
	pipe.LRem(ctx, sessionsIndexKey(), 1, string(id))
	if active == id {
		pipe.Del(ctx, activeSessionKey())
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) ActiveSessionID(ctx context.Context) (model.SessionID, error) {
	id, err := s.client.Get(ctx, activeSessionKey()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return model.SessionID(id), nil
}

func (s *Storage) SetActiveSessionID(ctx context.Context, id model.SessionID) error {
	if id == "" {
		return s.client.Del(ctx, activeSessionKey()).Err()
	}
	if _, err := s.GetSession(ctx, id); err != nil {
		return err
	}
	return s.client.Set(ctx, activeSessionKey(), string(id), 0).Err()
}

// Settings operations

func (s *Storage) GetSetting(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, settingKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", model.ErrSettingNotFound
		}
		return "", err
	}
	return value, nil
}

func (s *Storage) SetSetting(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, settingKey(key), value, 0).Err()
}
