package memory

import (
	"context"
	"sync"

	"github.com/scoretab/scoretab/internal/model"
	"github.com/scoretab/scoretab/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players     map[model.PlayerID]*model.Player
	playerOrder []model.PlayerID
	nameIndex   map[string]model.PlayerID

	rounds       map[model.RoundID]*model.Round
	sessionOrder []model.SessionID
	// roundOrder holds round IDs per session in creation order;
	// listing reverses it to return newest-first
	roundOrder map[model.SessionID][]model.RoundID

	sessions      map[model.SessionID]*model.Session
	activeSession model.SessionID

	settings map[string]string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:    make(map[model.PlayerID]*model.Player),
		nameIndex:  make(map[string]model.PlayerID),
		rounds:     make(map[model.RoundID]*model.Round),
		roundOrder: make(map[model.SessionID][]model.RoundID),
		sessions:   make(map[model.SessionID]*model.Session),
		settings:   make(map[string]string),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.players[player.ID]; ok {
		if existing.Name != player.Name {
			delete(s.nameIndex, existing.Name)
		}
	} else {
		s.playerOrder = append(s.playerOrder, player.ID)
	}

	s.players[player.ID] = player
	s.nameIndex[player.Name] = player.ID
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

func (s *Storage) GetPlayerByName(ctx context.Context, name string) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.nameIndex[name]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return s.players[id], nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0, len(s.playerOrder))
	for _, id := range s.playerOrder {
		if p, ok := s.players[id]; ok {
			players = append(players, p)
		}
	}
	return players, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	player, ok := s.players[id]
	if !ok {
		return model.ErrPlayerNotFound
	}
	delete(s.nameIndex, player.Name)
	delete(s.players, id)
	for i, pid := range s.playerOrder {
		if pid == id {
			s.playerOrder = append(s.playerOrder[:i], s.playerOrder[i+1:]...)
			break
		}
	}
	return nil
}

// Round operations

func (s *Storage) SaveRound(ctx context.Context, round *model.Round) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rounds[round.ID]; !ok {
		s.roundOrder[round.SessionID] = append(s.roundOrder[round.SessionID], round.ID)
	}
	s.rounds[round.ID] = round
	return nil
}

func (s *Storage) GetRound(ctx context.Context, id model.RoundID) (*model.Round, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	round, ok := s.rounds[id]
	if !ok {
		return nil, model.ErrRoundNotFound
	}
	return round, nil
}

func (s *Storage) ListRounds(ctx context.Context, sessionID model.SessionID) ([]*model.Round, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	order := s.roundOrder[sessionID]
	rounds := make([]*model.Round, 0, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		if r, ok := s.rounds[order[i]]; ok {
			rounds = append(rounds, r)
		}
	}
	return rounds, nil
}

func (s *Storage) CountRounds(ctx context.Context, sessionID model.SessionID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.roundOrder[sessionID]), nil
}

func (s *Storage) DeleteRound(ctx context.Context, id model.RoundID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	round, ok := s.rounds[id]
	if !ok {
		return model.ErrRoundNotFound
	}
	delete(s.rounds, id)
	order := s.roundOrder[round.SessionID]
	for i, rid := range order {
		if rid == id {
			s.roundOrder[round.SessionID] = append(order[:i], order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Storage) DeleteRoundsForSession(ctx context.Context, sessionID model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rid := range s.roundOrder[sessionID] {
		delete(s.rounds, rid)
	}
	delete(s.roundOrder, sessionID)
	return nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[session.ID]; !ok {
		s.sessionOrder = append(s.sessionOrder, session.ID)
	}
	s.sessions[session.ID] = session
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

func (s *Storage) ListSessions(ctx context.Context) ([]*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sessions := make([]*model.Session, 0, len(s.sessionOrder))
	for i := len(s.sessionOrder) - 1; i >= 0; i-- {
		if sess, ok := s.sessions[s.sessionOrder[i]]; ok {
			sessions = append(sessions, sess)
		}
	}
	return sessions, nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return model.ErrSessionNotFound
	}
	delete(s.sessions, id)
	for i, sid := range s.sessionOrder {
		if sid == id {
			s.sessionOrder = append(s.sessionOrder[:i], s.sessionOrder[i+1:]...)
			break
		}
	}
	if s.activeSession == id {
		s.activeSession = ""
	}
	return nil
}

func (s *Storage) ActiveSessionID(ctx context.Context) (model.SessionID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeSession, nil
}

func (s *Storage) SetActiveSessionID(ctx context.Context, id model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != "" {
		if _, ok := s.sessions[id]; !ok {
			return model.ErrSessionNotFound
		}
	}
	s.activeSession = id
	return nil
}

// Settings operations

func (s *Storage) GetSetting(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.settings[key]
	if !ok {
		return "", model.ErrSettingNotFound
	}
	return value, nil
}

func (s *Storage) SetSetting(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings[key] = value
	return nil
}
