package client

import (
	"context"
	"sync"

	"github.com/scoretab/scoretab/internal/api/request"
	"github.com/scoretab/scoretab/internal/api/response"
	"github.com/scoretab/scoretab/internal/model"
)

// ScoreEntry buffers per-player deltas for the round being entered.
//
// Nothing reaches the server until Submit; the zero-sum rule is checked
// locally first so a misbalanced round never leaves the client.
type ScoreEntry struct {
	mu       sync.Mutex
	gateway  Gateway
	recorder *RecorderLock
	cache    *ViewCache
	deltas   map[string]int
	order    []string
}

// NewScoreEntry creates an empty score entry buffer
func NewScoreEntry(gateway Gateway, recorder *RecorderLock, cache *ViewCache) *ScoreEntry {
	return &ScoreEntry{
		gateway:  gateway,
		recorder: recorder,
		cache:    cache,
		deltas:   make(map[string]int),
	}
}

// SetDelta records a player's delta for the pending round. Score entry
// is unavailable until a recorder has been selected.
func (e *ScoreEntry) SetDelta(playerID string, delta int) error {
	if _, err := e.recorder.Current(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.deltas[playerID]; !ok {
		e.order = append(e.order, playerID)
	}
	e.deltas[playerID] = delta
	return nil
}

// AutoBalance assigns the first player with no entered (or zero) delta
// whatever value makes the round sum to zero, and returns that player's
// id. It is a no-op when no non-zero delta has been entered yet or when
// every player already carries a non-zero delta.
func (e *ScoreEntry) AutoBalance(ctx context.Context) (string, error) {
	if _, err := e.recorder.Current(); err != nil {
		return "", err
	}

	players, err := Fetch(ctx, e.cache, KeyPlayers, e.gateway.ListPlayers)
	if err != nil {
		return "", err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	sum := 0
	hasNonZero := false
	for _, d := range e.deltas {
		sum += d
		if d != 0 {
			hasNonZero = true
		}
	}
	if !hasNonZero {
		return "", nil
	}

	for _, p := range players {
		if e.deltas[p.ID] != 0 {
			continue
		}
		if _, ok := e.deltas[p.ID]; !ok {
			e.order = append(e.order, p.ID)
		}
		e.deltas[p.ID] = -sum
		return p.ID, nil
	}
	return "", nil
}

// Deltas returns the buffered entries in the order they were added
func (e *ScoreEntry) Deltas() []request.ScoreEntry {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]request.ScoreEntry, 0, len(e.order))
	for _, id := range e.order {
		out = append(out, request.ScoreEntry{PlayerID: id, Delta: e.deltas[id]})
	}
	return out
}

// Sum returns the buffered total
func (e *ScoreEntry) Sum() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	sum := 0
	for _, d := range e.deltas {
		sum += d
	}
	return sum
}

// Clear drops all buffered entries
func (e *ScoreEntry) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.deltas = make(map[string]int)
	e.order = nil
}

// Submit commits the buffered round to the active session. Only the
// non-zero entries are sent; a buffer with no non-zero delta is
// rejected locally, as is one that does not sum to zero.
//
// The buffer survives a failed submit so corrections don't start over;
// a successful submit clears it and invalidates the round views.
func (e *ScoreEntry) Submit(ctx context.Context) (*response.Round, error) {
	recorderID, err := e.recorder.Current()
	if err != nil {
		return nil, err
	}

	buffered := e.Deltas()
	scores := make([]request.ScoreEntry, 0, len(buffered))
	for _, entry := range buffered {
		if entry.Delta != 0 {
			scores = append(scores, entry)
		}
	}
	if len(scores) == 0 {
		return nil, model.ErrRoundEmpty
	}
	if e.Sum() != 0 {
		return nil, model.ErrRoundNotZero
	}

	round, err := e.gateway.CommitRound(ctx, request.CommitRoundRequest{
		Scores:     scores,
		RecorderID: recorderID,
	})
	if err != nil {
		return nil, err
	}

	e.Clear()
	e.cache.Invalidate(KeyRounds)
	return round, nil
}
