package client

import (
	"context"
	"errors"

	"github.com/scoretab/scoretab/internal/api/response"
)

// ErrNothingToUndo is returned when undo is requested with no rounds
var ErrNothingToUndo = errors.New("no rounds to undo")

// MatrixRow is one round's deltas aligned to the player columns.
// A nil cell means the player had no entry in that round.
type MatrixRow struct {
	RoundID string
	Cells   []*int
}

// RoundMatrix is the round history as a table, newest round first
type RoundMatrix struct {
	Players []response.Player
	Rows    []MatrixRow
	Totals  []int
}

// RoundLedger reads and undoes committed rounds through the view cache
type RoundLedger struct {
	gateway Gateway
	cache   *ViewCache
	gate    *Gate
}

// NewRoundLedger creates a round ledger view
func NewRoundLedger(gateway Gateway, cache *ViewCache, gate *Gate) *RoundLedger {
	return &RoundLedger{
		gateway: gateway,
		cache:   cache,
		gate:    gate,
	}
}

// List returns the active session's rounds, newest first
func (l *RoundLedger) List(ctx context.Context) ([]response.Round, error) {
	return Fetch(ctx, l.cache, KeyRounds, l.gateway.ListRounds)
}

// Matrix builds the round history table with one column per player
func (l *RoundLedger) Matrix(ctx context.Context) (*RoundMatrix, error) {
	players, err := Fetch(ctx, l.cache, KeyPlayers, l.gateway.ListPlayers)
	if err != nil {
		return nil, err
	}
	rounds, err := l.List(ctx)
	if err != nil {
		return nil, err
	}

	col := make(map[string]int, len(players))
	for i, p := range players {
		col[p.ID] = i
	}

	matrix := &RoundMatrix{
		Players: players,
		Totals:  make([]int, len(players)),
	}

	for _, round := range rounds {
		row := MatrixRow{
			RoundID: round.ID,
			Cells:   make([]*int, len(players)),
		}
		for _, score := range round.Scores {
			i, ok := col[score.PlayerID]
			if !ok {
				// Round references a player since removed from the roster
				continue
			}
			delta := score.Delta
			row.Cells[i] = &delta
			matrix.Totals[i] += delta
		}
		matrix.Rows = append(matrix.Rows, row)
	}

	return matrix, nil
}

// UndoLatest opens a gate challenge to delete the most recent round.
// The round is removed only when the challenge is satisfied.
//
// Only the newest round can be undone; older corrections go through a
// game reset instead.
func (l *RoundLedger) UndoLatest(ctx context.Context) error {
	rounds, err := l.List(ctx)
	if err != nil {
		return err
	}
	if len(rounds) == 0 {
		return ErrNothingToUndo
	}
	newest := rounds[0].ID

	return l.gate.Request(Action{
		Kind: ActionUndoRound,
		Run: func(ctx context.Context, _ string) error {
			if err := l.gateway.DeleteRound(ctx, newest); err != nil {
				return err
			}
			l.cache.Invalidate(KeyRounds)
			return nil
		},
	})
}

// CanUndo reports whether the active session has a round to undo
func (l *RoundLedger) CanUndo(ctx context.Context) (bool, error) {
	rounds, err := l.List(ctx)
	if err != nil {
		return false, err
	}
	return len(rounds) > 0, nil
}
