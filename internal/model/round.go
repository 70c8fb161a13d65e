package model

import "time"

// RoundID uniquely identifies a committed round
type RoundID string

// ScoreEntry is one player's delta within a round.
// Only participating players carry an entry; absence means the player
// did not take part in the round, which is distinct from a zero delta.
type ScoreEntry struct {
	PlayerID PlayerID
	Delta    int
}

// Round is an immutable committed round of the active session's ledger.
// The only permitted mutation is whole-round deletion, and callers are
// expected to delete the most recent round only.
type Round struct {
	ID         RoundID
	SessionID  SessionID
	RecorderID PlayerID // empty when no recorder was attributed
	CreatedAt  time.Time
	Scores     []ScoreEntry
}

// Sum returns the total of all deltas in the round.
// A valid round sums to exactly zero.
func (r *Round) Sum() int {
	total := 0
	for _, s := range r.Scores {
		total += s.Delta
	}
	return total
}

// Entry returns the score entry for the given player, or nil if the
// player did not participate in this round.
func (r *Round) Entry(playerID PlayerID) *ScoreEntry {
	for i := range r.Scores {
		if r.Scores[i].PlayerID == playerID {
			return &r.Scores[i]
		}
	}
	return nil
}
