package model

import "time"

// SessionID uniquely identifies a session
type SessionID string

// Session is an independent ledger: its own ordered collection of rounds.
// Exactly one session is active at a time; the active flag and round count
// are tracked by storage, not on the record itself.
type Session struct {
	ID        SessionID
	Name      string
	CreatedAt time.Time
}
