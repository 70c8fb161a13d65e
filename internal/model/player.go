package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// DefaultPlayerColor is assigned when a player is created without a color
const DefaultPlayerColor = "#808080"

// Player represents a participant on the score table.
// The running score is not stored on the player; it is derived from the
// committed rounds of the active session.
type Player struct {
	ID         PlayerID
	Name       string
	Color      string
	AvatarPath string // public path to the uploaded avatar, empty if none
	CreatedAt  time.Time
}
