package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound  = errors.New("player not found")
	ErrPlayerNameEmpty = errors.New("player name must not be empty")
	ErrPlayerNameTaken = errors.New("player name already exists")
	ErrPlayerLocked    = errors.New("player has recorder history and is locked")

	// Round errors
	ErrRoundNotFound = errors.New("round not found")
	ErrRoundNotZero  = errors.New("round deltas must sum to zero")
	ErrRoundEmpty    = errors.New("round must contain at least one score")

	// Session errors
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionNameEmpty = errors.New("session name must not be empty")
	ErrSessionActive    = errors.New("session is active")
	ErrNoActiveSession  = errors.New("no active session")

	// Admin errors
	ErrInvalidSecret = errors.New("invalid admin secret")
	ErrSecretEmpty   = errors.New("admin secret must not be empty")

	// Settings errors
	ErrSettingNotFound = errors.New("setting not found")

	// Avatar errors
	ErrAvatarTooLarge    = errors.New("avatar file too large")
	ErrAvatarUnsupported = errors.New("unsupported avatar file type")
)
