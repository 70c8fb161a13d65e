package client

import (
	"context"
	"errors"
	"fmt"
)

// Recorder lock errors
var (
	// ErrNoRecorder is returned when scoring is attempted without a recorder
	ErrNoRecorder = errors.New("no recorder selected")
	// ErrRecorderSet is returned when a selection already exists; it must
	// be released through the gate before a new recorder can be chosen
	ErrRecorderSet = errors.New("a recorder is already selected")
)

// RecorderLock tracks which player this client records scores as.
//
// Scoring operations are unavailable until a recorder is selected, and
// the selection persists across restarts via the settings store. Once
// set, the selection is released only through a gate challenge.
type RecorderLock struct {
	gateway  Gateway
	settings *SettingsStore
	gate     *Gate
}

// NewRecorderLock creates a recorder lock backed by the settings store
func NewRecorderLock(gateway Gateway, settings *SettingsStore, gate *Gate) *RecorderLock {
	return &RecorderLock{
		gateway:  gateway,
		settings: settings,
		gate:     gate,
	}
}

// Current returns the selected recorder, or ErrNoRecorder if none is set
func (l *RecorderLock) Current() (string, error) {
	id := l.settings.RecorderID()
	if id == "" {
		return "", ErrNoRecorder
	}
	return id, nil
}

// Select validates the player against the roster and persists it as
// this client's recorder. Selection is only possible while no recorder
// is set; an existing selection must be released through RequestUnlock.
func (l *RecorderLock) Select(ctx context.Context, playerID string) error {
	if l.settings.RecorderID() != "" {
		return ErrRecorderSet
	}

	players, err := l.gateway.ListPlayers(ctx)
	if err != nil {
		return err
	}

	for _, p := range players {
		if p.ID == playerID {
			return l.settings.SetRecorderID(playerID)
		}
	}
	return fmt.Errorf("player %s is not in the roster", playerID)
}

// RequestUnlock opens a gate challenge to release the recorder
// selection. The selection is cleared only when the challenge is
// satisfied; on cancel or failure it is unchanged.
func (l *RecorderLock) RequestUnlock() error {
	if l.settings.RecorderID() == "" {
		return ErrNoRecorder
	}

	return l.gate.Request(Action{
		Kind: ActionUnlockRecorder,
		Run: func(context.Context, string) error {
			return l.clear()
		},
	})
}

// clear drops the recorder selection without a challenge. Reserved for
// housekeeping when the selected player no longer exists; user-driven
// release goes through RequestUnlock.
func (l *RecorderLock) clear() error {
	return l.settings.SetRecorderID("")
}

// Validate checks the persisted recorder against the roster, clearing
// it if the player no longer exists. Returns the recorder if valid.
func (l *RecorderLock) Validate(ctx context.Context) (string, error) {
	id := l.settings.RecorderID()
	if id == "" {
		return "", ErrNoRecorder
	}

	players, err := l.gateway.ListPlayers(ctx)
	if err != nil {
		return "", err
	}

	for _, p := range players {
		if p.ID == id {
			return id, nil
		}
	}

	if err := l.clear(); err != nil {
		return "", err
	}
	return "", ErrNoRecorder
}
