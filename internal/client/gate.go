package client

import (
	"context"
	"errors"
	"sync"
)

// GateState is the state of the secret gate
type GateState int

// Gate states
const (
	GateIdle GateState = iota
	GateChallenging
)

func (s GateState) String() string {
	switch s {
	case GateIdle:
		return "idle"
	case GateChallenging:
		return "challenging"
	default:
		return "unknown"
	}
}

// ActionKind identifies the destructive operation a gate challenge protects
type ActionKind string

// Gated action kinds
const (
	ActionDeletePlayer   ActionKind = "delete_player"
	ActionUndoRound      ActionKind = "undo_round"
	ActionUnlockRecorder ActionKind = "unlock_recorder"
	ActionResetGame      ActionKind = "reset_game"
	ActionChangeSecret   ActionKind = "change_secret"
)

// Action is a deferred destructive operation. Run receives the secret
// that passed verification, so actions like secret rotation can reuse it.
type Action struct {
	Kind ActionKind
	Run  func(ctx context.Context, code string) error
}

// Gate errors
var (
	ErrGateBusy     = errors.New("a gate challenge is already pending")
	ErrGateNoAction = errors.New("no gated action is pending")
)

// Gate defers destructive operations behind an admin secret challenge.
//
// Requesting an action moves the gate to the challenging state; the
// action runs exactly once when a correct secret is submitted. A wrong
// secret keeps the challenge open so the user can retry.
type Gate struct {
	mu      sync.Mutex
	verify  func(ctx context.Context, code string) error
	state   GateState
	pending *Action
}

// NewGate creates a gate using the given secret verifier
func NewGate(verify func(ctx context.Context, code string) error) *Gate {
	return &Gate{
		verify: verify,
		state:  GateIdle,
	}
}

// State returns the gate's current state
func (g *Gate) State() GateState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Pending returns the kind of the pending action, if any
func (g *Gate) Pending() (ActionKind, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pending == nil {
		return "", false
	}
	return g.pending.Kind, true
}

// Request opens a challenge for the given action
func (g *Gate) Request(action Action) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != GateIdle {
		return ErrGateBusy
	}

	g.state = GateChallenging
	g.pending = &action
	return nil
}

// Submit attempts to satisfy the open challenge with a secret.
//
// On a wrong secret the gate stays challenging and the error is
// returned. On success the pending action runs once and the gate
// returns to idle regardless of the action's outcome.
func (g *Gate) Submit(ctx context.Context, code string) error {
	g.mu.Lock()
	if g.state != GateChallenging || g.pending == nil {
		g.mu.Unlock()
		return ErrGateNoAction
	}
	action := g.pending
	g.mu.Unlock()

	if err := g.verify(ctx, code); err != nil {
		return err
	}

	g.mu.Lock()
	g.state = GateIdle
	g.pending = nil
	g.mu.Unlock()

	return action.Run(ctx, code)
}

// Cancel abandons the open challenge without running the action
func (g *Gate) Cancel() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = GateIdle
	g.pending = nil
}
