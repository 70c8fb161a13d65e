package client

import (
	"context"
)

// GameControl exposes the gated destructive operations
type GameControl struct {
	gateway Gateway
	cache   *ViewCache
	gate    *Gate
}

// NewGameControl creates a game control
func NewGameControl(gateway Gateway, cache *ViewCache, gate *Gate) *GameControl {
	return &GameControl{
		gateway: gateway,
		cache:   cache,
		gate:    gate,
	}
}

// RequestReset opens a gate challenge to clear the active session's rounds
func (c *GameControl) RequestReset() error {
	return c.gate.Request(Action{
		Kind: ActionResetGame,
		Run: func(ctx context.Context, _ string) error {
			if err := c.gateway.ResetGame(ctx); err != nil {
				return err
			}
			c.cache.Invalidate(KeyRounds)
			return nil
		},
	})
}

// RequestSecretChange opens a gate challenge to rotate the admin
// secret. The secret that satisfies the challenge doubles as the old
// secret for the rotation.
func (c *GameControl) RequestSecretChange(newCode string) error {
	return c.gate.Request(Action{
		Kind: ActionChangeSecret,
		Run: func(ctx context.Context, code string) error {
			return c.gateway.ChangeSecret(ctx, code, newCode)
		},
	})
}
