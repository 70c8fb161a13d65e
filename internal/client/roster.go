package client

import (
	"context"
	"io"

	"github.com/scoretab/scoretab/internal/api/apierr"
	"github.com/scoretab/scoretab/internal/api/request"
	"github.com/scoretab/scoretab/internal/api/response"
)

// Roster manages the player list, deferring locked deletions to the gate
type Roster struct {
	gateway  Gateway
	cache    *ViewCache
	gate     *Gate
	recorder *RecorderLock
}

// NewRoster creates a roster controller
func NewRoster(gateway Gateway, cache *ViewCache, gate *Gate, recorder *RecorderLock) *Roster {
	return &Roster{
		gateway:  gateway,
		cache:    cache,
		gate:     gate,
		recorder: recorder,
	}
}

// List returns all players in creation order
func (r *Roster) List(ctx context.Context) ([]response.Player, error) {
	return Fetch(ctx, r.cache, KeyPlayers, r.gateway.ListPlayers)
}

// Add creates a player
func (r *Roster) Add(ctx context.Context, name, color string) (*response.Player, error) {
	player, err := r.gateway.CreatePlayer(ctx, name, color)
	if err != nil {
		return nil, err
	}

	r.cache.Invalidate(KeyPlayers)
	return player, nil
}

// Rename changes a player's name
func (r *Roster) Rename(ctx context.Context, id, name string) (*response.Player, error) {
	player, err := r.gateway.UpdatePlayer(ctx, id, request.UpdatePlayerRequest{Name: &name})
	if err != nil {
		return nil, err
	}

	r.cache.Invalidate(KeyPlayers)
	return player, nil
}

// SetColor changes a player's color
func (r *Roster) SetColor(ctx context.Context, id, color string) (*response.Player, error) {
	player, err := r.gateway.UpdatePlayer(ctx, id, request.UpdatePlayerRequest{Color: &color})
	if err != nil {
		return nil, err
	}

	r.cache.Invalidate(KeyPlayers)
	return player, nil
}

// SetAvatar uploads an avatar for a player and returns its public path
func (r *Roster) SetAvatar(ctx context.Context, id, filename string, file io.Reader) (string, error) {
	path, err := r.gateway.UploadAvatar(ctx, id, filename, file)
	if err != nil {
		return "", err
	}

	r.cache.Invalidate(KeyPlayers)
	return path, nil
}

// Delete removes a player. The player's lock is queried first: a
// locked player's deletion is deferred behind a gate challenge and
// gated is true, with no delete issued until the challenge is
// satisfied. An unlocked player is deleted immediately.
func (r *Roster) Delete(ctx context.Context, id string) (gated bool, err error) {
	locked, err := r.gateway.PlayerLocked(ctx, id)
	if err != nil {
		return false, err
	}

	if !locked {
		err := r.gateway.DeletePlayer(ctx, id, false)
		if err == nil {
			r.finishDelete(id)
			return false, nil
		}
		// The lock can appear between the query and the delete; the
		// server re-checks, so fall through to the challenge.
		if !HasCode(err, apierr.CodePlayerLocked) {
			return false, err
		}
	}

	err = r.gate.Request(Action{
		Kind: ActionDeletePlayer,
		Run: func(ctx context.Context, _ string) error {
			if err := r.gateway.DeletePlayer(ctx, id, true); err != nil {
				return err
			}
			r.finishDelete(id)
			return nil
		},
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// finishDelete invalidates player views and drops the recorder
// selection if it pointed at the deleted player
func (r *Roster) finishDelete(id string) {
	r.cache.Invalidate(KeyPlayers)
	if current, err := r.recorder.Current(); err == nil && current == id {
		_ = r.recorder.clear()
	}
}
