package client

import (
	"context"
	"time"

	"github.com/scoretab/scoretab/internal/api/response"
)

// StandingsView reads the derived score views through the view cache
type StandingsView struct {
	gateway Gateway
	cache   *ViewCache
}

// NewStandingsView creates a standings view
func NewStandingsView(gateway Gateway, cache *ViewCache) *StandingsView {
	return &StandingsView{
		gateway: gateway,
		cache:   cache,
	}
}

// Standings returns the active session's standings, highest score first
func (v *StandingsView) Standings(ctx context.Context) ([]response.Standing, error) {
	return Fetch(ctx, v.cache, KeyStandings, v.gateway.Standings)
}

// Statistics returns per-player statistics, highest win rate first
func (v *StandingsView) Statistics(ctx context.Context) ([]response.PlayerStats, error) {
	return Fetch(ctx, v.cache, KeyStatistics, v.gateway.Statistics)
}

// Watch polls standings at the given interval, invoking fn with each
// fresh result until ctx is cancelled. Each tick drops only the
// standings view so commits from other clients become visible; the
// other cached views refresh through invalidation as usual.
func (v *StandingsView) Watch(ctx context.Context, interval time.Duration, fn func([]response.Standing)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			v.cache.Invalidate(KeyStandings)
			standings, err := v.Standings(ctx)
			if err != nil {
				return err
			}
			fn(standings)
		}
	}
}
