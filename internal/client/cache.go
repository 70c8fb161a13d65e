package client

import (
	"context"
	"sync"
)

// ViewKey identifies a cached server-derived view
type ViewKey string

// Cached view keys
const (
	KeyPlayers       ViewKey = "players"
	KeyRounds        ViewKey = "rounds"
	KeyStandings     ViewKey = "standings"
	KeyStatistics    ViewKey = "statistics"
	KeySessions      ViewKey = "sessions"
	KeyActiveSession ViewKey = "active_session"
)

// dependents maps each key to the views derived from it. Invalidating a
// key cascades transitively through this graph, so a round commit only
// needs to name KeyRounds to also drop standings and statistics.
var dependents = map[ViewKey][]ViewKey{
	KeyActiveSession: {KeySessions, KeyPlayers, KeyRounds},
	KeyPlayers:       {KeyStandings, KeyStatistics},
	KeyRounds:        {KeyStandings, KeyStatistics},
}

// ViewCache holds fetched views until something they depend on changes
type ViewCache struct {
	mu      sync.Mutex
	entries map[ViewKey]any
}

// NewViewCache creates an empty view cache
func NewViewCache() *ViewCache {
	return &ViewCache{
		entries: make(map[ViewKey]any),
	}
}

// Get returns the cached value for key, if present
func (c *ViewCache) Get(key ViewKey) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

// Put stores a fetched value for key
func (c *ViewCache) Put(key ViewKey, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// Invalidate drops the given keys and everything derived from them
func (c *ViewCache) Invalidate(keys ...ViewKey) {
	c.mu.Lock()
	defer c.mu.Unlock()

	seen := make(map[ViewKey]bool)
	queue := append([]ViewKey(nil), keys...)
	for len(queue) > 0 {
		key := queue[0]
		queue = queue[1:]
		if seen[key] {
			continue
		}
		seen[key] = true
		delete(c.entries, key)
		queue = append(queue, dependents[key]...)
	}
}

// InvalidateAll drops every cached view
func (c *ViewCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[ViewKey]any)
}

// Fetch returns the cached value for key, fetching and storing it on a miss
func Fetch[T any](ctx context.Context, cache *ViewCache, key ViewKey, fetch func(context.Context) (T, error)) (T, error) {
	if v, ok := cache.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	value, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	cache.Put(key, value)
	return value, nil
}
