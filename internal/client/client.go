// Package client is the application core shared by scoretab frontends.
//
// It layers a dependency-tracked view cache, the recorder lock, the
// score entry buffer, and the secret gate over the server API.
package client

// Client bundles the wired client components
type Client struct {
	Gateway   Gateway
	Settings  *SettingsStore
	Cache     *ViewCache
	Gate      *Gate
	Recorder  *RecorderLock
	Roster    *Roster
	Entry     *ScoreEntry
	Rounds    *RoundLedger
	Standings *StandingsView
	Sessions  *Sessions
	Control   *GameControl
}

// New wires a client around a gateway and a settings store
func New(gateway Gateway, settings *SettingsStore) *Client {
	cache := NewViewCache()
	gate := NewGate(gateway.VerifySecret)
	recorder := NewRecorderLock(gateway, settings, gate)

	return &Client{
		Gateway:   gateway,
		Settings:  settings,
		Cache:     cache,
		Gate:      gate,
		Recorder:  recorder,
		Roster:    NewRoster(gateway, cache, gate, recorder),
		Entry:     NewScoreEntry(gateway, recorder, cache),
		Rounds:    NewRoundLedger(gateway, cache, gate),
		Standings: NewStandingsView(gateway, cache),
		Sessions:  NewSessions(gateway, cache),
		Control:   NewGameControl(gateway, cache, gate),
	}
}
