package redis

import (
	"fmt"

	"github.com/scoretab/scoretab/internal/model"
)

// Key prefix for all ledger data
const keyPrefix = "scoretab"

// Key generation functions for each entity type

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playersIndexKey returns the Redis key for the LIST of player IDs in
// creation order
func playersIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// playerNamesKey returns the Redis key for the HASH of name -> player_id
func playerNamesKey() string {
	return fmt.Sprintf("%s:idx:player_names", keyPrefix)
}

// roundKey returns the Redis key for a Round
func roundKey(id model.RoundID) string {
	return fmt.Sprintf("%s:round:%s", keyPrefix, id)
}

// roundsIndexKey returns the Redis key for the LIST of round IDs of a
// session, newest-first
func roundsIndexKey(sessionID model.SessionID) string {
	return fmt.Sprintf("%s:idx:rounds:%s", keyPrefix, sessionID)
}

// sessionKey returns the Redis key for a Session
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// sessionsIndexKey returns the Redis key for the LIST of session IDs,
// newest-first
func sessionsIndexKey() string {
	return fmt.Sprintf("%s:idx:sessions", keyPrefix)
}

// activeSessionKey returns the Redis key holding the active session ID
func activeSessionKey() string {
	return fmt.Sprintf("%s:active_session", keyPrefix)
}

// settingKey returns the Redis key for a key-value setting
func settingKey(key string) string {
	return fmt.Sprintf("%s:setting:%s", keyPrefix, key)
}
