package model

// Standing is a player with their derived running score for the active
// session. Standings lists are ordered score-descending.
type Standing struct {
	Player Player
	Score  int
}

// PlayerStats holds per-player aggregates over the active session's rounds.
// Players with no score entries have no stats row.
type PlayerStats struct {
	PlayerID PlayerID
	Name     string
	Color    string
	Rounds   int
	WinRate  float64 // percentage of rounds with a positive delta, one decimal
	Average  float64 // mean delta, one decimal
	Best     int
	Worst    int
}
