package response

import (
	"time"

	"github.com/scoretab/scoretab/internal/model"
	"github.com/scoretab/scoretab/internal/services/session"
)

// Player represents a player in API responses
type Player struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Color      string    `json:"color"`
	AvatarPath string    `json:"avatar_path,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:         string(p.ID),
		Name:       p.Name,
		Color:      p.Color,
		AvatarPath: p.AvatarPath,
		CreatedAt:  p.CreatedAt,
	}
}

// ScoreEntry is a single player delta within a round
type ScoreEntry struct {
	PlayerID string `json:"player_id"`
	Delta    int    `json:"delta"`
}

// Round represents a committed round in API responses
type Round struct {
	ID         string       `json:"id"`
	SessionID  string       `json:"session_id"`
	RecorderID string       `json:"recorder_id"`
	Scores     []ScoreEntry `json:"scores"`
	CreatedAt  time.Time    `json:"created_at"`
}

// RoundFromModel converts a model.Round to a response Round
func RoundFromModel(r *model.Round) Round {
	scores := make([]ScoreEntry, len(r.Scores))
	for i, s := range r.Scores {
		scores[i] = ScoreEntry{
			PlayerID: string(s.PlayerID),
			Delta:    s.Delta,
		}
	}
	return Round{
		ID:         string(r.ID),
		SessionID:  string(r.SessionID),
		RecorderID: string(r.RecorderID),
		Scores:     scores,
		CreatedAt:  r.CreatedAt,
	}
}

// RoundsFromModels converts a slice of rounds
func RoundsFromModels(rounds []*model.Round) []Round {
	out := make([]Round, len(rounds))
	for i, r := range rounds {
		out[i] = RoundFromModel(r)
	}
	return out
}

// Standing is a player's cumulative score
type Standing struct {
	Player Player `json:"player"`
	Score  int    `json:"score"`
}

// StandingFromModel converts a model.Standing
func StandingFromModel(s model.Standing) Standing {
	return Standing{
		Player: PlayerFromModel(&s.Player),
		Score:  s.Score,
	}
}

// PlayerStats is a player's derived statistics
type PlayerStats struct {
	PlayerID string  `json:"player_id"`
	Name     string  `json:"name"`
	Color    string  `json:"color"`
	Rounds   int     `json:"rounds"`
	WinRate  float64 `json:"win_rate"`
	Average  float64 `json:"average"`
	Best     int     `json:"best"`
	Worst    int     `json:"worst"`
}

// PlayerStatsFromModel converts a model.PlayerStats
func PlayerStatsFromModel(s model.PlayerStats) PlayerStats {
	return PlayerStats{
		PlayerID: string(s.PlayerID),
		Name:     s.Name,
		Color:    s.Color,
		Rounds:   s.Rounds,
		WinRate:  s.WinRate,
		Average:  s.Average,
		Best:     s.Best,
		Worst:    s.Worst,
	}
}

// Session represents a session in API responses
type Session struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Active     bool      `json:"active"`
	RoundCount int       `json:"round_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// SessionFromInfo converts a session.Info
func SessionFromInfo(info session.Info) Session {
	return Session{
		ID:         string(info.Session.ID),
		Name:       info.Session.Name,
		Active:     info.Active,
		RoundCount: info.RoundCount,
		CreatedAt:  info.Session.CreatedAt,
	}
}

// VerifyResponse is the response for admin secret verification
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

// AvatarResponse is the response after uploading an avatar
type AvatarResponse struct {
	AvatarPath string `json:"avatar_path"`
}

// LockedResponse reports whether a player is delete-protected
type LockedResponse struct {
	Locked bool `json:"locked"`
}
