package standings

import (
	"context"
	"math"
	"sort"

	"github.com/scoretab/scoretab/internal/model"
	"github.com/scoretab/scoretab/internal/storage"
)

// Service derives standings and per-player statistics from the active
// session's committed rounds. Both are pure reads; nothing is cached
// server-side.
type Service struct {
	storage storage.Storage
}

// New creates a new standings service
func New(storage storage.Storage) *Service {
	return &Service{storage: storage}
}

// Standings returns every player with their running score for the active
// session, ordered score-descending. With no active session every score
// is zero.
func (s *Service) Standings(ctx context.Context) ([]model.Standing, error) {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	totals, err := s.sessionTotals(ctx)
	if err != nil {
		return nil, err
	}

	standings := make([]model.Standing, 0, len(players))
	for _, p := range players {
		standings = append(standings, model.Standing{
			Player: *p,
			Score:  totals[p.ID],
		})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Score > standings[j].Score
	})

	return standings, nil
}

// Statistics returns per-player aggregates over the active session's
// rounds, ordered win-rate-descending. Players with no score entries are
// omitted.
func (s *Service) Statistics(ctx context.Context) ([]model.PlayerStats, error) {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	deltas, err := s.sessionDeltas(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]model.PlayerStats, 0, len(players))
	for _, p := range players {
		ds := deltas[p.ID]
		if len(ds) == 0 {
			continue
		}

		sum, wins := 0, 0
		best, worst := ds[0], ds[0]
		for _, d := range ds {
			sum += d
			if d > 0 {
				wins++
			}
			if d > best {
				best = d
			}
			if d < worst {
				worst = d
			}
		}

		stats = append(stats, model.PlayerStats{
			PlayerID: p.ID,
			Name:     p.Name,
			Color:    p.Color,
			Rounds:   len(ds),
			WinRate:  round1(float64(wins) / float64(len(ds)) * 100),
			Average:  round1(float64(sum) / float64(len(ds))),
			Best:     best,
			Worst:    worst,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].WinRate > stats[j].WinRate
	})

	return stats, nil
}

// sessionTotals sums deltas per player for the active session
func (s *Service) sessionTotals(ctx context.Context) (map[model.PlayerID]int, error) {
	totals := make(map[model.PlayerID]int)
	rounds, err := s.activeRounds(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range rounds {
		for _, entry := range r.Scores {
			totals[entry.PlayerID] += entry.Delta
		}
	}
	return totals, nil
}

// sessionDeltas collects each player's deltas for the active session
func (s *Service) sessionDeltas(ctx context.Context) (map[model.PlayerID][]int, error) {
	deltas := make(map[model.PlayerID][]int)
	rounds, err := s.activeRounds(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range rounds {
		for _, entry := range r.Scores {
			deltas[entry.PlayerID] = append(deltas[entry.PlayerID], entry.Delta)
		}
	}
	return deltas, nil
}

func (s *Service) activeRounds(ctx context.Context) ([]*model.Round, error) {
	sessionID, err := s.storage.ActiveSessionID(ctx)
	if err != nil {
		return nil, err
	}
	if sessionID == "" {
		return nil, nil
	}
	return s.storage.ListRounds(ctx, sessionID)
}

// round1 rounds to one decimal place
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
