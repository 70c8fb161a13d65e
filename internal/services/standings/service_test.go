package standings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/scoretab/scoretab/internal/model"
	"github.com/scoretab/scoretab/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage)
	s.ctx = context.Background()

	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "p-a", Name: "Alice"})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "p-b", Name: "Bob"})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "p-c", Name: "Carol"})
	_ = s.storage.SaveSession(s.ctx, &model.Session{ID: "sess-1", Name: "Table"})
	_ = s.storage.SetActiveSessionID(s.ctx, "sess-1")
}

func (s *ServiceSuite) commit(id model.RoundID, scores ...model.ScoreEntry) {
	_ = s.storage.SaveRound(s.ctx, &model.Round{ID: id, SessionID: "sess-1", Scores: scores})
}

func (s *ServiceSuite) TestStandingsScoreDescending() {
	s.commit("r-1",
		model.ScoreEntry{PlayerID: "p-a", Delta: 8000},
		model.ScoreEntry{PlayerID: "p-b", Delta: -8000},
	)
	s.commit("r-2",
		model.ScoreEntry{PlayerID: "p-b", Delta: 3000},
		model.ScoreEntry{PlayerID: "p-c", Delta: -3000},
	)

	standings, err := s.service.Standings(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(standings, 3)

	s.Equal("Alice", standings[0].Player.Name)
	s.Equal(8000, standings[0].Score)
	s.Equal("Carol", standings[1].Player.Name)
	s.Equal(-3000, standings[1].Score)
	s.Equal("Bob", standings[2].Player.Name)
	s.Equal(-5000, standings[2].Score)
}

func (s *ServiceSuite) TestStandingsIncludesPlayersWithoutRounds() {
	standings, err := s.service.Standings(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(standings, 3)
	for _, st := range standings {
		s.Equal(0, st.Score)
	}
}

func (s *ServiceSuite) TestStandingsIgnoresOtherSessions() {
	_ = s.storage.SaveSession(s.ctx, &model.Session{ID: "sess-2", Name: "Other"})
	_ = s.storage.SaveRound(s.ctx, &model.Round{
		ID: "r-x", SessionID: "sess-2",
		Scores: []model.ScoreEntry{{PlayerID: "p-a", Delta: 1000}, {PlayerID: "p-b", Delta: -1000}},
	})

	standings, err := s.service.Standings(s.ctx)
	s.Require().NoError(err)
	for _, st := range standings {
		s.Equal(0, st.Score)
	}
}

func (s *ServiceSuite) TestStatisticsFormulas() {
	s.commit("r-1",
		model.ScoreEntry{PlayerID: "p-a", Delta: 8000},
		model.ScoreEntry{PlayerID: "p-b", Delta: -8000},
	)
	s.commit("r-2",
		model.ScoreEntry{PlayerID: "p-a", Delta: -3000},
		model.ScoreEntry{PlayerID: "p-b", Delta: 3000},
	)
	s.commit("r-3",
		model.ScoreEntry{PlayerID: "p-a", Delta: 1000},
		model.ScoreEntry{PlayerID: "p-b", Delta: -1000},
	)

	stats, err := s.service.Statistics(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(stats, 2)

	// Alice: 2 wins of 3 rounds
	alice := stats[0]
	s.Equal("Alice", alice.Name)
	s.Equal(3, alice.Rounds)
	s.InDelta(66.7, alice.WinRate, 0.001)
	s.InDelta(2000.0, alice.Average, 0.001)
	s.Equal(8000, alice.Best)
	s.Equal(-3000, alice.Worst)

	bob := stats[1]
	s.Equal("Bob", bob.Name)
	s.InDelta(33.3, bob.WinRate, 0.001)
	s.InDelta(-2000.0, bob.Average, 0.001)
	s.Equal(3000, bob.Best)
	s.Equal(-8000, bob.Worst)
}

func (s *ServiceSuite) TestStatisticsOmitsPlayersWithoutEntries() {
	s.commit("r-1",
		model.ScoreEntry{PlayerID: "p-a", Delta: 500},
		model.ScoreEntry{PlayerID: "p-b", Delta: -500},
	)

	stats, err := s.service.Statistics(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(stats, 2)
	for _, st := range stats {
		s.NotEqual("Carol", st.Name)
	}
}

func (s *ServiceSuite) TestStatisticsZeroDeltaIsNotAWin() {
	s.commit("r-1",
		model.ScoreEntry{PlayerID: "p-a", Delta: 1000},
		model.ScoreEntry{PlayerID: "p-b", Delta: -1000},
		model.ScoreEntry{PlayerID: "p-c", Delta: 0},
	)

	stats, err := s.service.Statistics(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(stats, 3)

	var carol model.PlayerStats
	for _, st := range stats {
		if st.Name == "Carol" {
			carol = st
		}
	}
	s.Equal(1, carol.Rounds)
	s.InDelta(0.0, carol.WinRate, 0.001)
}
