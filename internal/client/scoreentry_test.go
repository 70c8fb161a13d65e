package client

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoretab/scoretab/internal/api/request"
	"github.com/scoretab/scoretab/internal/api/response"
	"github.com/scoretab/scoretab/internal/model"
)

func rosterOf(ids ...string) func(ctx context.Context) ([]response.Player, error) {
	return func(context.Context) ([]response.Player, error) {
		players := make([]response.Player, len(ids))
		for i, id := range ids {
			players[i] = response.Player{ID: id}
		}
		return players, nil
	}
}

func selectRecorder(t *testing.T, c *Client, id string) {
	t.Helper()
	require.NoError(t, c.Recorder.Select(context.Background(), id))
}

func TestSubmitBalancedRound(t *testing.T) {
	var committed request.CommitRoundRequest
	gw := &fakeGateway{
		listPlayersFn: rosterOf("A", "B"),
		commitRoundFn: func(_ context.Context, req request.CommitRoundRequest) (*response.Round, error) {
			committed = req
			return &response.Round{ID: "r1"}, nil
		},
	}
	c := newTestClient(gw, filepath.Join(t.TempDir(), "settings.json"))
	selectRecorder(t, c, "A")

	require.NoError(t, c.Entry.SetDelta("A", 8000))
	require.NoError(t, c.Entry.SetDelta("B", -8000))
	require.NoError(t, c.Entry.SetDelta("C", 0))

	round, err := c.Entry.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "r1", round.ID)

	// Only the non-zero entries are sent; C sat out
	assert.Equal(t, "A", committed.RecorderID)
	require.Len(t, committed.Scores, 2)
	assert.Equal(t, request.ScoreEntry{PlayerID: "A", Delta: 8000}, committed.Scores[0])
	assert.Equal(t, request.ScoreEntry{PlayerID: "B", Delta: -8000}, committed.Scores[1])

	// Buffer is cleared after a successful submit
	assert.Empty(t, c.Entry.Deltas())
}

func TestAutoBalance(t *testing.T) {
	var committed request.CommitRoundRequest
	gw := &fakeGateway{
		listPlayersFn: rosterOf("A", "B", "C"),
		commitRoundFn: func(_ context.Context, req request.CommitRoundRequest) (*response.Round, error) {
			committed = req
			return &response.Round{ID: "r1"}, nil
		},
	}
	c := newTestClient(gw, filepath.Join(t.TempDir(), "settings.json"))
	selectRecorder(t, c, "A")

	require.NoError(t, c.Entry.SetDelta("A", 5000))
	require.NoError(t, c.Entry.SetDelta("B", -3000))

	// C is the first player without an entry, so it absorbs the difference
	chosen, err := c.Entry.AutoBalance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "C", chosen)
	assert.Equal(t, 0, c.Entry.Sum())

	_, err = c.Entry.Submit(context.Background())
	require.NoError(t, err)

	require.Len(t, committed.Scores, 3)
	assert.Equal(t, "C", committed.Scores[2].PlayerID)
	assert.Equal(t, -2000, committed.Scores[2].Delta)
}

func TestAutoBalanceNoOpWithoutNonZeroDelta(t *testing.T) {
	gw := &fakeGateway{listPlayersFn: rosterOf("A", "B")}
	c := newTestClient(gw, filepath.Join(t.TempDir(), "settings.json"))
	selectRecorder(t, c, "A")

	// Empty buffer
	chosen, err := c.Entry.AutoBalance(context.Background())
	require.NoError(t, err)
	assert.Empty(t, chosen)
	assert.Empty(t, c.Entry.Deltas())

	// All-zero buffer
	require.NoError(t, c.Entry.SetDelta("A", 0))
	chosen, err = c.Entry.AutoBalance(context.Background())
	require.NoError(t, err)
	assert.Empty(t, chosen)
	assert.Len(t, c.Entry.Deltas(), 1)
}

func TestAutoBalanceNoEligiblePlayer(t *testing.T) {
	gw := &fakeGateway{listPlayersFn: rosterOf("A", "B")}
	c := newTestClient(gw, filepath.Join(t.TempDir(), "settings.json"))
	selectRecorder(t, c, "A")

	require.NoError(t, c.Entry.SetDelta("A", 5000))
	require.NoError(t, c.Entry.SetDelta("B", -3000))

	// Both players already carry non-zero deltas, so nothing changes
	chosen, err := c.Entry.AutoBalance(context.Background())
	require.NoError(t, err)
	assert.Empty(t, chosen)
	assert.Equal(t, 2000, c.Entry.Sum())
}

func TestSubmitRejectsUnbalancedRoundLocally(t *testing.T) {
	gw := &fakeGateway{
		listPlayersFn: rosterOf("A", "B"),
		commitRoundFn: func(context.Context, request.CommitRoundRequest) (*response.Round, error) {
			t.Fatal("unbalanced round must not reach the server")
			return nil, nil
		},
	}
	c := newTestClient(gw, filepath.Join(t.TempDir(), "settings.json"))
	selectRecorder(t, c, "A")

	require.NoError(t, c.Entry.SetDelta("A", 5000))
	require.NoError(t, c.Entry.SetDelta("B", -4000))

	_, err := c.Entry.Submit(context.Background())
	assert.ErrorIs(t, err, model.ErrRoundNotZero)

	// Buffer survives the rejection for correction
	assert.Len(t, c.Entry.Deltas(), 2)
}

func TestSubmitRejectsEmptyRound(t *testing.T) {
	gw := &fakeGateway{listPlayersFn: rosterOf("A")}
	c := newTestClient(gw, filepath.Join(t.TempDir(), "settings.json"))
	selectRecorder(t, c, "A")

	_, err := c.Entry.Submit(context.Background())
	assert.ErrorIs(t, err, model.ErrRoundEmpty)
}

func TestSubmitRejectsAllZeroRoundLocally(t *testing.T) {
	gw := &fakeGateway{
		listPlayersFn: rosterOf("A", "B"),
		commitRoundFn: func(context.Context, request.CommitRoundRequest) (*response.Round, error) {
			t.Fatal("a round without a non-zero delta must not reach the server")
			return nil, nil
		},
	}
	c := newTestClient(gw, filepath.Join(t.TempDir(), "settings.json"))
	selectRecorder(t, c, "A")

	require.NoError(t, c.Entry.SetDelta("A", 0))
	require.NoError(t, c.Entry.SetDelta("B", 0))

	_, err := c.Entry.Submit(context.Background())
	assert.ErrorIs(t, err, model.ErrRoundEmpty)
}

func TestScoreEntryRequiresRecorder(t *testing.T) {
	gw := &fakeGateway{listPlayersFn: rosterOf("A", "B")}
	c := newTestClient(gw, filepath.Join(t.TempDir(), "settings.json"))

	assert.ErrorIs(t, c.Entry.SetDelta("A", 1000), ErrNoRecorder)
	_, err := c.Entry.AutoBalance(context.Background())
	assert.ErrorIs(t, err, ErrNoRecorder)

	_, err = c.Entry.Submit(context.Background())
	assert.ErrorIs(t, err, ErrNoRecorder)
}

func TestSubmitInvalidatesRoundViews(t *testing.T) {
	gw := &fakeGateway{
		listPlayersFn: rosterOf("A", "B"),
		commitRoundFn: func(context.Context, request.CommitRoundRequest) (*response.Round, error) {
			return &response.Round{ID: "r1"}, nil
		},
	}
	c := newTestClient(gw, filepath.Join(t.TempDir(), "settings.json"))
	selectRecorder(t, c, "A")
	ctx := context.Background()

	_, err := c.Standings.Standings(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, gw.standingsCalls)

	require.NoError(t, c.Entry.SetDelta("A", 1000))
	require.NoError(t, c.Entry.SetDelta("B", -1000))
	_, err = c.Entry.Submit(ctx)
	require.NoError(t, err)

	_, err = c.Standings.Standings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, gw.standingsCalls)
}
