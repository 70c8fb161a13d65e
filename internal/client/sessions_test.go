package client

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoretab/scoretab/internal/api/response"
)

func TestSessionCreateDoesNotTouchActiveViews(t *testing.T) {
	gw := &fakeGateway{}
	c := newTestClient(gw, filepath.Join(t.TempDir(), "settings.json"))
	ctx := context.Background()

	_, err := c.Sessions.List(ctx)
	require.NoError(t, err)
	_, err = c.Standings.Standings(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, gw.standingsCalls)

	_, err = c.Sessions.Create(ctx, "New night")
	require.NoError(t, err)

	// The session list refetches but standings stay cached: creating a
	// session does not change which session is active
	_, err = c.Sessions.List(ctx)
	require.NoError(t, err)
	_, err = c.Standings.Standings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, gw.listSessionsCalls)
	assert.Equal(t, 1, gw.standingsCalls)
}

func TestSessionActiveCached(t *testing.T) {
	calls := 0
	gw := &fakeGateway{
		activeSessionFn: func(context.Context) (*response.Session, error) {
			calls++
			return &response.Session{ID: "s1", Active: true}, nil
		},
	}
	c := newTestClient(gw, filepath.Join(t.TempDir(), "settings.json"))
	ctx := context.Background()

	sess, err := c.Sessions.Active(ctx)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "s1", sess.ID)

	_, err = c.Sessions.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestGameResetThroughGate(t *testing.T) {
	resets := 0
	gw := &fakeGateway{
		resetGameFn: func(context.Context) error {
			resets++
			return nil
		},
	}
	c := newTestClient(gw, filepath.Join(t.TempDir(), "settings.json"))
	ctx := context.Background()

	_, err := c.Standings.Standings(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, gw.standingsCalls)

	require.NoError(t, c.Control.RequestReset())
	assert.Equal(t, 0, resets)

	require.NoError(t, c.Gate.Submit(ctx, "8888"))
	assert.Equal(t, 1, resets)

	// Reset invalidates round-derived views
	_, err = c.Standings.Standings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, gw.standingsCalls)
}

func TestSecretChangeThroughGate(t *testing.T) {
	var gotOld, gotNew string
	gw := &fakeGateway{
		changeSecretFn: func(_ context.Context, oldCode, newCode string) error {
			gotOld, gotNew = oldCode, newCode
			return nil
		},
	}
	c := newTestClient(gw, filepath.Join(t.TempDir(), "settings.json"))

	require.NoError(t, c.Control.RequestSecretChange("4321"))
	require.NoError(t, c.Gate.Submit(context.Background(), "8888"))

	assert.Equal(t, "8888", gotOld)
	assert.Equal(t, "4321", gotNew)
}
