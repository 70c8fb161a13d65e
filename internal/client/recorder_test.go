package client

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoretab/scoretab/internal/model"
)

func TestRecorderSelectAndPersist(t *testing.T) {
	gw := &fakeGateway{listPlayersFn: rosterOf("A", "B")}
	path := filepath.Join(t.TempDir(), "settings.json")

	c := newTestClient(gw, path)
	require.NoError(t, c.Recorder.Select(context.Background(), "B"))

	id, err := c.Recorder.Current()
	require.NoError(t, err)
	assert.Equal(t, "B", id)

	// A fresh client over the same settings file sees the selection
	restarted := newTestClient(gw, path)
	id, err = restarted.Recorder.Current()
	require.NoError(t, err)
	assert.Equal(t, "B", id)
}

func TestRecorderSelectUnknownPlayer(t *testing.T) {
	gw := &fakeGateway{listPlayersFn: rosterOf("A")}
	c := newTestClient(gw, filepath.Join(t.TempDir(), "settings.json"))

	err := c.Recorder.Select(context.Background(), "ghost")
	assert.Error(t, err)

	_, err = c.Recorder.Current()
	assert.ErrorIs(t, err, ErrNoRecorder)
}

func TestRecorderValidateClearsRemovedPlayer(t *testing.T) {
	gw := &fakeGateway{listPlayersFn: rosterOf("A", "B")}
	c := newTestClient(gw, filepath.Join(t.TempDir(), "settings.json"))
	require.NoError(t, c.Recorder.Select(context.Background(), "B"))

	// B leaves the roster
	gw.listPlayersFn = rosterOf("A")

	_, err := c.Recorder.Validate(context.Background())
	assert.ErrorIs(t, err, ErrNoRecorder)

	// The stale selection is gone from settings too
	_, err = c.Recorder.Current()
	assert.ErrorIs(t, err, ErrNoRecorder)
}

func TestRecorderSelectRejectsWhenSet(t *testing.T) {
	gw := &fakeGateway{listPlayersFn: rosterOf("A", "B")}
	c := newTestClient(gw, filepath.Join(t.TempDir(), "settings.json"))
	require.NoError(t, c.Recorder.Select(context.Background(), "A"))

	// The selection can only change hands through the gated unlock
	err := c.Recorder.Select(context.Background(), "B")
	assert.ErrorIs(t, err, ErrRecorderSet)

	id, err := c.Recorder.Current()
	require.NoError(t, err)
	assert.Equal(t, "A", id)
}

func TestRecorderUnlockNeedsChallenge(t *testing.T) {
	gw := &fakeGateway{
		listPlayersFn: rosterOf("A"),
		verifySecretFn: func(_ context.Context, code string) error {
			if code != "8888" {
				return model.ErrInvalidSecret
			}
			return nil
		},
	}
	c := newTestClient(gw, filepath.Join(t.TempDir(), "settings.json"))
	require.NoError(t, c.Recorder.Select(context.Background(), "A"))

	require.NoError(t, c.Recorder.RequestUnlock())
	assert.Equal(t, GateChallenging, c.Gate.State())

	// The selection survives a wrong secret
	err := c.Gate.Submit(context.Background(), "0000")
	assert.ErrorIs(t, err, model.ErrInvalidSecret)
	id, err := c.Recorder.Current()
	require.NoError(t, err)
	assert.Equal(t, "A", id)

	require.NoError(t, c.Gate.Submit(context.Background(), "8888"))
	_, err = c.Recorder.Current()
	assert.ErrorIs(t, err, ErrNoRecorder)
	assert.Equal(t, GateIdle, c.Gate.State())
}

func TestRecorderUnlockCancelKeepsSelection(t *testing.T) {
	gw := &fakeGateway{listPlayersFn: rosterOf("A")}
	c := newTestClient(gw, filepath.Join(t.TempDir(), "settings.json"))
	require.NoError(t, c.Recorder.Select(context.Background(), "A"))

	require.NoError(t, c.Recorder.RequestUnlock())
	c.Gate.Cancel()

	id, err := c.Recorder.Current()
	require.NoError(t, err)
	assert.Equal(t, "A", id)
	assert.Equal(t, 0, gw.verifyCalls)
}

func TestRecorderUnlockWithoutSelection(t *testing.T) {
	gw := &fakeGateway{}
	c := newTestClient(gw, filepath.Join(t.TempDir(), "settings.json"))

	assert.ErrorIs(t, c.Recorder.RequestUnlock(), ErrNoRecorder)
	assert.Equal(t, GateIdle, c.Gate.State())
}
