package client

import (
	"context"
	"errors"
	"io"

	"github.com/scoretab/scoretab/internal/api/request"
	"github.com/scoretab/scoretab/internal/api/response"
)

var errNotStubbed = errors.New("not stubbed")

// fakeGateway implements Gateway with overridable func fields and call
// counters for the methods the tests care about
type fakeGateway struct {
	listPlayersFn   func(ctx context.Context) ([]response.Player, error)
	commitRoundFn   func(ctx context.Context, req request.CommitRoundRequest) (*response.Round, error)
	deletePlayerFn  func(ctx context.Context, id string, force bool) error
	playerLockedFn  func(ctx context.Context, id string) (bool, error)
	deleteRoundFn   func(ctx context.Context, id string) error
	listRoundsFn    func(ctx context.Context) ([]response.Round, error)
	standingsFn     func(ctx context.Context) ([]response.Standing, error)
	statisticsFn    func(ctx context.Context) ([]response.PlayerStats, error)
	resetGameFn     func(ctx context.Context) error
	listSessionsFn  func(ctx context.Context) ([]response.Session, error)
	activeSessionFn func(ctx context.Context) (*response.Session, error)
	loadSessionFn   func(ctx context.Context, id string) (*response.Session, error)
	verifySecretFn  func(ctx context.Context, code string) error
	changeSecretFn  func(ctx context.Context, oldCode, newCode string) error

	listPlayersCalls  int
	listRoundsCalls   int
	standingsCalls    int
	statisticsCalls   int
	listSessionsCalls int
	verifyCalls       int
}

var _ Gateway = (*fakeGateway)(nil)

func (f *fakeGateway) ListPlayers(ctx context.Context) ([]response.Player, error) {
	f.listPlayersCalls++
	if f.listPlayersFn != nil {
		return f.listPlayersFn(ctx)
	}
	return nil, nil
}

func (f *fakeGateway) CreatePlayer(ctx context.Context, name, color string) (*response.Player, error) {
	return &response.Player{ID: "p_" + name, Name: name, Color: color}, nil
}

func (f *fakeGateway) UpdatePlayer(ctx context.Context, id string, upd request.UpdatePlayerRequest) (*response.Player, error) {
	return &response.Player{ID: id}, nil
}

func (f *fakeGateway) DeletePlayer(ctx context.Context, id string, force bool) error {
	if f.deletePlayerFn != nil {
		return f.deletePlayerFn(ctx, id, force)
	}
	return nil
}

func (f *fakeGateway) PlayerLocked(ctx context.Context, id string) (bool, error) {
	if f.playerLockedFn != nil {
		return f.playerLockedFn(ctx, id)
	}
	return false, nil
}

func (f *fakeGateway) UploadAvatar(ctx context.Context, id, filename string, r io.Reader) (string, error) {
	return "/static/avatars/" + id, nil
}

func (f *fakeGateway) ListRounds(ctx context.Context) ([]response.Round, error) {
	f.listRoundsCalls++
	if f.listRoundsFn != nil {
		return f.listRoundsFn(ctx)
	}
	return nil, nil
}

func (f *fakeGateway) CommitRound(ctx context.Context, req request.CommitRoundRequest) (*response.Round, error) {
	if f.commitRoundFn != nil {
		return f.commitRoundFn(ctx, req)
	}
	return nil, errNotStubbed
}

func (f *fakeGateway) DeleteRound(ctx context.Context, id string) error {
	if f.deleteRoundFn != nil {
		return f.deleteRoundFn(ctx, id)
	}
	return nil
}

func (f *fakeGateway) Standings(ctx context.Context) ([]response.Standing, error) {
	f.standingsCalls++
	if f.standingsFn != nil {
		return f.standingsFn(ctx)
	}
	return nil, nil
}

func (f *fakeGateway) Statistics(ctx context.Context) ([]response.PlayerStats, error) {
	f.statisticsCalls++
	if f.statisticsFn != nil {
		return f.statisticsFn(ctx)
	}
	return nil, nil
}

func (f *fakeGateway) ResetGame(ctx context.Context) error {
	if f.resetGameFn != nil {
		return f.resetGameFn(ctx)
	}
	return nil
}

func (f *fakeGateway) ListSessions(ctx context.Context) ([]response.Session, error) {
	f.listSessionsCalls++
	if f.listSessionsFn != nil {
		return f.listSessionsFn(ctx)
	}
	return nil, nil
}

func (f *fakeGateway) ActiveSession(ctx context.Context) (*response.Session, error) {
	if f.activeSessionFn != nil {
		return f.activeSessionFn(ctx)
	}
	return nil, nil
}

func (f *fakeGateway) CreateSession(ctx context.Context, name string) (*response.Session, error) {
	return &response.Session{ID: "s_" + name, Name: name}, nil
}

func (f *fakeGateway) LoadSession(ctx context.Context, id string) (*response.Session, error) {
	if f.loadSessionFn != nil {
		return f.loadSessionFn(ctx, id)
	}
	return &response.Session{ID: id, Active: true}, nil
}

func (f *fakeGateway) RenameSession(ctx context.Context, id, name string) (*response.Session, error) {
	return &response.Session{ID: id, Name: name}, nil
}

func (f *fakeGateway) DeleteSession(ctx context.Context, id string) error {
	return nil
}

func (f *fakeGateway) VerifySecret(ctx context.Context, code string) error {
	f.verifyCalls++
	if f.verifySecretFn != nil {
		return f.verifySecretFn(ctx, code)
	}
	return nil
}

func (f *fakeGateway) ChangeSecret(ctx context.Context, oldCode, newCode string) error {
	if f.changeSecretFn != nil {
		return f.changeSecretFn(ctx, oldCode, newCode)
	}
	return nil
}

func (f *fakeGateway) Health(ctx context.Context) error {
	return nil
}

// newTestClient wires a client around a fake gateway with settings in a
// temp file
func newTestClient(gw Gateway, settingsPath string) *Client {
	settings, err := NewSettingsStore(settingsPath)
	if err != nil {
		panic(err)
	}
	return New(gw, settings)
}
