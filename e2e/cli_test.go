package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoretab/scoretab/internal/api"
	"github.com/scoretab/scoretab/internal/factory"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath   string
	serverURL    string
	settingsFile string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "scoretab-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/scoretab")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	settingsFile := filepath.Join(t.TempDir(), "settings.json")

	return &cliRunner{
		binaryPath:   binaryPath,
		serverURL:    serverURL,
		settingsFile: settingsFile,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--settings", r.settingsFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	app, err := factory.New(factory.Config{
		AvatarDir: filepath.Join(t.TempDir(), "avatars"),
		Logger:    logger,
	})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:           logger,
		RosterService:    app.RosterService,
		LedgerService:    app.LedgerService,
		SessionService:   app.SessionService,
		StandingsService: app.StandingsService,
		AdminService:     app.AdminService,
		AvatarStore:      app.AvatarStore,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		addr: serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type playerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type roundResponse struct {
	ID         string `json:"id"`
	RecorderID string `json:"recorder_id"`
	Scores     []struct {
		PlayerID string `json:"player_id"`
		Delta    int    `json:"delta"`
	} `json:"scores"`
}

type standingResponse struct {
	Player playerResponse `json:"player"`
	Score  int            `json:"score"`
}

type sessionResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp messageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "Status: ok", resp.Message)
}

func TestCLI_FullScoringFlow(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Create two players
	output, err := cli.run("player", "add", "Alice")
	require.NoError(t, err, "output: %s", output)
	var alice playerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &alice))

	output, err = cli.run("player", "add", "Bob", "--color", "#ff0000")
	require.NoError(t, err, "output: %s", output)
	var bob playerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &bob))
	assert.Equal(t, "#ff0000", bob.Color)

	// Create and activate a session
	output, err = cli.run("session", "create", "Game night", "--load")
	require.NoError(t, err, "output: %s", output)
	var sess sessionResponse
	require.NoError(t, json.Unmarshal([]byte(output), &sess))
	assert.True(t, sess.Active)

	// Scoring requires a recorder
	output, err = cli.run("round", "record", "--score", alice.ID+"=8000", "--score", bob.ID+"=-8000")
	require.Error(t, err, "output: %s", output)

	output, err = cli.run("recorder", "set", alice.ID)
	require.NoError(t, err, "output: %s", output)

	// Record a round with auto-balance; Bob is the first unset player
	output, err = cli.run("round", "record", "--score", alice.ID+"=5000", "--balance")
	require.NoError(t, err, "output: %s", output)
	var round roundResponse
	require.NoError(t, json.Unmarshal([]byte(output), &round))
	assert.Equal(t, alice.ID, round.RecorderID)
	require.Len(t, round.Scores, 2)
	assert.Equal(t, -5000, round.Scores[1].Delta)

	// Standings reflect the round
	output, err = cli.run("game", "standings")
	require.NoError(t, err, "output: %s", output)
	var standings []standingResponse
	require.NoError(t, json.Unmarshal([]byte(output), &standings))
	require.Len(t, standings, 2)
	assert.Equal(t, alice.ID, standings[0].Player.ID)
	assert.Equal(t, 5000, standings[0].Score)

	// Alice recorded a round, so deleting her needs the admin code
	output, err = cli.run("player", "delete", alice.ID)
	require.Error(t, err, "output: %s", output)

	output, err = cli.run("player", "delete", alice.ID, "--code", "8888")
	require.NoError(t, err, "output: %s", output)
}

func TestCLI_GameResetRequiresCode(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("player", "add", "Alice")
	require.NoError(t, err, "output: %s", output)
	var alice playerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &alice))

	output, err = cli.run("session", "create", "Night", "--load")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("player", "add", "Bob")
	require.NoError(t, err, "output: %s", output)
	var bob playerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &bob))

	output, err = cli.run("recorder", "set", alice.ID)
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("round", "record", "--score", alice.ID+"=1000", "--score", bob.ID+"=-1000")
	require.NoError(t, err, "output: %s", output)

	// Wrong code is rejected and the rounds survive
	output, err = cli.run("game", "reset", "--code", "0000")
	require.Error(t, err, "output: %s", output)

	output, err = cli.run("game", "reset", "--code", "8888")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("round", "list")
	require.NoError(t, err, "output: %s", output)
	var rounds []roundResponse
	require.NoError(t, json.Unmarshal([]byte(output), &rounds))
	assert.Empty(t, rounds)
}

func TestCLI_GatedUndoAndRecorderClear(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("player", "add", "Alice")
	require.NoError(t, err, "output: %s", output)
	var alice playerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &alice))

	output, err = cli.run("player", "add", "Bob")
	require.NoError(t, err, "output: %s", output)
	var bob playerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &bob))

	output, err = cli.run("session", "create", "Night", "--load")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("recorder", "set", alice.ID)
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("round", "record", "--score", alice.ID+"=2000", "--score", bob.ID+"=-2000")
	require.NoError(t, err, "output: %s", output)

	// Undo refuses a wrong code and the round survives
	output, err = cli.run("round", "undo", "--code", "0000")
	require.Error(t, err, "output: %s", output)

	output, err = cli.run("round", "list")
	require.NoError(t, err, "output: %s", output)
	var rounds []roundResponse
	require.NoError(t, json.Unmarshal([]byte(output), &rounds))
	require.Len(t, rounds, 1)

	output, err = cli.run("round", "undo", "--code", "8888")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("round", "list")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &rounds))
	assert.Empty(t, rounds)

	// Releasing the recorder needs the code too
	output, err = cli.run("recorder", "clear", "--code", "0000")
	require.Error(t, err, "output: %s", output)

	output, err = cli.run("recorder", "clear", "--code", "8888")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("recorder", "show")
	require.NoError(t, err, "output: %s", output)
	var msg messageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &msg))
	assert.Equal(t, "No recorder selected", msg.Message)
}

func TestCLI_LangPersists(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("lang")
	require.NoError(t, err, "output: %s", output)
	var msg messageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &msg))
	assert.Equal(t, "Language: en", msg.Message)

	output, err = cli.run("lang", "fr")
	require.Error(t, err, "output: %s", output)

	output, err = cli.run("lang", "zh")
	require.NoError(t, err, "output: %s", output)

	// Separate invocation reads the persisted choice back
	output, err = cli.run("lang")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &msg))
	assert.Equal(t, "Language: zh", msg.Message)
}
