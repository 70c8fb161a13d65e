package factory

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/scoretab/scoretab/internal/avatar"
	"github.com/scoretab/scoretab/internal/dependencies/mocks"
	"github.com/scoretab/scoretab/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
	MockIDGen *mocks.MockIDGenerator
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockIDGen := mocks.NewMockIDGenerator()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	dir, err := os.MkdirTemp("", "scoretab-avatars-*")
	if err != nil {
		panic(err)
	}
	avatars, err := avatar.New(dir, logger)
	if err != nil {
		panic(err)
	}

	app := newWithDependencies(store, mockClock, mockIDGen, avatars, logger)

	return &TestApp{
		App:       app,
		MockClock: mockClock,
		MockIDGen: mockIDGen,
	}
}
