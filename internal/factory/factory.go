package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/scoretab/scoretab/internal/avatar"
	"github.com/scoretab/scoretab/internal/dependencies/clock"
	"github.com/scoretab/scoretab/internal/dependencies/idgen"
	"github.com/scoretab/scoretab/internal/services/admin"
	"github.com/scoretab/scoretab/internal/services/ledger"
	"github.com/scoretab/scoretab/internal/services/roster"
	"github.com/scoretab/scoretab/internal/services/session"
	"github.com/scoretab/scoretab/internal/services/standings"
	"github.com/scoretab/scoretab/internal/storage"
	"github.com/scoretab/scoretab/internal/storage/memory"
	redisstorage "github.com/scoretab/scoretab/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock
	IDGen idgen.Generator

	// Services
	RosterService    *roster.Service
	LedgerService    *ledger.Service
	SessionService   *session.Service
	StandingsService *standings.Service
	AdminService     *admin.Service
	AvatarStore      *avatar.Store
}

// Config holds configuration for the application factory
type Config struct {
	// AvatarDir is the directory avatar files are stored in (optional)
	// If empty, a temporary directory is used
	AvatarDir string
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType is "memory" or "redis"
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	avatarDir := cfg.AvatarDir
	if avatarDir == "" {
		avatarDir = "data/avatars"
	}
	avatars, err := avatar.New(avatarDir, logger)
	if err != nil {
		return nil, err
	}

	clk := clock.New()
	gen := idgen.New()

	return newWithDependencies(store, clk, gen, avatars, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, gen idgen.Generator, avatars *avatar.Store, logger *slog.Logger) *App {
	rosterService := roster.New(store, clk, gen, logger)
	ledgerService := ledger.New(store, clk, gen, logger)
	sessionService := session.New(store, clk, gen, logger)
	standingsService := standings.New(store)
	adminService := admin.New(store, logger)

	return &App{
		Storage:          store,
		Clock:            clk,
		IDGen:            gen,
		RosterService:    rosterService,
		LedgerService:    ledgerService,
		SessionService:   sessionService,
		StandingsService: standingsService,
		AdminService:     adminService,
		AvatarStore:      avatars,
	}
}
