package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/scoretab/scoretab/internal/api/handler"
	"github.com/scoretab/scoretab/internal/api/middleware"
	"github.com/scoretab/scoretab/internal/avatar"
	"github.com/scoretab/scoretab/internal/services/admin"
	"github.com/scoretab/scoretab/internal/services/ledger"
	"github.com/scoretab/scoretab/internal/services/roster"
	"github.com/scoretab/scoretab/internal/services/session"
	"github.com/scoretab/scoretab/internal/services/standings"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger           *slog.Logger
	RosterService    *roster.Service
	LedgerService    *ledger.Service
	SessionService   *session.Service
	StandingsService *standings.Service
	AdminService     *admin.Service
	AvatarStore      *avatar.Store
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.RosterService, cfg.AvatarStore)
	roundHandler := handler.NewRoundHandler(cfg.LedgerService)
	sessionHandler := handler.NewSessionHandler(cfg.SessionService)
	gameHandler := handler.NewGameHandler(cfg.StandingsService, cfg.LedgerService)
	adminHandler := handler.NewAdminHandler(cfg.AdminService)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Player routes
	api.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/players", playerHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/players/{id}", playerHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}", playerHandler.Update).Methods(http.MethodPatch)
	api.HandleFunc("/players/{id}", playerHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/players/{id}/locked", playerHandler.Locked).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}/avatar", playerHandler.UploadAvatar).Methods(http.MethodPost)

	// Round routes (scoped to the active session)
	api.HandleFunc("/rounds", roundHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/rounds", roundHandler.Commit).Methods(http.MethodPost)
	api.HandleFunc("/rounds/{id}", roundHandler.Delete).Methods(http.MethodDelete)

	// Derived views and game control
	api.HandleFunc("/standings", gameHandler.Standings).Methods(http.MethodGet)
	api.HandleFunc("/statistics", gameHandler.Statistics).Methods(http.MethodGet)
	api.HandleFunc("/game/reset", gameHandler.Reset).Methods(http.MethodPost)

	// Session routes
	api.HandleFunc("/sessions", sessionHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/sessions", sessionHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/sessions/active", sessionHandler.Active).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/load", sessionHandler.Load).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}", sessionHandler.Rename).Methods(http.MethodPatch)
	api.HandleFunc("/sessions/{id}", sessionHandler.Delete).Methods(http.MethodDelete)

	// Admin secret routes
	api.HandleFunc("/admin/verify", adminHandler.Verify).Methods(http.MethodPost)
	api.HandleFunc("/admin/code", adminHandler.ChangeCode).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Avatar files
	r.PathPrefix(avatar.PublicPrefix).Handler(
		http.StripPrefix(avatar.PublicPrefix, http.FileServer(http.Dir(cfg.AvatarStore.Dir()))),
	)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
