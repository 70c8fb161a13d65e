package roster

import (
	"context"
	"log/slog"
	"strings"

	"github.com/scoretab/scoretab/internal/dependencies/clock"
	"github.com/scoretab/scoretab/internal/dependencies/idgen"
	"github.com/scoretab/scoretab/internal/model"
	"github.com/scoretab/scoretab/internal/storage"
)

// Update holds partial player fields; nil means leave unchanged
type Update struct {
	Name       *string
	Color      *string
	AvatarPath *string
}

// Service manages the player roster
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	idgen   idgen.Generator
	logger  *slog.Logger
}

// New creates a new roster service
func New(storage storage.Storage, clk clock.Clock, gen idgen.Generator, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clk,
		idgen:   gen,
		logger:  logger,
	}
}

// Create adds a player to the roster. Names must be non-blank and unique.
func (s *Service) Create(ctx context.Context, name, color string) (*model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrPlayerNameEmpty
	}

	if _, err := s.storage.GetPlayerByName(ctx, name); err == nil {
		return nil, model.ErrPlayerNameTaken
	}

	if color == "" {
		color = model.DefaultPlayerColor
	}

	player := &model.Player{
		ID:        model.PlayerID(s.idgen.NewID("p_")),
		Name:      name,
		Color:     color,
		CreatedAt: s.clock.Now(),
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player created",
		slog.String("player_id", string(player.ID)),
		slog.String("name", player.Name),
	)

	return player, nil
}

// Get retrieves a player by ID
func (s *Service) Get(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return s.storage.GetPlayer(ctx, id)
}

// List returns all players in creation order
func (s *Service) List(ctx context.Context) ([]*model.Player, error) {
	return s.storage.ListPlayers(ctx)
}

// Update applies partial field changes to a player. Last writer wins;
// there is no concurrency token.
func (s *Service) Update(ctx context.Context, id model.PlayerID, upd Update) (*model.Player, error) {
	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *player
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, model.ErrPlayerNameEmpty
		}
		updated.Name = name
	}
	if upd.Color != nil {
		updated.Color = *upd.Color
	}
	if upd.AvatarPath != nil {
		updated.AvatarPath = *upd.AvatarPath
	}

	if err := s.storage.SavePlayer(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// IsLocked reports whether a player has recorder history in the active
// session. Locked players require authorization to delete. The check
// reads the ledger every time so it cannot go stale.
func (s *Service) IsLocked(ctx context.Context, id model.PlayerID) (bool, error) {
	sessionID, err := s.storage.ActiveSessionID(ctx)
	if err != nil {
		return false, err
	}
	if sessionID == "" {
		return false, nil
	}

	rounds, err := s.storage.ListRounds(ctx, sessionID)
	if err != nil {
		return false, err
	}

	for _, round := range rounds {
		if round.RecorderID == id {
			return true, nil
		}
	}
	return false, nil
}

// Delete removes a player. Deleting a locked player is rejected unless
// force is set, which callers may only do after authorization succeeds.
func (s *Service) Delete(ctx context.Context, id model.PlayerID, force bool) error {
	if _, err := s.storage.GetPlayer(ctx, id); err != nil {
		return err
	}

	if !force {
		locked, err := s.IsLocked(ctx, id)
		if err != nil {
			return err
		}
		if locked {
			return model.ErrPlayerLocked
		}
	}

	if err := s.storage.DeletePlayer(ctx, id); err != nil {
		return err
	}

	s.logger.Info("player deleted", slog.String("player_id", string(id)))
	return nil
}
