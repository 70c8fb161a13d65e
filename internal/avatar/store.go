package avatar

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/scoretab/scoretab/internal/model"
)

// PublicPrefix is the URL path under which stored avatars are served
const PublicPrefix = "/static/avatars/"

// DefaultMaxSize is the largest accepted avatar file (2 MiB)
const DefaultMaxSize = 2 << 20

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// Store persists avatar images on the local filesystem, one file per
// player. Replacing an avatar removes the player's previous file.
type Store struct {
	dir     string
	maxSize int64
	logger  *slog.Logger
}

// New creates an avatar store rooted at dir, creating it if needed
func New(dir string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating avatar dir: %w", err)
	}
	return &Store{
		dir:     dir,
		maxSize: DefaultMaxSize,
		logger:  logger,
	}, nil
}

// Dir returns the filesystem directory avatars are stored in
func (s *Store) Dir() string {
	return s.dir
}

// Save writes an avatar for the given player and returns its public
// path. The filename is only used for its extension.
func (s *Store) Save(playerID model.PlayerID, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", model.ErrAvatarUnsupported
	}

	data, err := io.ReadAll(io.LimitReader(r, s.maxSize+1))
	if err != nil {
		return "", err
	}
	if int64(len(data)) > s.maxSize {
		return "", model.ErrAvatarTooLarge
	}

	name := string(playerID) + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", err
	}

	// Drop any previous avatar stored under a different extension
	for old := range allowedExtensions {
		if old == ext {
			continue
		}
		_ = os.Remove(filepath.Join(s.dir, string(playerID)+old))
	}

	s.logger.Info("avatar stored",
		slog.String("player_id", string(playerID)),
		slog.Int("bytes", len(data)),
	)

	return PublicPrefix + name, nil
}

// Remove deletes any stored avatar for the given player
func (s *Store) Remove(playerID model.PlayerID) {
	for ext := range allowedExtensions {
		_ = os.Remove(filepath.Join(s.dir, string(playerID)+ext))
	}
}
