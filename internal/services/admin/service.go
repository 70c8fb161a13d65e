package admin

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/scoretab/scoretab/internal/model"
	"github.com/scoretab/scoretab/internal/storage"
)

const (
	// secretHashKey is the settings key holding the bcrypt hash of the
	// admin secret
	secretHashKey = "admin_secret_hash"

	// defaultSecret is used until an operator changes it
	defaultSecret = "8888"
)

// Service verifies and rotates the shared admin secret that gates
// destructive operations. Only a bcrypt hash is ever stored.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new admin service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Verify checks the given code against the stored secret.
// Returns model.ErrInvalidSecret on mismatch.
func (s *Service) Verify(ctx context.Context, code string) error {
	hash, err := s.currentHash(ctx)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) != nil {
		return model.ErrInvalidSecret
	}
	return nil
}

// Change rotates the secret after verifying the old one
func (s *Service) Change(ctx context.Context, oldCode, newCode string) error {
	if newCode == "" {
		return model.ErrSecretEmpty
	}

	if err := s.Verify(ctx, oldCode); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newCode), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.storage.SetSetting(ctx, secretHashKey, string(hash)); err != nil {
		return err
	}

	s.logger.Info("admin secret changed")
	return nil
}

// currentHash returns the stored hash, seeding the default secret on
// first use
func (s *Service) currentHash(ctx context.Context) (string, error) {
	hash, err := s.storage.GetSetting(ctx, secretHashKey)
	if err == nil {
		return hash, nil
	}
	if !errors.Is(err, model.ErrSettingNotFound) {
		return "", err
	}

	seeded, err := bcrypt.GenerateFromPassword([]byte(defaultSecret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	if err := s.storage.SetSetting(ctx, secretHashKey, string(seeded)); err != nil {
		return "", err
	}
	return string(seeded), nil
}
