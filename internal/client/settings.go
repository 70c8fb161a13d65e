package client

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// DefaultLocale is used when no locale has been chosen
const DefaultLocale = "en"

// Settings are the locally persisted client preferences
type Settings struct {
	Locale     string `json:"locale,omitempty"`
	RecorderID string `json:"recorder_id,omitempty"`
}

// SettingsStore persists client settings as a JSON file
type SettingsStore struct {
	mu       sync.Mutex
	path     string
	settings Settings
}

// NewSettingsStore loads settings from path, starting empty if the
// file does not exist yet
func NewSettingsStore(path string) (*SettingsStore, error) {
	s := &SettingsStore{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	if err := json.Unmarshal(data, &s.settings); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}
	return s, nil
}

// DefaultSettingsPath returns the settings location under the user's home
func DefaultSettingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".scoretab", "settings.json"), nil
}

// Locale returns the chosen locale, or the default
func (s *SettingsStore) Locale() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settings.Locale == "" {
		return DefaultLocale
	}
	return s.settings.Locale
}

// SetLocale persists the chosen locale
func (s *SettingsStore) SetLocale(locale string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Locale = locale
	return s.save()
}

// RecorderID returns the persisted recorder, empty if none is set
func (s *SettingsStore) RecorderID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.RecorderID
}

// SetRecorderID persists the chosen recorder
func (s *SettingsStore) SetRecorderID(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.RecorderID = id
	return s.save()
}

// save writes settings to disk; callers hold the lock
func (s *SettingsStore) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}

	data, err := json.MarshalIndent(s.settings, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}
