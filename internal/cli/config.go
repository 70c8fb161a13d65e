package cli

import (
	"os"

	"github.com/scoretab/scoretab/internal/client"
)

// Config holds CLI configuration
type Config struct {
	ServerURL    string
	SettingsFile string
	Output       string
	Verbose      bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:    getEnvOrDefault("SCORETAB_SERVER", "http://localhost:8080"),
		SettingsFile: getEnvOrDefault("SCORETAB_SETTINGS", defaultSettingsFile()),
		Output:       "text",
		Verbose:      false,
	}
}

func defaultSettingsFile() string {
	path, err := client.DefaultSettingsPath()
	if err != nil {
		return ".scoretab/settings.json"
	}
	return path
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
