package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds server configuration loaded from the environment
type Config struct {
	Host        string `env:"SCORETAB_HOST" envDefault:""`
	Port        int    `env:"SCORETAB_PORT" envDefault:"8080"`
	StorageType string `env:"SCORETAB_STORAGE" envDefault:"memory"`
	RedisURL    string `env:"SCORETAB_REDIS_URL"`
	AvatarDir   string `env:"SCORETAB_AVATAR_DIR" envDefault:"data/avatars"`
	LogLevel    string `env:"SCORETAB_LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from the environment
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
