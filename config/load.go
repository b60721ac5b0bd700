package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Load reads configurations from a toml file and overrides secrets with
// environment variables when they are set. Zero-valued knobs fall back to
// defaults, so a minimal config file is enough for development.
func Load(path string) (Configs, error) {
	var cfg Configs
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Configs{}, err
		}
	}

	if v := os.Getenv("DATABASE_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}

	if v := os.Getenv("TOKEN_SECRET"); v != "" {
		cfg.Auth.AccessToken.Secret = v
	}

	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(cfg *Configs) {
	if cfg.ApiServer.DefaultLimit == 0 {
		cfg.ApiServer.DefaultLimit = 10
	}

	if cfg.ApiServer.MaxLimit == 0 {
		cfg.ApiServer.MaxLimit = 50
	}

	if cfg.Auth.AccessToken.Name == "" {
		cfg.Auth.AccessToken.Name = "access_token"
	}

	if cfg.Auth.AccessToken.Expiration.Duration == 0 {
		cfg.Auth.AccessToken.Expiration.Duration = time.Hour
	}

	if cfg.Quiz.MaxQuestions == 0 {
		cfg.Quiz.MaxQuestions = 50
	}

	if cfg.Quiz.MaxChoices == 0 {
		cfg.Quiz.MaxChoices = 10
	}

	if cfg.Sync.BatchLimit == 0 {
		cfg.Sync.BatchLimit = 500
	}

	if cfg.Sync.Workers == 0 {
		cfg.Sync.Workers = 8
	}

	if cfg.Sync.RetryAttempts == 0 {
		cfg.Sync.RetryAttempts = 3
	}

	if cfg.Sync.RetryBackoff.Duration == 0 {
		cfg.Sync.RetryBackoff.Duration = 100 * time.Millisecond
	}

	if cfg.Weekly.BonusStreakStep == 0 {
		cfg.Weekly.BonusStreakStep = 5
	}
}
