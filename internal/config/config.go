package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration, parsed from the environment.
type Config struct {
	ServerPort string `env:"SV_PORT" envDefault:"3001"`

	DBDialect  string `env:"DB_DIALECT" envDefault:"postgres"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"todouser"`
	DBPassword string `env:"DB_PSWD" envDefault:"todopassword"`
	DBName     string `env:"DB_NAME" envDefault:"todo_app"`
	DBLog      bool   `env:"DB_LOG" envDefault:"false"`

	JWTSecret     string `env:"AUTH_JWT_SECRET" envDefault:"default-secret-key-change-me"`
	JWTExpMinutes int    `env:"AUTH_JWT_EXP_MIN" envDefault:"60"`

	GinMode string `env:"GIN_MODE" envDefault:"debug"`
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
