// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/danielhkuo/queen-house/db"
)

type Config struct {
	Port          int           `env:"PORT" envDefault:"3318"`
	DatabaseURL   string        `env:"DATABASE_URL" envDefault:"file:queenhouse.db"`
	DatabaseType  string        `env:"DATABASE_TYPE" envDefault:"sqlite"`
	AdminPassword string        `env:"ADMIN_PASSWORD" envDefault:"queen123"`
	SessionSecret string        `env:"SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	Timezone      string        `env:"TIMEZONE"` // calendar-day boundary for daily votes; empty means local
	SeedFile      string        `env:"SEED_FILE"`
	Log           LogConfig     `envPrefix:"LOG_"`
}

type LogConfig struct {
	Level      string `env:"LEVEL" envDefault:"info"`
	File       string `env:"FILE"`
	MaxSizeMB  int    `env:"MAX_SIZE_MB" envDefault:"100"`
	MaxBackups int    `env:"MAX_BACKUPS" envDefault:"3"`
	MaxAgeDays int    `env:"MAX_AGE_DAYS" envDefault:"30"`
}

// ParseFlags builds the config from a .env file, the environment, and CLI
// flags, in increasing order of precedence.
func ParseFlags(args []string) (Config, error) {
	flags := flag.NewFlagSet("queen-house", flag.ContinueOnError)

	port := flags.Int("p", 0, "Server port")
	dbURL := flags.String("d", "", "Database URL")
	dbType := flags.String("t", "", "Database type (sqlite or postgres)")
	seedFile := flags.String("seed", "", "YAML seed file (default: built-in seed)")
	envFile := flags.String("env-file", ".env", "dotenv file to load if present")

	// Secrets (prefer env variables, but allow CLI for dev)
	adminPassword := flags.String("admin-password", "", "Admin password (prefer env)")
	sessionSecret := flags.String("session-secret", "", "Session signing secret (prefer env)")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	// Existing environment variables win over the file
	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", *envFile, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "p":
			cfg.Port = *port
		case "d":
			cfg.DatabaseURL = *dbURL
		case "t":
			cfg.DatabaseType = *dbType
		case "seed":
			cfg.SeedFile = *seedFile
		case "admin-password":
			cfg.AdminPassword = *adminPassword
		case "session-secret":
			cfg.SessionSecret = *sessionSecret
		}
	})

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	if _, err := db.DriverName(cfg.DatabaseType); err != nil {
		return Config{}, err
	}
	if cfg.AdminPassword == "" {
		return Config{}, errors.New("ADMIN_PASSWORD must not be empty")
	}

	// Secrets - MUST be provided
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET required")
	}

	return cfg, nil
}

// Location returns the time zone daily votes roll over in.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}
	return loc, nil
}
