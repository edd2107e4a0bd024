package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultAppEnv   = "dev"
	defaultLogLevel = "info"
	defaultSeedFile = "seed.yaml"
	defaultEnvFile  = ".env"
)

type Config struct {
	AppEnv   string
	LogLevel string
	SeedFile string
}

// Load reads the optional env files (".env" when none are given) and then the
// process environment. Variables already set in the environment win over the
// files; missing files are skipped.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{defaultEnvFile}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &Config{}
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = defaultAppEnv
	}
	cfg.AppEnv = strings.ToLower(appEnv)
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(getEnv("LOG_LEVEL", defaultLogLevel)))
	cfg.SeedFile = strings.TrimSpace(getEnv("SEED_FILE", defaultSeedFile))

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Development selects the human-readable log output.
func (c *Config) Development() bool {
	return !isProdLike(c.AppEnv)
}

func validateConfig(cfg *Config) error {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error")
	}
	if cfg.SeedFile == "" {
		return fmt.Errorf("SEED_FILE must not be empty")
	}
	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
