package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config captures the runtime configuration for the application.
type Config struct {
	Store   StoreConfig
	Logging LoggingConfig
}

// StoreConfig controls the in-memory store.
type StoreConfig struct {
	// Name distinguishes independent in-memory databases within one
	// process. It becomes part of the sqlite memory DSN.
	Name string
	// Seed loads the fixture catalog after opening the store.
	Seed bool
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	Level string
}

// Load reads an optional .env file, then the environment, and builds a
// validated Config value.
func Load() (Config, error) {
	// A missing .env file is fine; explicit environment always wins.
	_ = godotenv.Load()

	cfg := Config{
		Store: StoreConfig{
			Name: firstNonEmpty(os.Getenv("FORKFUL_STORE_NAME"), "forkful"),
			Seed: parseBoolWithDefault(os.Getenv("FORKFUL_SEED"), true),
		},
		Logging: LoggingConfig{
			Level: firstNonEmpty(os.Getenv("FORKFUL_LOG_LEVEL"), os.Getenv("LOG_LEVEL"), "info"),
		},
	}

	if strings.TrimSpace(cfg.Store.Name) == "" {
		return Config{}, fmt.Errorf("store name must not be empty")
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func parseBoolWithDefault(value string, def bool) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return def
	}
	parsed, err := strconv.ParseBool(trimmed)
	if err != nil {
		return def
	}
	return parsed
}
