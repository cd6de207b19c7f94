package config

import (
	"fmt"
	"os"
	"time"

	"gitcards/pkg/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	GitHubToken string
	ServerPort  string
	CacheTTL    time.Duration
	Debug       bool
}

// * LoadConfiguration reads the configuration from the .env file and returns a pointer to a Config.
// * GITHUB_TOKEN is optional: without it, calls go out unauthenticated at a lower rate limit.
func LoadConfiguration() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		GitHubToken: os.Getenv("GITHUB_TOKEN"),
		ServerPort:  os.Getenv("SERVER_PORT"),
		Debug:       os.Getenv("DEBUG") == "true",
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = ":8081"
	}

	cfg.CacheTTL = 30 * time.Minute
	if ttl := os.Getenv("CACHE_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid CACHE_TTL %q: %w", ttl, err)
		}
		cfg.CacheTTL = d
	}

	if cfg.GitHubToken == "" {
		logger.Warn("GITHUB_TOKEN not set, using unauthenticated GitHub API rate limits")
	}

	logger.Info("✅ env content loaded successfully 🎉")
	return cfg, nil
}
