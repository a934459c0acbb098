package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port          int
	DatabaseURL   string
	RedisAddr     string
	OMDbAPIKey    string
	YouTubeAPIKey string
}

func Load() *Config {
	return &Config{
		Port:          envInt("PORT", 8080),
		DatabaseURL:   env("DATABASE_URL", "postgres://cinelog:cinelog@db:5432/cinelog?sslmode=disable"),
		RedisAddr:     env("REDIS_ADDR", ""),
		OMDbAPIKey:    env("OMDB_API_KEY", ""),
		YouTubeAPIKey: env("YOUTUBE_API_KEY", ""),
	}
}

// JobsEnabled reports whether the background ingest queue can run. The queue
// and the metadata lookup cache both ride on Redis; without an address both
// are off and every lookup goes straight to the upstream API.
func (c *Config) JobsEnabled() bool {
	return c.RedisAddr != ""
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
