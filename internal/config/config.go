// Package config centralises all environment configuration for GitExplore.
// It should be imported only by the cmd packages (and test code); everything
// else receives an already-built Config via dependency-injection.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime option the server and explorer need.
// Keep it flat and simple—prefer primitive types over embedding structs.
type Config struct {
	// Network
	Port string

	// External services. GitHubToken may be empty: the gateway reports the
	// missing credential per-request instead of refusing to start.
	GitHubToken string

	// Explorer client
	APIBaseURL string
	StorePath  string

	// Server tuning
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Load parses the environment (and an optional .env file) into Config.
func Load() Config {
	// godotenv.Load() is a no-op if .env doesn't exist—safe in production.
	_ = godotenv.Load()

	return Config{
		Port:         getEnv("PORT", "8080"),
		GitHubToken:  os.Getenv("GITHUB_TOKEN"),
		APIBaseURL:   getEnv("GITEXPLORE_API", "http://localhost:8080"),
		StorePath:    getEnv("GITEXPLORE_DB", "gitexplore.db"),
		ReadTimeout:  getDuration("READ_TIMEOUT_SEC", 5),
		WriteTimeout: getDuration("WRITE_TIMEOUT_SEC", 10),
	}
}

// getEnv returns env[key] if set, otherwise defaultVal.
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getDuration reads an integer (seconds) from env, falling back to defaultSec.
func getDuration(key string, defaultSec int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if sec, err := strconv.Atoi(v); err == nil {
			return time.Duration(sec) * time.Second
		}
		log.Printf("invalid %s=%q; using default %ds", key, v, defaultSec)
	}
	return time.Duration(defaultSec) * time.Second
}
