// Package config loads server configuration from environment variables,
// with an optional .env file for development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime knobs for the server.
type Config struct {
	// Addr is the listen address, derived from PORT (default 8080).
	Addr string
	// DatabasePath is the SQLite database file path (TODO_DB_PATH).
	DatabasePath string
	// PoolMaxConns bounds open database connections (DB_POOL_MAX).
	PoolMaxConns int
	// PoolMinConns is the number of idle connections kept warm (DB_POOL_MIN).
	PoolMinConns int
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	dbPath := os.Getenv("TODO_DB_PATH")
	if dbPath == "" {
		dbPath = "todos.db"
	}

	poolMax, err := intEnv("DB_POOL_MAX", 10)
	if err != nil {
		return nil, err
	}
	poolMin, err := intEnv("DB_POOL_MIN", 2)
	if err != nil {
		return nil, err
	}
	if poolMin > poolMax {
		return nil, fmt.Errorf("DB_POOL_MIN (%d) must not exceed DB_POOL_MAX (%d)", poolMin, poolMax)
	}

	return &Config{
		Addr:         ":" + port,
		DatabasePath: dbPath,
		PoolMaxConns: poolMax,
		PoolMinConns: poolMin,
	}, nil
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parsing %s %q: %w", key, v, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("%s must be at least 1, got %d", key, n)
	}
	return n, nil
}
