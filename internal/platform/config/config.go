// Package config builds runtime configuration from environment variables so
// main stays lean.
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

// Server captures process-level configuration.
type Server struct {
	Addr string

	// DefinitionsDir holds the checklist and rule-engine definition files.
	DefinitionsDir string

	// WatchDefinitions enables the fsnotify watcher that invalidates the
	// definition cache on source change.
	WatchDefinitions bool

	// LawsPath seeds the in-memory law reference store. Ignored when
	// PostgresURL is set.
	LawsPath string

	// PostgresURL, when set, backs the law reference store with PostgreSQL.
	PostgresURL string

	// RedisURL, when set, adds a read-through cache in front of the law
	// reference store.
	RedisURL string

	LogLevel slog.Level

	ShutdownTimeout time.Duration
}

// FromEnv reads configuration from CODECHECK_* environment variables,
// applying development defaults.
func FromEnv() Server {
	cfg := Server{
		Addr:             getenv("CODECHECK_ADDR", ":8080"),
		DefinitionsDir:   getenv("CODECHECK_DEFINITIONS_DIR", "./definitions"),
		WatchDefinitions: os.Getenv("CODECHECK_WATCH_DEFINITIONS") == "true",
		LawsPath:         getenv("CODECHECK_LAWS_PATH", "./definitions/laws.json"),
		PostgresURL:      os.Getenv("CODECHECK_POSTGRES_URL"),
		RedisURL:         os.Getenv("CODECHECK_REDIS_URL"),
		LogLevel:         parseLevel(os.Getenv("CODECHECK_LOG_LEVEL")),
		ShutdownTimeout:  10 * time.Second,
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
