package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
// Every field has a sensible default; only CATALOG_BASE_URL is required.
// Destination settings live in the YAML file named by DESTINATIONS_FILE,
// not in the environment.
type Config struct {
	// Server
	HTTPPort        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// Identity reported in outbound payloads
	ServerID   string
	ServerName string
	ServerURL  string

	// Catalog collaborator
	CatalogBaseURL string
	CatalogAPIKey  string
	CatalogTimeout time.Duration

	// Reconciliation
	RecheckInterval time.Duration
	MaxRetries      int

	// Outbound delivery
	DestinationsFile string
	SinkTimeout      time.Duration
	RateLimitPerSink int

	// Delivery history. Optional: when DatabaseURL is empty the history is
	// kept in memory only.
	DatabaseURL string
	DBMaxConns  int32
	DBMinConns  int32
}

func Load() (*Config, error) {
	catalogURL := os.Getenv("CATALOG_BASE_URL")
	if catalogURL == "" {
		return nil, fmt.Errorf("CATALOG_BASE_URL is required")
	}

	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		ReadTimeout:     getDuration("READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    getDuration("WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 30*time.Second),

		ServerID:   getEnv("SERVER_ID", ""),
		ServerName: getEnv("SERVER_NAME", "Media Server"),
		ServerURL:  getEnv("SERVER_URL", ""),

		CatalogBaseURL: catalogURL,
		CatalogAPIKey:  getEnv("CATALOG_API_KEY", ""),
		CatalogTimeout: getDuration("CATALOG_TIMEOUT", 10*time.Second),

		RecheckInterval: getDuration("RECHECK_INTERVAL", 30*time.Second),
		MaxRetries:      getInt("MAX_RETRIES", 10),

		DestinationsFile: getEnv("DESTINATIONS_FILE", "destinations.yaml"),
		SinkTimeout:      getDuration("SINK_TIMEOUT", 10*time.Second),
		RateLimitPerSink: getInt("RATE_LIMIT_PER_SINK", 5),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBMaxConns:  int32(getInt("DB_MAX_CONNS", 10)),
		DBMinConns:  int32(getInt("DB_MIN_CONNS", 2)),
	}, nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
