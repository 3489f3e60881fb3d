package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string

	// Listing feed source. Exactly one of FeedURL/FeedFile must be set;
	// FeedFile wins when both are present (static catalogs in dev).
	FeedURL      string
	FeedFile     string
	FeedCacheTTL time.Duration

	// Claim persistence backend: "file", "postgres" or "memory"
	ClaimsBackend string
	ClaimsFile    string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	APIKey string // API key for the admin surface
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
		Environment:   getEnv("ENVIRONMENT", "dev"),
		FeedURL:       getEnv("FEED_URL", ""),
		FeedFile:      getEnv("FEED_FILE", DefaultFeedFile),
		ClaimsBackend: getEnv("CLAIMS_BACKEND", ClaimsBackendFile),
		ClaimsFile:    getEnv("CLAIMS_FILE", DefaultClaimsFile),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBName:        getEnv("DB_NAME", "scavrack"),
		APIKey:        getEnv("API_KEY", ""),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	ttlStr := getEnv("FEED_CACHE_TTL", DefaultFeedCacheTTL)
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid FEED_CACHE_TTL value: %w", err)
	}
	cfg.FeedCacheTTL = ttl

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.ClaimsBackend {
	case ClaimsBackendFile, ClaimsBackendPostgres, ClaimsBackendMemory:
	default:
		return fmt.Errorf("invalid CLAIMS_BACKEND %q: must be one of file, postgres, memory", c.ClaimsBackend)
	}

	if c.ClaimsBackend == ClaimsBackendFile && c.ClaimsFile == "" {
		return fmt.Errorf("CLAIMS_FILE must be set when CLAIMS_BACKEND=file")
	}

	if c.FeedURL == "" && c.FeedFile == "" {
		return fmt.Errorf("one of FEED_URL or FEED_FILE must be set")
	}

	// Validate API key is set: the admin surface must never ship open
	if c.APIKey == "" {
		return fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
