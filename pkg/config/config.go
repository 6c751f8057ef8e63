// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, data source, and storage settings

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"newshub-api/core/domain"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// DataSource contains article data source configuration
	DataSource DataSourceConfig

	// Storage contains favorite storage configuration
	Storage StorageConfig

	// LogLevel is the logging verbosity (debug/info/warn/error)
	LogLevel string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the allowed requests per second per client IP
	RateLimit int

	// RateBurst is the rate limiter burst size
	RateBurst int
}

// DataSourceConfig holds article data source configuration
type DataSourceConfig struct {
	// Kind selects the data source backend (preview/rss)
	Kind string

	// Feeds maps categories to RSS feed URLs, used when Kind is "rss"
	Feeds map[domain.Category]string

	// TimeoutSeconds bounds each feed request
	TimeoutSeconds int

	// RetryMax is the number of transport-level retries per feed request
	RetryMax int
}

// StorageConfig holds favorite storage configuration
type StorageConfig struct {
	// Kind selects the storage backend (memory/sqlite/redis)
	Kind string

	// SQLitePath is the database file path for the sqlite backend
	SQLitePath string

	// Redis contains Redis-specific configuration
	Redis RedisConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:      getEnvOrDefault("PORT", "8000"),
			RateLimit: getEnvAsIntOrDefault("RATE_LIMIT", 10),
			RateBurst: getEnvAsIntOrDefault("RATE_BURST", 20),
		},
		DataSource: DataSourceConfig{
			Kind:           getEnvOrDefault("DATA_SOURCE", "preview"),
			Feeds:          loadFeedsFromEnv(),
			TimeoutSeconds: getEnvAsIntOrDefault("FEED_TIMEOUT", 30),
			RetryMax:       getEnvAsIntOrDefault("FEED_RETRY_MAX", 2),
		},
		Storage: StorageConfig{
			Kind:       getEnvOrDefault("STORAGE_TYPE", "memory"),
			SQLitePath: getEnvOrDefault("SQLITE_PATH", "favorites.db"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
		},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// loadFeedsFromEnv reads one RSS_FEED_<CATEGORY> variable per category
func loadFeedsFromEnv() map[domain.Category]string {
	feeds := make(map[domain.Category]string)

	for _, category := range domain.AllCategories() {
		key := "RSS_FEED_" + strings.ToUpper(category.String())
		if url := os.Getenv(key); url != "" {
			feeds[category] = url
		}
	}

	return feeds
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimit < 1 {
		return errors.New("rate limit must be at least 1 request per second")
	}

	if c.DataSource.Kind != "preview" && c.DataSource.Kind != "rss" {
		return fmt.Errorf("data source must be 'preview' or 'rss', got %q", c.DataSource.Kind)
	}

	if c.DataSource.Kind == "rss" && len(c.DataSource.Feeds) == 0 {
		return errors.New("at least one RSS_FEED_<CATEGORY> must be set when using the rss data source")
	}

	switch c.Storage.Kind {
	case "memory", "sqlite", "redis":
	default:
		return fmt.Errorf("storage type must be 'memory', 'sqlite' or 'redis', got %q", c.Storage.Kind)
	}

	if c.Storage.Kind == "redis" && c.Storage.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis storage")
	}

	return nil
}
