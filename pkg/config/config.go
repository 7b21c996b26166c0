// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, storage, and cache settings

package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Storage contains blob storage configuration
	Storage StorageConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Content contains article content handling configuration
	Content ContentConfig

	// LogLevel controls log verbosity (debug/info/warn/error)
	LogLevel string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the allowed requests per second per client
	RateLimit int
}

// StorageConfig holds blob storage backend configuration
type StorageConfig struct {
	// Backend specifies the blob store (sqlite/redis/memory)
	Backend string

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

// CacheConfig holds extraction cache configuration
type CacheConfig struct {
	// Backend specifies the cache store (memory/redis)
	Backend string

	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int
}

// ContentConfig holds article content handling configuration
type ContentConfig struct {
	// ChunkSize is the character threshold above which content is chunked
	ChunkSize int

	// PreviewLength is the plain-text preview length for chunked articles
	PreviewLength int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:      getEnvOrDefault("PORT", "8000"),
			RateLimit: getEnvAsIntOrDefault("RATE_LIMIT", 10),
		},
		Storage: StorageConfig{
			Backend:    getEnvOrDefault("BLOB_BACKEND", "sqlite"),
			SQLitePath: getEnvOrDefault("BLOB_PATH", "readstash.db"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
		},
		Cache: CacheConfig{
			Backend:           getEnvOrDefault("CACHE_BACKEND", "memory"),
			DefaultExpiration: getEnvAsIntOrDefault("CACHE_DEFAULT_EXPIRATION", 3600),
		},
		Content: ContentConfig{
			ChunkSize:     getEnvAsIntOrDefault("CHUNK_SIZE", 50000),
			PreviewLength: getEnvAsIntOrDefault("CONTENT_PREVIEW_LENGTH", 500),
		},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the loaded configuration is usable
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case "sqlite", "redis", "memory":
	default:
		return fmt.Errorf("invalid blob backend %q", c.Storage.Backend)
	}

	if c.Storage.Backend == "redis" && c.Storage.Redis.Address == "" {
		return fmt.Errorf("redis backend requires REDIS_ADDRESS")
	}

	switch c.Cache.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("invalid cache backend %q", c.Cache.Backend)
	}

	if c.Content.ChunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive, got %d", c.Content.ChunkSize)
	}
	if c.Content.PreviewLength <= 0 {
		return fmt.Errorf("preview length must be positive, got %d", c.Content.PreviewLength)
	}
	if c.Server.RateLimit <= 0 {
		return fmt.Errorf("rate limit must be positive, got %d", c.Server.RateLimit)
	}

	return nil
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
