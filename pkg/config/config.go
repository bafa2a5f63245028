// ABOUTME: Configuration management for the demo binary with environment variable support
// ABOUTME: Defines configuration structures for the service endpoint, auth, and cache

package config

import (
	"errors"
	"os"
	"strconv"
)

// Auth mode selectors
const (
	AuthModePassword = "password"
	AuthModeOAuth    = "oauth"
)

// Config holds all client configuration
type Config struct {
	// Service contains reader service endpoint configuration
	Service ServiceConfig

	// Auth contains authentication configuration
	Auth AuthConfig

	// Cache contains cache backend configuration
	Cache CacheConfig
}

// ServiceConfig holds reader service endpoint configuration
type ServiceConfig struct {
	// BaseURL is the root of the Reader-compatible API, e.g.
	// https://theoldreader.com/reader/
	BaseURL string

	// TimeoutSeconds is the per-request HTTP timeout
	TimeoutSeconds int
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	// Mode selects the strategy: password or oauth
	Mode string

	// Username and Password feed the ClientLogin handshake
	Username string
	Password string

	// OAuth client credentials and the long-lived refresh token
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory/none)
	Type string

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
		Service: ServiceConfig{
			BaseURL:        os.Getenv("GREADER_BASE_URL"),
			TimeoutSeconds: 30,
		},
		Auth: AuthConfig{
			Mode:         getEnvOrDefault("GREADER_AUTH_MODE", AuthModePassword),
			Username:     os.Getenv("GREADER_USERNAME"),
			Password:     os.Getenv("GREADER_PASSWORD"),
			ClientID:     os.Getenv("GREADER_CLIENT_ID"),
			ClientSecret: os.Getenv("GREADER_CLIENT_SECRET"),
			RefreshToken: os.Getenv("GREADER_REFRESH_TOKEN"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("GREADER_CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  os.Getenv("GREADER_REDIS_ADDRESS"),
				Password: os.Getenv("GREADER_REDIS_PASSWORD"),
			},
		},
	}

	if timeout := os.Getenv("GREADER_TIMEOUT_SECONDS"); timeout != "" {
		value, err := strconv.Atoi(timeout)
		if err != nil {
			return nil, errors.New("GREADER_TIMEOUT_SECONDS must be an integer")
		}
		cfg.Service.TimeoutSeconds = value
	}

	if db := os.Getenv("GREADER_REDIS_DB"); db != "" {
		value, err := strconv.Atoi(db)
		if err != nil {
			return nil, errors.New("GREADER_REDIS_DB must be an integer")
		}
		cfg.Cache.Redis.DB = value
	}

	return cfg, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Service.BaseURL == "" {
		return errors.New("GREADER_BASE_URL is required")
	}
	if c.Service.TimeoutSeconds <= 0 {
		return errors.New("timeout must be positive")
	}

	switch c.Auth.Mode {
	case AuthModePassword:
		if c.Auth.Username == "" || c.Auth.Password == "" {
			return errors.New("password auth requires GREADER_USERNAME and GREADER_PASSWORD")
		}
	case AuthModeOAuth:
		if c.Auth.RefreshToken == "" {
			return errors.New("oauth auth requires GREADER_REFRESH_TOKEN")
		}
	default:
		return errors.New("auth mode must be password or oauth")
	}

	switch c.Cache.Type {
	case "memory", "none":
	case "redis":
		if c.Cache.Redis.Address == "" {
			return errors.New("redis cache requires GREADER_REDIS_ADDRESS")
		}
	default:
		return errors.New("cache type must be memory, redis, or none")
	}

	return nil
}

// getEnvOrDefault returns the environment value or a fallback
func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
