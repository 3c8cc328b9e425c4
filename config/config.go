package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the gateway
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Upstream analytics API
	UpstreamBaseURL string

	// Database configuration. Driver is "sqlite" for local development and
	// tests, "postgres" for deployed environments.
	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration (optional; rate limiting is disabled without it)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// CORS
	AllowedOrigins []string

	// S3 profile picture storage
	S3Bucket  string
	AWSRegion string
}

// LoadConfig creates a new Config instance from the environment. A .env file
// in the working directory is loaded first if present; real environment
// variables take precedence over it.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:      getEnvOrDefault("SERVER_PORT", "8080"),
		ServerHost:      getEnvOrDefault("SERVER_HOST", "0.0.0.0"),
		UpstreamBaseURL: getEnvOrDefault("UPSTREAM_BASE_URL", "https://orderly-dev.onrender.com"),
		DBDriver:        getEnvOrDefault("DB_DRIVER", defaultDriver()),
		DBPath:          getEnvOrDefault("DB_PATH", "orderly.db"),
		DBHost:          os.Getenv("DB_HOST"),
		DBPort:          getEnvOrDefault("DB_PORT", "5432"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          os.Getenv("DB_NAME"),
		DBSSLMode:       getEnvOrDefault("DB_SSL_MODE", "disable"),
		RedisHost:       os.Getenv("REDIS_HOST"),
		RedisPort:       getEnvOrDefault("REDIS_PORT", "6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         getEnvIntOrDefault("REDIS_DB", 0),
		AllowedOrigins:  splitList(getEnvOrDefault("ALLOWED_ORIGINS", "http://localhost:3000")),
		S3Bucket:        getEnvOrDefault("S3_BUCKET_NAME", "orderly-profile-pictures"),
		AWSRegion:       os.Getenv("AWS_REGION"),
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// defaultDriver picks the database driver for the current environment:
// embedded SQLite everywhere except production.
func defaultDriver() string {
	if IsProduction() {
		return "postgres"
	}
	return "sqlite"
}

// PostgresDSN builds the DSN for the postgres driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// RedisEnabled reports whether a Redis address was configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

// RedisAddr returns the host:port address for the Redis client.
func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvIntOrDefault(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ValidateConfig checks the configuration before startup so misconfiguration
// fails fast instead of surfacing as request errors later.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		errors = append(errors, fmt.Sprintf("SERVER_PORT %q is not a number", cfg.ServerPort))
	}

	if u, err := url.Parse(cfg.UpstreamBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errors = append(errors, fmt.Sprintf("UPSTREAM_BASE_URL %q is not an absolute URL", cfg.UpstreamBaseURL))
	}

	switch cfg.DBDriver {
	case "sqlite":
		if cfg.DBPath == "" {
			errors = append(errors, "DB_PATH is required with the sqlite driver")
		}
	case "postgres":
		for name, value := range map[string]string{
			"DB_HOST": cfg.DBHost,
			"DB_USER": cfg.DBUser,
			"DB_NAME": cfg.DBName,
		} {
			if value == "" {
				errors = append(errors, fmt.Sprintf("required variable %s is not set for the postgres driver", name))
			}
		}
	default:
		errors = append(errors, fmt.Sprintf("unknown DB_DRIVER %q (want sqlite or postgres)", cfg.DBDriver))
	}

	if len(cfg.AllowedOrigins) == 0 {
		errors = append(errors, "ALLOWED_ORIGINS must name at least one origin")
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "\n"))
	}

	return nil
}
