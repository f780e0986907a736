package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogDir      string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string
	DBUser      string
	DBPassword  string
	DBHost      string
	DBPort      string
	DBName      string
	APIKey      string // API key for authentication

	// TrustedProxies lists proxy IPs whose X-Forwarded-For headers are
	// honored when resolving client addresses.
	TrustedProxies []string

	// Wager stake bounds in minor currency units
	MinStake int64
	MaxStake int64

	// Database connection pool tuning
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// Discord announcer. Optional: announcements are disabled when the
	// token or channel is empty.
	DiscordToken     string
	DiscordChannelID string

	// Event publishing resilience
	EventMaxRetries     int
	EventRetryDelay     time.Duration
	EventDeadLetterPath string

	// EventRetentionDays controls how long persisted events are kept
	// before the cleanup job prunes them.
	EventRetentionDays int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogDir:           getEnv("LOG_DIR", "logs"),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
		ServiceName:      getEnv("SERVICE_NAME", "trackside"),
		Version:          getEnv("SERVICE_VERSION", "dev"),
		Environment:      getEnv("ENVIRONMENT", "dev"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       getEnv("DB_PASSWORD", "postgres"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBName:           getEnv("DB_NAME", "trackside"),
		APIKey:           getEnv("API_KEY", ""),
		DiscordToken:     getEnv("DISCORD_TOKEN", ""),
		DiscordChannelID: getEnv("DISCORD_CHANNEL_ID", ""),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	cfg.DBMaxConns = getEnvAsInt("DB_MAX_CONNS", 20)
	cfg.DBMaxConnIdleTime = getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute)
	cfg.DBMaxConnLifetime = getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute)

	if proxies := getEnv("TRUSTED_PROXIES", ""); proxies != "" {
		for _, p := range strings.Split(proxies, ",") {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, trimmed)
			}
		}
	}

	cfg.MinStake = int64(getEnvAsInt("WAGER_MIN_STAKE", 100))
	cfg.MaxStake = int64(getEnvAsInt("WAGER_MAX_STAKE", 1_000_000))

	cfg.EventMaxRetries = getEnvAsInt("EVENT_MAX_RETRIES", 3)
	cfg.EventRetryDelay = getEnvAsDuration("EVENT_RETRY_DELAY", 2*time.Second)
	cfg.EventDeadLetterPath = getEnv("EVENT_DEAD_LETTER_PATH", "events_deadletter.jsonl")
	cfg.EventRetentionDays = getEnvAsInt("EVENT_RETENTION_DAYS", 90)

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable, falling back to the
// default on missing or unparseable values.
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvAsDuration retrieves a duration environment variable, falling back to
// the default on missing or unparseable values.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
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
