package cmd

import (
	"fmt"
	"strings"
	"time"
)

const (
	defaultHTTPPort              = "8080"
	defaultTrackingCacheTTL      = 30 * time.Second
	defaultStaleDispatchAfter    = 72 * time.Hour
	defaultStaleDispatchSchedule = "*/15 * * * *"
	defaultLogLevel              = "info"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// LegacyDBDSN points at the database holding legacy delivery records.
	// Empty means the primary database.
	LegacyDBDSN string

	// RedisAddr enables the tracking cache when set.
	RedisAddr        string
	TrackingCacheTTL time.Duration

	StaleDispatchAfter    time.Duration
	StaleDispatchSchedule string

	LogLevel string
}

// LoadConfig builds the configuration from a variable lookup, applying defaults
// for every optional key.
func LoadConfig(lookup func(key string) string) (Config, error) {
	cfg := Config{
		HTTPPort:              withDefault(lookup("HTTP_PORT"), defaultHTTPPort),
		DBHost:                lookup("DB_HOST"),
		DBPort:                lookup("DB_PORT"),
		DBUser:                lookup("DB_USER"),
		DBPassword:            lookup("DB_PASSWORD"),
		DBName:                lookup("DB_NAME"),
		DBSslMode:             withDefault(lookup("DB_SSLMODE"), "disable"),
		LegacyDBDSN:           lookup("LEGACY_DB_DSN"),
		RedisAddr:             lookup("REDIS_ADDR"),
		StaleDispatchSchedule: withDefault(lookup("STALE_DISPATCH_SCHEDULE"), defaultStaleDispatchSchedule),
		LogLevel:              strings.ToLower(withDefault(lookup("LOG_LEVEL"), defaultLogLevel)),
	}

	var err error
	if cfg.TrackingCacheTTL, err = parseDuration(lookup, "TRACKING_CACHE_TTL", defaultTrackingCacheTTL); err != nil {
		return Config{}, err
	}
	if cfg.StaleDispatchAfter, err = parseDuration(lookup, "STALE_DISPATCH_AFTER", defaultStaleDispatchAfter); err != nil {
		return Config{}, err
	}

	if cfg.DBHost == "" || cfg.DBName == "" {
		return Config{}, fmt.Errorf("DB_HOST and DB_NAME are required")
	}
	return cfg, nil
}

// PrimaryDSN is the connection string of the leg and order database.
func (c Config) PrimaryDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, withDefault(c.DBPort, "5432"), c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// LegacyDSN falls back to the primary database when no separate legacy
// database is configured.
func (c Config) LegacyDSN() string {
	if c.LegacyDBDSN != "" {
		return c.LegacyDBDSN
	}
	return c.PrimaryDSN()
}

func withDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func parseDuration(lookup func(string) string, key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(lookup(key))
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", key, raw)
	}
	return d, nil
}
