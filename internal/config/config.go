package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	CORS       CORSConfig
	MarketData MarketDataConfig
	Analytics  AnalyticsConfig
	Scheduler  SchedulerConfig
	Logging    LoggingConfig
}

// LoggingConfig controls log level and output format.
type LoggingConfig struct {
	Level  string
	Pretty bool
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// MarketDataConfig holds market-data provider and cache configuration.
// QuoteTTL bounds live-quote freshness; HistoryTTL bounds daily-close series
// freshness. A cache miss is served identically to a fresh fetch.
type MarketDataConfig struct {
	QuoteTTL   time.Duration
	HistoryTTL time.Duration
	// FernetKey encrypts the stored provider API token at rest.
	// Empty disables the settings endpoint.
	FernetKey string
}

// AnalyticsConfig holds tunables for the statistics engine.
type AnalyticsConfig struct {
	// RiskFreeRate is the annual risk-free rate used by Sharpe/Sortino,
	// as a decimal (0.05 = 5%).
	RiskFreeRate float64
}

// SchedulerConfig controls the background price pre-fetch jobs.
type SchedulerConfig struct {
	Enabled bool
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/portfolio_tracker.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		MarketData: MarketDataConfig{
			QuoteTTL:   getEnvDuration("QUOTE_CACHE_TTL", 15*time.Minute),
			HistoryTTL: getEnvDuration("HISTORY_CACHE_TTL", time.Hour),
			FernetKey:  os.Getenv("SETTINGS_FERNET_KEY"),
		},
		Analytics: AnalyticsConfig{
			RiskFreeRate: getEnvFloat("RISK_FREE_RATE", 0.05),
		},
		Scheduler: SchedulerConfig{
			Enabled: getEnv("SCHEDULER_ENABLED", "true") == "true",
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnv("LOG_PRETTY", "false") == "true",
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvDuration gets a duration environment variable or returns a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

// getEnvFloat gets a float environment variable or returns a default value
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
}
