package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Holiday   HolidayConfig
	CashFloat CashFloatConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr string
}

// KafkaConfig holds broker settings for the outbox worker and consumer.
type KafkaConfig struct {
	Broker string
}

// HolidayConfig controls the external holiday feed and its cache.
type HolidayConfig struct {
	FeedBaseURL  string
	CountryCode  string
	FetchTimeout time.Duration
	CacheTTL     time.Duration
}

// CashFloatConfig controls the daily-reset cron job for the cash drawer.
type CashFloatConfig struct {
	ResetCronSpec string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are acceptable when configuration comes from
		// the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getenvWithDefault("PORT", "3000"),
			ReadTimeout:  getenvDuration("SERVER_READ_TIMEOUT", 5*time.Second),
			WriteTimeout: getenvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getenvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:     getenvWithDefault("DB_HOST", "localhost"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			Port:     getenvWithDefault("DB_PORT", "5432"),
			SSLMode:  getenvWithDefault("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr: getenvWithDefault("REDIS_ADDR", "localhost:6379"),
		},
		Kafka: KafkaConfig{
			Broker: os.Getenv("KAFKA_BROKER"),
		},
		Holiday: HolidayConfig{
			FeedBaseURL:  getenvWithDefault("HOLIDAY_FEED_BASE_URL", "https://date.nager.at"),
			CountryCode:  getenvWithDefault("HOLIDAY_COUNTRY_CODE", "PH"),
			FetchTimeout: getenvDuration("HOLIDAY_FETCH_TIMEOUT", 10*time.Second),
			CacheTTL:     getenvDuration("HOLIDAY_CACHE_TTL", 24*time.Hour),
		},
		CashFloat: CashFloatConfig{
			ResetCronSpec: getenvWithDefault("CASH_FLOAT_RESET_CRON", "0 0 * * *"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated and
// bounded settings stay within their allowed ranges.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("PORT must be provided")
	}

	switch {
	case c.Database.User == "":
		return errors.New("DB_USER must be provided")
	case c.Database.Name == "":
		return errors.New("DB_NAME must be provided")
	}

	if c.Holiday.FeedBaseURL == "" {
		return errors.New("HOLIDAY_FEED_BASE_URL must not be empty")
	}
	if c.Holiday.CountryCode == "" {
		return errors.New("HOLIDAY_COUNTRY_CODE must not be empty")
	}
	if c.Holiday.FetchTimeout < time.Second || c.Holiday.FetchTimeout > time.Minute {
		return errors.New("HOLIDAY_FETCH_TIMEOUT must be between 1s and 1m")
	}
	if c.Holiday.CacheTTL <= 0 {
		return errors.New("HOLIDAY_CACHE_TTL must be positive")
	}

	if c.CashFloat.ResetCronSpec == "" {
		return errors.New("CASH_FLOAT_RESET_CRON must be provided")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
