package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-payops/internal/config"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_USER", "payops")
	t.Setenv("DB_NAME", "payops")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load("")

	assert.NoError(t, err)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "https://date.nager.at", cfg.Holiday.FeedBaseURL)
	assert.Equal(t, "PH", cfg.Holiday.CountryCode)
	assert.Equal(t, 24*time.Hour, cfg.Holiday.CacheTTL)
	assert.Equal(t, "0 0 * * *", cfg.CashFloat.ResetCronSpec)
}

func TestLoad_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("SERVER_READ_TIMEOUT", "2s")
	t.Setenv("HOLIDAY_FETCH_TIMEOUT", "30")
	t.Setenv("HOLIDAY_COUNTRY_CODE", "SG")

	cfg, err := config.Load("")

	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	// Bare integers are read as seconds.
	assert.Equal(t, 30*time.Second, cfg.Holiday.FetchTimeout)
	assert.Equal(t, "SG", cfg.Holiday.CountryCode)
}

func TestLoad_MissingRequiredDatabaseSettings(t *testing.T) {
	t.Setenv("DB_USER", "")
	t.Setenv("DB_NAME", "payops")

	_, err := config.Load("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_USER")

	t.Setenv("DB_USER", "payops")
	t.Setenv("DB_NAME", "")

	_, err = config.Load("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_NAME")
}

func TestLoad_FetchTimeoutBounds(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HOLIDAY_FETCH_TIMEOUT", "5m")

	_, err := config.Load("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "HOLIDAY_FETCH_TIMEOUT")
}
