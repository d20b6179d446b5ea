package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "lumak")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "lumak")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("APP_PORT", "")
	t.Setenv("LOYALTY_PROFIT_PER_POINT", "")
	t.Setenv("INACTIVE_AFTER_DAYS", "")

	cfg := LoadConfig()

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "8080", cfg.AppPort, "should fall back to default port")
	assert.Equal(t, 1000, cfg.LoyaltyProfitPerPoint)
	assert.Equal(t, 30, cfg.InactiveAfterDays)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("LOYALTY_PROFIT_PER_POINT", "500")
	t.Setenv("INACTIVE_AFTER_DAYS", "45")

	cfg := LoadConfig()

	assert.Equal(t, "9000", cfg.AppPort)
	assert.Equal(t, 500, cfg.LoyaltyProfitPerPoint)
	assert.Equal(t, 45, cfg.InactiveAfterDays)
}

func TestGetenvInt_Invalid(t *testing.T) {
	t.Setenv("LOYALTY_PROFIT_PER_POINT", "not-a-number")
	assert.Equal(t, 1000, getenvInt("LOYALTY_PROFIT_PER_POINT", 1000))

	t.Setenv("LOYALTY_PROFIT_PER_POINT", "-5")
	assert.Equal(t, 1000, getenvInt("LOYALTY_PROFIT_PER_POINT", 1000))
}
