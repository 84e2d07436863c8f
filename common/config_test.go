package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLoadConfig_Defaults проверяет значения по умолчанию
func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"BOT_LINK_BASE", "POST_INTERVAL_SECONDS", "POST_INITIAL_DELAY_SECONDS",
		"CATALOG_MIN_SIZE", "CATALOG_GENERATE_COUNT", "PICK_POOL_SIZE",
		"REFERRAL_REWARD_AMOUNT",
	} {
		t.Setenv(key, "")
	}

	LoadConfig()

	assert.Equal(t, "https://t.me/LuxuryTrendBot?start=", BOT_LINK_BASE)
	assert.Equal(t, 14400, POST_INTERVAL_SECONDS)
	assert.Equal(t, 10, POST_INITIAL_DELAY_SECONDS)
	assert.Equal(t, 10, CATALOG_MIN_SIZE)
	assert.Equal(t, 20, CATALOG_GENERATE_COUNT)
	assert.Equal(t, 10, PICK_POOL_SIZE)
	assert.Equal(t, 5.0, REFERRAL_REWARD_AMOUNT)
}

// TestLoadConfig_Overrides проверяет переопределение через окружение
func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("POST_INTERVAL_SECONDS", "600")
	t.Setenv("REFERRAL_REWARD_AMOUNT", "7.5")
	t.Setenv("BOT_LINK_BASE", "https://t.me/OtherBot?start=")

	LoadConfig()

	assert.Equal(t, 600, POST_INTERVAL_SECONDS)
	assert.Equal(t, 7.5, REFERRAL_REWARD_AMOUNT)
	assert.Equal(t, "https://t.me/OtherBot?start=", BOT_LINK_BASE)
}

// TestGetEnvIntOrDefault_Invalid проверяет откат к значению по умолчанию
// при некорректном значении
func TestGetEnvIntOrDefault_Invalid(t *testing.T) {
	t.Setenv("POST_INTERVAL_SECONDS", "not-a-number")
	assert.Equal(t, 14400, getEnvIntOrDefault("POST_INTERVAL_SECONDS", 14400))

	t.Setenv("REFERRAL_REWARD_AMOUNT", "many")
	assert.Equal(t, 5.0, getEnvFloatOrDefault("REFERRAL_REWARD_AMOUNT", 5.0))
}
