package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
		{
			name:         "empty value falls back to default",
			key:          "TEST_KEY_EMPTY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "",
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test-token")
	t.Setenv("API_URL", "")
	t.Setenv("MINI_APP_URL", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "test-token", cfg.BotToken)
	assert.Equal(t, "http://localhost:8090", cfg.APIURL)
	assert.Equal(t, "https://imperium.p5ina.dev", cfg.MiniAppURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test-token")
	t.Setenv("API_URL", "http://api.internal:9000")
	t.Setenv("MINI_APP_URL", "https://app.example.com")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "http://api.internal:9000", cfg.APIURL)
	assert.Equal(t, "https://app.example.com", cfg.MiniAppURL)
}

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")

	cfg, err := Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "BOT_TOKEN")
}
