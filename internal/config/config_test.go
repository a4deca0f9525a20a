package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// setRequired sets every required variable, clearing the optional ones
func setRequired(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("BOT_PASSWORD", "test_password")
	t.Setenv("DB_PASSWORD", "test_db_password")

	for _, key := range []string{"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "TIMEZONE", "REMINDER_RATE"} {
		t.Setenv(key, "")
	}
}

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
			name:         "env variable empty",
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
				t.Setenv(tt.key, tt.envValue)
			} else {
				os.Unsetenv(tt.key)
			}

			assert.Equal(t, tt.expected, getEnv(tt.key, tt.defaultValue))
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, cfg.DSN())
}

func TestLoad_WithDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, "test_password", cfg.BotPassword)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "fechas", cfg.Database.Name)
	assert.Equal(t, "fechas", cfg.Database.User)
	assert.Equal(t, "UTC", cfg.Location.String())
	assert.Equal(t, 20.0, cfg.ReminderRate)
}

func TestLoad_CustomValues(t *testing.T) {
	setRequired(t)
	t.Setenv("TIMEZONE", "America/Argentina/Buenos_Aires")
	t.Setenv("REMINDER_RATE", "5")
	t.Setenv("DB_NAME", "otra")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "America/Argentina/Buenos_Aires", cfg.Location.String())
	assert.Equal(t, 5.0, cfg.ReminderRate)
	assert.Equal(t, "otra", cfg.Database.Name)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		contains string
	}{
		{name: "missing bot token", key: "BOT_TOKEN", value: "", contains: "BOT_TOKEN"},
		{name: "missing bot password", key: "BOT_PASSWORD", value: "", contains: "BOT_PASSWORD"},
		{name: "missing db password", key: "DB_PASSWORD", value: "", contains: "DB_PASSWORD"},
		{name: "unknown timezone", key: "TIMEZONE", value: "Mars/Olympus", contains: "TIMEZONE"},
		{name: "non numeric rate", key: "REMINDER_RATE", value: "fast", contains: "REMINDER_RATE"},
		{name: "negative rate", key: "REMINDER_RATE", value: "-1", contains: "REMINDER_RATE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}
