package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "does-not-exist.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTPAddr())
	assert.Equal(t, uint(10), cfg.Chat.AIUserID)
	assert.Equal(t, uint(3), cfg.Chat.AdminUserID)
	assert.Equal(t, []uint{1, 2, 13, 14, 15}, cfg.Chat.EmployeeAllowlist)
	assert.Equal(t, "chat.inbox.notify", cfg.RabbitMQ.NotifyQueue)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "does-not-exist.toml"))
	t.Setenv("APP_PORT", "9090")
	t.Setenv("CHAT_AI_USER_ID", "77")
	t.Setenv("CHAT_EMPLOYEE_ALLOWLIST", "4, 5,6")
	t.Setenv("MYSQL_DB", "support_test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, uint(77), cfg.Chat.AIUserID)
	assert.Equal(t, []uint{4, 5, 6}, cfg.Chat.EmployeeAllowlist)
	assert.Contains(t, cfg.MySQLDSN(), "/support_test?")
}

func TestEnvOverrideBadValuesKeepDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "does-not-exist.toml"))
	t.Setenv("APP_PORT", "not-a-number")
	t.Setenv("CHAT_EMPLOYEE_ALLOWLIST", "1,two,3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, []uint{1, 2, 13, 14, 15}, cfg.Chat.EmployeeAllowlist)
}
