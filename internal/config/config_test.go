package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOverlaysEnvironmentOnDefaults(t *testing.T) {
	t.Setenv("PEOPLEDIR_DB__USER", "app")
	t.Setenv("PEOPLEDIR_DB__PASSWORD", "secret")
	t.Setenv("PEOPLEDIR_DB__NAME", "peopledir")
	t.Setenv("PEOPLEDIR_SERVER__PORT", "9090")
	t.Setenv("PEOPLEDIR_API__MAX_PER_PAGE", "50")
	t.Setenv("PEOPLEDIR_LOG__LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "app", cfg.Database.User)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 50, cfg.API.MaxPerPage)
	assert.Equal(t, 10, cfg.API.DefaultPerPage)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsMissingDatabaseSettings(t *testing.T) {
	t.Setenv("PEOPLEDIR_DB__USER", "")
	t.Setenv("PEOPLEDIR_DB__PASSWORD", "")
	t.Setenv("PEOPLEDIR_DB__NAME", "")

	_, err := Load()
	require.Error(t, err)
}
