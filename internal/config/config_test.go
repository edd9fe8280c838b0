package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_RequiresTokenSecret(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "secret")
	t.Setenv("DB_USER", "sports")
	t.Setenv("DB_PASS", "pass")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "sportsDB", cfg.DatabaseName)
	assert.Contains(t, cfg.MongoURI, "sports:pass@")
	assert.Equal(t, "secret", cfg.AccessTokenSecret)
}

func TestLoadConfig_ExplicitURIWins(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "secret")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
}
