package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "hirelens", cfg.MongoDB)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 5, cfg.MaxQuestions)
	assert.Equal(t, 1.0, cfg.EmptySessionHonesty)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HIRELENS_HTTP_PORT", "9090")
	t.Setenv("HIRELENS_MAX_QUESTIONS", "8")
	t.Setenv("HIRELENS_LOG_JSON", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, 8, cfg.MaxQuestions)
	assert.True(t, cfg.LogJSON)
}

func TestLoadRejectsHonestyOutOfRange(t *testing.T) {
	t.Setenv("HIRELENS_EMPTY_SESSION_HONESTY", "1.5")

	_, err := Load()
	assert.Error(t, err)
}
