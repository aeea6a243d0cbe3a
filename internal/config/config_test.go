package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "TODO_DB_PATH", "DB_POOL_MAX", "DB_POOL_MIN"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "todos.db", cfg.DatabasePath)
	assert.Equal(t, 10, cfg.PoolMaxConns)
	assert.Equal(t, 2, cfg.PoolMinConns)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("TODO_DB_PATH", "/tmp/custom.db")
	t.Setenv("DB_POOL_MAX", "20")
	t.Setenv("DB_POOL_MIN", "5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/tmp/custom.db", cfg.DatabasePath)
	assert.Equal(t, 20, cfg.PoolMaxConns)
	assert.Equal(t, 5, cfg.PoolMinConns)
}

func TestLoad_MinExceedsMax(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_POOL_MAX", "2")
	t.Setenv("DB_POOL_MIN", "5")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_POOL_MIN")
}

func TestLoad_BadPoolValues(t *testing.T) {
	for _, tc := range []struct{ key, val string }{
		{"DB_POOL_MAX", "abc"},
		{"DB_POOL_MAX", "0"},
		{"DB_POOL_MIN", "-1"},
	} {
		t.Run(tc.key+"="+tc.val, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
