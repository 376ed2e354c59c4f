package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := fromEnv(env(map[string]string{"TOKEN": "abc"}))
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost:5432/hostbot?sslmode=disable", cfg.DatabaseURL)
	assert.Equal(t, "migrations", cfg.MigrationsPath)
	assert.Equal(t, "fr", cfg.DefaultLocale)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
}

func TestFromEnv_EmptyHTTPAddrDisables(t *testing.T) {
	cfg, err := fromEnv(env(map[string]string{"TOKEN": "abc", "HTTP_ADDR": ""}))
	require.NoError(t, err)
	assert.Empty(t, cfg.HTTPAddr)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{"missing token", map[string]string{}},
		{"blank token", map[string]string{"TOKEN": "  "}},
		{"guild not numeric", map[string]string{"TOKEN": "abc", "GUILD_ID": "guild"}},
		{"database without host", map[string]string{"TOKEN": "abc", "DATABASE_URL": "postgres:///db"}},
		{"bad locale", map[string]string{"TOKEN": "abc", "DEFAULT_LOCALE": "not a locale!"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fromEnv(env(tt.vars))
			assert.Error(t, err)
		})
	}
}
