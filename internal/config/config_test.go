package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "GO_ENV", "JWT_SECRET", "ACCESS_TOKEN_TTL", "AUTH_MOCK_DELAY", "CATALOG_SOURCE", "CHAT_RATE_PER_MIN", "GROQ_MODEL"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "dev", cfg.GoEnv)
	assert.Equal(t, devJWTSecret, cfg.JWTSecret)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, time.Duration(0), cfg.AuthMockDelay)
	assert.Equal(t, SourceMemory, cfg.CatalogSource)
	assert.Equal(t, 20, cfg.ChatPerMin)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.GroqModel)
}

func TestLoad_ProdRequiresSecret(t *testing.T) {
	t.Setenv("GO_ENV", "prod")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct{ key, value string }{
		{"ACCESS_TOKEN_TTL", "soon"},
		{"AUTH_MOCK_DELAY", "12"},
		{"CHAT_RATE_PER_MIN", "many"},
		{"CHAT_RATE_PER_MIN", "0"},
		{"CATALOG_SOURCE", "mysql"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("AUTH_MOCK_DELAY=250ms\n"), 0o600))
	t.Setenv("AUTH_MOCK_DELAY", "")
	os.Unsetenv("AUTH_MOCK_DELAY")

	LoadDotEnv(filepath.Join(dir, "missing.env"), path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.AuthMockDelay)
}
