package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("KAKAO_CLIENT_ID=file-key\nKAKAO_CALLBACK_URL=http://localhost/cb\nPORT=9090\n"), 0o600))

	// Loaded values land in the process environment; clear them afterwards
	t.Setenv("KAKAO_CLIENT_ID", "")
	os.Unsetenv("KAKAO_CLIENT_ID")
	t.Setenv("KAKAO_CALLBACK_URL", "")
	os.Unsetenv("KAKAO_CALLBACK_URL")
	t.Setenv("PORT", "")
	os.Unsetenv("PORT")

	cfg, err := LoadConfig(envFile)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.KakaoClientID)
	assert.Equal(t, "http://localhost/cb", cfg.KakaoCallbackURL)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "kakao_token.db", cfg.DBPath)
	assert.Equal(t, int64(3600), cfg.SessionLifetime)
	assert.Equal(t, "access_token", cfg.AccessTokenField)
}

func TestLoadConfigEnvironmentWins(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("KAKAO_CLIENT_ID=file-key\n"), 0o600))

	t.Setenv("KAKAO_CLIENT_ID", "env-key")
	t.Setenv("KAKAO_CALLBACK_URL", "http://localhost/cb")

	cfg, err := LoadConfig(envFile)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.KakaoClientID)
}

func TestLoadConfigMissingRequired(t *testing.T) {
	t.Setenv("KAKAO_CLIENT_ID", "")
	os.Unsetenv("KAKAO_CLIENT_ID")
	t.Setenv("KAKAO_CALLBACK_URL", "")
	os.Unsetenv("KAKAO_CALLBACK_URL")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
