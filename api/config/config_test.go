package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	content := "JWT_SECRET=file-secret\n" +
		"MONGODB_CONNECTION_URI=mongodb://localhost:27017\n" +
		"MONGODB_DBNAME=leoni_app_test\n" +
		"ADDRESS=:9999\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg := NewConfig(path)
	require.NotNil(t, cfg)
	assert.Equal(t, "file-secret", cfg.JwtSecret)
	assert.Equal(t, "leoni_app_test", cfg.MongoDB_DBName)
	assert.Equal(t, ":9999", cfg.Address)
	assert.Equal(t, 24, cfg.JwtExpiryHours)
}

func TestNewConfigMissingExplicitFile(t *testing.T) {
	cfg := NewConfig(filepath.Join(t.TempDir(), "absent.env"))
	assert.Nil(t, cfg)
}
