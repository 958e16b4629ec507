package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "neofinance", cfg.MongoDatabase)
	assert.Equal(t, "transactions", cfg.MongoCollection)
	assert.False(t, cfg.InsecureTLS)
	assert.Equal(t, "*", cfg.CORSOrigin)
	assert.Equal(t, 5*time.Second, cfg.StorageTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb+srv://cluster.example.net")
	t.Setenv("PORT", "9090")
	t.Setenv("MONGODB_DATABASE", "finances")
	t.Setenv("MONGODB_COLLECTION", "entries")
	t.Setenv("MONGODB_INSECURE_TLS", "true")
	t.Setenv("CORS_ORIGIN", "https://app.example.net")
	t.Setenv("STORAGE_TIMEOUT", "10s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "mongodb+srv://cluster.example.net", cfg.MongoURI)
	assert.Equal(t, "finances", cfg.MongoDatabase)
	assert.Equal(t, "entries", cfg.MongoCollection)
	assert.True(t, cfg.InsecureTLS)
	assert.Equal(t, "https://app.example.net", cfg.CORSOrigin)
	assert.Equal(t, 10*time.Second, cfg.StorageTimeout)
}

func TestLoad_MissingURI(t *testing.T) {
	t.Setenv("MONGODB_URI", "")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "MONGODB_URI")
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("STORAGE_TIMEOUT", "soon")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "STORAGE_TIMEOUT")
}
