package configuration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "nats://localhost:4222", cfg.NATSURL)
	assert.Equal(t, "tcp://localhost:3310", cfg.CLAMAVURL)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("SERVER_PORT", "9090")

	cfg := Load()

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "6432", cfg.Database.Port)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestConnectionString(t *testing.T) {
	db := DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "u",
		Password: "p",
		DBName:   "files",
		SSLMode:  "disable",
	}

	require.Equal(t,
		"postgres://u:p@localhost:5432/files?sslmode=disable",
		db.ConnectionString())
}
