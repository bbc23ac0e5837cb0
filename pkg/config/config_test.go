package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SIGNED_URL_TTL", "not-a-duration")
	t.Setenv("JWT_EXPIRY", "abc")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10*time.Minute, cfg.SignedURLTTL)
	assert.Equal(t, int64(24*60*60), cfg.JWTExpiry)
	assert.NotEmpty(t, cfg.ConclusionCollection)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SIGNED_URL_TTL", "5m")
	t.Setenv("CONCLUSION_COLLECTION", "ConclusionV2")
	t.Setenv("NOTICE_URL", "https://notice.example.com/api")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, 5*time.Minute, cfg.SignedURLTTL)
	assert.Equal(t, "ConclusionV2", cfg.ConclusionCollection)
	assert.Equal(t, "https://notice.example.com/api", cfg.NoticeURL)
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBDriver: "postgres", DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "traffic", DBSSLMode: "disable"}
	assert.Contains(t, cfg.DSN(), "host=db")
	assert.Contains(t, cfg.DSN(), "dbname=traffic")

	cfg.DBDriver = "mysql"
	cfg.DBPort = "3306"
	assert.Equal(t, "u:p@tcp(db:3306)/traffic?charset=utf8mb4&parseTime=True&loc=Local", cfg.DSN())
}
