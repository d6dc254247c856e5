package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("VF_INT", "42")
	t.Setenv("VF_BAD_INT", "nope")
	t.Setenv("VF_DUR", "90s")
	t.Setenv("VF_LIST", " a@x.de, ,b@x.de ")

	assert.Equal(t, 42, GetEnvInt("VF_INT", 1))
	assert.Equal(t, 1, GetEnvInt("VF_BAD_INT", 1))
	assert.Equal(t, 7, GetEnvInt("VF_MISSING", 7))
	assert.Equal(t, 90*time.Second, GetEnvDuration("VF_DUR", time.Second))
	assert.Equal(t, []string{"a@x.de", "b@x.de"}, GetEnvList("VF_LIST"))
	assert.Nil(t, GetEnvList("VF_MISSING"))
	assert.Equal(t, "def", GetEnvString("VF_MISSING", "def"))
}

func TestNewServer_Defaults(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CONTENT_MANAGEMENT_EMAILS", "admin@tierarzt.de")

	cfg := NewServer()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"admin@tierarzt.de"}, cfg.ContentManagementEmails)
	assert.Equal(t, 30*24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 10, cfg.DBMaxOpenConns)
	assert.Equal(t, 5, cfg.DBMaxIdleConns)
}

func TestNewServer_DBPool(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("DB_MAX_IDLE_CONNS", "bad")

	cfg := NewServer()
	assert.Equal(t, 25, cfg.DBMaxOpenConns)
	assert.Equal(t, 5, cfg.DBMaxIdleConns)
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("VF_FROM_FILE=hello\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("VF_FROM_FILE") })

	Load(path)
	assert.Equal(t, "hello", GetEnvString("VF_FROM_FILE", ""))

	// archivo inexistente: no falla
	Load(filepath.Join(dir, "missing.env"))
}

func TestNewClient(t *testing.T) {
	t.Setenv("API_URL", "https://api.tierarzt.de")
	t.Setenv("VET_TOKEN", " tok ")
	t.Setenv("SITE_TOKEN", "site")

	cfg := NewClient()
	assert.Equal(t, "https://api.tierarzt.de", cfg.APIURL)
	assert.Equal(t, "tok", cfg.Token)
	assert.Equal(t, "site", cfg.SiteToken)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}
