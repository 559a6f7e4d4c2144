package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "api.log"))

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.DatabaseDriver)
	assert.Equal(t, 168*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=clipdesk sslmode=disable", cfg.DataSource())
}

func TestParse_DatabaseURLWins(t *testing.T) {
	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "api.log"))
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/clips")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/clips", cfg.DataSource())
}

func TestParse_AllowedOrigins(t *testing.T) {
	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "api.log"))
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestParse_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "api.log"))
	t.Setenv("DATABASE_DRIVER", "mysql")

	_, err := Parse()
	assert.Error(t, err)
}

func TestParse_SQLiteDefaultSource(t *testing.T) {
	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "api.log"))
	t.Setenv("DATABASE_DRIVER", "sqlite")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Contains(t, cfg.DataSource(), "foreign_keys(1)")
}

func TestAllowAnyOrigin(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		origins []string
		want    bool
	}{
		{"development without list", "development", nil, true},
		{"development with list", "development", []string{"https://a.example"}, false},
		{"development wildcard", "development", []string{"*"}, true},
		{"production without list", "production", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Environment: tt.env, AllowedOrigins: tt.origins}
			assert.Equal(t, tt.want, cfg.AllowAnyOrigin())
		})
	}
}

func TestParse_ProductionRejectsWildcardOrigin(t *testing.T) {
	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "api.log"))
	t.Setenv("ENV", "production")
	t.Setenv("ALLOWED_ORIGINS", "*")

	_, err := Parse()
	assert.Error(t, err)
}

func TestParse_TrustedProxies(t *testing.T) {
	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "api.log"))
	t.Setenv("TRUSTED_PROXIES", "10.0.0.1,172.16.0.0/12")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.1", "172.16.0.0/12"}, cfg.TrustedProxies)

	t.Setenv("TRUSTED_PROXIES", "not-an-ip")
	_, err = Parse()
	assert.Error(t, err)
}
