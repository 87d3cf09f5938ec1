package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_WritesDefaultWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	m, err := New(path)
	require.NoError(t, err)

	cfg := m.Get()
	assert.Equal(t, ":8080", cfg.App.ListenAddr)
	assert.Equal(t, 24*time.Hour, cfg.Status.TTL)
	assert.Equal(t, 5*time.Minute, cfg.Status.SweepInterval)
	assert.Equal(t, time.Minute, cfg.Status.SweepRetry)
	assert.Equal(t, "uploads", cfg.Media.UploadsDir)

	_, err = os.Stat(path)
	assert.NoError(t, err, "default config must be written to disk")
}

func TestManager_RejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := New(path)
	assert.Error(t, err)
}

func TestManager_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(cfg *Config)
		wantErr string
	}{
		{
			name:    "bad_log_level",
			modify:  func(cfg *Config) { cfg.App.LogLevel = "loud" },
			wantErr: "app.log_level",
		},
		{
			name:    "bad_gin_mode",
			modify:  func(cfg *Config) { cfg.App.GinMode = "prod" },
			wantErr: "app.gin_mode",
		},
		{
			name:    "zero_ttl",
			modify:  func(cfg *Config) { cfg.Status.TTL = 0 },
			wantErr: "status.ttl",
		},
		{
			name:    "retry_longer_than_interval",
			modify:  func(cfg *Config) { cfg.Status.SweepRetry = 10 * time.Minute },
			wantErr: "status.sweep_retry_interval",
		},
		{
			name:    "limiter_half_configured",
			modify:  func(cfg *Config) { cfg.Limiter.Per = 0 },
			wantErr: "limiter.requests",
		},
		{
			name:    "hash_without_user",
			modify:  func(cfg *Config) { cfg.App.AdminUser = ""; cfg.App.AdminTokenHash = "x" },
			wantErr: "app.admin_user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(filepath.Join(t.TempDir(), "config.json"))
			require.NoError(t, err)

			err = m.Update(tt.modify)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestManager_UpdatePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	m, err := New(path)
	require.NoError(t, err)

	require.NoError(t, m.Update(func(cfg *Config) {
		cfg.Status.TTL = 48 * time.Hour
	}))

	reloaded, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, 48*time.Hour, reloaded.Get().Status.TTL)
}
