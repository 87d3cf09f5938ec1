package config

import (
	"errors"
	"fmt"
)

func (m *Manager) validate(cfg *Config) error {
	// app
	validLevels := map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true, "fatal": true}
	if cfg.App.LogLevel != "" && !validLevels[cfg.App.LogLevel] {
		return fmt.Errorf("app.log_level must be one of trace, debug, info, warn, error, fatal; got %s", cfg.App.LogLevel)
	}

	validModes := map[string]bool{"": true, "debug": true, "release": true, "test": true}
	if !validModes[cfg.App.GinMode] {
		return fmt.Errorf("app.gin_mode must be one of debug, release, test; got %s", cfg.App.GinMode)
	}

	if cfg.App.ListenAddr == "" {
		return errors.New("app.listen_addr is required")
	}
	if cfg.App.AdminTokenHash != "" && cfg.App.AdminUser == "" {
		return errors.New("app.admin_user is required when app.admin_token_hash is set")
	}

	// status
	if cfg.Status.TTL <= 0 {
		return errors.New("status.ttl must be positive")
	}
	if cfg.Status.SweepInterval <= 0 {
		return errors.New("status.sweep_interval must be positive")
	}
	if cfg.Status.SweepRetry <= 0 {
		return errors.New("status.sweep_retry_interval must be positive")
	}
	if cfg.Status.SweepRetry > cfg.Status.SweepInterval {
		return errors.New("status.sweep_retry_interval must not exceed status.sweep_interval")
	}

	// media
	if cfg.Media.UploadsDir == "" {
		return errors.New("media.uploads_dir is required")
	}
	if cfg.Media.BaseURL == "" {
		return errors.New("media.base_url is required")
	}
	if cfg.Media.MaxUploadMB <= 0 {
		return errors.New("media.max_upload_mb must be positive")
	}

	// limiter
	if (cfg.Limiter.Requests != 0 && cfg.Limiter.Per == 0) || (cfg.Limiter.Requests == 0 && cfg.Limiter.Per != 0) {
		return errors.New("limiter.requests and limiter.per must both be set or both be zero")
	}
	if cfg.Limiter.Requests != 0 && cfg.Limiter.Burst < cfg.Limiter.Requests {
		cfg.Limiter.Burst = cfg.Limiter.Requests
	}

	return nil
}
