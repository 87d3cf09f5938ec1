package config

import "time"

func (m *Manager) GetDefault() *Config {
	return &Config{
		App: App{
			ListenAddr: ":8080",
			LogLevel:   "info",
			GinMode:    "release",
			AdminUser:  "admin",
		},
		Status: Status{
			TTL:           24 * time.Hour,
			SweepInterval: 5 * time.Minute,
			SweepRetry:    time.Minute,
		},
		Media: Media{
			UploadsDir:  "uploads",
			BaseURL:     "http://localhost:8080",
			MaxUploadMB: 500,
		},
		Limiter: Limiter{
			Requests: 20,
			Per:      time.Second,
			Burst:    40,
		},
	}
}
