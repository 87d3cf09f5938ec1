package config

import "time"

type Config struct {
	App     App     `json:"app"`
	Status  Status  `json:"status"`
	Media   Media   `json:"media"`
	Limiter Limiter `json:"limiter"`
}

type App struct {
	ListenAddr string `json:"listen_addr"`
	LogLevel   string `json:"log_level"`
	GinMode    string `json:"gin_mode"`

	// AdminUser/AdminTokenHash guard the operator endpoints (metrics,
	// pprof). The hash is bcrypt; an empty hash disables those routes.
	AdminUser      string `json:"admin_user"`
	AdminTokenHash string `json:"admin_token_hash"`
}

type Status struct {
	TTL           time.Duration `json:"ttl"`
	SweepInterval time.Duration `json:"sweep_interval"`
	SweepRetry    time.Duration `json:"sweep_retry_interval"`
}

type Media struct {
	UploadsDir  string `json:"uploads_dir"`
	BaseURL     string `json:"base_url"`
	MaxUploadMB int64  `json:"max_upload_mb"`
}

type Limiter struct {
	Requests int           `json:"requests"`
	Per      time.Duration `json:"per"`
	Burst    int           `json:"burst"`
}
