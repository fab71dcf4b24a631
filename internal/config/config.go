package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server holds all server configuration, loaded from the environment
type Server struct {
	Host string `env:"HOST"`
	Port int    `env:"PORT" envDefault:"3001"`

	// JWTSecret signs issued access tokens
	JWTSecret string `env:"JWT_SECRET,required,notEmpty"`

	// TokenDuration is how long issued tokens stay valid
	TokenDuration time.Duration `env:"TOKEN_DURATION" envDefault:"168h"`

	// StorageType selects the storage backend: memory or redis
	StorageType string `env:"STORAGE_TYPE" envDefault:"memory"`
	RedisURL    string `env:"REDIS_URL"`

	// AllowedOrigins restricts CORS; empty allows any origin
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// LaunchBaseURL is the base the provider builds game launch URLs on
	LaunchBaseURL string `env:"LAUNCH_BASE_URL"`

	// CaptchaTTL is how long captcha challenges stay answerable
	CaptchaTTL time.Duration `env:"CAPTCHA_TTL" envDefault:"5m"`
}

// Load reads server configuration from the environment
func Load() (*Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if cfg.StorageType == "redis" && cfg.RedisURL == "" {
		return nil, errors.New("REDIS_URL required when STORAGE_TYPE=redis")
	}
	return &cfg, nil
}
