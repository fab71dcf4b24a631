package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/luckyroad/casinohub/internal/dependencies/clock"
	"github.com/luckyroad/casinohub/internal/dependencies/random"
	"github.com/luckyroad/casinohub/internal/services/auth"
	"github.com/luckyroad/casinohub/internal/services/captcha"
	"github.com/luckyroad/casinohub/internal/services/provider"
	"github.com/luckyroad/casinohub/internal/storage"
	"github.com/luckyroad/casinohub/internal/storage/memory"
	redisstorage "github.com/luckyroad/casinohub/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	AuthService     *auth.Service
	CaptchaService  *captcha.Service
	ProviderService *provider.Service
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service. The secret must
	// be set by the caller.
	AuthConfig auth.Config
	// CaptchaConfig holds configuration for the captcha service (optional)
	CaptchaConfig captcha.Config
	// ProviderConfig holds configuration for the provider service (optional)
	ProviderConfig provider.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(store, clk, rnd, cfg.AuthConfig, cfg.CaptchaConfig, cfg.ProviderConfig), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, authCfg auth.Config, captchaCfg captcha.Config, providerCfg provider.Config) *App {
	authService := auth.New(store, clk, authCfg)
	captchaService := captcha.New(clk, rnd, captchaCfg)
	providerService := provider.New(store, clk, providerCfg)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		AuthService:     authService,
		CaptchaService:  captchaService,
		ProviderService: providerService,
	}
}
