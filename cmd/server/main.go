package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/luckyroad/casinohub/internal/api"
	"github.com/luckyroad/casinohub/internal/config"
	"github.com/luckyroad/casinohub/internal/factory"
	"github.com/luckyroad/casinohub/internal/services/auth"
	"github.com/luckyroad/casinohub/internal/services/captcha"
	"github.com/luckyroad/casinohub/internal/services/provider"
	redisstorage "github.com/luckyroad/casinohub/internal/storage/redis"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	authCfg := auth.DefaultConfig()
	authCfg.Secret = cfg.JWTSecret
	authCfg.TokenDuration = cfg.TokenDuration

	captchaCfg := captcha.DefaultConfig()
	captchaCfg.TTL = cfg.CaptchaTTL

	providerCfg := provider.DefaultConfig()
	if cfg.LaunchBaseURL != "" {
		providerCfg.LaunchBaseURL = cfg.LaunchBaseURL
	}

	factoryCfg := factory.Config{
		AuthConfig:     authCfg,
		CaptchaConfig:  captchaCfg,
		ProviderConfig: providerCfg,
		Logger:         logger,
		StorageType:    cfg.StorageType,
	}

	if cfg.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Seed the vendor catalog so list endpoints work on a fresh store
	if err := app.ProviderService.SeedVendors(context.Background()); err != nil {
		logger.Warn("could not seed vendors", slog.String("error", err.Error()))
	}

	router := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		AuthService:     app.AuthService,
		CaptchaService:  app.CaptchaService,
		ProviderService: app.ProviderService,
		AllowedOrigins:  cfg.AllowedOrigins,
	})

	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Host
	serverConfig.Port = cfg.Port
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
