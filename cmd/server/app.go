package main

import (
	"context"
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/taskboard/taskboard-api/internal/config"
	platformredis "github.com/taskboard/taskboard-api/internal/platform/redis"
	"github.com/taskboard/taskboard-api/internal/service/auth"
	"github.com/taskboard/taskboard-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	redisClient *goredis.Client

	userStore store.UserStore
	taskStore store.TaskStore

	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
}

// newApplication connects to the key-value store and wires up stores and
// services. On success the caller owns the returned application and must
// call cleanup when done with it.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
) (*application, error) {
	redisClient, err := platformredis.NewClient(ctx, cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	logger.Info("Connected to redis")

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		if closeErr := redisClient.Close(); closeErr != nil {
			logger.Error("Failed to close redis client", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	return &application{
		config:           cfg,
		logger:           logger,
		redisClient:      redisClient,
		userStore:        platformredis.NewUserStore(redisClient, logger),
		taskStore:        platformredis.NewTaskStore(redisClient, logger),
		jwtService:       jwtService,
		passwordHasher:   auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		passwordVerifier: auth.NewBcryptVerifier(),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.redisClient != nil {
		if err := app.redisClient.Close(); err != nil {
			app.logger.Error("Failed to close redis client", "error", err)
		}
	}
}
