package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	config "taskmarket.com/taskmarket/internal/configs"
	"taskmarket.com/taskmarket/internal/credentials"
	httpapi "taskmarket.com/taskmarket/internal/http"
	"taskmarket.com/taskmarket/internal/ratelimit"
	repository "taskmarket.com/taskmarket/internal/repositories"
	"taskmarket.com/taskmarket/internal/services"
)

// newServer wires repositories, services and the HTTP API. The returned
// cleanup releases the rate limiter backend.
func newServer(cfg config.Config, logger *slog.Logger, db *gorm.DB) (*echo.Echo, func(), error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}

	limiter, cleanup, err := newLimiter(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	offerRepo := repository.NewOfferRepository(db)
	skillRepo := repository.NewSkillRepository(db)

	creds := credentials.NewService(cfg.JWTSecret, cfg.JWTExpire)

	handler := httpapi.NewHandler(
		services.NewAuthService(userRepo, creds, logger),
		services.NewTaskService(taskRepo, cfg.TaskListingPolicy, logger),
		services.NewOfferService(offerRepo, taskRepo, logger),
		services.NewSkillService(skillRepo),
		sqlDB.PingContext,
	)

	e := echo.New()
	httpapi.Register(e, handler, httpapi.Options{
		Limiter:    limiter,
		CORSOrigin: cfg.CORSOrigin,
		Logger:     logger,
	})

	return e, cleanup, nil
}

// newLimiter uses Redis when REDIS_ADDR is set so that several instances
// share one budget per client.
func newLimiter(cfg config.Config, logger *slog.Logger) (ratelimit.Limiter, func(), error) {
	if cfg.RedisAddr == "" {
		return ratelimit.NewMemoryLimiter(cfg.RateLimit, time.Minute), func() {}, nil
	}

	redisClient, err := config.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		return nil, nil, fmt.Errorf("rate limiter: %w", err)
	}
	logger.Info("using redis rate limiter", "addr", cfg.RedisAddr)

	limiter := ratelimit.NewRedisLimiter(redisClient, cfg.RedisKeyPrefix, cfg.RateLimit, time.Minute)
	return limiter, redisClient.Close, nil
}
