package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/cinefeed/config"
	"github.com/d60-Lab/cinefeed/internal/api"
	"github.com/d60-Lab/cinefeed/internal/api/handler"
	"github.com/d60-Lab/cinefeed/internal/cache"
	"github.com/d60-Lab/cinefeed/internal/repository"
	"github.com/d60-Lab/cinefeed/internal/service"
	"github.com/d60-Lab/cinefeed/pkg/database"
	"github.com/d60-Lab/cinefeed/pkg/logger"
	"github.com/d60-Lab/cinefeed/pkg/tracing"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func main() {
	cfg := must(config.Load())
	if err := logger.Init(cfg.Log.Level, cfg.Log.Development); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			logger.Warn("sentry init failed", zap.Error(err))
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Tracing.Enabled {
		shutdown := must(tracing.Init(ctx, "cinefeed", cfg.Tracing.Endpoint))
		defer func() { _ = shutdown(context.Background()) }()
	}

	db := must(database.InitDB(cfg))

	var rankCache service.Cache
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		rankCache = cache.NewRedis(rdb, cfg.Redis.TTL)
	}

	userRepo := repository.NewUserRepository(db)
	movieRepo := repository.NewMovieRepository(db)
	recRepo := repository.NewRecommendationRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	followRepo := repository.NewFollowRepository(db)
	fanRepo := repository.NewFanRepository(db)
	msgRepo := repository.NewMessageRepository(db)

	replicator := service.NewFanReplicator(fanRepo, 10000)
	stopReplicator := replicator.Start(4)

	h := handler.New(
		service.NewRelationshipService(followRepo, fanRepo, userRepo, replicator),
		service.NewRecommendationService(recRepo, userRepo, movieRepo, rankCache),
		service.NewFeedService(followRepo, recRepo, commentRepo, userRepo, movieRepo),
		service.NewRankingService(userRepo, movieRepo, recRepo, rankCache),
		service.NewCommentService(commentRepo, userRepo, recRepo, rankCache),
		service.NewUserService(userRepo, cfg.JWT.Secret, cfg.JWT.TTL, rankCache),
		service.NewMovieService(movieRepo, rankCache),
		service.NewMessageService(msgRepo, userRepo),
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: api.NewRouter(cfg, h),
	}

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server exited", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down", zap.Int("replication_backlog", replicator.QueueLen()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", zap.Error(err))
	}
	if err := stopReplicator(shutdownCtx); err != nil {
		logger.Error("replicator shutdown", zap.Error(err))
	}
}
