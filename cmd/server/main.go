package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"

	"github.com/Pulse-Breakout/Backend/config"
	"github.com/Pulse-Breakout/Backend/internal/api"
	"github.com/Pulse-Breakout/Backend/internal/api/handler"
	"github.com/Pulse-Breakout/Backend/internal/identity"
	"github.com/Pulse-Breakout/Backend/internal/repository"
	"github.com/Pulse-Breakout/Backend/internal/service"
	"github.com/Pulse-Breakout/Backend/pkg/cache"
	"github.com/Pulse-Breakout/Backend/pkg/database"
	"github.com/Pulse-Breakout/Backend/pkg/logger"
	"github.com/Pulse-Breakout/Backend/pkg/telemetry"
)

// @title Pulse Breakout Backend API
// @version 1.0
// @description Users / communities / content backend
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := logger.Init(cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.Telemetry.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Telemetry.SentryDSN}); err != nil {
			logger.Warn("sentry init failed", zap.Error(err))
		}
		defer sentry.Flush(2 * time.Second)
	}

	ctx := context.Background()
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg)
	if err != nil {
		logger.Warn("tracer init failed", zap.Error(err))
		shutdownTracer = func(context.Context) error { return nil }
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Error("database init failed", zap.Error(err))
		os.Exit(1)
	}

	rdb, err := cache.InitRedis(cfg)
	if err != nil {
		// 缓存不可用时降级为直查数据库
		logger.Warn("redis unavailable, identity cache disabled", zap.Error(err))
		rdb = nil
	}

	userRepo := repository.NewUserRepository(db)
	communityRepo := repository.NewCommunityRepository(db)
	contentRepo := repository.NewContentRepository(db)
	depositorRepo := repository.NewDepositorRepository(db)

	resolver := identity.NewResolver(userRepo, rdb, time.Duration(cfg.Redis.IdentityTTL)*time.Second)

	userSvc := service.NewUserService(userRepo, resolver)
	communitySvc := service.NewCommunityService(communityRepo, resolver)
	contentSvc := service.NewContentService(contentRepo, communitySvc, resolver)
	depositorSvc := service.NewDepositorService(depositorRepo)

	h := handler.New(userSvc, communitySvc, contentSvc, depositorSvc)
	router := api.NewRouter(cfg, db, h)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", zap.Error(err))
			os.Exit(1)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Info("shutting down")
	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutCtx)
	_ = shutdownTracer(shutCtx)
}
