package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/pr-poehali-dev/discipline-gaming-app/api/handler"
	"github.com/pr-poehali-dev/discipline-gaming-app/internal/config"
	"github.com/pr-poehali-dev/discipline-gaming-app/internal/infrastructure/monitor"
	pgInfra "github.com/pr-poehali-dev/discipline-gaming-app/internal/infrastructure/postgres"
	redisInfra "github.com/pr-poehali-dev/discipline-gaming-app/internal/infrastructure/redis"
	"github.com/pr-poehali-dev/discipline-gaming-app/internal/middleware"
	"github.com/pr-poehali-dev/discipline-gaming-app/internal/router"
	"github.com/pr-poehali-dev/discipline-gaming-app/internal/services/lifecycle"
	"github.com/pr-poehali-dev/discipline-gaming-app/pkg/httpcontext"
	"github.com/pr-poehali-dev/discipline-gaming-app/pkg/logger"
	"github.com/pr-poehali-dev/discipline-gaming-app/repository/postgres"
	redisRepo "github.com/pr-poehali-dev/discipline-gaming-app/repository/redis"
	tasksUC "github.com/pr-poehali-dev/discipline-gaming-app/usecase/tasks"
	usersUC "github.com/pr-poehali-dev/discipline-gaming-app/usecase/users"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pool.Close()
		return nil
	})

	redisClient, err := redisInfra.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	manager.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	mon := monitor.New(pool, redisClient, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	userRepo := postgres.NewUserRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	achievementRepo := postgres.NewAchievementRepository(pool)
	profileCache := redisRepo.NewProfileCache(redisClient, cfg.Cache.ProfileTTL)

	taskUseCase := tasksUC.New(taskRepo, profileCache, zapLogger)
	userUseCase := usersUC.New(userRepo, achievementRepo, taskRepo, profileCache, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Task:   apiHandler.NewTaskHandler(taskUseCase, ctxAdapter, zapLogger),
		User:   apiHandler.NewUserHandler(userUseCase, ctxAdapter, zapLogger),
		Health: apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	identity := middleware.Identity(cfg.JWT.Secret, zapLogger)
	handler := router.New(handlers, identity)

	server := &fasthttp.Server{
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
