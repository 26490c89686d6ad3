package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/matjipduo/backend/config"
	"github.com/matjipduo/backend/internal/api"
	"github.com/matjipduo/backend/internal/database"
	"github.com/matjipduo/backend/internal/router"
	"github.com/matjipduo/backend/internal/server"
	"github.com/matjipduo/backend/internal/service"
	"github.com/matjipduo/backend/internal/session"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}
	sessions := session.NewRedisStore(redisClient)

	authService, err := service.NewAuthService(cfg.AppPassphrase, cfg.JWTSecret, sessions, cfg.SessionTTL)
	if err != nil {
		logger.Fatal("failed to set up auth", zap.Error(err))
	}
	menuService := service.NewMenuService(db)
	restaurantService := service.NewRestaurantService(db)
	relationService := service.NewRelationService(db, menuService, restaurantService)

	engine := router.Setup(
		api.NewAuthHandler(authService, logger),
		api.NewMenuHandler(menuService, relationService, logger),
		api.NewRestaurantHandler(restaurantService, relationService, logger),
		api.NewRelationHandler(relationService, logger),
		authService,
		cfg.CORSOrigins,
	)

	srv := server.New(engine, net.JoinHostPort(cfg.ServerHost, cfg.ServerPort), logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("received signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}
