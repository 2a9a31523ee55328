package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dbicalho1/TempleCals/config"
	"github.com/dbicalho1/TempleCals/internal/api/handler"
	"github.com/dbicalho1/TempleCals/internal/api/router"
	"github.com/dbicalho1/TempleCals/internal/repository"
	"github.com/dbicalho1/TempleCals/internal/service"
	"github.com/dbicalho1/TempleCals/pkg/database"
	"github.com/dbicalho1/TempleCals/pkg/jwt"
	"github.com/dbicalho1/TempleCals/pkg/logger"
	"github.com/dbicalho1/TempleCals/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zapLogger, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zapLogger.Sync() //nolint:errcheck

	if err := run(cfg, zapLogger); err != nil {
		zapLogger.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, zapLogger *zap.Logger) error {
	db, err := database.NewDB(&cfg.Database, zapLogger)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("unwrap database handle: %w", err)
	}
	defer sqlDB.Close()

	if err := database.RunMigrations(sqlDB, zapLogger); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	// Redis backs the token blacklist and rate limiting. The server still
	// runs without it, with both features degraded open.
	rdb, err := redis.NewClient(&cfg.Redis, zapLogger)
	if err != nil {
		zapLogger.Warn("redis unavailable, token revocation and rate limiting disabled", zap.Error(err))
		rdb = nil
	} else {
		defer rdb.Close()
	}

	jwtMgr := jwt.NewManager(&cfg.Auth)
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, jwtMgr, rdb, zapLogger)
	h := handler.NewHandler(svc, repo, db)

	if cfg.Log.Format != "console" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := router.Setup(cfg, h, jwtMgr, rdb, zapLogger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zapLogger.Info("server listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		zapLogger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	zapLogger.Info("server stopped")
	return nil
}
