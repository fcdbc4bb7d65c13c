package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xw1nchester/hisba-backend/internal/app"
	"github.com/xw1nchester/hisba-backend/internal/config"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// @title						Hisba API
// @version					1.0
// @description				Multi-vendor marketplace backend
// @BasePath					/api
// @securityDefinitions.apikey	ApiKeyAuth
// @in							header
// @name						Authorization
func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	defer log.Sync()

	log.Info("starting hisba", zap.String("env", cfg.Env))

	application := app.NewApp(log, *cfg)

	go application.MustRun()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := application.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server gracefully", zap.Error(err))
		return
	}

	log.Info("server stopped")
}

func setupLogger(env string) *zap.Logger {
	var (
		log *zap.Logger
		err error
	)

	switch env {
	case config.EnvLocal:
		log, err = zap.NewDevelopment()
	default:
		log, err = zap.NewProduction()
	}

	if err != nil {
		panic("failed to init logger: " + err.Error())
	}

	return log
}
