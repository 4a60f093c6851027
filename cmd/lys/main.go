package main

import (
	"context"
	"log"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apiHandler "github.com/fastygo/lys/api/handler"
	"github.com/fastygo/lys/internal/config"
	"github.com/fastygo/lys/internal/router"
	"github.com/fastygo/lys/internal/services/lifecycle"
	"github.com/fastygo/lys/internal/session"
	"github.com/fastygo/lys/pkg/logger"
	"github.com/fastygo/lys/repository/flatfile"
	taskUC "github.com/fastygo/lys/usecase/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
		Output:   os.Stderr,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Register("logger", func(ctx context.Context) error {
		// Sync on a terminal stderr reports EINVAL on Linux.
		_ = zapLogger.Sync()
		return nil
	})

	ctx := logger.ContextWithSessionID(context.Background(), uuid.NewString())

	taskRepo := flatfile.NewTaskRepository(cfg.Storage.Path)
	taskUseCase := taskUC.New(taskRepo, zapLogger)
	taskUseCase.Load(ctx)

	handlers := router.Handlers{
		Task:    apiHandler.NewTaskHandler(taskUseCase, zapLogger),
		Session: apiHandler.NewSessionHandler(zapLogger),
	}
	dispatcher := router.New(handlers)

	sess := session.New(cfg.AppName, os.Stdin, os.Stdout, dispatcher, zapLogger)
	manager.Register("session", func(ctx context.Context) error {
		return sess.Close()
	})

	if err := sess.Run(ctx); err != nil {
		zapLogger.Error("session aborted", zap.Error(err))
	}

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("release error", zap.Error(err))
	}
}
