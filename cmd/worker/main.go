package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/qs3c/fridge_chef_server/config"
	"github.com/qs3c/fridge_chef_server/internal/database"
	"github.com/qs3c/fridge_chef_server/internal/pkg/logger"
	"github.com/qs3c/fridge_chef_server/internal/pkg/queue"
	"github.com/qs3c/fridge_chef_server/internal/pkg/storage"
	"github.com/qs3c/fridge_chef_server/internal/worker"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	slog.SetDefault(logger.New(cfg.Log))

	rdb, err := database.NewRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect redis: %v", err)
	}
	slog.Info("redis connected")

	store, err := storage.New(cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to init storage: %v", err)
	}

	cleanupQueue := queue.NewQueue(rdb, cfg.Queue.ImageCleanupQueue)
	processor := worker.NewProcessor(store)

	// 종료 신호 시 context 취소
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("received shutdown signal")
		cancel()
	}()

	slog.Info("worker started", "queue", cfg.Queue.ImageCleanupQueue, "max_workers", cfg.Queue.MaxWorkers)
	processor.Run(ctx, cleanupQueue, cfg.Queue.MaxWorkers)
	slog.Info("worker shutdown complete")
}
