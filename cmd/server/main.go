package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/qs3c/fridge_chef_server/config"
	"github.com/qs3c/fridge_chef_server/internal/api"
	"github.com/qs3c/fridge_chef_server/internal/api/handler"
	"github.com/qs3c/fridge_chef_server/internal/database"
	"github.com/qs3c/fridge_chef_server/internal/pkg/cron"
	"github.com/qs3c/fridge_chef_server/internal/pkg/logger"
	"github.com/qs3c/fridge_chef_server/internal/pkg/queue"
	"github.com/qs3c/fridge_chef_server/internal/pkg/storage"
	"github.com/qs3c/fridge_chef_server/internal/repository"
	"github.com/qs3c/fridge_chef_server/internal/service"
)

func main() {
	// 설정 로드
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	slog.SetDefault(logger.New(cfg.Log))

	// 데이터베이스
	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	slog.Info("database connected", "driver", cfg.Database.Driver)

	// Redis
	rdb, err := database.NewRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect redis: %v", err)
	}
	slog.Info("redis connected")

	// 오브젝트 스토리지
	store, err := storage.New(cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to init storage: %v", err)
	}

	cleanupQueue := queue.NewQueue(rdb, cfg.Queue.ImageCleanupQueue)

	// Repository
	userRepo := repository.NewUserRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	eventRepo := repository.NewEventRepository(db)
	imageRepo := repository.NewImageRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	bookRepo := repository.NewBookRepository(db)
	searchRepo := repository.NewRecipeSearchRepository(db)

	// Service
	imageService := service.NewImageService(imageRepo, store, cleanupQueue, cfg)
	authService := service.NewAuthService(userRepo, cfg)
	userService := service.NewUserService(userRepo, imageService)
	recipeService := service.NewRecipeService(searchRepo, boardRepo, eventRepo)
	bookService := service.NewBookService(bookRepo, eventRepo)
	boardService := service.NewBoardService(boardRepo, ingredientRepo, eventRepo, imageRepo, imageService)
	commentService := service.NewCommentService(commentRepo, boardRepo, eventRepo, userRepo)
	ingredientService := service.NewIngredientService(ingredientRepo)

	// Router
	router := api.NewRouter(
		handler.NewAuthHandler(authService),
		handler.NewUserHandler(userService),
		handler.NewRecipeHandler(recipeService, cfg.Paging),
		handler.NewBookHandler(bookService, cfg.Paging),
		handler.NewBoardHandler(boardService),
		handler.NewCommentHandler(commentService, cfg.Paging),
		handler.NewImageHandler(imageService),
		handler.NewIngredientHandler(ingredientService),
		cfg,
	)

	// 고아 이미지 정리
	cronService := cron.NewService(imageService, cfg.Cleanup.OrphanExpireHours)
	cronService.Start()
	defer cronService.Stop()

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router.Setup(),
	}

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	slog.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
	slog.Info("server stopped")
}
