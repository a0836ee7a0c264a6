package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/qs3c/fridge_chef_server/config"
	"github.com/qs3c/fridge_chef_server/internal/database"
	"github.com/qs3c/fridge_chef_server/internal/pkg/cron"
	"github.com/qs3c/fridge_chef_server/internal/pkg/queue"
	"github.com/qs3c/fridge_chef_server/internal/pkg/storage"
	"github.com/qs3c/fridge_chef_server/internal/repository"
	"github.com/qs3c/fridge_chef_server/internal/service"
)

var (
	dryRun      = flag.Bool("dry-run", true, "Dry run mode, only list orphan images")
	expireHours = flag.Int("expire", 0, "Hours an unreferenced image is kept (0 = cleanup.orphan_expire_hours)")
	limit       = flag.Int("limit", 500, "Maximum number of images to handle")
	inline      = flag.Bool("inline", false, "Delete objects directly instead of queueing them for the worker")
)

func main() {
	flag.Parse()

	log.Println("Starting orphan image cleanup...")
	log.Printf("Mode: dry-run=%v", *dryRun)

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	hours := *expireHours
	if hours <= 0 {
		hours = cfg.Cleanup.OrphanExpireHours
	}
	olderThan := cron.OrphanExpiry(hours)
	imageRepo := repository.NewImageRepository(db)

	if *dryRun {
		orphans, err := imageRepo.ListOrphans(time.Now().Add(-olderThan), *limit)
		if err != nil {
			log.Fatalf("Failed to list orphan images: %v", err)
		}
		for _, image := range orphans {
			log.Printf("  - #%d %s (%s, %s old)", image.ID, image.Name, image.Type,
				time.Since(image.CreatedAt).Round(time.Hour))
		}
		printSummary(len(orphans), true)
		return
	}

	store, err := storage.New(cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to init storage: %v", err)
	}

	var cleanupQueue service.CleanupQueue
	if !*inline {
		rdb, err := database.NewRedis(&cfg.Redis)
		if err != nil {
			log.Fatalf("Failed to connect redis (use -inline to skip the queue): %v", err)
		}
		cleanupQueue = queue.NewQueue(rdb, cfg.Queue.ImageCleanupQueue)
	}

	imageService := service.NewImageService(imageRepo, store, cleanupQueue, cfg)
	n, err := imageService.SweepOrphans(context.Background(), olderThan, *limit)
	if err != nil {
		log.Fatalf("Failed to sweep orphan images: %v", err)
	}
	printSummary(n, false)
}

func printSummary(n int, dryRun bool) {
	log.Println(strings.Repeat("=", 40))
	log.Printf("Orphan images: %d", n)
	if dryRun {
		log.Println("DRY RUN MODE - nothing was deleted")
		log.Println("Run with -dry-run=false to actually delete")
	} else {
		log.Println("Cleanup completed")
	}
	log.Println(strings.Repeat("=", 40))
}
