package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/qs3c/fridge_chef_server/config"
	"github.com/qs3c/fridge_chef_server/internal/database"
	"github.com/qs3c/fridge_chef_server/internal/model"
	"github.com/qs3c/fridge_chef_server/internal/model/dto"
	"github.com/qs3c/fridge_chef_server/internal/pkg/logger"
	"github.com/qs3c/fridge_chef_server/internal/pkg/storage"
	"github.com/qs3c/fridge_chef_server/internal/repository"
	"github.com/qs3c/fridge_chef_server/internal/service"
)

var (
	numUsers    = flag.Int("users", 5, "Number of users to create")
	numBoards   = flag.Int("boards", 20, "Number of recipes to create")
	numComments = flag.Int("comments", 40, "Number of comments to create")
	seed        = flag.Int64("seed", 0, "Random seed (0 = random)")
)

// 재료가 적당히 겹치도록 고정 풀에서 고른다
var ingredientPool = []string{
	"양파", "마늘", "대파", "감자", "당근", "두부", "계란", "김치",
	"돼지고기", "소고기", "닭고기", "애호박", "버섯", "고추", "간장", "된장",
}

var dishLevels = []string{"쉬움", "보통", "어려움"}
var dishCategories = []string{"한식", "양식", "중식", "일식", "분식"}

func main() {
	flag.Parse()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	slog.SetDefault(logger.New(cfg.Log))

	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	gofakeit.Seed(*seed)

	userRepo := repository.NewUserRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	eventRepo := repository.NewEventRepository(db)
	imageRepo := repository.NewImageRepository(db)

	// 업로드는 하지 않으므로 메모리 저장소로 충분
	images := service.NewImageService(imageRepo, storage.NewMemory(cfg.Storage.CDNDomain), nil, cfg)
	auth := service.NewAuthService(userRepo, cfg)
	boards := service.NewBoardService(boardRepo, repository.NewIngredientRepository(db), eventRepo, imageRepo, images)
	comments := service.NewCommentService(repository.NewCommentRepository(db), boardRepo, eventRepo, userRepo)

	ctx := context.Background()

	userIDs := make([]int64, 0, *numUsers)
	for i := 0; i < *numUsers; i++ {
		resp, err := auth.Register(&dto.RegisterRequest{
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
			Email:    gofakeit.Email(),
			Password: "password123",
		})
		if err != nil {
			log.Fatalf("Failed to create user: %v", err)
		}
		userIDs = append(userIDs, resp.UserID)
	}
	if len(userIDs) == 0 {
		log.Println("No users, nothing to seed")
		return
	}

	boardIDs := make([]int64, 0, *numBoards)
	for i := 0; i < *numBoards; i++ {
		authorID := pick(userIDs)
		resp, err := boards.Create(ctx, authorID, fakeBoard())
		if err != nil {
			log.Fatalf("Failed to create board: %v", err)
		}

		image, err := images.SaveExternal(fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID()))
		if err != nil {
			log.Fatalf("Failed to create image: %v", err)
		}
		if err := db.Model(&model.Board{}).Where("id = ?", resp.BoardID).Updates(map[string]interface{}{
			"main_image_id":  image.ID,
			"main_image_url": image.Link,
		}).Error; err != nil {
			log.Fatalf("Failed to attach image: %v", err)
		}
		boardIDs = append(boardIDs, resp.BoardID)
	}
	if len(boardIDs) == 0 {
		log.Printf("Seeded %d users", len(userIDs))
		return
	}

	for i := 0; i < *numComments; i++ {
		userID := pick(userIDs)
		boardID := pick(boardIDs)
		if _, err := comments.Create(userID, boardID, &dto.CreateCommentRequest{
			Content: gofakeit.Sentence(8),
			Star:    gofakeit.Number(1, 5),
		}); err != nil {
			log.Fatalf("Failed to create comment: %v", err)
		}
		// 북마크는 절반 정도
		if gofakeit.Bool() {
			if _, err := boards.ToggleHit(userID, boardID); err != nil {
				log.Fatalf("Failed to toggle hit: %v", err)
			}
		}
	}

	log.Printf("Seeded %d users, %d boards, %d comments", len(userIDs), len(boardIDs), *numComments)
}

func fakeBoard() *dto.BoardRequest {
	req := &dto.BoardRequest{
		Title:        gofakeit.Dinner(),
		Description:  gofakeit.Paragraph(1, 2, 8, " "),
		DishTime:     fmt.Sprintf("%d분", gofakeit.Number(1, 12)*5),
		DishLevel:    gofakeit.RandomString(dishLevels),
		DishCategory: gofakeit.RandomString(dishCategories),
	}

	seen := make(map[string]bool)
	for n := gofakeit.Number(2, 6); len(req.Ingredients) < n; {
		name := gofakeit.RandomString(ingredientPool)
		if seen[name] {
			continue
		}
		seen[name] = true
		req.Ingredients = append(req.Ingredients, dto.IngredientInput{
			Name:    name,
			Details: fmt.Sprintf("%d%s", gofakeit.Number(1, 500), gofakeit.RandomString([]string{"g", "개", "큰술"})),
		})
	}

	for step := gofakeit.Number(2, 5); step > 0; step-- {
		req.Instructions = append(req.Instructions, dto.InstructionInput{Content: gofakeit.Sentence(10)})
	}
	return req
}

func pick(ids []int64) int64 {
	return ids[gofakeit.Number(0, len(ids)-1)]
}
