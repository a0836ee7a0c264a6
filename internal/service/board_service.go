package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/qs3c/fridge_chef_server/internal/model"
	"github.com/qs3c/fridge_chef_server/internal/model/dto"
	"github.com/qs3c/fridge_chef_server/internal/pkg/errcode"
	"github.com/qs3c/fridge_chef_server/internal/repository"
)

var (
	ErrBoardNotFound      = errcode.NotFound("BOARD_NOT_FOUND", "레시피를 찾을 수 없습니다")
	ErrBoardPermission    = errcode.Forbidden("BOARD_USER_NOT_WRITER", "작성자만 수정/삭제할 수 있습니다")
	ErrBoardTitleRequired = errcode.Validation("BOARD_TITLE_REQUIRED", "레시피 제목을 입력하세요")
)

type BoardService struct {
	boardRepo      *repository.BoardRepository
	ingredientRepo *repository.IngredientRepository
	eventRepo      *repository.EventRepository
	imageRepo      *repository.ImageRepository
	imageService   *ImageService
}

func NewBoardService(
	boardRepo *repository.BoardRepository,
	ingredientRepo *repository.IngredientRepository,
	eventRepo *repository.EventRepository,
	imageRepo *repository.ImageRepository,
	imageService *ImageService,
) *BoardService {
	return &BoardService{
		boardRepo:      boardRepo,
		ingredientRepo: ingredientRepo,
		eventRepo:      eventRepo,
		imageRepo:      imageRepo,
		imageService:   imageService,
	}
}

// Create 레시피 작성
func (s *BoardService) Create(ctx context.Context, userID int64, req *dto.BoardRequest) (*dto.BoardCreateResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrBoardTitleRequired
	}
	if err := s.imageService.Filter(requestFiles(req)...); err != nil {
		return nil, err
	}

	links, names, err := s.buildLinks(req.Ingredients)
	if err != nil {
		return nil, err
	}

	board := &model.Board{
		UserID:         userID,
		Title:          req.Title,
		Description:    req.Description,
		DishTime:       req.DishTime,
		DishLevel:      req.DishLevel,
		DishCategory:   req.DishCategory,
		IngredientPath: model.BuildIngredientPath(names),
		Ingredients:    links,
	}

	if req.MainImage != nil {
		image, err := s.imageService.Upload(ctx, userID, req.MainImage)
		if err != nil {
			return nil, err
		}
		board.MainImageID = &image.ID
		board.MainImageURL = image.Link
	}

	for i, ins := range req.Instructions {
		desc := &model.Description{Step: i + 1, Content: ins.Content}
		if ins.Image != nil {
			image, err := s.imageService.Upload(ctx, userID, ins.Image)
			if err != nil {
				return nil, err
			}
			desc.ImageID = &image.ID
			desc.ImageLink = image.Link
		}
		board.Descriptions = append(board.Descriptions, desc)
	}

	if err := s.boardRepo.Create(board); err != nil {
		return nil, err
	}

	slog.Info("board created", "board_id", board.ID, "user_id", userID, "ingredients", len(links))
	return &dto.BoardCreateResponse{BoardID: board.ID}, nil
}

// Update 레시피 수정. 교체되어 더 이상 쓰지 않는 이미지는 정리한다
func (s *BoardService) Update(ctx context.Context, userID, boardID int64, req *dto.BoardRequest) error {
	board, err := s.getOwned(userID, boardID)
	if err != nil {
		return err
	}
	if strings.TrimSpace(req.Title) == "" {
		return ErrBoardTitleRequired
	}
	if err := s.imageService.Filter(requestFiles(req)...); err != nil {
		return err
	}

	links, names, err := s.buildLinks(req.Ingredients)
	if err != nil {
		return err
	}

	oldImages := boardImageIDs(board)
	keep := make(map[int64]bool)

	board.Title = req.Title
	board.Description = req.Description
	board.DishTime = req.DishTime
	board.DishLevel = req.DishLevel
	board.DishCategory = req.DishCategory
	board.IngredientPath = model.BuildIngredientPath(names)

	if req.MainImageChange {
		board.MainImageID = nil
		board.MainImageURL = ""
		if req.MainImage != nil {
			image, err := s.imageService.Upload(ctx, userID, req.MainImage)
			if err != nil {
				return err
			}
			board.MainImageID = &image.ID
			board.MainImageURL = image.Link
		}
	} else if board.MainImageID != nil {
		keep[*board.MainImageID] = true
	}

	oldLinks := make(map[int64]string)
	for _, d := range board.Descriptions {
		if d.ImageID != nil {
			oldLinks[*d.ImageID] = d.ImageLink
		}
	}

	descriptions := make([]*model.Description, 0, len(req.Instructions))
	for i, ins := range req.Instructions {
		desc := &model.Description{Step: i + 1, Content: ins.Content}
		switch {
		case ins.ImageChange && ins.Image != nil:
			image, err := s.imageService.Upload(ctx, userID, ins.Image)
			if err != nil {
				return err
			}
			desc.ImageID = &image.ID
			desc.ImageLink = image.Link
		case !ins.ImageChange && ins.ImageID != nil:
			// 이 게시글에 이미 붙어 있던 이미지만 유지
			if link, ok := oldLinks[*ins.ImageID]; ok {
				id := *ins.ImageID
				desc.ImageID = &id
				desc.ImageLink = link
				keep[id] = true
			}
		}
		descriptions = append(descriptions, desc)
	}

	board.UpdatedAt = time.Now()
	if err := s.boardRepo.UpdateContent(board, links, descriptions); err != nil {
		return err
	}

	var dropped []int64
	for _, id := range oldImages {
		if !keep[id] {
			dropped = append(dropped, id)
		}
	}
	return s.discardImages(ctx, dropped, "board_updated")
}

// Delete 작성자만 삭제 가능. 댓글, 상호작용, 이미지까지 정리
func (s *BoardService) Delete(ctx context.Context, userID, boardID int64) error {
	board, err := s.getOwned(userID, boardID)
	if err != nil {
		return err
	}

	if err := s.boardRepo.Delete(board.ID); err != nil {
		return err
	}

	slog.Info("board deleted", "board_id", boardID, "user_id", userID)
	return s.discardImages(ctx, boardImageIDs(board), "board_deleted")
}

// Get 단건 조회. 조회수(count) 증가
func (s *BoardService) Get(ctx context.Context, boardID int64, viewerID *int64) (*dto.BoardDetail, error) {
	board, err := s.boardRepo.GetDetail(boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, err
	}

	if err := s.boardRepo.IncrementCount(boardID); err != nil {
		return nil, err
	}
	board.Count++

	hits, err := s.eventRepo.FindBoardHits(ctx, []int64{boardID}, viewerID)
	if err != nil {
		return nil, err
	}

	detail := buildBoardDetail(board)
	detail.MyHit = hits[boardID].IsHit()
	return detail, nil
}

// ToggleHit 좋아요 토글
func (s *BoardService) ToggleHit(userID, boardID int64) (*dto.HitResponse, error) {
	if _, err := s.getBoard(boardID); err != nil {
		return nil, err
	}

	hit, err := s.eventRepo.ToggleBoardHit(userID, boardID)
	if err != nil {
		return nil, err
	}

	board, err := s.getBoard(boardID)
	if err != nil {
		return nil, err
	}
	return &dto.HitResponse{Hit: hit == 1, Total: board.Hit}, nil
}

func (s *BoardService) getBoard(boardID int64) (*model.Board, error) {
	board, err := s.boardRepo.GetByID(boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, err
	}
	return board, nil
}

func (s *BoardService) getOwned(userID, boardID int64) (*model.Board, error) {
	board, err := s.boardRepo.GetDetail(boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, err
	}
	if board.UserID != userID {
		return nil, ErrBoardPermission
	}
	return board, nil
}

// buildLinks 재료 행을 찾거나 만들고 연결 행을 입력 순서대로 만든다. 같은 이름은 처음 것만.
func (s *BoardService) buildLinks(inputs []dto.IngredientInput) ([]*model.RecipeIngredient, []string, error) {
	var names []string
	details := make(map[string]string)
	for _, in := range inputs {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			continue
		}
		if _, ok := details[name]; ok {
			continue
		}
		details[name] = in.Details
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, nil, nil
	}

	ingredients, err := s.ingredientRepo.FindOrCreate(names)
	if err != nil {
		return nil, nil, err
	}

	links := make([]*model.RecipeIngredient, 0, len(ingredients))
	for _, ing := range ingredients {
		links = append(links, &model.RecipeIngredient{
			IngredientID: ing.ID,
			Details:      details[ing.Name],
		})
	}
	return links, names, nil
}

func (s *BoardService) discardImages(ctx context.Context, ids []int64, reason string) error {
	if len(ids) == 0 {
		return nil
	}
	images, err := s.imageRepo.GetByIDs(ids)
	if err != nil {
		return err
	}
	return s.imageService.Discard(ctx, images, reason)
}

func requestFiles(req *dto.BoardRequest) []*dto.UploadFile {
	files := []*dto.UploadFile{req.MainImage}
	for _, ins := range req.Instructions {
		files = append(files, ins.Image)
	}
	return files
}

func boardImageIDs(board *model.Board) []int64 {
	var ids []int64
	if board.MainImageID != nil {
		ids = append(ids, *board.MainImageID)
	}
	for _, d := range board.Descriptions {
		if d.ImageID != nil {
			ids = append(ids, *d.ImageID)
		}
	}
	return ids
}

func buildBoardDetail(board *model.Board) *dto.BoardDetail {
	detail := &dto.BoardDetail{
		ID:           board.ID,
		Title:        board.Title,
		Description:  board.Description,
		Hit:          board.Hit,
		StarCount:    board.StarCount,
		Rating:       board.TotalStar,
		Count:        board.Count,
		MainImage:    board.MainImageURL,
		MainImageID:  board.MainImageID,
		DishTime:     board.DishTime,
		DishLevel:    board.DishLevel,
		DishCategory: board.DishCategory,
		Ingredients:  make([]*dto.BoardIngredient, 0, len(board.Ingredients)),
		Instructions: make([]*dto.BoardInstruction, 0, len(board.Descriptions)),
		CreatedAt:    board.CreatedAt.Format(time.RFC3339),
	}
	if board.User != nil {
		detail.UserName = board.User.Username
	}

	for _, link := range board.Ingredients {
		item := &dto.BoardIngredient{ID: link.IngredientID, Details: link.Details}
		if link.Ingredient != nil {
			item.Name = link.Ingredient.Name
		}
		detail.Ingredients = append(detail.Ingredients, item)
	}
	for _, d := range board.Descriptions {
		detail.Instructions = append(detail.Instructions, &dto.BoardInstruction{
			Step:      d.Step,
			Content:   d.Content,
			ImageID:   d.ImageID,
			ImageLink: d.ImageLink,
		})
	}
	return detail
}
