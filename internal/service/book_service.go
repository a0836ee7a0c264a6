package service

import (
	"context"
	"time"

	"github.com/qs3c/fridge_chef_server/internal/model"
	"github.com/qs3c/fridge_chef_server/internal/model/dto"
	"github.com/qs3c/fridge_chef_server/internal/pkg/metrics"
	"github.com/qs3c/fridge_chef_server/internal/repository"
)

// BookService 내 레시피, 북마크, 내 댓글
type BookService struct {
	bookRepo  *repository.BookRepository
	eventRepo *repository.EventRepository
}

func NewBookService(bookRepo *repository.BookRepository, eventRepo *repository.EventRepository) *BookService {
	return &BookService{
		bookRepo:  bookRepo,
		eventRepo: eventRepo,
	}
}

// MyRecipes book=MYRECIPE 면 내가 쓴 글, 그 외는 내가 좋아요한 글
func (s *BookService) MyRecipes(ctx context.Context, viewerID int64, req *dto.BookRequest) ([]*dto.BookBoardItem, int64, error) {
	boards, total, err := s.bookRepo.FindBoards(ctx, repository.BookQuery{
		Page:     req.Page,
		PageSize: req.Size,
		Sort:     model.ParseBookSort(req.Sort),
		Type:     model.ParseBookType(req.Book),
		ViewerID: viewerID,
	})
	if err != nil {
		return nil, 0, err
	}

	ids := make([]int64, len(boards))
	for i, b := range boards {
		ids[i] = b.ID
	}
	hits, err := s.eventRepo.FindBoardHits(ctx, ids, &viewerID)
	if err != nil {
		return nil, 0, err
	}
	metrics.EnrichmentRows.Add(float64(len(hits)))

	items := make([]*dto.BookBoardItem, len(boards))
	for i, b := range boards {
		item := &dto.BookBoardItem{
			ID:          b.ID,
			Title:       b.Title,
			MainImage:   b.MainImageURL,
			MainImageID: b.MainImageID,
			Star:        b.TotalStar,
			Hit:         b.Hit,
			MyHit:       hits[b.ID].IsHit(),
			Click:       b.Count,
			CreatedAt:   b.CreatedAt.Format(time.RFC3339),
		}
		if b.User != nil {
			item.UserName = b.User.Username
		}
		items[i] = item
	}
	return items, total, nil
}

// MyComments 내가 쓴 댓글
func (s *BookService) MyComments(ctx context.Context, viewerID int64, req *dto.BookRequest) ([]*dto.BookCommentItem, int64, error) {
	comments, total, err := s.bookRepo.FindComments(ctx, repository.BookQuery{
		Page:     req.Page,
		PageSize: req.Size,
		Sort:     model.ParseBookSort(req.Sort),
		ViewerID: viewerID,
	})
	if err != nil {
		return nil, 0, err
	}

	items := make([]*dto.BookCommentItem, len(comments))
	for i, c := range comments {
		item := &dto.BookCommentItem{
			ID:        c.ID,
			BoardID:   c.BoardID,
			Content:   c.Content,
			Star:      c.Star,
			TotalHit:  c.TotalHit,
			CreatedAt: c.CreatedAt.Format(time.RFC3339),
		}
		if c.Board != nil {
			item.BoardTitle = c.Board.Title
		}
		items[i] = item
	}
	return items, total, nil
}
