package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/qs3c/fridge_chef_server/internal/model"
	"github.com/qs3c/fridge_chef_server/internal/model/dto"
	"github.com/qs3c/fridge_chef_server/internal/pkg/errcode"
	"github.com/qs3c/fridge_chef_server/internal/repository"
)

var (
	ErrCommentNotFound   = errcode.NotFound("COMMENT_NOT_FOUND", "댓글을 찾을 수 없습니다")
	ErrCommentPermission = errcode.Forbidden("COMMENT_USER_NOT_WRITER", "작성자만 삭제할 수 있습니다")
	ErrCommentStar       = errcode.Validation("COMMENT_STAR_RANGE", "별점은 1~5 사이여야 합니다")
)

type CommentService struct {
	commentRepo *repository.CommentRepository
	boardRepo   *repository.BoardRepository
	eventRepo   *repository.EventRepository
	userRepo    *repository.UserRepository
}

func NewCommentService(
	commentRepo *repository.CommentRepository,
	boardRepo *repository.BoardRepository,
	eventRepo *repository.EventRepository,
	userRepo *repository.UserRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		boardRepo:   boardRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
	}
}

// Create 댓글 작성 + 게시글 평점 반영
func (s *CommentService) Create(userID, boardID int64, req *dto.CreateCommentRequest) (*dto.CommentItem, error) {
	if req.Star < model.MinStar || req.Star > model.MaxStar {
		return nil, ErrCommentStar
	}

	if _, err := s.boardRepo.GetByID(boardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, err
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{
		UserID:  userID,
		BoardID: boardID,
		Content: req.Content,
		Star:    req.Star,
	}
	err = s.commentRepo.Transaction(func(tx *gorm.DB) error {
		if err := s.commentRepo.WithTx(tx).Create(comment); err != nil {
			return err
		}
		return s.boardRepo.WithTx(tx).AddStar(boardID, comment.Star)
	})
	if err != nil {
		return nil, err
	}

	comment.User = user
	return buildCommentItem(comment, false), nil
}

// Delete 작성자만 삭제. 별점 회수
func (s *CommentService) Delete(userID, commentID int64) error {
	comment, err := s.getComment(commentID)
	if err != nil {
		return err
	}

	if comment.UserID != userID {
		return ErrCommentPermission
	}

	return s.commentRepo.Transaction(func(tx *gorm.DB) error {
		if err := s.commentRepo.WithTx(tx).Delete(commentID); err != nil {
			return err
		}
		return s.boardRepo.WithTx(tx).RemoveStar(comment.BoardID, comment.Star)
	})
}

// ListByBoardID 게시글 댓글 목록
func (s *CommentService) ListByBoardID(ctx context.Context, boardID int64, page, pageSize int, viewerID *int64) ([]*dto.CommentItem, int64, error) {
	if _, err := s.boardRepo.GetByID(boardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrBoardNotFound
		}
		return nil, 0, err
	}

	comments, total, err := s.commentRepo.ListByBoardID(boardID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]int64, len(comments))
	for i, c := range comments {
		ids[i] = c.ID
	}
	hits, err := s.eventRepo.FindCommentHits(ctx, ids, viewerID)
	if err != nil {
		return nil, 0, err
	}

	items := make([]*dto.CommentItem, len(comments))
	for i, c := range comments {
		items[i] = buildCommentItem(c, hits[c.ID].IsHit())
	}
	return items, total, nil
}

// ToggleHit 댓글 좋아요 토글
func (s *CommentService) ToggleHit(userID, commentID int64) (*dto.HitResponse, error) {
	if _, err := s.getComment(commentID); err != nil {
		return nil, err
	}

	hit, err := s.eventRepo.ToggleCommentHit(userID, commentID)
	if err != nil {
		return nil, err
	}

	comment, err := s.getComment(commentID)
	if err != nil {
		return nil, err
	}
	return &dto.HitResponse{Hit: hit == 1, Total: comment.TotalHit}, nil
}

func (s *CommentService) getComment(id int64) (*model.Comment, error) {
	comment, err := s.commentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return comment, nil
}

func buildCommentItem(c *model.Comment, myHit bool) *dto.CommentItem {
	item := &dto.CommentItem{
		ID:        c.ID,
		BoardID:   c.BoardID,
		Content:   c.Content,
		Star:      c.Star,
		TotalHit:  c.TotalHit,
		MyHit:     myHit,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}

	if c.User != nil {
		item.User = &dto.CommentUser{
			ID:        c.User.ID,
			Username:  c.User.Username,
			AvatarURL: c.User.AvatarURL,
		}
	}

	return item
}
