package repository

import (
	"gorm.io/gorm"

	"github.com/qs3c/fridge_chef_server/internal/model"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// WithTx tx 안에서 동작하는 사본
func (r *CommentRepository) WithTx(tx *gorm.DB) *CommentRepository {
	return &CommentRepository{db: tx}
}

// Transaction 다른 저장소의 WithTx 와 묶어 한 트랜잭션으로 실행
func (r *CommentRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}

// Create 댓글 작성
func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

// GetByID ID 로 댓글 조회
func (r *CommentRepository) GetByID(id int64) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.Where("id = ?", id).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Delete 댓글과 댓글 이벤트 삭제
func (r *CommentRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id = ?", id).Delete(&model.CommentUserEvent{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Comment{}, id).Error
	})
}

// ListByBoardID 게시글 댓글 목록 (최신순)
func (r *CommentRepository) ListByBoardID(boardID int64, page, pageSize int) ([]*model.Comment, int64, error) {
	var comments []*model.Comment
	var total int64

	query := r.db.Model(&model.Comment{}).
		Preload("User").
		Where("board_id = ?", boardID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Offset(offsetOf(page, pageSize)).Limit(pageSize).Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

// CountByBoardID 게시글 댓글 수
func (r *CommentRepository) CountByBoardID(boardID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Comment{}).Where("board_id = ?", boardID).Count(&count).Error
	return count, err
}
