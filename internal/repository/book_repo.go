package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/qs3c/fridge_chef_server/internal/model"
)

// BookQuery 내 레시피/북마크 조회 입력
type BookQuery struct {
	Page     int
	PageSize int
	Sort     model.BookSort
	Type     model.BookType
	ViewerID int64
}

type BookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) *BookRepository {
	return &BookRepository{db: db}
}

// FindBoards MYRECIPE 는 작성자 = viewer, 그 외는 viewer 가 hit = 1 로 표시한 게시글
func (r *BookRepository) FindBoards(ctx context.Context, q BookQuery) ([]*model.Board, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Board{})

	var p Predicate
	if q.Type == model.BookTypeMyRecipe {
		p.And(clause.Eq{Column: "boards.user_id", Value: q.ViewerID})
	} else {
		query = query.Joins("LEFT JOIN board_user_events ON board_user_events.board_id = boards.id")
		p.And(clause.Eq{Column: "board_user_events.user_id", Value: q.ViewerID}).
			And(clause.Eq{Column: "board_user_events.hit", Value: 1})
	}
	query = p.Apply(query)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var boards []*model.Board
	err := query.
		Select("boards.*").
		Preload("User").
		Order(bookBoardOrder(q.Sort)).
		Offset(offsetOf(q.Page, q.PageSize)).
		Limit(q.PageSize).
		Find(&boards).Error
	if err != nil {
		return nil, 0, err
	}

	return boards, total, nil
}

// FindComments viewer 가 작성한 댓글
func (r *BookRepository) FindComments(ctx context.Context, q BookQuery) ([]*model.Comment, int64, error) {
	var p Predicate
	p.And(clause.Eq{Column: "comments.user_id", Value: q.ViewerID})

	query := p.Apply(r.db.WithContext(ctx).Model(&model.Comment{}))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []*model.Comment
	err := query.
		Preload("Board").
		Order(commentOrder(q.Sort)).
		Offset(offsetOf(q.Page, q.PageSize)).
		Limit(q.PageSize).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}
