package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/qs3c/fridge_chef_server/internal/model"
)

type EventRepository struct {
	db *gorm.DB
}

var errHitChanged = errors.New("hit changed by a concurrent toggle")

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// FindBoardHits viewer 가 hit = 1 로 표시한 게시글 이벤트를 board_id 기준 맵으로 반환.
// viewer 가 없거나 boardIDs 가 비었으면 쿼리 없이 빈 맵, 그 외에는 IN 쿼리 한 번.
func (r *EventRepository) FindBoardHits(ctx context.Context, boardIDs []int64, viewerID *int64) (map[int64]*model.BoardUserEvent, error) {
	result := make(map[int64]*model.BoardUserEvent)
	if viewerID == nil || len(boardIDs) == 0 {
		return result, nil
	}

	var events []*model.BoardUserEvent
	err := r.db.WithContext(ctx).
		Where("board_id IN ? AND user_id = ? AND hit = ?", boardIDs, *viewerID, 1).
		Find(&events).Error
	if err != nil {
		return nil, err
	}

	for _, e := range events {
		result[e.BoardID] = e
	}
	return result, nil
}

// FindCommentHits 댓글 버전
func (r *EventRepository) FindCommentHits(ctx context.Context, commentIDs []int64, viewerID *int64) (map[int64]*model.CommentUserEvent, error) {
	result := make(map[int64]*model.CommentUserEvent)
	if viewerID == nil || len(commentIDs) == 0 {
		return result, nil
	}

	var events []*model.CommentUserEvent
	err := r.db.WithContext(ctx).
		Where("comment_id IN ? AND user_id = ? AND hit = ?", commentIDs, *viewerID, 1).
		Find(&events).Error
	if err != nil {
		return nil, err
	}

	for _, e := range events {
		result[e.CommentID] = e
	}
	return result, nil
}

// ToggleBoardHit hit 를 뒤집고 boards.hit 를 같은 트랜잭션에서 조정한다. 바뀐 hit 값 반환.
// 이벤트 행을 먼저 만들어 두고 FOR UPDATE 로 잠근 뒤 뒤집으므로 동시 토글도 한 번씩만 반영된다.
func (r *EventRepository) ToggleBoardHit(userID, boardID int64) (int, error) {
	var hit int
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureEvent(tx, &model.BoardUserEvent{UserID: userID, BoardID: boardID}, "board_id"); err != nil {
			return err
		}

		var event model.BoardUserEvent
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND board_id = ?", userID, boardID).
			First(&event).Error
		if err != nil {
			return err
		}

		hit = 1 - event.Hit
		if err := flipHit(tx, &event, event.Hit, hit); err != nil {
			return err
		}

		return tx.Model(&model.Board{}).Where("id = ?", boardID).
			UpdateColumn("hit", gorm.Expr("hit + ?", hitDelta(hit))).Error
	})
	return hit, err
}

// ToggleCommentHit comments.total_hit 조정 포함
func (r *EventRepository) ToggleCommentHit(userID, commentID int64) (int, error) {
	var hit int
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureEvent(tx, &model.CommentUserEvent{UserID: userID, CommentID: commentID}, "comment_id"); err != nil {
			return err
		}

		var event model.CommentUserEvent
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND comment_id = ?", userID, commentID).
			First(&event).Error
		if err != nil {
			return err
		}

		hit = 1 - event.Hit
		if err := flipHit(tx, &event, event.Hit, hit); err != nil {
			return err
		}

		return tx.Model(&model.Comment{}).Where("id = ?", commentID).
			UpdateColumn("total_hit", gorm.Expr("total_hit + ?", hitDelta(hit))).Error
	})
	return hit, err
}

// ensureEvent (target, user) 행이 없으면 hit = 0 으로 만든다
func ensureEvent(tx *gorm.DB, event interface{}, targetColumn string) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: targetColumn}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(event).Error
}

// flipHit 읽은 값 그대로일 때만 바꾼다
func flipHit(tx *gorm.DB, event interface{}, from, to int) error {
	res := tx.Model(event).Where("hit = ?", from).Update("hit", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected != 1 {
		return errHitChanged
	}
	return nil
}

func hitDelta(hit int) int {
	if hit == 1 {
		return 1
	}
	return -1
}
