package model

import (
	"time"
)

// BoardUserEvent 사용자별 게시글 좋아요/북마크 상태, (user, board) 당 한 행
type BoardUserEvent struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	BoardID   int64     `gorm:"not null;uniqueIndex:idx_board_user_event" json:"board_id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_board_user_event;index" json:"user_id"`
	Hit       int       `gorm:"not null;default:0" json:"hit"` // 0 또는 1
	UpdatedAt time.Time `json:"updated_at"`
}

func (BoardUserEvent) TableName() string {
	return "board_user_events"
}

func (e *BoardUserEvent) IsHit() bool {
	return e != nil && e.Hit == 1
}

type CommentUserEvent struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	CommentID int64     `gorm:"not null;uniqueIndex:idx_comment_user_event" json:"comment_id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_comment_user_event;index" json:"user_id"`
	Hit       int       `gorm:"not null;default:0" json:"hit"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CommentUserEvent) TableName() string {
	return "comment_user_events"
}

func (e *CommentUserEvent) IsHit() bool {
	return e != nil && e.Hit == 1
}
