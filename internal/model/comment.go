package model

import (
	"time"
)

const (
	MinStar = 1
	MaxStar = 5
)

type Comment struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	BoardID   int64     `gorm:"not null;index" json:"board_id"`
	UserID    int64     `gorm:"not null;index" json:"user_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Star      int       `gorm:"not null;default:0" json:"star"`
	TotalHit  int64     `gorm:"default:0" json:"total_hit"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 관계
	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Board *Board `gorm:"foreignKey:BoardID" json:"board,omitempty"`
}

func (Comment) TableName() string {
	return "comments"
}
