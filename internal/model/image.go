package model

import (
	"time"
)

type ImageType string

const (
	ImageTypeCloud  ImageType = "cloud"
	ImageTypeOutURI ImageType = "out_uri" // 외부 URL, 스토리지에서 삭제하지 않음
	ImageTypeNone   ImageType = "none"
)

type Image struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	UserID    *int64    `gorm:"index" json:"user_id,omitempty"`
	Name      string    `gorm:"size:255" json:"name"`
	Path      string    `gorm:"size:500" json:"path"`
	Link      string    `gorm:"size:500" json:"link"`
	Type      ImageType `gorm:"size:20;not null;default:none" json:"type"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (Image) TableName() string {
	return "images"
}

// Removable 스토리지 객체를 지워야 하는 이미지인지
func (i *Image) Removable() bool {
	return i.Type == ImageTypeCloud && i.Path != ""
}
