package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/qs3c/fridge_chef_server/internal/model"
)

type ImageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

func (r *ImageRepository) Create(image *model.Image) error {
	return r.db.Create(image).Error
}

func (r *ImageRepository) GetByID(id int64) (*model.Image, error) {
	var image model.Image
	err := r.db.Where("id = ?", id).First(&image).Error
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// GetByIDs 존재하는 것만 반환
func (r *ImageRepository) GetByIDs(ids []int64) ([]*model.Image, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var images []*model.Image
	err := r.db.Where("id IN ?", ids).Find(&images).Error
	return images, err
}

func (r *ImageRepository) Delete(id int64) error {
	return r.db.Delete(&model.Image{}, id).Error
}

// 이미지를 참조하는 곳: 게시글 대표 이미지, 조리 단계, 프로필
const (
	boardImageRef  = "EXISTS (SELECT 1 FROM boards WHERE boards.main_image_id = images.id)"
	stepImageRef   = "EXISTS (SELECT 1 FROM descriptions WHERE descriptions.image_id = images.id)"
	avatarImageRef = "EXISTS (SELECT 1 FROM users WHERE users.avatar_url <> '' AND users.avatar_url = images.link)"
)

// ListOrphans before 이전에 만들어졌고 게시글/조리 단계/프로필 어디에서도 참조하지 않는 이미지
func (r *ImageRepository) ListOrphans(before time.Time, limit int) ([]*model.Image, error) {
	var images []*model.Image
	err := r.db.
		Where("images.created_at < ?", before).
		Where("NOT " + boardImageRef).
		Where("NOT " + stepImageRef).
		Where("NOT " + avatarImageRef).
		Order("images.id ASC").
		Limit(limit).
		Find(&images).Error
	return images, err
}

// IsReferenced 아직 어딘가에서 쓰는 이미지인지
func (r *ImageRepository) IsReferenced(id int64) (bool, error) {
	var n int64
	err := r.db.Model(&model.Image{}).
		Where("images.id = ?", id).
		Where("(" + boardImageRef + " OR " + stepImageRef + " OR " + avatarImageRef + ")").
		Count(&n).Error
	return n > 0, err
}
