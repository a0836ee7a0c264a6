package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/qs3c/fridge_chef_server/internal/model/dto"
	"github.com/qs3c/fridge_chef_server/internal/repository"
)

type UserService struct {
	userRepo     *repository.UserRepository
	imageService *ImageService
}

func NewUserService(userRepo *repository.UserRepository, imageService *ImageService) *UserService {
	return &UserService{
		userRepo:     userRepo,
		imageService: imageService,
	}
}

// GetProfile 내 정보
func (s *UserService) GetProfile(userID int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return buildUserInfo(user), nil
}

// UploadAvatar 프로필 사진 업로드 후 avatar_url 갱신
func (s *UserService) UploadAvatar(ctx context.Context, userID int64, file *dto.UploadFile) (string, error) {
	if _, err := s.GetProfile(userID); err != nil {
		return "", err
	}

	image, err := s.imageService.Upload(ctx, userID, file)
	if err != nil {
		return "", err
	}

	if err := s.userRepo.UpdateFields(userID, map[string]interface{}{
		"avatar_url": image.Link,
	}); err != nil {
		return "", err
	}
	return image.Link, nil
}
