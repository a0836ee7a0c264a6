package service

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/qs3c/fridge_chef_server/config"
	"github.com/qs3c/fridge_chef_server/internal/model"
	"github.com/qs3c/fridge_chef_server/internal/model/dto"
	"github.com/qs3c/fridge_chef_server/internal/pkg/errcode"
	"github.com/qs3c/fridge_chef_server/internal/pkg/metrics"
	"github.com/qs3c/fridge_chef_server/internal/pkg/queue"
	"github.com/qs3c/fridge_chef_server/internal/pkg/storage"
	"github.com/qs3c/fridge_chef_server/internal/repository"
)

var (
	ErrImageNotFound       = errcode.NotFound("IMAGE_NOT_ID", "이미지를 찾을 수 없습니다")
	ErrImageAuthorMismatch = errcode.Forbidden("IMAGE_AUTHOR_MISMATCH", "이미지 작성자가 아닙니다")
	ErrImageContentType    = errcode.Validation("IMAGE_CONTENT_TYPE_FAIL", "허용되지 않는 이미지 형식입니다")
	ErrImageTooLarge       = errcode.Validation("IMAGE_TOO_LARGE", "이미지 크기가 너무 큽니다")
	ErrImageEmpty          = errcode.Validation("IMAGE_EMPTY", "업로드할 파일이 없습니다")
	ErrImageInUse          = errcode.Conflict("IMAGE_IN_USE", "게시글이나 프로필에서 사용 중인 이미지입니다")
)

// mimePattern upload.allowed_types 가 비어 있을 때의 기본값
var mimePattern = regexp.MustCompile(`^image/(png|jpeg|jpg)$`)

// CleanupQueue 오브젝트 삭제 작업 큐
type CleanupQueue interface {
	Push(ctx context.Context, msgs ...*queue.ImageCleanupMessage) error
}

type ImageService struct {
	imageRepo *repository.ImageRepository
	store     storage.Storage
	queue     CleanupQueue
	cfg       *config.Config
}

// NewImageService queue 가 nil 이면 저장소 삭제를 요청 안에서 바로 한다
func NewImageService(imageRepo *repository.ImageRepository, store storage.Storage, q CleanupQueue, cfg *config.Config) *ImageService {
	return &ImageService{
		imageRepo: imageRepo,
		store:     store,
		queue:     q,
		cfg:       cfg,
	}
}

// Filter 업로드 전에 Content-Type 과 크기를 한꺼번에 검사
func (s *ImageService) Filter(files ...*dto.UploadFile) error {
	for _, f := range files {
		if f == nil {
			continue
		}
		if !s.allowedType(f.ContentType) {
			return ErrImageContentType
		}
		if s.cfg.Upload.MaxSize > 0 && f.Size > s.cfg.Upload.MaxSize {
			return ErrImageTooLarge
		}
	}
	return nil
}

func (s *ImageService) allowedType(contentType string) bool {
	allowed := s.cfg.Upload.AllowedTypes
	if len(allowed) == 0 {
		return mimePattern.MatchString(contentType)
	}
	for _, t := range allowed {
		if strings.EqualFold(strings.TrimSpace(t), contentType) {
			return true
		}
	}
	return false
}

// Upload 저장소에 올리고 이미지 행 생성
func (s *ImageService) Upload(ctx context.Context, userID int64, file *dto.UploadFile) (*model.Image, error) {
	if file == nil || file.Reader == nil {
		return nil, ErrImageEmpty
	}
	if err := s.Filter(file); err != nil {
		return nil, err
	}

	name := objectName(file.Name)
	key := storage.ObjectKey(s.cfg.Storage.UploadPath, name)

	link, err := s.store.Put(ctx, key, file.Reader, file.ContentType)
	if err != nil {
		return nil, err
	}

	image := &model.Image{
		UserID: &userID,
		Name:   name,
		Path:   key,
		Link:   link,
		Type:   model.ImageTypeCloud,
	}
	if err := s.imageRepo.Create(image); err != nil {
		// 행이 없으면 고아 스윕으로도 못 찾으니 바로 지운다
		s.dispatch(ctx, []*queue.ImageCleanupMessage{{ObjectKey: key, Reason: "upload_failed"}})
		return nil, err
	}

	slog.Info("image uploaded", "user_id", userID, "image_id", image.ID, "name", name)
	return image, nil
}

// SaveExternal 외부 URI 이미지는 링크만 저장하고 저장소에서 지우지 않는다
func (s *ImageService) SaveExternal(uri string) (*model.Image, error) {
	image := &model.Image{
		Link: uri,
		Type: model.ImageTypeOutURI,
	}
	if err := s.imageRepo.Create(image); err != nil {
		return nil, err
	}
	return image, nil
}

// Remove 이미지 삭제. 외부 URI 이미지는 아무 것도 하지 않고, 참조 중인 이미지는 거절한다
func (s *ImageService) Remove(ctx context.Context, userID, imageID int64) error {
	image, err := s.imageRepo.GetByID(imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrImageNotFound
		}
		return err
	}

	if image.Type == "" || image.Type == model.ImageTypeOutURI {
		return nil
	}

	if image.UserID == nil || *image.UserID != userID {
		return ErrImageAuthorMismatch
	}

	// 참조를 지우는 건 게시글 수정/프로필 변경 쪽에서 한다
	inUse, err := s.imageRepo.IsReferenced(image.ID)
	if err != nil {
		return err
	}
	if inUse {
		return ErrImageInUse
	}

	return s.Discard(ctx, []*model.Image{image}, "image_removed")
}

// Discard 행을 지우고 저장소 오브젝트 삭제를 예약
func (s *ImageService) Discard(ctx context.Context, images []*model.Image, reason string) error {
	var msgs []*queue.ImageCleanupMessage
	for _, image := range images {
		if image == nil {
			continue
		}
		if err := s.imageRepo.Delete(image.ID); err != nil {
			return err
		}
		if image.Removable() {
			msgs = append(msgs, &queue.ImageCleanupMessage{
				ImageID:   image.ID,
				ObjectKey: image.Path,
				Reason:    reason,
			})
		}
	}
	s.dispatch(ctx, msgs)
	return nil
}

// SweepOrphans 게시글/조리 단계에서 참조하지 않는 오래된 이미지 정리
func (s *ImageService) SweepOrphans(ctx context.Context, olderThan time.Duration, limit int) (int, error) {
	orphans, err := s.imageRepo.ListOrphans(time.Now().Add(-olderThan), limit)
	if err != nil {
		return 0, err
	}
	if len(orphans) == 0 {
		return 0, nil
	}

	if err := s.Discard(ctx, orphans, "orphan"); err != nil {
		return 0, err
	}
	return len(orphans), nil
}

func (s *ImageService) dispatch(ctx context.Context, msgs []*queue.ImageCleanupMessage) {
	if len(msgs) == 0 {
		return
	}

	if s.queue != nil {
		err := s.queue.Push(ctx, msgs...)
		if err == nil {
			return
		}
		slog.Warn("enqueue image cleanup failed, deleting inline", "error", err, "count", len(msgs))
	}

	for _, msg := range msgs {
		if err := s.store.Delete(ctx, msg.ObjectKey); err != nil {
			metrics.ImageCleanupJobs.WithLabelValues("failed").Inc()
			slog.Error("delete image object failed", "key", msg.ObjectKey, "error", err)
			continue
		}
		metrics.ImageCleanupJobs.WithLabelValues("inline").Inc()
	}
}

// objectName uuid + "_" + 공백을 뺀 원래 이름
func objectName(original string) string {
	cleaned := strings.Join(strings.Fields(original), "")
	return uuid.NewString() + "_" + cleaned
}
