package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/qs3c/fridge_chef_server/internal/api/middleware"
	"github.com/qs3c/fridge_chef_server/internal/model/dto"
	"github.com/qs3c/fridge_chef_server/internal/pkg/response"
	"github.com/qs3c/fridge_chef_server/internal/service"
)

type ImageHandler struct {
	imageService *service.ImageService
}

func NewImageHandler(imageService *service.ImageService) *ImageHandler {
	return &ImageHandler{
		imageService: imageService,
	}
}

// Upload 이미지 한 장 업로드
// POST /api/images
func (h *ImageHandler) Upload(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		response.ParamError(c, "파일을 선택하세요")
		return
	}

	file, closer, err := openUpload(fh)
	if err != nil {
		response.ServerError(c, "파일을 읽을 수 없습니다")
		return
	}
	defer closer.Close()

	image, err := h.imageService.Upload(c.Request.Context(), userID, file)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, &dto.ImageItem{
		ID:   image.ID,
		Name: image.Name,
		Link: image.Link,
		Type: string(image.Type),
	})
}

// Delete 이미지 삭제. 외부 링크 이미지는 그대로 둔다
// DELETE /api/images/:id
func (h *ImageHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	imageID, ok := pathID(c, "잘못된 이미지 ID")
	if !ok {
		return
	}

	if err := h.imageService.Remove(c.Request.Context(), userID, imageID); err != nil {
		response.Fail(c, err)
		return
	}

	response.SuccessWithMessage(c, "삭제되었습니다", nil)
}
