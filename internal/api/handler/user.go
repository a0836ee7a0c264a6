package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/qs3c/fridge_chef_server/internal/api/middleware"
	"github.com/qs3c/fridge_chef_server/internal/pkg/response"
	"github.com/qs3c/fridge_chef_server/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetProfile 내 정보
// GET /api/user/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	profile, err := h.userService.GetProfile(userID)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, profile)
}

// UploadAvatar 프로필 사진 변경
// POST /api/user/avatar
func (h *UserHandler) UploadAvatar(c *gin.Context) {
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

	avatarURL, err := h.userService.UploadAvatar(c.Request.Context(), userID, file)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, gin.H{
		"avatar_url": avatarURL,
	})
}
