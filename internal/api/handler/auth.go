package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/qs3c/fridge_chef_server/internal/model/dto"
	"github.com/qs3c/fridge_chef_server/internal/pkg/response"
	"github.com/qs3c/fridge_chef_server/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register 회원가입
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.SuccessWithMessage(c, "가입되었습니다", resp)
}

// Login 로그인
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, resp)
}
