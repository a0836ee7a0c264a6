package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/fridge_chef_server/config"
	"github.com/qs3c/fridge_chef_server/internal/api/middleware"
	"github.com/qs3c/fridge_chef_server/internal/model/dto"
	"github.com/qs3c/fridge_chef_server/internal/pkg/response"
	"github.com/qs3c/fridge_chef_server/internal/service"
)

type CommentHandler struct {
	commentService *service.CommentService
	paging         config.PagingConfig
}

func NewCommentHandler(commentService *service.CommentService, paging config.PagingConfig) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		paging:         paging,
	}
}

// List 레시피 댓글 목록
// GET /api/boards/:id/comments?page=0&size=20
func (h *CommentHandler) List(c *gin.Context) {
	boardID, ok := pathID(c, "잘못된 레시피 ID")
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.Query("size"))
	page, size = h.paging.Normalize(page, size)

	items, total, err := h.commentService.ListByBoardID(c.Request.Context(), boardID, page, size, middleware.ViewerID(c))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.SuccessPage(c, total, page, size, items)
}

// Create 댓글 작성 (별점 1~5)
// POST /api/boards/:id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	boardID, ok := pathID(c, "잘못된 레시피 ID")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	comment, err := h.commentService.Create(userID, boardID, &req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.SuccessWithMessage(c, "댓글이 등록되었습니다", comment)
}

// Delete 댓글 삭제
// DELETE /api/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	commentID, ok := pathID(c, "잘못된 댓글 ID")
	if !ok {
		return
	}

	if err := h.commentService.Delete(userID, commentID); err != nil {
		response.Fail(c, err)
		return
	}

	response.SuccessWithMessage(c, "삭제되었습니다", nil)
}

// ToggleHit 댓글 좋아요 토글
// POST /api/comments/:id/hit
func (h *CommentHandler) ToggleHit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	commentID, ok := pathID(c, "잘못된 댓글 ID")
	if !ok {
		return
	}

	resp, err := h.commentService.ToggleHit(userID, commentID)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, resp)
}
