package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/qs3c/fridge_chef_server/config"
	"github.com/qs3c/fridge_chef_server/internal/api/middleware"
	"github.com/qs3c/fridge_chef_server/internal/model/dto"
	"github.com/qs3c/fridge_chef_server/internal/pkg/response"
	"github.com/qs3c/fridge_chef_server/internal/service"
)

// BookHandler 내 레시피, 북마크, 내 댓글
type BookHandler struct {
	bookService *service.BookService
	paging      config.PagingConfig
}

func NewBookHandler(bookService *service.BookService, paging config.PagingConfig) *BookHandler {
	return &BookHandler{
		bookService: bookService,
		paging:      paging,
	}
}

func (h *BookHandler) bind(c *gin.Context) (int64, *dto.BookRequest, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return 0, nil, false
	}

	var req dto.BookRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ParamError(c, err.Error())
		return 0, nil, false
	}
	req.Page, req.Size = h.paging.Normalize(req.Page, req.Size)
	return userID, &req, true
}

// Boards book=MYRECIPE 면 내가 쓴 글, 그 외는 좋아요한 글
// GET /api/books/boards?page=0&size=20&sort=RATING&book=BOOKMARK
func (h *BookHandler) Boards(c *gin.Context) {
	userID, req, ok := h.bind(c)
	if !ok {
		return
	}

	items, total, err := h.bookService.MyRecipes(c.Request.Context(), userID, req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.SuccessPage(c, total, req.Page, req.Size, items)
}

// Comments 내가 쓴 댓글
// GET /api/books/comments?page=0&size=20&sort=HIT
func (h *BookHandler) Comments(c *gin.Context) {
	userID, req, ok := h.bind(c)
	if !ok {
		return
	}

	items, total, err := h.bookService.MyComments(c.Request.Context(), userID, req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.SuccessPage(c, total, req.Page, req.Size, items)
}
