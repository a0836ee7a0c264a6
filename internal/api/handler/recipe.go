package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/qs3c/fridge_chef_server/config"
	"github.com/qs3c/fridge_chef_server/internal/api/middleware"
	"github.com/qs3c/fridge_chef_server/internal/model/dto"
	"github.com/qs3c/fridge_chef_server/internal/pkg/response"
	"github.com/qs3c/fridge_chef_server/internal/service"
)

type RecipeHandler struct {
	recipeService *service.RecipeService
	paging        config.PagingConfig
}

func NewRecipeHandler(recipeService *service.RecipeService, paging config.PagingConfig) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		paging:        paging,
	}
}

// Search 냉장고 재료로 레시피 검색
// GET /api/recipes/search?page=0&size=20&sort=MATCH&must=양파&ingredients=마늘,간장
func (h *RecipeHandler) Search(c *gin.Context) {
	var req dto.RecipeSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}
	req.Page, req.Size = h.paging.Normalize(req.Page, req.Size)

	items, total, err := h.recipeService.Search(c.Request.Context(), &req, middleware.ViewerID(c))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.SuccessPage(c, total, req.Page, req.Size, items)
}
