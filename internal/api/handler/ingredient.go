package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/fridge_chef_server/internal/pkg/response"
	"github.com/qs3c/fridge_chef_server/internal/service"
)

type IngredientHandler struct {
	ingredientService *service.IngredientService
}

func NewIngredientHandler(ingredientService *service.IngredientService) *IngredientHandler {
	return &IngredientHandler{
		ingredientService: ingredientService,
	}
}

// Suggest 재료 이름 자동완성
// GET /api/ingredients/suggest?q=양&limit=10
func (h *IngredientHandler) Suggest(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	items, err := h.ingredientService.Suggest(c.Query("q"), limit)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, items)
}
