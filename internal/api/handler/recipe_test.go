package handler

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/fridge_chef_server/internal/pkg/response"
	"github.com/qs3c/fridge_chef_server/internal/testutil"
)

func recipeRouter(ctx *testContext, userID int64) *gin.Engine {
	handler := NewRecipeHandler(ctx.Recipes, ctx.Cfg.Paging)
	router := gin.New()
	router.GET("/recipes/search", asUser(userID), handler.Search)
	return router
}

func TestRecipeHandler_Search(t *testing.T) {
	ctx := setupTestContext(t)
	user := testutil.TestUser(t, ctx.DB)
	a := testutil.TestBoard(t, ctx.DB, user.ID, testutil.WithIngredients("양파", "마늘"))
	testutil.TestBoard(t, ctx.DB, user.ID, testutil.WithIngredients("양파"))
	testutil.TestBoard(t, ctx.DB, user.ID, testutil.WithIngredients("감자"))

	w := performRequest(recipeRouter(ctx, 0), "GET", "/recipes/search?sort=MATCH&must=양파&ingredients=마늘&size=10", nil)
	resp := parseResponse(t, w)
	require.Equal(t, response.CodeSuccess, resp.Code)

	content, page := pageOf(t, resp)
	require.Len(t, content, 2)
	assert.Equal(t, float64(2), page["totalElements"])
	assert.Equal(t, float64(0), page["number"])
	assert.Equal(t, float64(10), page["size"])
	assert.Equal(t, float64(1), page["totalPages"])

	first := content[0].(map[string]interface{})
	assert.Equal(t, float64(a.ID), first["id"])
	assert.Equal(t, float64(2), first["have"])
	assert.Equal(t, []interface{}{}, first["without"])

	second := content[1].(map[string]interface{})
	assert.Equal(t, float64(1), second["have"])
	assert.Equal(t, []interface{}{"마늘"}, second["without"])
}

func TestRecipeHandler_Search_ViewerFlag(t *testing.T) {
	ctx := setupTestContext(t)
	user := testutil.TestUser(t, ctx.DB)
	board := testutil.TestBoard(t, ctx.DB, user.ID, testutil.WithIngredients("두부"))
	testutil.TestBoardEvent(t, ctx.DB, user.ID, board.ID, 1)

	resp := parseResponse(t, performRequest(recipeRouter(ctx, user.ID), "GET", "/recipes/search?ingredients=두부", nil))
	content, _ := pageOf(t, resp)
	require.Len(t, content, 1)
	assert.Equal(t, true, content[0].(map[string]interface{})["my_hit"])

	resp = parseResponse(t, performRequest(recipeRouter(ctx, 0), "GET", "/recipes/search?ingredients=두부", nil))
	content, _ = pageOf(t, resp)
	require.Len(t, content, 1)
	assert.Equal(t, false, content[0].(map[string]interface{})["my_hit"])
}

func TestRecipeHandler_Search_PagingClamped(t *testing.T) {
	ctx := setupTestContext(t)
	user := testutil.TestUser(t, ctx.DB)
	for i := 0; i < 3; i++ {
		testutil.TestBoard(t, ctx.DB, user.ID)
	}

	resp := parseResponse(t, performRequest(recipeRouter(ctx, 0), "GET", "/recipes/search?page=-5&size=1000", nil))
	content, page := pageOf(t, resp)
	assert.Len(t, content, 3)
	assert.Equal(t, float64(0), page["number"])
	assert.Equal(t, float64(50), page["size"])

	resp = parseResponse(t, performRequest(recipeRouter(ctx, 0), "GET", "/recipes/search?page=abc", nil))
	assert.Equal(t, response.CodeParamError, resp.Code)
}
