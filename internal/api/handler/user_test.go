package handler

import (
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/fridge_chef_server/internal/pkg/response"
	"github.com/qs3c/fridge_chef_server/internal/testutil"
)

func TestUserHandler_GetProfile(t *testing.T) {
	ctx := setupTestContext(t)
	handler := NewUserHandler(ctx.Users)
	user := testutil.TestUser(t, ctx.DB, testutil.WithUsername("profile"))

	router := gin.New()
	router.GET("/profile", asUser(user.ID), handler.GetProfile)
	router.GET("/anon", asUser(0), handler.GetProfile)

	resp := parseResponse(t, performRequest(router, "GET", "/profile", nil))
	require.Equal(t, response.CodeSuccess, resp.Code)
	assert.Equal(t, "profile", resp.Data.(map[string]interface{})["username"])

	resp = parseResponse(t, performRequest(router, "GET", "/anon", nil))
	assert.Equal(t, response.CodeAuthFailed, resp.Code)
}

func TestUserHandler_UploadAvatar(t *testing.T) {
	ctx := setupTestContext(t)
	handler := NewUserHandler(ctx.Users)
	user := testutil.TestUser(t, ctx.DB)

	router := gin.New()
	router.POST("/avatar", asUser(user.ID), handler.UploadAvatar)

	w := performMultipart(t, router, "POST", "/avatar", nil, map[string]formFile{
		"file": {Name: "me.jpg", ContentType: "image/jpeg", Data: "jpeg"},
	})
	resp := parseResponse(t, w)
	require.Equal(t, response.CodeSuccess, resp.Code)
	url := resp.Data.(map[string]interface{})["avatar_url"].(string)
	assert.True(t, strings.HasPrefix(url, "https://cdn.test/images/"))

	w = performMultipart(t, router, "POST", "/avatar", nil, map[string]formFile{
		"file": {Name: "me.webp", ContentType: "image/webp", Data: "webp"},
	})
	resp = parseResponse(t, w)
	assert.Equal(t, response.CodeParamError, resp.Code)
	assert.Equal(t, "IMAGE_CONTENT_TYPE_FAIL", resp.ErrorCode)

	w = performMultipart(t, router, "POST", "/avatar", map[string]string{"x": "y"}, nil)
	assert.Equal(t, response.CodeParamError, parseResponse(t, w).Code)
}
