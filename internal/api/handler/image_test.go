package handler

import (
	"fmt"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/fridge_chef_server/internal/model"
	"github.com/qs3c/fridge_chef_server/internal/pkg/response"
	"github.com/qs3c/fridge_chef_server/internal/testutil"
)

func imageRouter(ctx *testContext, userID int64) *gin.Engine {
	handler := NewImageHandler(ctx.Images)
	router := gin.New()
	router.Use(asUser(userID))
	router.POST("/images", handler.Upload)
	router.DELETE("/images/:id", handler.Delete)
	return router
}

func TestImageHandler_UploadAndDelete(t *testing.T) {
	ctx := setupTestContext(t)
	user := testutil.TestUser(t, ctx.DB)
	router := imageRouter(ctx, user.ID)

	w := performMultipart(t, router, "POST", "/images", nil, map[string]formFile{
		"file": {Name: "kimchi stew.png", ContentType: "image/png", Data: "png"},
	})
	resp := parseResponse(t, w)
	require.Equal(t, response.CodeSuccess, resp.Code)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "cloud", data["type"])
	assert.Contains(t, data["name"], "_kimchistew.png")
	assert.Equal(t, 1, ctx.Store.Len())

	resp = parseResponse(t, performRequest(router, "DELETE", fmt.Sprintf("/images/%d", int64(data["id"].(float64))), nil))
	assert.Equal(t, response.CodeSuccess, resp.Code)
	assert.Zero(t, ctx.Store.Len())
}

func TestImageHandler_Upload_Rejects(t *testing.T) {
	ctx := setupTestContext(t)
	user := testutil.TestUser(t, ctx.DB)

	w := performMultipart(t, imageRouter(ctx, user.ID), "POST", "/images", nil, map[string]formFile{
		"file": {Name: "a.svg", ContentType: "image/svg+xml", Data: "<svg/>"},
	})
	resp := parseResponse(t, w)
	assert.Equal(t, response.CodeParamError, resp.Code)
	assert.Equal(t, "IMAGE_CONTENT_TYPE_FAIL", resp.ErrorCode)

	w = performMultipart(t, imageRouter(ctx, 0), "POST", "/images", nil, map[string]formFile{
		"file": {Name: "a.png", ContentType: "image/png", Data: "png"},
	})
	assert.Equal(t, response.CodeAuthFailed, parseResponse(t, w).Code)
}

func TestImageHandler_Delete_Rules(t *testing.T) {
	ctx := setupTestContext(t)
	owner := testutil.TestUser(t, ctx.DB)
	other := testutil.TestUser(t, ctx.DB)
	image := testutil.TestImage(t, ctx.DB, owner.ID)
	external := testutil.TestImage(t, ctx.DB, owner.ID, testutil.WithImageType(model.ImageTypeOutURI))

	resp := parseResponse(t, performRequest(imageRouter(ctx, other.ID), "DELETE", fmt.Sprintf("/images/%d", image.ID), nil))
	assert.Equal(t, response.CodePermissionDenied, resp.Code)
	assert.Equal(t, "IMAGE_AUTHOR_MISMATCH", resp.ErrorCode)

	resp = parseResponse(t, performRequest(imageRouter(ctx, other.ID), "DELETE", fmt.Sprintf("/images/%d", external.ID), nil))
	assert.Equal(t, response.CodeSuccess, resp.Code)

	resp = parseResponse(t, performRequest(imageRouter(ctx, owner.ID), "DELETE", "/images/99999", nil))
	assert.Equal(t, response.CodeResourceNotFound, resp.Code)
}

func TestImageHandler_Delete_InUse(t *testing.T) {
	ctx := setupTestContext(t)
	owner := testutil.TestUser(t, ctx.DB)
	image := testutil.TestImage(t, ctx.DB, owner.ID)
	testutil.TestBoard(t, ctx.DB, owner.ID, testutil.WithMainImage(image.ID, image.Link))

	resp := parseResponse(t, performRequest(imageRouter(ctx, owner.ID), "DELETE", fmt.Sprintf("/images/%d", image.ID), nil))
	assert.Equal(t, response.CodeDuplicateAction, resp.Code)
	assert.Equal(t, "IMAGE_IN_USE", resp.ErrorCode)
}
