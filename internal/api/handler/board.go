package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/fridge_chef_server/internal/api/middleware"
	"github.com/qs3c/fridge_chef_server/internal/model/dto"
	"github.com/qs3c/fridge_chef_server/internal/pkg/response"
	"github.com/qs3c/fridge_chef_server/internal/service"
)

type BoardHandler struct {
	boardService *service.BoardService
}

func NewBoardHandler(boardService *service.BoardService) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
	}
}

// Get 레시피 상세. 조회수 증가
// GET /api/boards/:id
func (h *BoardHandler) Get(c *gin.Context) {
	boardID, ok := pathID(c, "잘못된 레시피 ID")
	if !ok {
		return
	}

	detail, err := h.boardService.Get(c.Request.Context(), boardID, middleware.ViewerID(c))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, detail)
}

// Create 레시피 작성 (multipart)
// POST /api/boards
func (h *BoardHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	req, files, err := parseBoardForm(c)
	defer files.Close()
	if err != nil {
		response.ParamError(c, err.Error())
		return
	}

	resp, err := h.boardService.Create(c.Request.Context(), userID, req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.SuccessWithMessage(c, "등록되었습니다", resp)
}

// Update 레시피 수정 (multipart)
// PUT /api/boards/:id
func (h *BoardHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	boardID, ok := pathID(c, "잘못된 레시피 ID")
	if !ok {
		return
	}

	req, files, err := parseBoardForm(c)
	defer files.Close()
	if err != nil {
		response.ParamError(c, err.Error())
		return
	}

	if err := h.boardService.Update(c.Request.Context(), userID, boardID, req); err != nil {
		response.Fail(c, err)
		return
	}

	response.SuccessWithMessage(c, "수정되었습니다", dto.BoardCreateResponse{BoardID: boardID})
}

// Delete 레시피 삭제
// DELETE /api/boards/:id
func (h *BoardHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	boardID, ok := pathID(c, "잘못된 레시피 ID")
	if !ok {
		return
	}

	if err := h.boardService.Delete(c.Request.Context(), userID, boardID); err != nil {
		response.Fail(c, err)
		return
	}

	response.SuccessWithMessage(c, "삭제되었습니다", nil)
}

// ToggleHit 좋아요 토글
// POST /api/boards/:id/hit
func (h *BoardHandler) ToggleHit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	boardID, ok := pathID(c, "잘못된 레시피 ID")
	if !ok {
		return
	}

	resp, err := h.boardService.ToggleHit(userID, boardID)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, resp)
}

// parseBoardForm 인덱스 필드(ingredients[0].name, instructions[0].image ...)를 이어진 번호까지 읽는다
func parseBoardForm(c *gin.Context) (*dto.BoardRequest, closers, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, fmt.Errorf("multipart 폼을 읽을 수 없습니다: %w", err)
	}

	value := func(key string) string {
		if v := form.Value[key]; len(v) > 0 {
			return v[0]
		}
		return ""
	}
	has := func(key string) bool {
		return len(form.Value[key]) > 0 || len(form.File[key]) > 0
	}

	var files closers
	open := func(key string) (*dto.UploadFile, error) {
		fhs := form.File[key]
		if len(fhs) == 0 {
			return nil, nil
		}
		file, closer, err := openUpload(fhs[0])
		if err != nil {
			return nil, fmt.Errorf("%s 파일을 읽을 수 없습니다", key)
		}
		files = append(files, closer)
		return file, nil
	}

	req := &dto.BoardRequest{
		Title:           value("title"),
		Description:     value("description"),
		DishTime:        value("dish_time"),
		DishLevel:       value("dish_level"),
		DishCategory:    value("dish_category"),
		MainImageChange: parseBool(value("main_image_change")),
	}
	if req.MainImageID, err = optionalID(value("main_image_id")); err != nil {
		return nil, files, err
	}
	if req.MainImage, err = open("main_image"); err != nil {
		return nil, files, err
	}

	for i := 0; ; i++ {
		prefix := fmt.Sprintf("ingredients[%d].", i)
		if !has(prefix + "name") {
			break
		}
		req.Ingredients = append(req.Ingredients, dto.IngredientInput{
			Name:    value(prefix + "name"),
			Details: value(prefix + "details"),
		})
	}

	for i := 0; ; i++ {
		prefix := fmt.Sprintf("instructions[%d].", i)
		if !has(prefix+"content") && !has(prefix+"image") && !has(prefix+"image_id") {
			break
		}
		ins := dto.InstructionInput{
			Content:     value(prefix + "content"),
			ImageChange: parseBool(value(prefix + "image_change")),
		}
		if ins.ImageID, err = optionalID(value(prefix + "image_id")); err != nil {
			return nil, files, err
		}
		if ins.Image, err = open(prefix + "image"); err != nil {
			return nil, files, err
		}
		req.Instructions = append(req.Instructions, ins)
	}

	return req, files, nil
}

func parseBool(s string) bool {
	b, _ := strconv.ParseBool(s)
	return b
}

func optionalID(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("잘못된 이미지 ID: %s", s)
	}
	return &id, nil
}

