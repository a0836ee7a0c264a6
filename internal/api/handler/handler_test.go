package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/qs3c/fridge_chef_server/config"
	"github.com/qs3c/fridge_chef_server/internal/api/middleware"
	"github.com/qs3c/fridge_chef_server/internal/pkg/response"
	"github.com/qs3c/fridge_chef_server/internal/pkg/storage"
	"github.com/qs3c/fridge_chef_server/internal/repository"
	"github.com/qs3c/fridge_chef_server/internal/service"
	"github.com/qs3c/fridge_chef_server/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testContext 핸들러 테스트 공용 의존성
type testContext struct {
	DB    *gorm.DB
	Cfg   *config.Config
	Store *storage.Memory

	Auth       *service.AuthService
	Users      *service.UserService
	Images     *service.ImageService
	Boards     *service.BoardService
	Comments   *service.CommentService
	Books      *service.BookService
	Recipes    *service.RecipeService
	Ingredient *service.IngredientService
}

func setupTestContext(t *testing.T) *testContext {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	cfg := &config.Config{
		JWT:     config.JWTConfig{Secret: "test-secret-key", ExpireHours: 24},
		Storage: config.StorageConfig{UploadPath: "images"},
		Upload:  config.UploadConfig{MaxSize: 1 << 20},
		Paging:  config.PagingConfig{DefaultSize: 20, MaxSize: 50},
	}
	store := storage.NewMemory("cdn.test")

	userRepo := repository.NewUserRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	eventRepo := repository.NewEventRepository(db)
	imageRepo := repository.NewImageRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	images := service.NewImageService(imageRepo, store, nil, cfg)

	return &testContext{
		DB:         db,
		Cfg:        cfg,
		Store:      store,
		Auth:       service.NewAuthService(userRepo, cfg),
		Users:      service.NewUserService(userRepo, images),
		Images:     images,
		Boards:     service.NewBoardService(boardRepo, ingredientRepo, eventRepo, imageRepo, images),
		Comments:   service.NewCommentService(commentRepo, boardRepo, eventRepo, userRepo),
		Books:      service.NewBookService(repository.NewBookRepository(db), eventRepo),
		Recipes:    service.NewRecipeService(repository.NewRecipeSearchRepository(db), boardRepo, eventRepo),
		Ingredient: service.NewIngredientService(ingredientRepo),
	}
}

// asUser 로그인한 사용자로 취급. 0 이면 비로그인
func asUser(userID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != 0 {
			c.Set(middleware.UserIDKey, userID)
		}
		c.Next()
	}
}

func performRequest(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type formFile struct {
	Name        string
	ContentType string
	Data        string
}

func performMultipart(t *testing.T, r http.Handler, method, path string, fields map[string]string, files map[string]formFile) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for field, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, f.Name))
		h.Set("Content-Type", f.ContentType)
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write([]byte(f.Data))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	return resp
}

// pageOf 페이지 응답의 content 와 page 정보
func pageOf(t *testing.T, resp response.Response) ([]interface{}, map[string]interface{}) {
	t.Helper()
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "data is not an object: %v", resp.Data)
	content, ok := data["content"].([]interface{})
	require.True(t, ok)
	page, ok := data["page"].(map[string]interface{})
	require.True(t, ok)
	return content, page
}
