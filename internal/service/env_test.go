package service

import (
	"context"
	"strings"
	"sync"
	"testing"

	"gorm.io/gorm"

	"github.com/qs3c/fridge_chef_server/config"
	"github.com/qs3c/fridge_chef_server/internal/model/dto"
	"github.com/qs3c/fridge_chef_server/internal/pkg/queue"
	"github.com/qs3c/fridge_chef_server/internal/pkg/storage"
	"github.com/qs3c/fridge_chef_server/internal/repository"
	"github.com/qs3c/fridge_chef_server/internal/testutil"
)

// recordingQueue 넣은 메시지를 기록만 한다
type recordingQueue struct {
	mu   sync.Mutex
	msgs []*queue.ImageCleanupMessage
}

func (q *recordingQueue) Push(ctx context.Context, msgs ...*queue.ImageCleanupMessage) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.msgs = append(q.msgs, msgs...)
	return nil
}

func (q *recordingQueue) keys() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	keys := make([]string, len(q.msgs))
	for i, m := range q.msgs {
		keys[i] = m.ObjectKey
	}
	return keys
}

type testEnv struct {
	db    *gorm.DB
	cfg   *config.Config
	store *storage.Memory
	queue *recordingQueue

	userRepo       *repository.UserRepository
	boardRepo      *repository.BoardRepository
	ingredientRepo *repository.IngredientRepository
	eventRepo      *repository.EventRepository
	imageRepo      *repository.ImageRepository
	commentRepo    *repository.CommentRepository

	images *ImageService
}

// setupEnv withQueue 가 false 면 이미지 삭제가 저장소에 바로 반영된다
func setupEnv(t *testing.T, withQueue bool) *testEnv {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	cfg := &config.Config{
		JWT:     config.JWTConfig{Secret: "test-secret-key-for-testing", ExpireHours: 24},
		Storage: config.StorageConfig{Driver: "memory", CDNDomain: "cdn.test", UploadPath: "images"},
		Upload:  config.UploadConfig{MaxSize: 1024},
		Paging:  config.PagingConfig{DefaultSize: 20, MaxSize: 50},
	}

	env := &testEnv{
		db:             db,
		cfg:            cfg,
		store:          storage.NewMemory("cdn.test"),
		userRepo:       repository.NewUserRepository(db),
		boardRepo:      repository.NewBoardRepository(db),
		ingredientRepo: repository.NewIngredientRepository(db),
		eventRepo:      repository.NewEventRepository(db),
		imageRepo:      repository.NewImageRepository(db),
		commentRepo:    repository.NewCommentRepository(db),
	}

	var q CleanupQueue
	if withQueue {
		env.queue = &recordingQueue{}
		q = env.queue
	}
	env.images = NewImageService(env.imageRepo, env.store, q, cfg)
	return env
}

func (e *testEnv) boardService() *BoardService {
	return NewBoardService(e.boardRepo, e.ingredientRepo, e.eventRepo, e.imageRepo, e.images)
}

func (e *testEnv) commentService() *CommentService {
	return NewCommentService(e.commentRepo, e.boardRepo, e.eventRepo, e.userRepo)
}

func pngFile(name string) *dto.UploadFile {
	return &dto.UploadFile{
		Name:        name,
		ContentType: "image/png",
		Size:        4,
		Reader:      strings.NewReader("\x89PNG"),
	}
}
