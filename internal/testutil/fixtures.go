package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/qs3c/fridge_chef_server/internal/model"
)

var seq int64

func nextSeq() int64 {
	return atomic.AddInt64(&seq, 1)
}

// TestUser 테스트 사용자 생성
func TestUser(t *testing.T, db *gorm.DB, opts ...func(*model.User)) *model.User {
	t.Helper()

	n := nextSeq()
	email := fmt.Sprintf("test_%d_%d@example.com", time.Now().UnixNano(), n)
	passwordHash := "$2a$10$abcdefghijklmnopqrstuvwxyz123456" // bcrypt 자리표시자
	user := &model.User{
		Username:     fmt.Sprintf("testuser_%d", n),
		Email:        &email,
		PasswordHash: &passwordHash,
	}

	for _, opt := range opts {
		opt(user)
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

func WithUsername(username string) func(*model.User) {
	return func(u *model.User) {
		u.Username = username
	}
}

func WithEmail(email string) func(*model.User) {
	return func(u *model.User) {
		u.Email = &email
	}
}

func WithPasswordHash(hash string) func(*model.User) {
	return func(u *model.User) {
		u.PasswordHash = &hash
	}
}

// boardFixture 게시글 + 재료 연결 생성 옵션
type boardFixture struct {
	board       *model.Board
	ingredients []string
	path        *string
}

// TestBoard 테스트 게시글 생성. WithIngredients 로 재료 연결과 ingredient_path 를 함께 만든다.
func TestBoard(t *testing.T, db *gorm.DB, userID int64, opts ...func(*boardFixture)) *model.Board {
	t.Helper()

	f := &boardFixture{
		board: &model.Board{
			UserID: userID,
			Title:  fmt.Sprintf("Test Recipe %d", nextSeq()),
		},
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.path != nil {
		f.board.IngredientPath = *f.path
	} else {
		f.board.IngredientPath = model.BuildIngredientPath(f.ingredients)
	}

	if err := db.Create(f.board).Error; err != nil {
		t.Fatalf("Failed to create test board: %v", err)
	}

	for _, name := range f.ingredients {
		ing := TestIngredient(t, db, name)
		link := &model.RecipeIngredient{BoardID: f.board.ID, IngredientID: ing.ID, Details: "1개"}
		if err := db.Create(link).Error; err != nil {
			t.Fatalf("Failed to create recipe ingredient: %v", err)
		}
	}

	return f.board
}

func WithTitle(title string) func(*boardFixture) {
	return func(f *boardFixture) {
		f.board.Title = title
	}
}

// WithIngredients 재료 연결 + ingredient_path
func WithIngredients(names ...string) func(*boardFixture) {
	return func(f *boardFixture) {
		f.ingredients = append(f.ingredients, names...)
	}
}

// WithIngredientPath 연결과 무관하게 path 문자열만 지정
func WithIngredientPath(path string) func(*boardFixture) {
	return func(f *boardFixture) {
		f.path = &path
	}
}

func WithStats(totalStar float64, hit, count int64) func(*boardFixture) {
	return func(f *boardFixture) {
		f.board.TotalStar = totalStar
		f.board.Hit = hit
		f.board.Count = count
	}
}

func WithCreatedAt(at time.Time) func(*boardFixture) {
	return func(f *boardFixture) {
		f.board.CreatedAt = at
	}
}

func WithMainImage(imageID int64, url string) func(*boardFixture) {
	return func(f *boardFixture) {
		f.board.MainImageID = &imageID
		f.board.MainImageURL = url
	}
}

// TestIngredient 이름으로 조회, 없으면 생성
func TestIngredient(t *testing.T, db *gorm.DB, name string) *model.Ingredient {
	t.Helper()

	var ing model.Ingredient
	if err := db.Where(model.Ingredient{Name: name}).FirstOrCreate(&ing).Error; err != nil {
		t.Fatalf("Failed to create test ingredient: %v", err)
	}
	return &ing
}

// TestComment 테스트 댓글 생성
func TestComment(t *testing.T, db *gorm.DB, userID, boardID int64, opts ...func(*model.Comment)) *model.Comment {
	t.Helper()

	comment := &model.Comment{
		UserID:  userID,
		BoardID: boardID,
		Content: fmt.Sprintf("comment %d", nextSeq()),
		Star:    3,
	}
	for _, opt := range opts {
		opt(comment)
	}

	if err := db.Create(comment).Error; err != nil {
		t.Fatalf("Failed to create test comment: %v", err)
	}
	return comment
}

func WithStar(star int) func(*model.Comment) {
	return func(c *model.Comment) {
		c.Star = star
	}
}

func WithTotalHit(hit int64) func(*model.Comment) {
	return func(c *model.Comment) {
		c.TotalHit = hit
	}
}

func WithCommentCreatedAt(at time.Time) func(*model.Comment) {
	return func(c *model.Comment) {
		c.CreatedAt = at
	}
}

// TestBoardEvent 게시글 상호작용 행 생성
func TestBoardEvent(t *testing.T, db *gorm.DB, userID, boardID int64, hit int) *model.BoardUserEvent {
	t.Helper()

	event := &model.BoardUserEvent{UserID: userID, BoardID: boardID, Hit: hit}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("Failed to create test board event: %v", err)
	}
	return event
}

func TestCommentEvent(t *testing.T, db *gorm.DB, userID, commentID int64, hit int) *model.CommentUserEvent {
	t.Helper()

	event := &model.CommentUserEvent{UserID: userID, CommentID: commentID, Hit: hit}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("Failed to create test comment event: %v", err)
	}
	return event
}

// TestImage 테스트 이미지 생성
func TestImage(t *testing.T, db *gorm.DB, userID int64, opts ...func(*model.Image)) *model.Image {
	t.Helper()

	n := nextSeq()
	image := &model.Image{
		UserID: &userID,
		Name:   fmt.Sprintf("img_%d.png", n),
		Path:   fmt.Sprintf("images/img_%d.png", n),
		Link:   fmt.Sprintf("https://cdn.example.com/images/img_%d.png", n),
		Type:   model.ImageTypeCloud,
	}
	for _, opt := range opts {
		opt(image)
	}

	if err := db.Create(image).Error; err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}
	return image
}

func WithImageType(typ model.ImageType) func(*model.Image) {
	return func(i *model.Image) {
		i.Type = typ
	}
}

func WithImageCreatedAt(at time.Time) func(*model.Image) {
	return func(i *model.Image) {
		i.CreatedAt = at
	}
}
