package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/fridge_chef_server/internal/model/dto"
	"github.com/qs3c/fridge_chef_server/internal/repository"
	"github.com/qs3c/fridge_chef_server/internal/testutil"
)

func setupBookService(t *testing.T) (*BookService, *testEnv) {
	t.Helper()
	env := setupEnv(t, false)
	return NewBookService(repository.NewBookRepository(env.db), env.eventRepo), env
}

func TestBookService_MyRecipes(t *testing.T) {
	service, env := setupBookService(t)
	me := testutil.TestUser(t, env.db, testutil.WithUsername("me"))
	other := testutil.TestUser(t, env.db)

	mine := testutil.TestBoard(t, env.db, me.ID, testutil.WithTitle("내 레시피"))
	testutil.TestBoard(t, env.db, other.ID)
	testutil.TestBoardEvent(t, env.db, me.ID, mine.ID, 1)

	items, total, err := service.MyRecipes(context.Background(), me.ID, &dto.BookRequest{Size: 10, Book: "MYRECIPE"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "내 레시피", items[0].Title)
	assert.Equal(t, "me", items[0].UserName)
	assert.True(t, items[0].MyHit)
}

func TestBookService_Bookmarks(t *testing.T) {
	service, env := setupBookService(t)
	me := testutil.TestUser(t, env.db)
	other := testutil.TestUser(t, env.db)

	liked := testutil.TestBoard(t, env.db, other.ID)
	unliked := testutil.TestBoard(t, env.db, other.ID)
	testutil.TestBoard(t, env.db, me.ID)
	testutil.TestBoardEvent(t, env.db, me.ID, liked.ID, 1)
	testutil.TestBoardEvent(t, env.db, me.ID, unliked.ID, 0)

	items, total, err := service.MyRecipes(context.Background(), me.ID, &dto.BookRequest{Size: 10, Book: "BOOKMARK"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, liked.ID, items[0].ID)
	assert.True(t, items[0].MyHit)
}

func TestBookService_MyComments(t *testing.T) {
	service, env := setupBookService(t)
	me := testutil.TestUser(t, env.db)
	other := testutil.TestUser(t, env.db)
	board := testutil.TestBoard(t, env.db, other.ID, testutil.WithTitle("된장찌개"))

	testutil.TestComment(t, env.db, me.ID, board.ID, testutil.WithStar(1))
	top := testutil.TestComment(t, env.db, me.ID, board.ID, testutil.WithStar(5))
	testutil.TestComment(t, env.db, other.ID, board.ID)

	items, total, err := service.MyComments(context.Background(), me.ID, &dto.BookRequest{Size: 10, Sort: "RATING"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, items, 2)
	assert.Equal(t, top.ID, items[0].ID)
	assert.Equal(t, "된장찌개", items[0].BoardTitle)
}
