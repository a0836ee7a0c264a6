package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qs3c/fridge_chef_server/internal/model"
)

func TestSearchOrder(t *testing.T) {
	tests := []struct {
		sort    model.SearchSort
		hasPick bool
		want    string
	}{
		{model.SearchSortMatch, true, "COUNT(DISTINCT ingredients.name)"},
		{model.SearchSortMatch, false, "boards.created_at"},
		{model.SearchSortRating, true, "boards.total_star"},
		{model.SearchSortLike, false, "boards.hit"},
		{model.SearchSortLatest, true, "boards.created_at"},
		{model.SearchSort("UNKNOWN"), true, "boards.created_at"},
	}

	for _, tt := range tests {
		o := searchOrder(tt.sort, tt.hasPick)
		assert.Equal(t, tt.want, o.Column.Name, string(tt.sort))
		assert.True(t, o.Desc)
	}
}

func TestSearchOrder_UnknownSameAsLatest(t *testing.T) {
	assert.Equal(t, searchOrder(model.SearchSortLatest, true), searchOrder(model.ParseSearchSort("nope"), true))
}

func TestBookBoardOrder(t *testing.T) {
	assert.Equal(t, "boards.total_star", bookBoardOrder(model.BookSortRating).Column.Name)
	assert.Equal(t, "boards.hit", bookBoardOrder(model.BookSortHit).Column.Name)
	assert.Equal(t, "boards.count", bookBoardOrder(model.BookSortClicks).Column.Name)
	assert.Equal(t, "boards.created_at", bookBoardOrder(model.BookSortLatest).Column.Name)
	assert.Equal(t, "boards.created_at", bookBoardOrder(model.BookSort("x")).Column.Name)
}

func TestCommentOrder(t *testing.T) {
	assert.Equal(t, "comments.star", commentOrder(model.BookSortRating).Column.Name)
	assert.Equal(t, "comments.total_hit", commentOrder(model.BookSortHit).Column.Name)
	assert.Equal(t, "comments.created_at", commentOrder(model.BookSortClicks).Column.Name)
	assert.Equal(t, "comments.created_at", commentOrder(model.BookSortLatest).Column.Name)
}
