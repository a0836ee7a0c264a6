package repository

import (
	"gorm.io/gorm/clause"

	"github.com/qs3c/fridge_chef_server/internal/model"
)

func desc(column string) clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Name: column, Raw: true}, Desc: true}
}

// matchOrder 게시글별 일치 재료 수 내림차순. 동률의 순서는 정하지 않는다.
var matchOrder = desc("COUNT(DISTINCT ingredients.name)")

var latestBoardOrder = desc("boards.created_at")

var searchOrders = map[model.SearchSort]clause.OrderByColumn{
	model.SearchSortMatch:  matchOrder,
	model.SearchSortRating: desc("boards.total_star"),
	model.SearchSortLike:   desc("boards.hit"),
	model.SearchSortLatest: latestBoardOrder,
}

// searchOrder MATCH 는 pick 이 있을 때만 의미가 있어 없으면 LATEST
func searchOrder(sort model.SearchSort, hasPick bool) clause.OrderByColumn {
	if sort == model.SearchSortMatch && !hasPick {
		return latestBoardOrder
	}
	if o, ok := searchOrders[sort]; ok {
		return o
	}
	return latestBoardOrder
}

var bookBoardOrders = map[model.BookSort]clause.OrderByColumn{
	model.BookSortRating: desc("boards.total_star"),
	model.BookSortHit:    desc("boards.hit"),
	model.BookSortClicks: desc("boards.count"),
	model.BookSortLatest: latestBoardOrder,
}

func bookBoardOrder(sort model.BookSort) clause.OrderByColumn {
	if o, ok := bookBoardOrders[sort]; ok {
		return o
	}
	return latestBoardOrder
}

var latestCommentOrder = desc("comments.created_at")

var commentOrders = map[model.BookSort]clause.OrderByColumn{
	model.BookSortRating: desc("comments.star"),
	model.BookSortHit:    desc("comments.total_hit"),
	model.BookSortLatest: latestCommentOrder,
}

// commentOrder CLICKS 등 댓글에 없는 정렬은 최신순
func commentOrder(sort model.BookSort) clause.OrderByColumn {
	if o, ok := commentOrders[sort]; ok {
		return o
	}
	return latestCommentOrder
}
