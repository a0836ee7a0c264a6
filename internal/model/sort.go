package model

import "strings"

// SearchSort 재료 검색 정렬
type SearchSort string

const (
	SearchSortMatch  SearchSort = "MATCH"
	SearchSortRating SearchSort = "RATING"
	SearchSortLike   SearchSort = "LIKE"
	SearchSortLatest SearchSort = "LATEST"
)

// ParseSearchSort 알 수 없는 값은 LATEST
func ParseSearchSort(s string) SearchSort {
	switch v := SearchSort(strings.ToUpper(strings.TrimSpace(s))); v {
	case SearchSortMatch, SearchSortRating, SearchSortLike:
		return v
	default:
		return SearchSortLatest
	}
}

// BookSort 내 레시피/북마크/댓글 정렬
type BookSort string

const (
	BookSortRating BookSort = "RATING"
	BookSortHit    BookSort = "HIT"
	BookSortClicks BookSort = "CLICKS"
	BookSortLatest BookSort = "LATEST"
)

func ParseBookSort(s string) BookSort {
	switch v := BookSort(strings.ToUpper(strings.TrimSpace(s))); v {
	case BookSortRating, BookSortHit, BookSortClicks:
		return v
	default:
		return BookSortLatest
	}
}

type BookType string

const (
	BookTypeMyRecipe BookType = "MYRECIPE"
	BookTypeBookmark BookType = "BOOKMARK"
)

// ParseBookType MYRECIPE 외에는 모두 북마크 보기
func ParseBookType(s string) BookType {
	if BookType(strings.ToUpper(strings.TrimSpace(s))) == BookTypeMyRecipe {
		return BookTypeMyRecipe
	}
	return BookTypeBookmark
}
