package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/qs3c/fridge_chef_server/internal/model"
	"github.com/qs3c/fridge_chef_server/internal/model/dto"
	"github.com/qs3c/fridge_chef_server/internal/pkg/metrics"
	"github.com/qs3c/fridge_chef_server/internal/repository"
)

type RecipeService struct {
	searchRepo *repository.RecipeSearchRepository
	boardRepo  *repository.BoardRepository
	eventRepo  *repository.EventRepository
}

func NewRecipeService(
	searchRepo *repository.RecipeSearchRepository,
	boardRepo *repository.BoardRepository,
	eventRepo *repository.EventRepository,
) *RecipeService {
	return &RecipeService{
		searchRepo: searchRepo,
		boardRepo:  boardRepo,
		eventRepo:  eventRepo,
	}
}

// Search 재료 매칭 검색. 페이지 번호/크기는 호출 전에 보정되어 있어야 한다.
//
// have 는 pick 중 게시글에 연결된 재료 수, without 은 연결되지 않은 pick 재료(입력 순서).
// viewer 가 없으면 MyHit 은 항상 false.
func (s *RecipeService) Search(ctx context.Context, req *dto.RecipeSearchRequest, viewerID *int64) ([]*dto.RecipeSearchItem, int64, error) {
	q := repository.IngredientSearch{
		Page:     req.Page,
		PageSize: req.Size,
		Sort:     model.ParseSearchSort(req.Sort),
		Must:     splitNames(req.Must),
		Optional: splitNames(req.Ingredients),
	}
	defer metrics.ObserveSearch(string(q.Sort))()

	boards, total, err := s.searchRepo.FindByIngredients(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]int64, len(boards))
	for i, b := range boards {
		ids[i] = b.ID
	}

	links, err := s.boardRepo.IngredientLinks(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	hits, err := s.eventRepo.FindBoardHits(ctx, ids, viewerID)
	if err != nil {
		return nil, 0, err
	}
	metrics.EnrichmentRows.Add(float64(len(hits)))

	pick := q.Pick()
	items := make([]*dto.RecipeSearchItem, len(boards))
	for i, b := range boards {
		have, without := matchPick(pick, links[b.ID])
		items[i] = &dto.RecipeSearchItem{
			ID:               b.ID,
			Name:             b.Title,
			ImageURL:         b.MainImageURL,
			TotalStar:        b.TotalStar,
			Hit:              b.Hit,
			TotalIngredients: len(links[b.ID]),
			Have:             have,
			Without:          without,
			MyHit:            hits[b.ID].IsHit(),
		}
	}

	slog.Debug("recipe search",
		"sort", q.Sort,
		"must", len(q.Must),
		"optional", len(q.Optional),
		"total", total,
		"returned", len(items),
	)
	return items, total, nil
}

// matchPick 게시글 재료 중 pick 에 든 것의 수와, 빠진 pick 재료
func matchPick(pick, linked []string) (int, []string) {
	owned := make(map[string]struct{}, len(linked))
	for _, name := range linked {
		owned[name] = struct{}{}
	}

	have := 0
	without := make([]string, 0)
	for _, name := range pick {
		if _, ok := owned[name]; ok {
			have++
		} else {
			without = append(without, name)
		}
	}
	return have, without
}

// splitNames ?must=양파,마늘 과 ?must=양파&must=마늘 둘 다 받는다
func splitNames(values []string) []string {
	var out []string
	for _, v := range values {
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				out = append(out, name)
			}
		}
	}
	return out
}
