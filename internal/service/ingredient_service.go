package service

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/qs3c/fridge_chef_server/internal/model/dto"
	"github.com/qs3c/fridge_chef_server/internal/repository"
)

const defaultSuggestLimit = 10

type IngredientService struct {
	ingredientRepo *repository.IngredientRepository
}

func NewIngredientService(ingredientRepo *repository.IngredientRepository) *IngredientService {
	return &IngredientService{ingredientRepo: ingredientRepo}
}

// ingredientNames fuzzy.Source
type ingredientNames []string

func (n ingredientNames) String(i int) string { return n[i] }
func (n ingredientNames) Len() int            { return len(n) }

// Suggest 재료 이름 자동완성. q 가 비면 이름순 앞에서부터
func (s *IngredientService) Suggest(q string, limit int) ([]*dto.IngredientSuggestion, error) {
	if limit <= 0 {
		limit = defaultSuggestLimit
	}

	names, err := s.ingredientRepo.ListNames()
	if err != nil {
		return nil, err
	}

	q = strings.TrimSpace(q)
	result := make([]*dto.IngredientSuggestion, 0, limit)
	if q == "" {
		for _, name := range names {
			if len(result) == limit {
				break
			}
			result = append(result, &dto.IngredientSuggestion{Name: name})
		}
		return result, nil
	}

	for _, m := range fuzzy.FindFrom(q, ingredientNames(names)) {
		if len(result) == limit {
			break
		}
		result = append(result, &dto.IngredientSuggestion{Name: m.Str, Score: m.Score})
	}
	return result, nil
}
