package repository

import (
	lru "github.com/hashicorp/golang-lru"
	"gorm.io/gorm"

	"github.com/qs3c/fridge_chef_server/internal/model"
)

const ingredientCacheSize = 1024

// IngredientRepository 이름 → 재료 행 캐시(LRU) 포함. 재료 행은 이름이 바뀌지 않는다.
type IngredientRepository struct {
	db    *gorm.DB
	cache *lru.Cache
}

func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	cache, _ := lru.New(ingredientCacheSize)
	return &IngredientRepository{db: db, cache: cache}
}

// FindOrCreate 이름별 재료 행을 찾고 없으면 만든다. 결과는 입력 순서(중복 제거)대로.
func (r *IngredientRepository) FindOrCreate(names []string) ([]*model.Ingredient, error) {
	names = dedup(names)
	result := make([]*model.Ingredient, 0, len(names))

	for _, name := range names {
		if v, ok := r.cache.Get(name); ok {
			ing := v.(model.Ingredient)
			result = append(result, &ing)
			continue
		}

		var ing model.Ingredient
		if err := r.db.Where(model.Ingredient{Name: name}).FirstOrCreate(&ing).Error; err != nil {
			return nil, err
		}
		r.cache.Add(name, ing)
		result = append(result, &ing)
	}

	return result, nil
}

func (r *IngredientRepository) GetByName(name string) (*model.Ingredient, error) {
	var ing model.Ingredient
	err := r.db.Where("name = ?", name).First(&ing).Error
	if err != nil {
		return nil, err
	}
	return &ing, nil
}

// ListNames 전체 재료 이름 (자동완성용)
func (r *IngredientRepository) ListNames() ([]string, error) {
	var names []string
	err := r.db.Model(&model.Ingredient{}).Order("name ASC").Pluck("name", &names).Error
	return names, err
}
