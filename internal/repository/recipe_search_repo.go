package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/qs3c/fridge_chef_server/internal/model"
)

// IngredientSearch 재료 매칭 검색 입력
type IngredientSearch struct {
	Page     int
	PageSize int
	Sort     model.SearchSort
	Must     []string
	Optional []string
}

// Pick must ∪ optional (중복 제거, 입력 순서 유지)
func (q IngredientSearch) Pick() []string {
	return dedup(q.Must, q.Optional)
}

type RecipeSearchRepository struct {
	db *gorm.DB
}

func NewRecipeSearchRepository(db *gorm.DB) *RecipeSearchRepository {
	return &RecipeSearchRepository{db: db}
}

// FindByIngredients 재료 조건으로 게시글 페이지 조회
//
// must 는 ingredient_path 부분 문자열 AND, optional 은 pick 에 속한 재료 연결 OR.
// must 가 있으면 optional 은 결과를 줄이지 않고 일치 개수 계산과 MATCH 정렬에만 쓰인다.
// total 은 GROUP BY 이후 정렬/페이징 전에 센다.
func (r *RecipeSearchRepository) FindByIngredients(ctx context.Context, q IngredientSearch) ([]*model.Board, int64, error) {
	must := dedup(q.Must)
	optional := dedup(q.Optional)
	pick := q.Pick()

	var total int64
	counter := r.base(ctx, must, optional, pick).Select("boards.id")
	if err := r.db.WithContext(ctx).Table("(?) AS matched", counter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var boards []*model.Board
	if total == 0 {
		return boards, 0, nil
	}

	err := r.base(ctx, must, optional, pick).
		Select("boards.*").
		Order(searchOrder(q.Sort, len(pick) > 0)).
		Offset(offsetOf(q.Page, q.PageSize)).
		Limit(q.PageSize).
		Find(&boards).Error
	if err != nil {
		return nil, 0, err
	}

	return boards, total, nil
}

func (r *RecipeSearchRepository) base(ctx context.Context, must, optional, pick []string) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&model.Board{})

	if len(pick) > 0 {
		query = query.
			Joins("LEFT JOIN recipe_ingredients ON recipe_ingredients.board_id = boards.id").
			Joins("LEFT JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id AND ingredients.name IN ?", pick)
	}

	var p Predicate
	for _, name := range must {
		p.And(containsExpr("boards.ingredient_path", name))
	}
	if len(must) == 0 {
		for _, name := range optional {
			p.Or(clause.Eq{Column: "ingredients.name", Value: name})
		}
	}

	return p.Apply(query).Group("boards.id")
}
