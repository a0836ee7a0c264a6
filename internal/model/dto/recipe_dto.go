package dto

// RecipeSearchRequest 재료 검색 쿼리 파라미터
type RecipeSearchRequest struct {
	Page        int      `form:"page"`
	Size        int      `form:"size"`
	Sort        string   `form:"sort"`
	Must        []string `form:"must"`
	Ingredients []string `form:"ingredients"`
}

// RecipeSearchItem 재료 검색 결과 한 건
type RecipeSearchItem struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	ImageURL         string   `json:"image_url"`
	TotalStar        float64  `json:"total_star"`
	Hit              int64    `json:"hit"`
	TotalIngredients int      `json:"total_ingredients"`
	Have             int      `json:"have"`
	Without          []string `json:"without"`
	MyHit            bool     `json:"my_hit"`
}

// IngredientSuggestion 재료 이름 자동완성
type IngredientSuggestion struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}
