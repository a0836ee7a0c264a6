package model

type Ingredient struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;uniqueIndex;not null" json:"name"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}

// RecipeIngredient 게시글-재료 연결 (분량 메모 포함)
type RecipeIngredient struct {
	ID           int64  `gorm:"primaryKey" json:"id"`
	BoardID      int64  `gorm:"not null;index" json:"board_id"`
	IngredientID int64  `gorm:"not null;index" json:"ingredient_id"`
	Details      string `gorm:"size:100" json:"details"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}
