package model

import (
	"strings"
	"time"
)

// IngredientPathSep ingredient_path 구분자
const IngredientPathSep = ","

// Board 레시피 게시글
// total_star, hit 은 카운터 메서드로만 변경한다.
type Board struct {
	ID             int64     `gorm:"primaryKey" json:"id"`
	UserID         int64     `gorm:"not null;index" json:"user_id"`
	Title          string    `gorm:"size:100;not null" json:"title"`
	Description    string    `gorm:"type:text" json:"description"`
	DishTime       string    `gorm:"size:20" json:"dish_time"`
	DishLevel      string    `gorm:"size:20" json:"dish_level"`
	DishCategory   string    `gorm:"size:50" json:"dish_category"`
	MainImageID    *int64    `gorm:"index" json:"main_image_id,omitempty"`
	MainImageURL   string    `gorm:"size:500" json:"main_image_url"`
	IngredientPath string    `gorm:"type:text" json:"-"`
	TotalStar      float64   `gorm:"default:0;index" json:"total_star"`
	StarSum        int64     `gorm:"default:0" json:"-"`
	StarCount      int64     `gorm:"default:0" json:"star_count"`
	Hit            int64     `gorm:"default:0;index" json:"hit"`
	Count          int64     `gorm:"default:0" json:"count"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// 관계
	User         *User               `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Ingredients  []*RecipeIngredient `gorm:"foreignKey:BoardID" json:"ingredients,omitempty"`
	Descriptions []*Description      `gorm:"foreignKey:BoardID" json:"descriptions,omitempty"`
}

func (Board) TableName() string {
	return "boards"
}

// BuildIngredientPath 재료 이름을 검색용 비정규화 문자열로 합친다
func BuildIngredientPath(names []string) string {
	parts := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n != "" {
			parts = append(parts, n)
		}
	}
	return strings.Join(parts, IngredientPathSep)
}

// Description 조리 단계
type Description struct {
	ID        int64  `gorm:"primaryKey" json:"id"`
	BoardID   int64  `gorm:"not null;index" json:"board_id"`
	Step      int    `gorm:"not null" json:"step"`
	Content   string `gorm:"type:text" json:"content"`
	ImageID   *int64 `gorm:"index" json:"image_id,omitempty"`
	ImageLink string `gorm:"size:500" json:"image_link"`
}

func (Description) TableName() string {
	return "descriptions"
}
