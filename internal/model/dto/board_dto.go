package dto

import "io"

// UploadFile 업로드된 파일 한 개 (multipart 에서 연 것)
type UploadFile struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

type IngredientInput struct {
	Name    string
	Details string
}

// InstructionInput 조리 단계. ImageChange 가 false 면 ImageID 의 기존 이미지를 유지
type InstructionInput struct {
	Content     string
	Image       *UploadFile
	ImageChange bool
	ImageID     *int64
}

// BoardRequest 레시피 작성/수정 (multipart 폼)
type BoardRequest struct {
	Title           string
	Description     string
	DishTime        string
	DishLevel       string
	DishCategory    string
	MainImage       *UploadFile
	MainImageChange bool
	MainImageID     *int64
	Ingredients     []IngredientInput
	Instructions    []InstructionInput
}

type BoardCreateResponse struct {
	BoardID int64 `json:"board_id"`
}

// BoardDetail 레시피 단건 조회
type BoardDetail struct {
	ID           int64               `json:"id"`
	Title        string              `json:"title"`
	UserName     string              `json:"user_name"`
	Description  string              `json:"description"`
	Hit          int64               `json:"hit"`
	MyHit        bool                `json:"my_hit"`
	StarCount    int64               `json:"star_count"`
	Rating       float64             `json:"rating"`
	Count        int64               `json:"count"`
	MainImage    string              `json:"main_image"`
	MainImageID  *int64              `json:"main_image_id,omitempty"`
	DishTime     string              `json:"dish_time"`
	DishLevel    string              `json:"dish_level"`
	DishCategory string              `json:"dish_category"`
	Ingredients  []*BoardIngredient  `json:"recipe_ingredients"`
	Instructions []*BoardInstruction `json:"instructions"`
	CreatedAt    string              `json:"created_at"`
}

type BoardIngredient struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Details string `json:"details"`
}

type BoardInstruction struct {
	Step      int    `json:"step"`
	Content   string `json:"content"`
	ImageID   *int64 `json:"image_id,omitempty"`
	ImageLink string `json:"image_link"`
}

// ImageItem 업로드 결과
type ImageItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Link string `json:"link"`
	Type string `json:"type"`
}
