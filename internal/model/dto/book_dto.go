package dto

// BookRequest 내 레시피/북마크 조회 파라미터
type BookRequest struct {
	Page int    `form:"page"`
	Size int    `form:"size"`
	Sort string `form:"sort"`
	Book string `form:"book"`
}

// BookBoardItem 내 레시피, 북마크 목록 항목
type BookBoardItem struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	MainImage   string  `json:"main_image"`
	MainImageID *int64  `json:"main_image_id,omitempty"`
	UserName    string  `json:"user_name"`
	Star        float64 `json:"star"`
	Hit         int64   `json:"hit"`
	MyHit       bool    `json:"my_hit"`
	Click       int64   `json:"click"`
	CreatedAt   string  `json:"created_at"`
}

// BookCommentItem 내가 쓴 댓글 목록 항목
type BookCommentItem struct {
	ID         int64  `json:"id"`
	BoardID    int64  `json:"board_id"`
	BoardTitle string `json:"board_title"`
	Content    string `json:"content"`
	Star       int    `json:"star"`
	TotalHit   int64  `json:"total_hit"`
	CreatedAt  string `json:"created_at"`
}
