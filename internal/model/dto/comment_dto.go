package dto

// CreateCommentRequest 댓글 작성 요청 (별점 1~5)
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=500"`
	Star    int    `json:"star" binding:"required"`
}

// CommentItem 게시글 댓글 목록 항목
type CommentItem struct {
	ID        int64        `json:"id"`
	BoardID   int64        `json:"board_id"`
	User      *CommentUser `json:"user"`
	Content   string       `json:"content"`
	Star      int          `json:"star"`
	TotalHit  int64        `json:"total_hit"`
	MyHit     bool         `json:"my_hit"`
	CreatedAt string       `json:"created_at"`
}

type CommentUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

// HitResponse 좋아요 토글 결과
type HitResponse struct {
	Hit   bool  `json:"hit"`
	Total int64 `json:"total"`
}
