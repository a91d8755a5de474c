package response

import (
	"time"

	"github.com/WakoSS-nsk/api-yamdb/internal/data/entity"
)

type CommentResponse struct {
	ID       string    `json:"id"`
	ReviewID string    `json:"review_id"`
	Author   string    `json:"author"`
	Text     string    `json:"text"`
	PubDate  time.Time `json:"pub_date"`
}

// Helper converter
func CommentToResponse(comment *entity.Comment, author string) CommentResponse {
	return CommentResponse{
		ID:       comment.ID.String(),
		ReviewID: comment.ReviewID.String(),
		Author:   author,
		Text:     comment.Text,
		PubDate:  comment.CreatedAt,
	}
}
