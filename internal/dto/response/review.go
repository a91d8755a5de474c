package response

import (
	"time"

	"github.com/WakoSS-nsk/api-yamdb/internal/data/entity"
)

type ReviewResponse struct {
	ID      string    `json:"id"`
	TitleID string    `json:"title_id"`
	Author  string    `json:"author"`
	Text    string    `json:"text"`
	Score   int       `json:"score"`
	PubDate time.Time `json:"pub_date"`
}

// Helper converter
func ReviewToResponse(review *entity.Review, author string) ReviewResponse {
	return ReviewResponse{
		ID:      review.ID.String(),
		TitleID: review.TitleID.String(),
		Author:  author,
		Text:    review.Text,
		Score:   review.Score,
		PubDate: review.CreatedAt,
	}
}
