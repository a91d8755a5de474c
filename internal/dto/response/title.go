package response

import (
	"github.com/WakoSS-nsk/api-yamdb/internal/data/entity"
)

type TitleResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Year int    `json:"year"`
	// Rating is null when the title has no reviews yet.
	Rating      *float64          `json:"rating"`
	Description *string           `json:"description,omitempty"`
	Genres      []GenreResponse   `json:"genre"`
	Category    *CategoryResponse `json:"category"`
}

// Helper converter
func TitleToResponse(title *entity.Title, genres []*entity.Genre, category *entity.Category) TitleResponse {
	resp := TitleResponse{
		ID:          title.ID.String(),
		Name:        title.Name,
		Year:        title.Year,
		Rating:      title.Rating,
		Description: title.Description,
		Genres:      GenresToResponse(genres),
	}

	if category != nil {
		categoryResp := CategoryToResponse(category)
		resp.Category = &categoryResp
	}

	return resp
}
