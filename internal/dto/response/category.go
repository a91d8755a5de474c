package response

import "github.com/WakoSS-nsk/api-yamdb/internal/data/entity"

type CategoryResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Helper converter
func CategoryToResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		Name: category.Name,
		Slug: category.Slug,
	}
}
