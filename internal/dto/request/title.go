package request

type TitleRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=200"`
	Year        int      `json:"year" validate:"required,release_year"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,slug,max=50"`
	Genres      []string `json:"genre,omitempty" validate:"dive,slug,max=50"`
}

type TitleUpdateRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Year        *int     `json:"year,omitempty" validate:"omitempty,release_year"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,slug,max=50"`
	Genres      []string `json:"genre,omitempty" validate:"dive,slug,max=50"`
}

// TitleFilterRequest carries the list query parameters. All filters
// combine with AND.
type TitleFilterRequest struct {
	Name     string
	Year     *int
	Category string
	Genre    string
}
