package request

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// PaginatedRequest carries page/per_page query parameters. Out-of-range
// values are clamped rather than rejected.
type PaginatedRequest struct {
	Page    int `json:"page" validate:"min=1"`
	PerPage int `json:"per_page" validate:"min=1,max=100"`
}

func NewPaginatedRequest(page, perPage int) *PaginatedRequest {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return &PaginatedRequest{Page: page, PerPage: perPage}
}

func (p PaginatedRequest) Offset() int {
	return (p.Page - 1) * p.PerPage
}

func (p PaginatedRequest) Limit() int {
	return p.PerPage
}
