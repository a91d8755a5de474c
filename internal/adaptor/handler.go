package adaptor

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/WakoSS-nsk/api-yamdb/internal/dto/request"
	"github.com/WakoSS-nsk/api-yamdb/internal/usecase"
	"github.com/WakoSS-nsk/api-yamdb/pkg/utils"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Category *CategoryHandler
	Genre    *GenreHandler
	Title    *TitleHandler
	Review   *ReviewHandler
	Comment  *CommentHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, log),
		Category: NewCategoryHandler(service.Category, log),
		Genre:    NewGenreHandler(service.Genre, log),
		Title:    NewTitleHandler(service.Title, log),
		Review:   NewReviewHandler(service.Review, log),
		Comment:  NewCommentHandler(service.Comment, log),
	}
}

// parsePagination reads page/per_page query parameters with defaults.
func parsePagination(r *http.Request) *request.PaginatedRequest {
	query := r.URL.Query()
	return request.NewPaginatedRequest(
		utils.ParseInt(query.Get("page"), 1),
		utils.ParseInt(query.Get("per_page"), 10),
	)
}
