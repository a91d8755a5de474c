package usecase

import (
	"go.uber.org/zap"

	"github.com/WakoSS-nsk/api-yamdb/internal/data/repository"
	"github.com/WakoSS-nsk/api-yamdb/pkg/mailer"
	"github.com/WakoSS-nsk/api-yamdb/pkg/utils"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Category CategoryService
	Genre    GenreService
	Title    TitleService
	Review   ReviewService
	Comment  CommentService
}

func NewService(repo *repository.Repository, config *utils.Config, mail mailer.Mailer, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, mail, log),
		User:     NewUserService(repo, log),
		Category: NewCategoryService(repo, log),
		Genre:    NewGenreService(repo, log),
		Title:    NewTitleService(repo, log),
		Review:   NewReviewService(repo, log),
		Comment:  NewCommentService(repo, log),
	}
}
