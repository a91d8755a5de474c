package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/WakoSS-nsk/api-yamdb/internal/data/entity"
	"github.com/WakoSS-nsk/api-yamdb/internal/data/repository"
	"github.com/WakoSS-nsk/api-yamdb/internal/dto/request"
	"github.com/WakoSS-nsk/api-yamdb/internal/dto/response"
	"github.com/WakoSS-nsk/api-yamdb/pkg/utils"
)

type TitleService interface {
	GetTitles(ctx context.Context, filter *request.TitleFilterRequest, page *request.PaginatedRequest) (*response.PaginatedResponse[response.TitleResponse], error)
	GetTitleByID(ctx context.Context, titleID string) (*response.TitleResponse, error)
	CreateTitle(ctx context.Context, req *request.TitleRequest) (*response.TitleResponse, error)
	UpdateTitle(ctx context.Context, titleID string, req *request.TitleUpdateRequest) (*response.TitleResponse, error)
	DeleteTitle(ctx context.Context, titleID string) error
}

type titleService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTitleService(repo *repository.Repository, log *zap.Logger) TitleService {
	return &titleService{
		repo: repo,
		log:  log.With(zap.String("service", "title")),
	}
}

func (s *titleService) GetTitles(ctx context.Context, filter *request.TitleFilterRequest, page *request.PaginatedRequest) (*response.PaginatedResponse[response.TitleResponse], error) {
	repoFilter := repository.TitleFilter{
		Name:         filter.Name,
		Year:         filter.Year,
		CategorySlug: filter.Category,
		GenreSlug:    filter.Genre,
	}

	titles, err := s.repo.Title.FindAll(ctx, repoFilter, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("get titles: %w", err)
	}

	total, err := s.repo.Title.CountAll(ctx, repoFilter)
	if err != nil {
		return nil, fmt.Errorf("count titles: %w", err)
	}

	titleResponses := make([]response.TitleResponse, len(titles))
	for i, title := range titles {
		resp, err := s.convertTitle(ctx, title)
		if err != nil {
			return nil, err
		}
		titleResponses[i] = resp
	}

	return response.NewPaginatedResponse(titleResponses, page.Page, page.PerPage, total), nil
}

func (s *titleService) GetTitleByID(ctx context.Context, titleID string) (*response.TitleResponse, error) {
	id, err := uuid.Parse(titleID)
	if err != nil {
		return nil, fmt.Errorf("invalid title id: %w", err)
	}

	title, err := s.repo.Title.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get title by id: %w", err)
	}
	if title == nil {
		return nil, fmt.Errorf("title not found")
	}

	resp, err := s.convertTitle(ctx, title)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func (s *titleService) CreateTitle(ctx context.Context, req *request.TitleRequest) (*response.TitleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create title validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	category, err := s.resolveCategory(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	genres, err := s.resolveGenres(ctx, req.Genres)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	title := &entity.Title{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Year:        req.Year,
		Description: req.Description,
	}
	if category != nil {
		title.CategoryID = &category.ID
	}

	if err := s.repo.Title.Create(ctx, title); err != nil {
		return nil, fmt.Errorf("create title: %w", err)
	}

	if err := s.attachGenres(ctx, title.ID, genres, now); err != nil {
		// Keep the catalog consistent when the join rows fail
		if delErr := s.repo.Title.Delete(ctx, title.ID); delErr != nil {
			s.log.Error("Failed to remove title after genre attach failure",
				zap.String("title_id", title.ID.String()),
				zap.Error(delErr))
		}
		return nil, err
	}

	s.log.Info("Title created",
		zap.String("title_id", title.ID.String()),
		zap.String("name", title.Name),
		zap.Int("genre_count", len(genres)))

	resp := response.TitleToResponse(title, genres, category)
	return &resp, nil
}

func (s *titleService) UpdateTitle(ctx context.Context, titleID string, req *request.TitleUpdateRequest) (*response.TitleResponse, error) {
	id, err := uuid.Parse(titleID)
	if err != nil {
		return nil, fmt.Errorf("invalid title id: %w", err)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update title validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	title, err := s.repo.Title.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find title: %w", err)
	}
	if title == nil {
		return nil, fmt.Errorf("title not found")
	}

	if req.Name != nil {
		title.Name = *req.Name
	}
	if req.Year != nil {
		title.Year = *req.Year
	}
	if req.Description != nil {
		title.Description = req.Description
	}
	if req.Category != nil {
		category, err := s.resolveCategory(ctx, req.Category)
		if err != nil {
			return nil, err
		}
		title.CategoryID = &category.ID
	}

	title.UpdatedAt = time.Now()
	if err := s.repo.Title.Update(ctx, title); err != nil {
		return nil, fmt.Errorf("update title: %w", err)
	}

	// A submitted genre list replaces the existing set
	if req.Genres != nil {
		genres, err := s.resolveGenres(ctx, req.Genres)
		if err != nil {
			return nil, err
		}
		if err := s.repo.TitleGenre.DeleteByTitleID(ctx, title.ID); err != nil {
			return nil, fmt.Errorf("replace title genres: %w", err)
		}
		if err := s.attachGenres(ctx, title.ID, genres, time.Now()); err != nil {
			return nil, err
		}
	}

	s.log.Info("Title updated", zap.String("title_id", title.ID.String()))

	resp, err := s.convertTitle(ctx, title)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func (s *titleService) DeleteTitle(ctx context.Context, titleID string) error {
	id, err := uuid.Parse(titleID)
	if err != nil {
		return fmt.Errorf("invalid title id: %w", err)
	}

	title, err := s.repo.Title.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find title: %w", err)
	}
	if title == nil {
		return fmt.Errorf("title not found")
	}

	if err := s.repo.Title.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete title: %w", err)
	}

	return nil
}

// ==================== HELPER METHODS ====================

// convertTitle loads the genre set and category needed for the
// response shape.
func (s *titleService) convertTitle(ctx context.Context, title *entity.Title) (response.TitleResponse, error) {
	genres, err := s.repo.Genre.FindByTitleID(ctx, title.ID)
	if err != nil {
		return response.TitleResponse{}, fmt.Errorf("get title genres: %w", err)
	}

	var category *entity.Category
	if title.CategoryID != nil {
		category, err = s.repo.Category.FindByID(ctx, *title.CategoryID)
		if err != nil {
			return response.TitleResponse{}, fmt.Errorf("get title category: %w", err)
		}
	}

	return response.TitleToResponse(title, genres, category), nil
}

func (s *titleService) resolveCategory(ctx context.Context, slug *string) (*entity.Category, error) {
	if slug == nil {
		return nil, nil
	}

	category, err := s.repo.Category.FindBySlug(ctx, *slug)
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}
	if category == nil {
		return nil, fmt.Errorf("validation failed: unknown category %s", *slug)
	}

	return category, nil
}

func (s *titleService) resolveGenres(ctx context.Context, slugs []string) ([]*entity.Genre, error) {
	if len(slugs) == 0 {
		return nil, nil
	}

	genres, err := s.repo.Genre.FindBySlugs(ctx, slugs)
	if err != nil {
		return nil, fmt.Errorf("find genres: %w", err)
	}
	if len(genres) != len(slugs) {
		return nil, fmt.Errorf("validation failed: unknown genre slug in %v", slugs)
	}

	return genres, nil
}

func (s *titleService) attachGenres(ctx context.Context, titleID uuid.UUID, genres []*entity.Genre, now time.Time) error {
	if len(genres) == 0 {
		return nil
	}

	titleGenres := make([]*entity.TitleGenre, len(genres))
	for i, genre := range genres {
		titleGenres[i] = &entity.TitleGenre{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			TitleID: titleID,
			GenreID: genre.ID,
		}
	}

	if err := s.repo.TitleGenre.CreateBatch(ctx, titleGenres); err != nil {
		return fmt.Errorf("attach genres: %w", err)
	}

	return nil
}
