package usecase

import (
	"context"
	"errors"
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

type CategoryService interface {
	GetCategories(ctx context.Context, search string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.CategoryResponse], error)
	CreateCategory(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error)
	DeleteCategory(ctx context.Context, slug string) error
}

type categoryService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCategoryService(repo *repository.Repository, log *zap.Logger) CategoryService {
	return &categoryService{
		repo: repo,
		log:  log.With(zap.String("service", "category")),
	}
}

func (s *categoryService) GetCategories(ctx context.Context, search string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.CategoryResponse], error) {
	categories, err := s.repo.Category.FindAll(ctx, search, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}

	total, err := s.repo.Category.CountAll(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}

	categoryResponses := make([]response.CategoryResponse, len(categories))
	for i, category := range categories {
		categoryResponses[i] = response.CategoryToResponse(category)
	}

	return response.NewPaginatedResponse(categoryResponses, page.Page, page.PerPage, total), nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create category validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	category := &entity.Category{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name: req.Name,
		Slug: req.Slug,
	}

	if err := s.repo.Category.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrSlugTaken) {
			return nil, fmt.Errorf("validation failed: slug %s is already taken", req.Slug)
		}
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.log.Info("Category created",
		zap.String("category_id", category.ID.String()),
		zap.String("slug", category.Slug))

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, slug string) error {
	category, err := s.repo.Category.FindBySlug(ctx, slug)
	if err != nil {
		return fmt.Errorf("find category: %w", err)
	}
	if category == nil {
		return fmt.Errorf("category %s not found", slug)
	}

	// Titles referencing this category survive with a null category.
	if err := s.repo.Category.DeleteBySlug(ctx, slug); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	return nil
}
