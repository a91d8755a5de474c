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

type GenreService interface {
	GetGenres(ctx context.Context, search string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.GenreResponse], error)
	CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error)
	DeleteGenre(ctx context.Context, slug string) error
}

type genreService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewGenreService(repo *repository.Repository, log *zap.Logger) GenreService {
	return &genreService{
		repo: repo,
		log:  log.With(zap.String("service", "genre")),
	}
}

func (s *genreService) GetGenres(ctx context.Context, search string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.GenreResponse], error) {
	genres, err := s.repo.Genre.FindAll(ctx, search, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("get genres: %w", err)
	}

	total, err := s.repo.Genre.CountAll(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("count genres: %w", err)
	}

	genreResponses := make([]response.GenreResponse, len(genres))
	for i, genre := range genres {
		genreResponses[i] = response.GenreToResponse(genre)
	}

	return response.NewPaginatedResponse(genreResponses, page.Page, page.PerPage, total), nil
}

func (s *genreService) CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create genre validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	genre := &entity.Genre{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name: req.Name,
		Slug: req.Slug,
	}

	if err := s.repo.Genre.Create(ctx, genre); err != nil {
		if errors.Is(err, repository.ErrSlugTaken) {
			return nil, fmt.Errorf("validation failed: slug %s is already taken", req.Slug)
		}
		return nil, fmt.Errorf("create genre: %w", err)
	}

	s.log.Info("Genre created",
		zap.String("genre_id", genre.ID.String()),
		zap.String("slug", genre.Slug))

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) DeleteGenre(ctx context.Context, slug string) error {
	genre, err := s.repo.Genre.FindBySlug(ctx, slug)
	if err != nil {
		return fmt.Errorf("find genre: %w", err)
	}
	if genre == nil {
		return fmt.Errorf("genre %s not found", slug)
	}

	if err := s.repo.Genre.DeleteBySlug(ctx, slug); err != nil {
		return fmt.Errorf("delete genre: %w", err)
	}

	return nil
}
