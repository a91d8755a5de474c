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

type ReviewService interface {
	GetReviews(ctx context.Context, titleID string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	GetReviewByID(ctx context.Context, titleID, reviewID string) (*response.ReviewResponse, error)
	CreateReview(ctx context.Context, actor Actor, titleID string, req *request.ReviewRequest) (*response.ReviewResponse, error)
	UpdateReview(ctx context.Context, actor Actor, titleID, reviewID string, req *request.ReviewUpdateRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, actor Actor, titleID, reviewID string) error
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) GetReviews(ctx context.Context, titleID string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	title, err := s.findTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.repo.Review.FindByTitleID(ctx, title.ID, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("get reviews: %w", err)
	}

	total, err := s.repo.Review.CountByTitleID(ctx, title.ID)
	if err != nil {
		return nil, fmt.Errorf("count reviews: %w", err)
	}

	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		author, err := s.authorName(ctx, review.AuthorID)
		if err != nil {
			return nil, err
		}
		reviewResponses[i] = response.ReviewToResponse(review, author)
	}

	return response.NewPaginatedResponse(reviewResponses, page.Page, page.PerPage, total), nil
}

func (s *reviewService) GetReviewByID(ctx context.Context, titleID, reviewID string) (*response.ReviewResponse, error) {
	title, err := s.findTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}

	review, err := s.findReview(ctx, title.ID, reviewID)
	if err != nil {
		return nil, err
	}

	author, err := s.authorName(ctx, review.AuthorID)
	if err != nil {
		return nil, err
	}

	resp := response.ReviewToResponse(review, author)
	return &resp, nil
}

func (s *reviewService) CreateReview(ctx context.Context, actor Actor, titleID string, req *request.ReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	title, err := s.findTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		TitleID:  title.ID,
		AuthorID: actor.ID,
		Text:     req.Text,
		Score:    req.Score,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicateReview) {
			return nil, fmt.Errorf("already reviewed: user %s has a review for this title", actor.Username)
		}
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("title_id", title.ID.String()),
		zap.String("author", actor.Username))

	resp := response.ReviewToResponse(review, actor.Username)
	return &resp, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, actor Actor, titleID, reviewID string, req *request.ReviewUpdateRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	title, err := s.findTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}

	review, err := s.findReview(ctx, title.ID, reviewID)
	if err != nil {
		return nil, err
	}

	if !actor.CanModify(review.AuthorID) {
		return nil, fmt.Errorf("forbidden: not the review author")
	}

	if req.Text != nil {
		review.Text = *req.Text
	}
	if req.Score != nil {
		review.Score = *req.Score
	}

	if err := s.repo.Review.Update(ctx, review); err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}

	author, err := s.authorName(ctx, review.AuthorID)
	if err != nil {
		return nil, err
	}

	resp := response.ReviewToResponse(review, author)
	return &resp, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, actor Actor, titleID, reviewID string) error {
	title, err := s.findTitle(ctx, titleID)
	if err != nil {
		return err
	}

	review, err := s.findReview(ctx, title.ID, reviewID)
	if err != nil {
		return err
	}

	if !actor.CanModify(review.AuthorID) {
		return fmt.Errorf("forbidden: not the review author")
	}

	if err := s.repo.Review.Delete(ctx, review.ID); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	s.log.Info("Review deleted",
		zap.String("review_id", review.ID.String()),
		zap.String("deleted_by", actor.Username))

	return nil
}

// ==================== HELPER METHODS ====================

func (s *reviewService) findTitle(ctx context.Context, titleID string) (*entity.Title, error) {
	id, err := uuid.Parse(titleID)
	if err != nil {
		return nil, fmt.Errorf("invalid title id: %w", err)
	}

	title, err := s.repo.Title.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find title: %w", err)
	}
	if title == nil {
		return nil, fmt.Errorf("title not found")
	}

	return title, nil
}

// findReview resolves a review and checks it belongs to the given
// title, so a review cannot be reached through another title's URL.
func (s *reviewService) findReview(ctx context.Context, titleID uuid.UUID, reviewID string) (*entity.Review, error) {
	id, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, fmt.Errorf("invalid review id: %w", err)
	}

	review, err := s.repo.Review.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find review: %w", err)
	}
	if review == nil || review.TitleID != titleID {
		return nil, fmt.Errorf("review not found")
	}

	return review, nil
}

func (s *reviewService) authorName(ctx context.Context, authorID uuid.UUID) (string, error) {
	user, err := s.repo.User.FindByID(ctx, authorID)
	if err != nil {
		return "", fmt.Errorf("find review author: %w", err)
	}
	if user == nil {
		return "", nil
	}
	return user.Username, nil
}
