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

type CommentService interface {
	GetComments(ctx context.Context, titleID, reviewID string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.CommentResponse], error)
	GetCommentByID(ctx context.Context, titleID, reviewID, commentID string) (*response.CommentResponse, error)
	CreateComment(ctx context.Context, actor Actor, titleID, reviewID string, req *request.CommentRequest) (*response.CommentResponse, error)
	UpdateComment(ctx context.Context, actor Actor, titleID, reviewID, commentID string, req *request.CommentUpdateRequest) (*response.CommentResponse, error)
	DeleteComment(ctx context.Context, actor Actor, titleID, reviewID, commentID string) error
}

type commentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCommentService(repo *repository.Repository, log *zap.Logger) CommentService {
	return &commentService{
		repo: repo,
		log:  log.With(zap.String("service", "comment")),
	}
}

func (s *commentService) GetComments(ctx context.Context, titleID, reviewID string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.CommentResponse], error) {
	review, err := s.findReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	comments, err := s.repo.Comment.FindByReviewID(ctx, review.ID, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("get comments: %w", err)
	}

	total, err := s.repo.Comment.CountByReviewID(ctx, review.ID)
	if err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}

	commentResponses := make([]response.CommentResponse, len(comments))
	for i, comment := range comments {
		author, err := s.authorName(ctx, comment.AuthorID)
		if err != nil {
			return nil, err
		}
		commentResponses[i] = response.CommentToResponse(comment, author)
	}

	return response.NewPaginatedResponse(commentResponses, page.Page, page.PerPage, total), nil
}

func (s *commentService) GetCommentByID(ctx context.Context, titleID, reviewID, commentID string) (*response.CommentResponse, error) {
	review, err := s.findReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	comment, err := s.findComment(ctx, review.ID, commentID)
	if err != nil {
		return nil, err
	}

	author, err := s.authorName(ctx, comment.AuthorID)
	if err != nil {
		return nil, err
	}

	resp := response.CommentToResponse(comment, author)
	return &resp, nil
}

func (s *commentService) CreateComment(ctx context.Context, actor Actor, titleID, reviewID string, req *request.CommentRequest) (*response.CommentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create comment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	review, err := s.findReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		ReviewID: review.ID,
		AuthorID: actor.ID,
		Text:     req.Text,
	}

	if err := s.repo.Comment.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.Info("Comment created",
		zap.String("comment_id", comment.ID.String()),
		zap.String("review_id", review.ID.String()),
		zap.String("author", actor.Username))

	resp := response.CommentToResponse(comment, actor.Username)
	return &resp, nil
}

func (s *commentService) UpdateComment(ctx context.Context, actor Actor, titleID, reviewID, commentID string, req *request.CommentUpdateRequest) (*response.CommentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update comment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	review, err := s.findReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	comment, err := s.findComment(ctx, review.ID, commentID)
	if err != nil {
		return nil, err
	}

	if !actor.CanModify(comment.AuthorID) {
		return nil, fmt.Errorf("forbidden: not the comment author")
	}

	if req.Text != nil {
		comment.Text = *req.Text
	}

	if err := s.repo.Comment.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}

	author, err := s.authorName(ctx, comment.AuthorID)
	if err != nil {
		return nil, err
	}

	resp := response.CommentToResponse(comment, author)
	return &resp, nil
}

func (s *commentService) DeleteComment(ctx context.Context, actor Actor, titleID, reviewID, commentID string) error {
	review, err := s.findReview(ctx, titleID, reviewID)
	if err != nil {
		return err
	}

	comment, err := s.findComment(ctx, review.ID, commentID)
	if err != nil {
		return err
	}

	if !actor.CanModify(comment.AuthorID) {
		return fmt.Errorf("forbidden: not the comment author")
	}

	if err := s.repo.Comment.Delete(ctx, comment.ID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	s.log.Info("Comment deleted",
		zap.String("comment_id", comment.ID.String()),
		zap.String("deleted_by", actor.Username))

	return nil
}

// ==================== HELPER METHODS ====================

// findReview walks the title/review parent chain so comments are only
// reachable under their own title and review.
func (s *commentService) findReview(ctx context.Context, titleID, reviewID string) (*entity.Review, error) {
	tid, err := uuid.Parse(titleID)
	if err != nil {
		return nil, fmt.Errorf("invalid title id: %w", err)
	}

	title, err := s.repo.Title.FindByID(ctx, tid)
	if err != nil {
		return nil, fmt.Errorf("find title: %w", err)
	}
	if title == nil {
		return nil, fmt.Errorf("title not found")
	}

	rid, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, fmt.Errorf("invalid review id: %w", err)
	}

	review, err := s.repo.Review.FindByID(ctx, rid)
	if err != nil {
		return nil, fmt.Errorf("find review: %w", err)
	}
	if review == nil || review.TitleID != title.ID {
		return nil, fmt.Errorf("review not found")
	}

	return review, nil
}

func (s *commentService) findComment(ctx context.Context, reviewID uuid.UUID, commentID string) (*entity.Comment, error) {
	id, err := uuid.Parse(commentID)
	if err != nil {
		return nil, fmt.Errorf("invalid comment id: %w", err)
	}

	comment, err := s.repo.Comment.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find comment: %w", err)
	}
	if comment == nil || comment.ReviewID != reviewID {
		return nil, fmt.Errorf("comment not found")
	}

	return comment, nil
}

func (s *commentService) authorName(ctx context.Context, authorID uuid.UUID) (string, error) {
	user, err := s.repo.User.FindByID(ctx, authorID)
	if err != nil {
		return "", fmt.Errorf("find comment author: %w", err)
	}
	if user == nil {
		return "", nil
	}
	return user.Username, nil
}
