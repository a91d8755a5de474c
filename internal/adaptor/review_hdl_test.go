package adaptor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/WakoSS-nsk/api-yamdb/internal/dto/request"
	"github.com/WakoSS-nsk/api-yamdb/internal/dto/response"
	"github.com/WakoSS-nsk/api-yamdb/internal/usecase"
	"github.com/WakoSS-nsk/api-yamdb/pkg/utils"
)

// stubReviewService returns a canned error from every operation.
type stubReviewService struct {
	err error
}

func (s *stubReviewService) GetReviews(context.Context, string, *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	return nil, s.err
}

func (s *stubReviewService) GetReviewByID(context.Context, string, string) (*response.ReviewResponse, error) {
	return nil, s.err
}

func (s *stubReviewService) CreateReview(context.Context, usecase.Actor, string, *request.ReviewRequest) (*response.ReviewResponse, error) {
	return nil, s.err
}

func (s *stubReviewService) UpdateReview(context.Context, usecase.Actor, string, string, *request.ReviewUpdateRequest) (*response.ReviewResponse, error) {
	return nil, s.err
}

func (s *stubReviewService) DeleteReview(context.Context, usecase.Actor, string, string) error {
	return s.err
}

func TestReviewHandlerErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"duplicate maps to conflict", errors.New("already reviewed: user x has a review for this title"), http.StatusConflict},
		{"forbidden maps to 403", errors.New("forbidden: not the review author"), http.StatusForbidden},
		{"missing maps to 404", errors.New("title not found"), http.StatusNotFound},
		{"validation maps to 400", errors.New("validation failed: Score: Maximum is 10"), http.StatusBadRequest},
		{"bad id maps to 400", errors.New("invalid title id: bad uuid"), http.StatusBadRequest},
		{"unknown maps to 500", errors.New("storage exploded"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewReviewHandler(&stubReviewService{err: tc.err}, zap.NewNop())

			req := httptest.NewRequest(http.MethodGet, "/api/v1/titles/x/reviews", nil)
			rec := httptest.NewRecorder()
			handler.GetReviews(rec, req)

			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestCreateReviewWithoutIdentity(t *testing.T) {
	handler := NewReviewHandler(&stubReviewService{}, zap.NewNop())

	body := strings.NewReader(`{"text":"x","score":5}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/titles/x/reviews", body)
	rec := httptest.NewRecorder()
	handler.CreateReview(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestCreateReviewRejectsMalformedBody(t *testing.T) {
	handler := NewReviewHandler(&stubReviewService{}, zap.NewNop())

	claims := &utils.TokenClaims{UserID: "8a6e0804-2bd0-4672-b79d-d97027f9071a", Username: "x", Role: "user", Active: true}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/titles/x/reviews", strings.NewReader("{"))
	req = req.WithContext(utils.SetUserContext(req.Context(), claims))

	rec := httptest.NewRecorder()
	handler.CreateReview(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
