package usecase

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/WakoSS-nsk/api-yamdb/internal/dto/request"
)

func TestCreateAndListCategories(t *testing.T) {
	repo := newTestRepository()
	svc := NewCategoryService(repo, zap.NewNop())
	ctx := context.Background()

	for _, c := range []request.CategoryRequest{
		{Name: "Films", Slug: "films"},
		{Name: "Books", Slug: "books"},
	} {
		if _, err := svc.CreateCategory(ctx, &c); err != nil {
			t.Fatalf("CreateCategory(%s): %v", c.Slug, err)
		}
	}

	page, err := svc.GetCategories(ctx, "", &request.PaginatedRequest{Page: 1, PerPage: 10})
	if err != nil {
		t.Fatalf("GetCategories: %v", err)
	}
	if len(page.Data) != 2 {
		t.Fatalf("len(Data) = %d, want 2", len(page.Data))
	}
}

func TestCreateCategoryDuplicateSlug(t *testing.T) {
	repo := newTestRepository()
	svc := NewCategoryService(repo, zap.NewNop())
	ctx := context.Background()

	if _, err := svc.CreateCategory(ctx, &request.CategoryRequest{Name: "Films", Slug: "films"}); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := svc.CreateCategory(ctx, &request.CategoryRequest{Name: "Movies", Slug: "films"})
	if err == nil || !strings.Contains(err.Error(), "already taken") {
		t.Fatalf("err = %v, want slug already taken", err)
	}
}

func TestCreateCategoryRejectsBadSlug(t *testing.T) {
	repo := newTestRepository()
	svc := NewCategoryService(repo, zap.NewNop())

	_, err := svc.CreateCategory(context.Background(), &request.CategoryRequest{
		Name: "Films",
		Slug: "not a slug",
	})
	if err == nil || !strings.Contains(err.Error(), "validation failed") {
		t.Fatalf("err = %v, want validation failed", err)
	}
}

func TestSearchCategories(t *testing.T) {
	repo := newTestRepository()
	svc := NewCategoryService(repo, zap.NewNop())
	ctx := context.Background()

	svc.CreateCategory(ctx, &request.CategoryRequest{Name: "Films", Slug: "films"})
	svc.CreateCategory(ctx, &request.CategoryRequest{Name: "Books", Slug: "books"})

	page, err := svc.GetCategories(ctx, "film", &request.PaginatedRequest{Page: 1, PerPage: 10})
	if err != nil {
		t.Fatalf("GetCategories: %v", err)
	}
	if len(page.Data) != 1 || page.Data[0].Slug != "films" {
		t.Fatalf("search result = %+v", page.Data)
	}
}

func TestDeleteCategory(t *testing.T) {
	repo := newTestRepository()
	svc := NewCategoryService(repo, zap.NewNop())
	ctx := context.Background()

	svc.CreateCategory(ctx, &request.CategoryRequest{Name: "Films", Slug: "films"})

	if err := svc.DeleteCategory(ctx, "films"); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}
	if err := svc.DeleteCategory(ctx, "films"); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestGenreLifecycle(t *testing.T) {
	repo := newTestRepository()
	svc := NewGenreService(repo, zap.NewNop())
	ctx := context.Background()

	if _, err := svc.CreateGenre(ctx, &request.GenreRequest{Name: "Science Fiction", Slug: "sci-fi"}); err != nil {
		t.Fatalf("CreateGenre: %v", err)
	}

	if _, err := svc.CreateGenre(ctx, &request.GenreRequest{Name: "Sci Fi", Slug: "sci-fi"}); err == nil {
		t.Fatal("duplicate genre slug accepted")
	}

	page, err := svc.GetGenres(ctx, "", &request.PaginatedRequest{Page: 1, PerPage: 10})
	if err != nil {
		t.Fatalf("GetGenres: %v", err)
	}
	if len(page.Data) != 1 {
		t.Fatalf("len(Data) = %d, want 1", len(page.Data))
	}

	if err := svc.DeleteGenre(ctx, "sci-fi"); err != nil {
		t.Fatalf("DeleteGenre: %v", err)
	}
	if err := svc.DeleteGenre(ctx, "sci-fi"); err == nil {
		t.Fatal("second delete did not report not found")
	}
}
