package utils

import (
	"testing"
	"time"
)

type signupForm struct {
	Username string `validate:"required,username,max=150"`
	Email    string `validate:"required,email"`
}

type titleForm struct {
	Name string `validate:"required"`
	Year int    `validate:"required,release_year"`
}

type slugForm struct {
	Slug string `validate:"required,slug,max=50"`
}

func TestValidateStructSignup(t *testing.T) {
	if errs := ValidateStruct(signupForm{Username: "reader", Email: "reader@example.com"}); len(errs) > 0 {
		t.Fatalf("valid form rejected: %v", errs)
	}

	errs := ValidateStruct(signupForm{Username: "ab", Email: "not-an-email"})
	if len(errs) != 2 {
		t.Fatalf("want 2 errors, got %v", errs)
	}
	if _, ok := errs["Username"]; !ok {
		t.Error("short username not reported")
	}
	if _, ok := errs["Email"]; !ok {
		t.Error("bad email not reported")
	}
}

func TestValidateStructReleaseYear(t *testing.T) {
	current := time.Now().Year()

	if errs := ValidateStruct(titleForm{Name: "x", Year: current}); len(errs) > 0 {
		t.Fatalf("current year rejected: %v", errs)
	}
	if errs := ValidateStruct(titleForm{Name: "x", Year: current + 1}); len(errs) == 0 {
		t.Fatal("future year accepted")
	}
}

func TestValidateStructSlug(t *testing.T) {
	for _, slug := range []string{"films", "sci-fi", "top_10", "A1"} {
		if errs := ValidateStruct(slugForm{Slug: slug}); len(errs) > 0 {
			t.Errorf("slug %q rejected: %v", slug, errs)
		}
	}
	for _, slug := range []string{"bad slug", "café", "a/b"} {
		if errs := ValidateStruct(slugForm{Slug: slug}); len(errs) == 0 {
			t.Errorf("slug %q accepted", slug)
		}
	}
}
