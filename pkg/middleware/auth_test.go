package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/WakoSS-nsk/api-yamdb/pkg/utils"
)

const testSecret = "test-secret"

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func authRequest(t *testing.T, role string, superuser, active bool) *http.Request {
	t.Helper()

	token, err := utils.GenerateToken(uuid.New().String(), "somebody", role, superuser, active, testSecret, 1)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestAuthenticateMissingHeader(t *testing.T) {
	handler := Authenticate(testSecret, zap.NewNop())(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthenticateBadScheme(t *testing.T) {
	handler := Authenticate(testSecret, zap.NewNop())(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthenticateWrongSecret(t *testing.T) {
	handler := Authenticate("different-secret", zap.NewNop())(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authRequest(t, "user", false, true))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthenticateValidToken(t *testing.T) {
	var gotRole string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRole, _ = utils.GetRoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := Authenticate(testSecret, zap.NewNop())(inner)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authRequest(t, "moderator", false, true))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotRole != "moderator" {
		t.Fatalf("role in context = %q, want moderator", gotRole)
	}
}

func TestRequireRoles(t *testing.T) {
	cases := []struct {
		name      string
		role      string
		superuser bool
		active    bool
		allowed   []string
		want      int
	}{
		{"admin allowed", "admin", false, true, []string{"admin"}, http.StatusOK},
		{"user denied", "user", false, true, []string{"admin"}, http.StatusForbidden},
		{"moderator denied admin route", "moderator", false, true, []string{"admin"}, http.StatusForbidden},
		{"superuser bypasses role", "user", true, true, []string{"admin"}, http.StatusOK},
		{"inactive denied", "admin", false, false, []string{"admin"}, http.StatusForbidden},
		{"empty allow-list fails closed", "admin", false, true, nil, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			chain := Authenticate(testSecret, zap.NewNop())(
				RequireRoles(zap.NewNop(), tc.allowed...)(okHandler()))

			rec := httptest.NewRecorder()
			chain.ServeHTTP(rec, authRequest(t, tc.role, tc.superuser, tc.active))

			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestRequireRolesWithoutAuthentication(t *testing.T) {
	handler := RequireRoles(zap.NewNop(), "admin")(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
