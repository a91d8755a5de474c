package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/WakoSS-nsk/api-yamdb/internal/data/entity"
	"github.com/WakoSS-nsk/api-yamdb/pkg/utils"
)

// Authenticate validates the bearer token and places its claims in the
// request context. The role travels inside the signed token, so no
// storage lookup happens here.
func Authenticate(secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := utils.ParseToken(parts[1], secret)
			if err != nil {
				logger.Warn("Invalid bearer token",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin allows only admin-role users or superusers through.
// Gates catalog mutation (categories, genres, titles).
func RequireAdmin(logger *zap.Logger) func(http.Handler) http.Handler {
	return RequireRoles(logger, string(entity.RoleAdmin))
}

// RequireRoles allows users whose role is in the allow-list, or
// superusers. An empty allow-list denies everything: routes must name
// their roles explicitly, absence fails closed.
func RequireRoles(logger *zap.Logger, allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if !utils.GetActiveFromContext(r.Context()) {
				utils.ResponseForbidden(w, "Account is deactivated")
				return
			}

			if utils.GetSuperuserFromContext(r.Context()) {
				next.ServeHTTP(w, r)
				return
			}

			for _, allowed := range allowedRoles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			logger.Warn("Insufficient role for request",
				zap.String("role", role),
				zap.Strings("allowed_roles", allowedRoles),
				zap.String("path", r.URL.Path),
				zap.String("method", r.Method),
			)
			utils.ResponseForbidden(w, "Insufficient permissions")
		})
	}
}
