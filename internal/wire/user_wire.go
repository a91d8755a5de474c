package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/WakoSS-nsk/api-yamdb/internal/adaptor"
	"github.com/WakoSS-nsk/api-yamdb/internal/data/entity"
	"github.com/WakoSS-nsk/api-yamdb/pkg/middleware"
	"github.com/WakoSS-nsk/api-yamdb/pkg/utils"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROFILE ROUTES ====================
	// /users/me must be registered before /users/{username} routes so
	// "me" never matches as a username.
	r.Route("/api/v1/users/me", func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT.Secret, log))

		r.Get("/", userHandler.GetMe)
		r.Patch("/", userHandler.UpdateMe)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/v1/users", func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT.Secret, log))
		r.Use(middleware.RequireRoles(log, string(entity.RoleAdmin)))

		r.Get("/", userHandler.GetUsers)
		r.Post("/", userHandler.CreateUser)
		r.Get("/{username}", userHandler.GetUserByUsername)
		r.Patch("/{username}", userHandler.UpdateUserByUsername)
		r.Delete("/{username}", userHandler.DeleteUserByUsername)
	})
}
