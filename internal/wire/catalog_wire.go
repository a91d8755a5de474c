package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/WakoSS-nsk/api-yamdb/internal/adaptor"
	"github.com/WakoSS-nsk/api-yamdb/internal/data/entity"
	"github.com/WakoSS-nsk/api-yamdb/pkg/middleware"
	"github.com/WakoSS-nsk/api-yamdb/pkg/utils"
)

// wireCatalog wires categories and genres. Both are list-create-delete
// collections: reads are public, writes are admin only.
func wireCatalog(
	r chi.Router,
	categoryHandler *adaptor.CategoryHandler,
	genreHandler *adaptor.GenreHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/v1/categories", categoryHandler.GetCategories)
	r.Get("/api/v1/genres", genreHandler.GetGenres)

	// ==================== ADMIN ROUTES ====================
	adminOnly := func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT.Secret, log))
		r.Use(middleware.RequireRoles(log, string(entity.RoleAdmin)))
	}

	r.Group(func(r chi.Router) {
		adminOnly(r)

		r.Post("/api/v1/categories", categoryHandler.CreateCategory)
		r.Delete("/api/v1/categories/{slug}", categoryHandler.DeleteCategory)

		r.Post("/api/v1/genres", genreHandler.CreateGenre)
		r.Delete("/api/v1/genres/{slug}", genreHandler.DeleteGenre)
	})
}
