package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/WakoSS-nsk/api-yamdb/internal/adaptor"
	"github.com/WakoSS-nsk/api-yamdb/internal/data/entity"
	"github.com/WakoSS-nsk/api-yamdb/pkg/middleware"
	"github.com/WakoSS-nsk/api-yamdb/pkg/utils"
)

func wireTitle(
	r chi.Router,
	titleHandler *adaptor.TitleHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/v1/titles", titleHandler.GetTitles)
	r.Get("/api/v1/titles/{titleID}", titleHandler.GetTitleByID)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT.Secret, log))
		r.Use(middleware.RequireRoles(log, string(entity.RoleAdmin)))

		r.Post("/api/v1/titles", titleHandler.CreateTitle)
		r.Patch("/api/v1/titles/{titleID}", titleHandler.UpdateTitle)
		r.Delete("/api/v1/titles/{titleID}", titleHandler.DeleteTitle)
	})
}
