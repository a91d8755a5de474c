package wire

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/WakoSS-nsk/api-yamdb/internal/adaptor"
	"github.com/WakoSS-nsk/api-yamdb/internal/data/repository"
	"github.com/WakoSS-nsk/api-yamdb/internal/usecase"
	"github.com/WakoSS-nsk/api-yamdb/pkg/mailer"
	"github.com/WakoSS-nsk/api-yamdb/pkg/middleware"
	"github.com/WakoSS-nsk/api-yamdb/pkg/utils"
)

type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routing.
func Wiring(repo *repository.Repository, config *utils.Config, mail mailer.Mailer, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, mail, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, config, logger)
	wireCatalog(r, handler.Category, handler.Genre, config, logger)
	wireTitle(r, handler.Title, config, logger)
	wireContent(r, handler.Review, handler.Comment, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
