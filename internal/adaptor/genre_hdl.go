package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/WakoSS-nsk/api-yamdb/internal/dto/request"
	"github.com/WakoSS-nsk/api-yamdb/internal/usecase"
	"github.com/WakoSS-nsk/api-yamdb/pkg/utils"
)

type GenreHandler struct {
	service usecase.GenreService
	log     *zap.Logger
}

func NewGenreHandler(service usecase.GenreService, log *zap.Logger) *GenreHandler {
	return &GenreHandler{
		service: service,
		log:     log.With(zap.String("handler", "genre")),
	}
}

// GetGenres handles GET /api/v1/genres
func (h *GenreHandler) GetGenres(w http.ResponseWriter, r *http.Request) {
	page := parsePagination(r)
	search := r.URL.Query().Get("search")

	genres, err := h.service.GetGenres(r.Context(), search, page)
	if err != nil {
		h.handleServiceError(w, err, "get genres")
		return
	}

	utils.ResponseSuccess(w, "Genres retrieved successfully", genres)
}

// CreateGenre handles POST /api/v1/genres (admin only)
func (h *GenreHandler) CreateGenre(w http.ResponseWriter, r *http.Request) {
	var req request.GenreRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	genre, err := h.service.CreateGenre(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create genre")
		return
	}

	utils.ResponseCreated(w, "Genre created successfully", genre)
}

// DeleteGenre handles DELETE /api/v1/genres/{slug} (admin only)
func (h *GenreHandler) DeleteGenre(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		utils.ResponseBadRequest(w, "Genre slug is required", nil)
		return
	}

	if err := h.service.DeleteGenre(r.Context(), slug); err != nil {
		h.handleServiceError(w, err, "delete genre")
		return
	}

	utils.ResponseNoContent(w)
}

// handleServiceError maps service errors to HTTP responses
func (h *GenreHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
