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

type CategoryHandler struct {
	service usecase.CategoryService
	log     *zap.Logger
}

func NewCategoryHandler(service usecase.CategoryService, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		log:     log.With(zap.String("handler", "category")),
	}
}

// GetCategories handles GET /api/v1/categories
func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	page := parsePagination(r)
	search := r.URL.Query().Get("search")

	categories, err := h.service.GetCategories(r.Context(), search, page)
	if err != nil {
		h.handleServiceError(w, err, "get categories")
		return
	}

	utils.ResponseSuccess(w, "Categories retrieved successfully", categories)
}

// CreateCategory handles POST /api/v1/categories (admin only)
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req request.CategoryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create category")
		return
	}

	utils.ResponseCreated(w, "Category created successfully", category)
}

// DeleteCategory handles DELETE /api/v1/categories/{slug} (admin only)
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		utils.ResponseBadRequest(w, "Category slug is required", nil)
		return
	}

	if err := h.service.DeleteCategory(r.Context(), slug); err != nil {
		h.handleServiceError(w, err, "delete category")
		return
	}

	utils.ResponseNoContent(w)
}

// handleServiceError maps service errors to HTTP responses
func (h *CategoryHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
