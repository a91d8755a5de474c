package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/WakoSS-nsk/api-yamdb/internal/dto/request"
	"github.com/WakoSS-nsk/api-yamdb/internal/usecase"
	"github.com/WakoSS-nsk/api-yamdb/pkg/utils"
)

type TitleHandler struct {
	service usecase.TitleService
	log     *zap.Logger
}

func NewTitleHandler(service usecase.TitleService, log *zap.Logger) *TitleHandler {
	return &TitleHandler{
		service: service,
		log:     log.With(zap.String("handler", "title")),
	}
}

// GetTitles handles GET /api/v1/titles with optional category, genre,
// name and year filters.
func (h *TitleHandler) GetTitles(w http.ResponseWriter, r *http.Request) {
	page := parsePagination(r)

	query := r.URL.Query()
	filter := &request.TitleFilterRequest{
		Name:     query.Get("name"),
		Category: query.Get("category"),
		Genre:    query.Get("genre"),
	}

	if yearStr := query.Get("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid year filter", nil)
			return
		}
		filter.Year = &year
	}

	titles, err := h.service.GetTitles(r.Context(), filter, page)
	if err != nil {
		h.handleServiceError(w, err, "get titles")
		return
	}

	utils.ResponseSuccess(w, "Titles retrieved successfully", titles)
}

// GetTitleByID handles GET /api/v1/titles/{titleID}
func (h *TitleHandler) GetTitleByID(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	if titleID == "" {
		utils.ResponseBadRequest(w, "Title ID is required", nil)
		return
	}

	title, err := h.service.GetTitleByID(r.Context(), titleID)
	if err != nil {
		h.handleServiceError(w, err, "get title by ID")
		return
	}

	utils.ResponseSuccess(w, "Title retrieved successfully", title)
}

// CreateTitle handles POST /api/v1/titles (admin only)
func (h *TitleHandler) CreateTitle(w http.ResponseWriter, r *http.Request) {
	var req request.TitleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	title, err := h.service.CreateTitle(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create title")
		return
	}

	utils.ResponseCreated(w, "Title created successfully", title)
}

// UpdateTitle handles PATCH /api/v1/titles/{titleID} (admin only)
func (h *TitleHandler) UpdateTitle(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	if titleID == "" {
		utils.ResponseBadRequest(w, "Title ID is required", nil)
		return
	}

	var req request.TitleUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	title, err := h.service.UpdateTitle(r.Context(), titleID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update title")
		return
	}

	utils.ResponseSuccess(w, "Title updated successfully", title)
}

// DeleteTitle handles DELETE /api/v1/titles/{titleID} (admin only)
func (h *TitleHandler) DeleteTitle(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	if titleID == "" {
		utils.ResponseBadRequest(w, "Title ID is required", nil)
		return
	}

	if err := h.service.DeleteTitle(r.Context(), titleID); err != nil {
		h.handleServiceError(w, err, "delete title")
		return
	}

	utils.ResponseNoContent(w)
}

// handleServiceError maps service errors to HTTP responses
func (h *TitleHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
