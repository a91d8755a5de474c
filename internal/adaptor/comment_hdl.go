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

type CommentHandler struct {
	service usecase.CommentService
	log     *zap.Logger
}

func NewCommentHandler(service usecase.CommentService, log *zap.Logger) *CommentHandler {
	return &CommentHandler{
		service: service,
		log:     log.With(zap.String("handler", "comment")),
	}
}

// GetComments handles GET /api/v1/titles/{titleID}/reviews/{reviewID}/comments
func (h *CommentHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	reviewID := chi.URLParam(r, "reviewID")
	page := parsePagination(r)

	comments, err := h.service.GetComments(r.Context(), titleID, reviewID, page)
	if err != nil {
		h.handleServiceError(w, err, "get comments")
		return
	}

	utils.ResponseSuccess(w, "Comments retrieved successfully", comments)
}

// GetCommentByID handles GET .../comments/{commentID}
func (h *CommentHandler) GetCommentByID(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	reviewID := chi.URLParam(r, "reviewID")
	commentID := chi.URLParam(r, "commentID")

	comment, err := h.service.GetCommentByID(r.Context(), titleID, reviewID, commentID)
	if err != nil {
		h.handleServiceError(w, err, "get comment")
		return
	}

	utils.ResponseSuccess(w, "Comment retrieved successfully", comment)
}

// CreateComment handles POST .../reviews/{reviewID}/comments
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	actor, ok := usecase.ActorFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	titleID := chi.URLParam(r, "titleID")
	reviewID := chi.URLParam(r, "reviewID")

	var req request.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	comment, err := h.service.CreateComment(r.Context(), actor, titleID, reviewID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create comment")
		return
	}

	utils.ResponseCreated(w, "Comment created successfully", comment)
}

// UpdateComment handles PATCH .../comments/{commentID}
func (h *CommentHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	actor, ok := usecase.ActorFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	titleID := chi.URLParam(r, "titleID")
	reviewID := chi.URLParam(r, "reviewID")
	commentID := chi.URLParam(r, "commentID")

	var req request.CommentUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	comment, err := h.service.UpdateComment(r.Context(), actor, titleID, reviewID, commentID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update comment")
		return
	}

	utils.ResponseSuccess(w, "Comment updated successfully", comment)
}

// DeleteComment handles DELETE .../comments/{commentID}
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	actor, ok := usecase.ActorFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	titleID := chi.URLParam(r, "titleID")
	reviewID := chi.URLParam(r, "reviewID")
	commentID := chi.URLParam(r, "commentID")

	if err := h.service.DeleteComment(r.Context(), actor, titleID, reviewID, commentID); err != nil {
		h.handleServiceError(w, err, "delete comment")
		return
	}

	utils.ResponseNoContent(w)
}

// handleServiceError maps service errors to HTTP responses
func (h *CommentHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "forbidden"):
		h.log.Warn(operation+" failed - forbidden",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseForbidden(w, errMsg)

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
