package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/WakoSS-nsk/api-yamdb/internal/adaptor"
	"github.com/WakoSS-nsk/api-yamdb/pkg/middleware"
	"github.com/WakoSS-nsk/api-yamdb/pkg/utils"
)

// wireContent wires the nested review and comment routes. Reads are
// public; any authenticated user may create, and the object-level
// author/moderator check lives in the services.
func wireContent(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	commentHandler *adaptor.CommentHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/v1/titles/{titleID}/reviews", reviewHandler.GetReviews)
	r.Get("/api/v1/titles/{titleID}/reviews/{reviewID}", reviewHandler.GetReviewByID)
	r.Get("/api/v1/titles/{titleID}/reviews/{reviewID}/comments", commentHandler.GetComments)
	r.Get("/api/v1/titles/{titleID}/reviews/{reviewID}/comments/{commentID}", commentHandler.GetCommentByID)

	// ==================== AUTHENTICATED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT.Secret, log))

		r.Post("/api/v1/titles/{titleID}/reviews", reviewHandler.CreateReview)
		r.Patch("/api/v1/titles/{titleID}/reviews/{reviewID}", reviewHandler.UpdateReview)
		r.Delete("/api/v1/titles/{titleID}/reviews/{reviewID}", reviewHandler.DeleteReview)

		r.Post("/api/v1/titles/{titleID}/reviews/{reviewID}/comments", commentHandler.CreateComment)
		r.Patch("/api/v1/titles/{titleID}/reviews/{reviewID}/comments/{commentID}", commentHandler.UpdateComment)
		r.Delete("/api/v1/titles/{titleID}/reviews/{reviewID}/comments/{commentID}", commentHandler.DeleteComment)
	})
}
