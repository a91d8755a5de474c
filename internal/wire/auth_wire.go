package wire

import (
	"github.com/go-chi/chi/v5"

	"github.com/WakoSS-nsk/api-yamdb/internal/adaptor"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// Registration and token issuance are the only unauthenticated
	// mutating endpoints.
	r.Post("/api/v1/auth/signup", authHandler.Signup)
	r.Post("/api/v1/auth/token", authHandler.IssueToken)
}
