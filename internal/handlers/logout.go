package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/ggtips/gg-tips-backend/internal/middlewares"
)

// Revoker defines the interface for clearing the active access token.
type Revoker interface {
	Revoke(ctx context.Context, userID uuid.UUID) error
}

// NewLogoutHandler returns an HTTP handler that revokes the caller's token.
// @Summary Revoke the current access token
// @Description Clears the stored token; subsequent requests bearing it fail authorization.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 204 "Token revoked"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /auth [delete]
func NewLogoutHandler(svc Revoker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if err := svc.Revoke(r.Context(), user.UserID); err != nil {
			writeInternalError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
