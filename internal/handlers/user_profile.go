package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ggtips/gg-tips-backend/internal/models"
	"github.com/ggtips/gg-tips-backend/internal/services"
)

// UserGetter defines the interface for public profile lookups.
type UserGetter interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	AvatarURL(ctx context.Context, user *models.UserDB) string
}

// NewUserProfileHandler returns an HTTP handler for public profiles.
// @Summary Get a public user profile
// @Tags users
// @Produce json
// @Param username path string true "Username (case-insensitive)"
// @Success 200 {object} handlers.UserResponse "Public profile"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{username} [get]
func NewUserProfileHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		user, err := svc.GetByUsername(r.Context(), username)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, newPublicUserResponse(user, svc.AvatarURL(r.Context(), user)))
	}
}
