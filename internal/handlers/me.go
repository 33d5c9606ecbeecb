package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/ggtips/gg-tips-backend/internal/middlewares"
	"github.com/ggtips/gg-tips-backend/internal/models"
	"github.com/ggtips/gg-tips-backend/internal/services"
)

// AvatarURLer resolves the presigned avatar URL for a user.
type AvatarURLer interface {
	AvatarURL(ctx context.Context, user *models.UserDB) string
}

// ProfileUpdater defines the interface for updating the caller's profile.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, displayName string, email, countryCode *string) (*models.UserDB, error)
	AvatarURL(ctx context.Context, user *models.UserDB) string
}

// NewMeHandler returns an HTTP handler for the caller's own profile.
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.UserResponse "Profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /users/me [get]
func NewMeHandler(avatars AvatarURLer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		writeJSON(w, http.StatusOK, newUserResponse(user, avatars.AvatarURL(r.Context(), user)))
	}
}

// UpdateMeRequest represents the JSON body for profile updates
// swagger:model UpdateMeRequest
type UpdateMeRequest struct {
	// Display name
	// required: true
	DisplayName string `json:"display_name" validate:"required,min=1,max=64"`

	// Email
	Email string `json:"email" validate:"omitempty,email"`

	// ISO country code
	CountryCode string `json:"country_code" validate:"omitempty,len=2"`
}

// NewUpdateMeHandler returns an HTTP handler for updating the caller's profile.
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param updateMeRequest body handlers.UpdateMeRequest true "Profile update"
// @Success 200 {object} handlers.UserResponse "Updated profile"
// @Failure 400 {object} handlers.ValidationErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.ErrorResponse "Email already exists"
// @Router /users/me [put]
func NewUpdateMeHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req UpdateMeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validateStruct(req); err != nil {
			writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{Errors: formatValidationError(err)})
			return
		}

		var email, country *string
		if req.Email != "" {
			email = &req.Email
		}
		if req.CountryCode != "" {
			country = &req.CountryCode
		}

		updated, err := svc.UpdateProfile(r.Context(), user.UserID, req.DisplayName, email, country)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailTaken):
				writeError(w, http.StatusConflict, "Email already exists")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, newUserResponse(updated, svc.AvatarURL(r.Context(), updated)))
	}
}
