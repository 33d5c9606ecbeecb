package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ggtips/gg-tips-backend/internal/services"
)

// ResetPassworder defines the interface for completing a password reset.
type ResetPassworder interface {
	ResetPassword(ctx context.Context, recoveryToken, newPassword string) error
}

// ResetPasswordRequest represents the JSON body for completing a reset
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// Recovery token from the reset link
	// required: true
	Token string `json:"token" validate:"required"`

	// New password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// ResetPasswordResponse represents a successful reset response
// swagger:model ResetPasswordResponse
type ResetPasswordResponse struct {
	// Success message
	// default: Password updated
	Message string `json:"message"`
}

// NewResetPasswordHandler returns an HTTP handler that consumes a recovery token.
// @Summary Complete a password reset
// @Description Stores the new password, consumes the recovery token and revokes the active session.
// @Tags auth
// @Accept json
// @Produce json
// @Param resetPasswordRequest body handlers.ResetPasswordRequest true "Reset password request"
// @Success 200 {object} handlers.ResetPasswordResponse "Password updated"
// @Failure 400 {object} handlers.ValidationErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Recovery token unknown or expired"
// @Router /auth/reset-password [post]
func NewResetPasswordHandler(svc ResetPassworder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetPasswordRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validateStruct(req); err != nil {
			writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{Errors: formatValidationError(err)})
			return
		}

		if err := svc.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
			switch {
			case errors.Is(err, services.ErrRecoveryTokenNotFound):
				writeError(w, http.StatusNotFound, "Recovery token unknown or expired")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, ResetPasswordResponse{Message: "Password updated"})
	}
}
