package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ggtips/gg-tips-backend/internal/services"
)

// ForgotPassworder defines the interface for starting a password reset.
type ForgotPassworder interface {
	ForgotPassword(ctx context.Context, email string) error
}

// ForgotPasswordRequest represents the JSON body for a reset request
// swagger:model ForgotPasswordRequest
type ForgotPasswordRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required,email"`
}

// ForgotPasswordResponse represents a successful reset-mail response
// swagger:model ForgotPasswordResponse
type ForgotPasswordResponse struct {
	// Success message
	// default: Recovery email sent
	Message string `json:"message"`
}

// NewForgotPasswordHandler returns an HTTP handler that mails a recovery link.
// @Summary Request a password reset
// @Description Generates a single-use recovery token and emails a reset link.
// @Tags auth
// @Accept json
// @Produce json
// @Param forgotPasswordRequest body handlers.ForgotPasswordRequest true "Forgot password request"
// @Success 200 {object} handlers.ForgotPasswordResponse "Recovery email sent"
// @Failure 400 {object} handlers.ValidationErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "No user with that email"
// @Router /auth/forgot-password [post]
func NewForgotPasswordHandler(svc ForgotPassworder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ForgotPasswordRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validateStruct(req); err != nil {
			writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{Errors: formatValidationError(err)})
			return
		}

		if err := svc.ForgotPassword(r.Context(), req.Email); err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "No user with that email")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, ForgotPasswordResponse{Message: "Recovery email sent"})
	}
}
