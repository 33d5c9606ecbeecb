package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/ggtips/gg-tips-backend/internal/middlewares"
)

// maxAvatarSize caps avatar uploads at 5 MiB.
const maxAvatarSize = 5 << 20

// AvatarUploader defines the interface for storing avatar images.
type AvatarUploader interface {
	UploadAvatar(ctx context.Context, userID uuid.UUID, r io.Reader, size int64, contentType string) (string, error)
}

// AvatarResponse represents a successful avatar upload response
// swagger:model AvatarResponse
type AvatarResponse struct {
	// Presigned URL of the uploaded avatar
	AvatarURL string `json:"avatar_url"`
}

// NewAvatarHandler returns an HTTP handler for multipart avatar uploads.
// @Summary Upload own avatar
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} handlers.AvatarResponse "Avatar stored"
// @Failure 400 {object} handlers.ErrorResponse "Invalid upload"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /users/me/avatar [post]
func NewAvatarHandler(svc AvatarUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxAvatarSize)
		if err := r.ParseMultipartForm(maxAvatarSize); err != nil {
			writeError(w, http.StatusBadRequest, "invalid multipart body")
			return
		}

		file, header, err := r.FormFile("avatar")
		if err != nil {
			writeError(w, http.StatusBadRequest, "avatar file is required")
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		switch contentType {
		case "image/png", "image/jpeg", "image/webp":
		default:
			writeError(w, http.StatusBadRequest, "unsupported image type")
			return
		}

		url, err := svc.UploadAvatar(r.Context(), user.UserID, file, header.Size, contentType)
		if err != nil {
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, AvatarResponse{AvatarURL: url})
	}
}
