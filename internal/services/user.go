package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/ggtips/gg-tips-backend/internal/logger"
	"github.com/ggtips/gg-tips-backend/internal/models"
	"github.com/ggtips/gg-tips-backend/internal/storage"
)

// avatarURLExpiry is how long presigned avatar links stay valid.
const avatarURLExpiry = 24 * time.Hour

// UserService serves profiles and avatar uploads.
type UserService struct {
	reader  UserReader
	writer  UserWriter
	avatars storage.AvatarStorage
}

// NewUserService creates a new UserService instance. avatars may be nil
// when object storage is not configured; uploads then fail and profiles
// carry no avatar URL.
func NewUserService(reader UserReader, writer UserWriter, avatars storage.AvatarStorage) *UserService {
	return &UserService{
		reader:  reader,
		writer:  writer,
		avatars: avatars,
	}
}

// GetByUsername returns a user's public profile by case-folded username.
func (svc *UserService) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile updates the caller's presentation fields.
func (svc *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, displayName string, email, countryCode *string) (*models.UserDB, error) {
	if err := svc.writer.UpdateProfile(ctx, userID, displayName, email, countryCode); err != nil {
		return nil, mapUserUniqueViolation(err)
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UploadAvatar streams an avatar image into object storage and records its
// key on the user. Returns a presigned URL for the fresh avatar.
func (svc *UserService) UploadAvatar(ctx context.Context, userID uuid.UUID, r io.Reader, size int64, contentType string) (string, error) {
	if svc.avatars == nil {
		return "", fmt.Errorf("avatar storage not configured")
	}

	key := fmt.Sprintf("avatars/%s", userID.String())
	if err := svc.avatars.Put(ctx, key, r, size, contentType); err != nil {
		logger.Log.Errorw("failed to upload avatar", "user_id", userID, "err", err)
		return "", err
	}

	if err := svc.writer.SetAvatarKey(ctx, userID, key); err != nil {
		return "", err
	}

	return svc.avatars.PresignGet(ctx, key, avatarURLExpiry)
}

// AvatarURL resolves the presigned URL for a user's stored avatar, or ""
// when none is set.
func (svc *UserService) AvatarURL(ctx context.Context, user *models.UserDB) string {
	if svc.avatars == nil || user.AvatarKey == nil {
		return ""
	}
	url, err := svc.avatars.PresignGet(ctx, *user.AvatarKey, avatarURLExpiry)
	if err != nil {
		logger.Log.Errorw("failed to presign avatar", "user_id", user.UserID, "err", err)
		return ""
	}
	return url
}
