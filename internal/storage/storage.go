package storage

import (
	"context"
	"io"
	"time"
)

// AvatarStorage stores user avatar images in an S3-compatible backend.
type AvatarStorage interface {
	// Put uploads an avatar image and returns its object key.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// PresignGet returns a temporary download URL for an object key.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
}
