package middlewares

import (
	"context"
	"net/http"

	"github.com/ggtips/gg-tips-backend/internal/logger"
	"github.com/ggtips/gg-tips-backend/internal/models"
)

// Tokener extracts the bearer token from a request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// UserResolver resolves a bearer token to the user whose persisted token
// matches it. Returns (nil, nil) when no user matches.
type UserResolver interface {
	GetByAccessToken(ctx context.Context, token string) (*models.UserDB, error)
}

type userContextKey struct{}

var userKey = userContextKey{}

// AuthMiddleware authorizes requests by persisted-token equality: the
// presented token must equal the token currently stored on a user record.
// Revocation clears that value, so revoked tokens fail immediately.
// The resolved user is stored in the request context.
func AuthMiddleware(tokener Tokener, resolver UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			user, err := resolver.GetByAccessToken(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization lookup failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if user == nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx = context.WithValue(ctx, userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the authenticated user stored by AuthMiddleware,
// or nil for unauthenticated requests.
func UserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userKey).(*models.UserDB)
	return user
}
