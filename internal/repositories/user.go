package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ggtips/gg-tips-backend/internal/logger"
	"github.com/ggtips/gg-tips-backend/internal/middlewares"
	"github.com/ggtips/gg-tips-backend/internal/models"
)

const userColumns = `
	user_id, username, display_name, email, password_hash, country_code, avatar_key,
	access_token, recovery_token, recovery_expires_at,
	steam_id, steam_persona_name, steam_profile_url, steam_avatar_url, steam_avatar_full_url,
	steam_country_code, steam_state_code, steam_city_id, steam_visibility,
	created_at, updated_at
`

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, args ...any) (*models.UserDB, error) {
	var user models.UserDB
	var err error
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		err = tx.GetContext(ctx, &user, query, args...)
	} else {
		err = r.db.GetContext(ctx, &user, query, args...)
	}

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername loads a user by case-folded username.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(username) = lower($1) LIMIT 1`
	return r.getOne(ctx, query, username)
}

// GetByID loads a user by primary key.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1 LIMIT 1`
	return r.getOne(ctx, query, userID)
}

// GetByEmail loads a user by email.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	return r.getOne(ctx, query, email)
}

// GetByAccessToken resolves the user whose persisted token equals the
// presented one. This is the authorization check: a revoked or replaced
// token no longer matches and resolves to no user.
func (r *UserReadRepository) GetByAccessToken(ctx context.Context, token string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE access_token = $1 LIMIT 1`
	return r.getOne(ctx, query, token)
}

// GetByRecoveryToken loads a user by a non-expired recovery token.
func (r *UserReadRepository) GetByRecoveryToken(ctx context.Context, token string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE recovery_token = $1 AND recovery_expires_at > NOW() LIMIT 1`
	return r.getOne(ctx, query, token)
}

// GetBySteamID loads the user currently holding the given steam ID.
func (r *UserReadRepository) GetBySteamID(ctx context.Context, steamID string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE steam_id = $1 LIMIT 1`
	return r.getOne(ctx, query, steamID)
}

// ExistsUsername reports whether a case-folded username is already taken.
func (r *UserReadRepository) ExistsUsername(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE lower(username) = lower($1))`

	var exists bool
	var err error
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		err = tx.GetContext(ctx, &exists, query, username)
	} else {
		err = r.db.GetContext(ctx, &exists, query, username)
	}

	logger.Log.Infow("user exists query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"result", exists,
		"error", err,
	)

	return exists, err
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

func (r *UserWriteRepository) exec(ctx context.Context, query string, args ...any) error {
	var err error
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		_, err = tx.ExecContext(ctx, query, args...)
	} else {
		_, err = r.db.ExecContext(ctx, query, args...)
	}

	logger.Log.Infow("user exec",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return asUniqueViolation(err)
}

// Create inserts a new user. Uniqueness of username, email and steam ID is
// enforced by the schema; violations surface as UniqueViolationError.
func (r *UserWriteRepository) Create(ctx context.Context, u *models.UserDB) error {
	query := `
		INSERT INTO users (
			user_id, username, display_name, email, password_hash, country_code,
			access_token,
			steam_id, steam_persona_name, steam_profile_url, steam_avatar_url, steam_avatar_full_url,
			steam_country_code, steam_state_code, steam_city_id, steam_visibility,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW(), NOW())
	`
	return r.exec(ctx, query,
		u.UserID, u.Username, u.DisplayName, u.Email, u.PasswordHash, u.CountryCode,
		u.AccessToken,
		u.SteamID, u.PersonaName, u.ProfileURL, u.AvatarURL, u.AvatarFullURL,
		u.SteamProviderDB.CountryCode, u.StateCode, u.CityID, u.Visibility,
	)
}

// UpdateProfile updates the presentation fields of a user.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, displayName string, email, countryCode *string) error {
	query := `
		UPDATE users
		SET display_name = $2, email = $3, country_code = $4, updated_at = NOW()
		WHERE user_id = $1
	`
	return r.exec(ctx, query, userID, displayName, email, countryCode)
}

// SetAccessToken replaces the active token. A nil token revokes the session.
func (r *UserWriteRepository) SetAccessToken(ctx context.Context, userID uuid.UUID, token *string) error {
	query := `UPDATE users SET access_token = $2, updated_at = NOW() WHERE user_id = $1`
	return r.exec(ctx, query, userID, token)
}

// SetRecoveryToken stores a new recovery token, superseding any prior one.
func (r *UserWriteRepository) SetRecoveryToken(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error {
	query := `UPDATE users SET recovery_token = $2, recovery_expires_at = $3, updated_at = NOW() WHERE user_id = $1`
	return r.exec(ctx, query, userID, token, expiresAt)
}

// ResetPassword stores a new password hash and clears the recovery token
// and the active session in one statement, so a reset both consumes the
// recovery token and revokes the old token.
func (r *UserWriteRepository) ResetPassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	query := `
		UPDATE users
		SET password_hash = $2, recovery_token = NULL, recovery_expires_at = NULL,
		    access_token = NULL, updated_at = NOW()
		WHERE user_id = $1
	`
	return r.exec(ctx, query, userID, passwordHash)
}

// SetSteamProvider attaches or refreshes the steam profile snapshot.
func (r *UserWriteRepository) SetSteamProvider(ctx context.Context, userID uuid.UUID, s models.SteamProviderDB) error {
	query := `
		UPDATE users
		SET steam_id = $2, steam_persona_name = $3, steam_profile_url = $4,
		    steam_avatar_url = $5, steam_avatar_full_url = $6,
		    steam_country_code = $7, steam_state_code = $8, steam_city_id = $9,
		    steam_visibility = $10, updated_at = NOW()
		WHERE user_id = $1
	`
	return r.exec(ctx, query, userID,
		s.SteamID, s.PersonaName, s.ProfileURL, s.AvatarURL, s.AvatarFullURL,
		s.CountryCode, s.StateCode, s.CityID, s.Visibility,
	)
}

// SetAvatarKey stores the object-storage key of the uploaded avatar.
func (r *UserWriteRepository) SetAvatarKey(ctx context.Context, userID uuid.UUID, key string) error {
	query := `UPDATE users SET avatar_key = $2, updated_at = NOW() WHERE user_id = $1`
	return r.exec(ctx, query, userID, key)
}
