package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/ggtips/gg-tips-backend/internal/logger"
	"github.com/ggtips/gg-tips-backend/internal/models"
	"github.com/ggtips/gg-tips-backend/internal/repositories"
)

// Error variables
var (
	ErrUserNotFound          = errors.New("user does not exist")
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrUsernameTaken         = errors.New("username already exists")
	ErrEmailTaken            = errors.New("email already exists")
	ErrRecoveryTokenNotFound = errors.New("recovery token not found or expired")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByRecoveryToken(ctx context.Context, token string) (*models.UserDB, error)
	GetBySteamID(ctx context.Context, steamID string) (*models.UserDB, error)
	ExistsUsername(ctx context.Context, username string) (bool, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, u *models.UserDB) error
	UpdateProfile(ctx context.Context, userID uuid.UUID, displayName string, email, countryCode *string) error
	SetAccessToken(ctx context.Context, userID uuid.UUID, token *string) error
	SetRecoveryToken(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error
	ResetPassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
	SetSteamProvider(ctx context.Context, userID uuid.UUID, s models.SteamProviderDB) error
	SetAvatarKey(ctx context.Context, userID uuid.UUID, key string) error
}

// TokenGenerator defines an interface for issuing signed access tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// RecoveryMailer sends the password-reset email.
type RecoveryMailer interface {
	SendPasswordReset(ctx context.Context, email, recoveryToken string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// AuthService handles registration, login, token revocation and the
// forgot/reset-password flow.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	tokens      TokenGenerator
	mailer      RecoveryMailer
	events      KafkaWriter
	userTopic   string
	recoveryTTL time.Duration
}

// NewAuthService creates a new AuthService instance. events may be nil,
// in which case no registration events are published.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	tokens TokenGenerator,
	mailer RecoveryMailer,
	events KafkaWriter,
	userTopic string,
	recoveryTTL time.Duration,
) *AuthService {
	return &AuthService{
		reader:      reader,
		writer:      writer,
		tokens:      tokens,
		mailer:      mailer,
		events:      events,
		userTopic:   userTopic,
		recoveryTTL: recoveryTTL,
	}
}

// Register creates a new user account. Username uniqueness is ultimately
// enforced by the storage layer; the pre-check only gives a friendlier
// fast path.
func (svc *AuthService) Register(ctx context.Context, username, password string, email *string) (*models.UserDB, error) {
	username = strings.ToLower(strings.TrimSpace(username))

	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user := &models.UserDB{
		UserID:       uuid.New(),
		Username:     username,
		DisplayName:  username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := svc.writer.Create(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, mapUserUniqueViolation(err)
	}

	svc.publishRegistered(ctx, user)

	return user, nil
}

// Login verifies a username/password pair and issues a new signed token,
// replacing any prior one (single-session semantics).
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.tokens.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	if err := svc.writer.SetAccessToken(ctx, user.UserID, &token); err != nil {
		logger.Log.Errorw("failed to persist token", "err", err)
		return "", err
	}

	return token, nil
}

// Revoke clears the stored token. Requests bearing the old token fail
// authorization from this point on.
func (svc *AuthService) Revoke(ctx context.Context, userID uuid.UUID) error {
	return svc.writer.SetAccessToken(ctx, userID, nil)
}

// ForgotPassword generates a single-use recovery token and mails a reset
// link. The active session token is left untouched while the reset is
// pending; ResetPassword revokes it.
func (svc *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user by email", "err", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	token, err := newRecoveryToken()
	if err != nil {
		return err
	}

	if err := svc.writer.SetRecoveryToken(ctx, user.UserID, token, time.Now().Add(svc.recoveryTTL)); err != nil {
		logger.Log.Errorw("failed to persist recovery token", "err", err)
		return err
	}

	if err := svc.mailer.SendPasswordReset(ctx, email, token); err != nil {
		logger.Log.Errorw("failed to send recovery mail", "err", err)
		return err
	}

	return nil
}

// ResetPassword consumes a recovery token: the new password is stored, the
// recovery token cleared and the active session revoked. A second attempt
// with the same token fails with ErrRecoveryTokenNotFound.
func (svc *AuthService) ResetPassword(ctx context.Context, recoveryToken, newPassword string) error {
	user, err := svc.reader.GetByRecoveryToken(ctx, recoveryToken)
	if err != nil {
		logger.Log.Errorw("failed to get user by recovery token", "err", err)
		return err
	}
	if user == nil {
		return ErrRecoveryTokenNotFound
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	return svc.writer.ResetPassword(ctx, user.UserID, string(hashedPassword))
}

func (svc *AuthService) publishRegistered(ctx context.Context, user *models.UserDB) {
	if svc.events == nil {
		return
	}

	payload, _ := json.Marshal(map[string]any{
		"user_id":  user.UserID.String(),
		"username": user.Username,
	})
	msg := kafka.Message{
		Topic: svc.userTopic,
		Key:   []byte(user.UserID.String()),
		Value: payload,
	}

	// Event publishing never fails the request.
	if err := svc.events.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish user.registered", "err", err)
	}
}

// mapUserUniqueViolation translates storage-level unique violations on the
// users table into domain conflicts.
func mapUserUniqueViolation(err error) error {
	var uv *repositories.UniqueViolationError
	if !errors.As(err, &uv) {
		return err
	}
	switch uv.Constraint {
	case repositories.ConstraintUsername:
		return ErrUsernameTaken
	case repositories.ConstraintEmail:
		return ErrEmailTaken
	case repositories.ConstraintSteamID:
		return ErrSteamIDTaken
	}
	return err
}

func newRecoveryToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
