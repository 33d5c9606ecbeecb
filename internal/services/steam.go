package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/ggtips/gg-tips-backend/internal/facades"
	"github.com/ggtips/gg-tips-backend/internal/logger"
	"github.com/ggtips/gg-tips-backend/internal/models"
)

// Error variables
var (
	ErrInvalidSteamID   = errors.New("invalid steam id")
	ErrSteamIDTaken     = errors.New("steam id already linked to another account")
	ErrSteamUnavailable = errors.New("steam platform unavailable")
)

// usernameAttempts bounds the random-suffix draws before falling back to a
// high-entropy suffix.
const usernameAttempts = 10

// SteamProfileFetcher fetches a player profile snapshot from the Steam
// platform.
type SteamProfileFetcher interface {
	GetPlayerSummary(ctx context.Context, steamID string) (*models.SteamProviderDB, error)
}

// ProfileCache caches serialized steam profile snapshots.
type ProfileCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// SteamService attaches, refreshes and logs in Steam identities.
type SteamService struct {
	reader    UserReader
	writer    UserWriter
	tokens    TokenGenerator
	steam     SteamProfileFetcher
	cache     ProfileCache
	events    KafkaWriter
	userTopic string
}

// NewSteamService creates a new SteamService instance. cache and events
// may be nil.
func NewSteamService(
	reader UserReader,
	writer UserWriter,
	tokens TokenGenerator,
	steam SteamProfileFetcher,
	cache ProfileCache,
	events KafkaWriter,
	userTopic string,
) *SteamService {
	return &SteamService{
		reader:    reader,
		writer:    writer,
		tokens:    tokens,
		steam:     steam,
		cache:     cache,
		events:    events,
		userTopic: userTopic,
	}
}

// LinkResult is the outcome of a steam auth call.
type LinkResult struct {
	User    *models.UserDB
	Token   string
	Created bool
}

// Link attaches or refreshes a Steam identity.
//
// With an authenticated caller the snapshot is merged onto that user,
// failing with ErrSteamIDTaken when the steam ID is already bound to a
// different account. Without a caller it acts as a login: an existing
// holder of the steam ID gets a fresh token, otherwise a new account is
// created with an auto-generated username.
func (svc *SteamService) Link(ctx context.Context, caller *models.UserDB, steamID string) (*LinkResult, error) {
	snapshot, err := svc.fetchProfile(ctx, steamID)
	if err != nil {
		return nil, err
	}

	holder, err := svc.reader.GetBySteamID(ctx, steamID)
	if err != nil {
		logger.Log.Errorw("failed to look up steam id holder", "err", err)
		return nil, err
	}

	if caller != nil {
		if holder != nil && holder.UserID != caller.UserID {
			return nil, ErrSteamIDTaken
		}
		if err := svc.writer.SetSteamProvider(ctx, caller.UserID, *snapshot); err != nil {
			return nil, mapUserUniqueViolation(err)
		}
		caller.SteamProviderDB = *snapshot
		return &LinkResult{User: caller}, nil
	}

	if holder != nil {
		// Existing account: steam auth acts as a login.
		token, err := svc.issueToken(ctx, holder.UserID)
		if err != nil {
			return nil, err
		}
		if err := svc.writer.SetSteamProvider(ctx, holder.UserID, *snapshot); err != nil {
			logger.Log.Errorw("failed to refresh steam snapshot", "err", err)
		}
		holder.SteamProviderDB = *snapshot
		return &LinkResult{User: holder, Token: token}, nil
	}

	return svc.createFromSteam(ctx, snapshot)
}

func (svc *SteamService) createFromSteam(ctx context.Context, snapshot *models.SteamProviderDB) (*LinkResult, error) {
	base := ""
	if snapshot.PersonaName != nil {
		base = *snapshot.PersonaName
	}

	username, err := svc.generateUsername(ctx, base)
	if err != nil {
		return nil, err
	}

	displayName := username
	if snapshot.PersonaName != nil && *snapshot.PersonaName != "" {
		displayName = *snapshot.PersonaName
	}

	user := &models.UserDB{
		UserID:          uuid.New(),
		Username:        username,
		DisplayName:     displayName,
		PasswordHash:    "",
		SteamProviderDB: *snapshot,
	}

	if err := svc.writer.Create(ctx, user); err != nil {
		logger.Log.Errorw("failed to create steam user", "err", err)
		return nil, mapUserUniqueViolation(err)
	}

	token, err := svc.issueToken(ctx, user.UserID)
	if err != nil {
		return nil, err
	}

	svc.publishRegistered(ctx, user)

	return &LinkResult{User: user, Token: token, Created: true}, nil
}

// generateUsername derives a unique username from the steam persona name.
// Bounded random draws first, then a uuid-fragment fallback that cannot
// realistically collide; the storage unique index backstops both.
func (svc *SteamService) generateUsername(ctx context.Context, base string) (string, error) {
	base = sanitizeUsername(base)
	if base == "" {
		base = "player"
	}

	for i := 0; i < usernameAttempts; i++ {
		candidate := fmt.Sprintf("%s_%d", base, rand.Intn(100000))
		exists, err := svc.reader.ExistsUsername(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}

	return fmt.Sprintf("%s_%s", base, uuid.New().String()[:8]), nil
}

// sanitizeUsername lowercases the persona name and strips everything
// outside [a-z0-9_].
func sanitizeUsername(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		}
	}
	const maxBase = 24
	out := b.String()
	if len(out) > maxBase {
		out = out[:maxBase]
	}
	return out
}

func (svc *SteamService) fetchProfile(ctx context.Context, steamID string) (*models.SteamProviderDB, error) {
	key := "steam_profile:" + steamID

	if svc.cache != nil {
		if data, err := svc.cache.Get(ctx, key); err == nil && data != nil {
			var snapshot models.SteamProviderDB
			if err := json.Unmarshal(data, &snapshot); err == nil {
				return &snapshot, nil
			}
		}
	}

	snapshot, err := svc.steam.GetPlayerSummary(ctx, steamID)
	if err != nil {
		if errors.Is(err, facades.ErrSteamProfileNotFound) {
			return nil, ErrInvalidSteamID
		}
		logger.Log.Errorw("steam platform failure", "steam_id", steamID, "err", err)
		return nil, ErrSteamUnavailable
	}

	if svc.cache != nil {
		if data, err := json.Marshal(snapshot); err == nil {
			if err := svc.cache.Set(ctx, key, data); err != nil {
				logger.Log.Errorw("failed to cache steam profile", "err", err)
			}
		}
	}

	return snapshot, nil
}

func (svc *SteamService) issueToken(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := svc.tokens.Generate(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}
	if err := svc.writer.SetAccessToken(ctx, userID, &token); err != nil {
		logger.Log.Errorw("failed to persist token", "err", err)
		return "", err
	}
	return token, nil
}

func (svc *SteamService) publishRegistered(ctx context.Context, user *models.UserDB) {
	if svc.events == nil {
		return
	}

	payload, _ := json.Marshal(map[string]any{
		"user_id":  user.UserID.String(),
		"username": user.Username,
		"via":      "steam",
	})
	msg := kafka.Message{
		Topic: svc.userTopic,
		Key:   []byte(user.UserID.String()),
		Value: payload,
	}

	if err := svc.events.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish user.registered", "err", err)
	}
}
