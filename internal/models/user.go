package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database.
//
// Username is the authentication key: unique and compared case-insensitively.
// DisplayName is presentation only. AccessToken holds the single active
// bearer token; a NULL value means no active session.
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`
	Username     string    `json:"username" db:"username"`
	DisplayName  string    `json:"display_name" db:"display_name"`
	Email        *string   `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CountryCode  *string   `json:"country_code" db:"country_code"`
	AvatarKey    *string   `json:"-" db:"avatar_key"`

	AccessToken       *string    `json:"-" db:"access_token"`
	RecoveryToken     *string    `json:"-" db:"recovery_token"`
	RecoveryExpiresAt *time.Time `json:"-" db:"recovery_expires_at"`

	SteamProviderDB

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// SteamProviderDB is the cached snapshot of a linked Steam profile.
// It is a read-through cache of third-party data, not authoritative.
// A NULL SteamID means no Steam identity is linked.
type SteamProviderDB struct {
	SteamID       *string `json:"steam_id" db:"steam_id"`
	PersonaName   *string `json:"persona_name" db:"steam_persona_name"`
	ProfileURL    *string `json:"profile_url" db:"steam_profile_url"`
	AvatarURL     *string `json:"avatar_url" db:"steam_avatar_url"`
	AvatarFullURL *string `json:"avatar_full_url" db:"steam_avatar_full_url"`
	CountryCode   *string `json:"country_code" db:"steam_country_code"`
	StateCode     *string `json:"state_code" db:"steam_state_code"`
	CityID        *int    `json:"city_id" db:"steam_city_id"`
	Visibility    *int    `json:"visibility" db:"steam_visibility"`
}

// Linked reports whether a Steam identity is attached.
func (s SteamProviderDB) Linked() bool {
	return s.SteamID != nil && *s.SteamID != ""
}
