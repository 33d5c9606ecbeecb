package handlers

import (
	"time"

	"github.com/ggtips/gg-tips-backend/internal/models"
)

// SteamProfile is the linked Steam snapshot in profile responses.
// swagger:model SteamProfile
type SteamProfile struct {
	SteamID       string `json:"steam_id"`
	PersonaName   string `json:"persona_name,omitempty"`
	ProfileURL    string `json:"profile_url,omitempty"`
	AvatarURL     string `json:"avatar_url,omitempty"`
	AvatarFullURL string `json:"avatar_full_url,omitempty"`
	CountryCode   string `json:"country_code,omitempty"`
}

// UserResponse is the profile representation returned to clients.
// swagger:model UserResponse
type UserResponse struct {
	ID          string        `json:"id"`
	Username    string        `json:"username"`
	DisplayName string        `json:"display_name"`
	Email       string        `json:"email,omitempty"`
	CountryCode string        `json:"country_code,omitempty"`
	AvatarURL   string        `json:"avatar_url,omitempty"`
	Steam       *SteamProfile `json:"steam,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// newUserResponse builds the full (owner-visible) profile representation.
func newUserResponse(user *models.UserDB, avatarURL string) UserResponse {
	resp := UserResponse{
		ID:          user.UserID.String(),
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Email:       deref(user.Email),
		CountryCode: deref(user.CountryCode),
		AvatarURL:   avatarURL,
		CreatedAt:   user.CreatedAt,
	}
	if user.Linked() {
		resp.Steam = &SteamProfile{
			SteamID:       deref(user.SteamID),
			PersonaName:   deref(user.PersonaName),
			ProfileURL:    deref(user.ProfileURL),
			AvatarURL:     deref(user.SteamProviderDB.AvatarURL),
			AvatarFullURL: deref(user.AvatarFullURL),
			CountryCode:   deref(user.SteamProviderDB.CountryCode),
		}
	}
	return resp
}

// newPublicUserResponse strips owner-only fields (email) for public views.
func newPublicUserResponse(user *models.UserDB, avatarURL string) UserResponse {
	resp := newUserResponse(user, avatarURL)
	resp.Email = ""
	return resp
}
