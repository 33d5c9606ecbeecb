package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ggtips/gg-tips-backend/internal/logger"
	"github.com/ggtips/gg-tips-backend/internal/models"
)

// ErrSteamProfileNotFound is returned when the Steam API answers
// successfully but knows no player with the given ID. Transport and
// server failures are returned as distinct wrapped errors so callers can
// tell an invalid ID from an unavailable platform.
var ErrSteamProfileNotFound = errors.New("steam profile not found")

// SteamFacade queries the Steam Web API for player profiles.
type SteamFacade struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewSteamFacade creates a Steam Web API client.
func NewSteamFacade(baseURL, apiKey string) *SteamFacade {
	return &SteamFacade{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

type steamPlayer struct {
	SteamID      string `json:"steamid"`
	PersonaName  string `json:"personaname"`
	ProfileURL   string `json:"profileurl"`
	Avatar       string `json:"avatar"`
	AvatarFull   string `json:"avatarfull"`
	CountryCode  string `json:"loccountrycode"`
	StateCode    string `json:"locstatecode"`
	CityID       int    `json:"loccityid"`
	Visibility   int    `json:"communityvisibilitystate"`
}

type steamSummariesResponse struct {
	Response struct {
		Players []steamPlayer `json:"players"`
	} `json:"response"`
}

// GetPlayerSummary fetches the profile snapshot for one steam ID.
func (f *SteamFacade) GetPlayerSummary(ctx context.Context, steamID string) (*models.SteamProviderDB, error) {
	u := fmt.Sprintf("%s/ISteamUser/GetPlayerSummaries/v2/?key=%s&steamids=%s",
		f.baseURL, url.QueryEscape(f.apiKey), url.QueryEscape(steamID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		logger.Log.Errorw("steam api request failed", "steam_id", steamID, "error", err)
		return nil, fmt.Errorf("steam api request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("steam api returned non-200", "steam_id", steamID, "status", resp.StatusCode)
		return nil, fmt.Errorf("steam api status %d", resp.StatusCode)
	}

	var parsed steamSummariesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("steam api decode: %w", err)
	}

	if len(parsed.Response.Players) == 0 {
		return nil, ErrSteamProfileNotFound
	}

	p := parsed.Response.Players[0]
	snapshot := &models.SteamProviderDB{
		SteamID:       &p.SteamID,
		PersonaName:   strPtr(p.PersonaName),
		ProfileURL:    strPtr(p.ProfileURL),
		AvatarURL:     strPtr(p.Avatar),
		AvatarFullURL: strPtr(p.AvatarFull),
		CountryCode:   strPtr(p.CountryCode),
		StateCode:     strPtr(p.StateCode),
	}
	if p.CityID != 0 {
		snapshot.CityID = &p.CityID
	}
	snapshot.Visibility = &p.Visibility

	return snapshot, nil
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
