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

// ErrContentNotFound is returned when the CMS knows no entity with the
// requested slug.
var ErrContentNotFound = errors.New("content not found")

// CMSFacade reads bookmaker, game and guide content from the headless CMS.
// The CMS is authoritative for this content; the backend only passes it
// through (with caching at the service layer).
type CMSFacade struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewCMSFacade creates a CMS read client.
func NewCMSFacade(baseURL, token string) *CMSFacade {
	return &CMSFacade{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		token:      token,
	}
}

func (f *CMSFacade) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+path, nil)
	if err != nil {
		return err
	}
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		logger.Log.Errorw("cms request failed", "path", path, "error", err)
		return fmt.Errorf("cms request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrContentNotFound
	case resp.StatusCode != http.StatusOK:
		logger.Log.Errorw("cms returned non-200", "path", path, "status", resp.StatusCode)
		return fmt.Errorf("cms status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// ListBookmakers returns all published bookmakers.
func (f *CMSFacade) ListBookmakers(ctx context.Context) ([]models.Bookmaker, error) {
	var out []models.Bookmaker
	if err := f.get(ctx, "/bookmakers", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBookmaker returns one bookmaker by slug.
func (f *CMSFacade) GetBookmaker(ctx context.Context, slug string) (*models.Bookmaker, error) {
	var out models.Bookmaker
	if err := f.get(ctx, "/bookmakers/"+url.PathEscape(slug), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListGames returns all supported games.
func (f *CMSFacade) ListGames(ctx context.Context) ([]models.Game, error) {
	var out []models.Game
	if err := f.get(ctx, "/games", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListGuides returns guide summaries, optionally filtered by game slug.
func (f *CMSFacade) ListGuides(ctx context.Context, gameSlug string) ([]models.Guide, error) {
	path := "/guides"
	if gameSlug != "" {
		path += "?game=" + url.QueryEscape(gameSlug)
	}
	var out []models.Guide
	if err := f.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetGuide returns one full guide by slug.
func (f *CMSFacade) GetGuide(ctx context.Context, slug string) (*models.Guide, error) {
	var out models.Guide
	if err := f.get(ctx, "/guides/"+url.PathEscape(slug), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
