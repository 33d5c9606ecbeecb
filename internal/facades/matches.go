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

var (
	// ErrMatchNotFound is returned when the matches service knows no
	// match with the requested ID.
	ErrMatchNotFound = errors.New("match not found")
	// ErrMatchesUnavailable is returned when the matches service cannot
	// be reached or answers with a server error.
	ErrMatchesUnavailable = errors.New("matches service unavailable")
)

// MatchesFacade looks up match and team data from the matches microservice.
type MatchesFacade struct {
	httpClient *http.Client
	baseURL    string
}

// NewMatchesFacade creates a matches microservice client.
func NewMatchesFacade(baseURL string) *MatchesFacade {
	return &MatchesFacade{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
	}
}

func (f *MatchesFacade) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		logger.Log.Errorw("matches service request failed", "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrMatchesUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrMatchNotFound
	case resp.StatusCode >= 500:
		logger.Log.Errorw("matches service returned server error", "path", path, "status", resp.StatusCode)
		return fmt.Errorf("%w: status %d", ErrMatchesUnavailable, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("matches service status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// ListMatches returns matches, optionally filtered by game slug.
func (f *MatchesFacade) ListMatches(ctx context.Context, gameSlug string) ([]models.Match, error) {
	path := "/matches"
	if gameSlug != "" {
		path += "?game=" + url.QueryEscape(gameSlug)
	}
	var out []models.Match
	if err := f.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetMatch returns one match by ID.
func (f *MatchesFacade) GetMatch(ctx context.Context, matchID string) (*models.Match, error) {
	var out models.Match
	if err := f.get(ctx, "/matches/"+url.PathEscape(matchID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRankings returns team rankings for a game.
func (f *MatchesFacade) GetRankings(ctx context.Context, gameSlug string) ([]models.Ranking, error) {
	path := "/rankings"
	if gameSlug != "" {
		path += "?game=" + url.QueryEscape(gameSlug)
	}
	var out []models.Ranking
	if err := f.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}
