package services

import (
	"context"
	"encoding/json"

	"github.com/ggtips/gg-tips-backend/internal/logger"
	"github.com/ggtips/gg-tips-backend/internal/models"
)

// CMSReader reads published content from the headless CMS.
type CMSReader interface {
	ListBookmakers(ctx context.Context) ([]models.Bookmaker, error)
	GetBookmaker(ctx context.Context, slug string) (*models.Bookmaker, error)
	ListGames(ctx context.Context) ([]models.Game, error)
	ListGuides(ctx context.Context, gameSlug string) ([]models.Guide, error)
	GetGuide(ctx context.Context, slug string) (*models.Guide, error)
}

// ContentService passes CMS content through with a redis read-through
// cache in front of it.
type ContentService struct {
	cms   CMSReader
	cache ProfileCache
}

// NewContentService creates a new ContentService instance. cache may be
// nil, in which case every call hits the CMS.
func NewContentService(cms CMSReader, cache ProfileCache) *ContentService {
	return &ContentService{
		cms:   cms,
		cache: cache,
	}
}

// cached runs fetch behind the cache key. The cache is best-effort: cache
// failures fall through to the CMS.
func cached[T any](ctx context.Context, svc *ContentService, key string, fetch func(context.Context) (T, error)) (T, error) {
	var zero T

	if svc.cache != nil {
		if data, err := svc.cache.Get(ctx, key); err == nil && data != nil {
			var out T
			if err := json.Unmarshal(data, &out); err == nil {
				return out, nil
			}
		}
	}

	out, err := fetch(ctx)
	if err != nil {
		return zero, err
	}

	if svc.cache != nil {
		if data, err := json.Marshal(out); err == nil {
			if err := svc.cache.Set(ctx, key, data); err != nil {
				logger.Log.Errorw("failed to cache content", "key", key, "err", err)
			}
		}
	}

	return out, nil
}

// ListBookmakers returns all published bookmakers.
func (svc *ContentService) ListBookmakers(ctx context.Context) ([]models.Bookmaker, error) {
	return cached(ctx, svc, "cms:bookmakers", svc.cms.ListBookmakers)
}

// GetBookmaker returns one bookmaker by slug.
func (svc *ContentService) GetBookmaker(ctx context.Context, slug string) (*models.Bookmaker, error) {
	return cached(ctx, svc, "cms:bookmaker:"+slug, func(ctx context.Context) (*models.Bookmaker, error) {
		return svc.cms.GetBookmaker(ctx, slug)
	})
}

// ListGames returns all supported games.
func (svc *ContentService) ListGames(ctx context.Context) ([]models.Game, error) {
	return cached(ctx, svc, "cms:games", svc.cms.ListGames)
}

// ListGuides returns guide summaries, optionally filtered by game slug.
func (svc *ContentService) ListGuides(ctx context.Context, gameSlug string) ([]models.Guide, error) {
	return cached(ctx, svc, "cms:guides:"+gameSlug, func(ctx context.Context) ([]models.Guide, error) {
		return svc.cms.ListGuides(ctx, gameSlug)
	})
}

// GetGuide returns one full guide by slug.
func (svc *ContentService) GetGuide(ctx context.Context, slug string) (*models.Guide, error) {
	return cached(ctx, svc, "cms:guide:"+slug, func(ctx context.Context) (*models.Guide, error) {
		return svc.cms.GetGuide(ctx, slug)
	})
}
