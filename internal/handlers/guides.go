package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ggtips/gg-tips-backend/internal/facades"
	"github.com/ggtips/gg-tips-backend/internal/models"
)

// GuideReader defines the interface for guide content.
type GuideReader interface {
	ListGuides(ctx context.Context, gameSlug string) ([]models.Guide, error)
	GetGuide(ctx context.Context, slug string) (*models.Guide, error)
}

// GuideListResponse wraps the guide list
// swagger:model GuideListResponse
type GuideListResponse struct {
	Guides []models.Guide `json:"guides"`
}

// NewListGuidesHandler returns an HTTP handler for guide summaries.
// @Summary List guides
// @Tags guides
// @Produce json
// @Param game query string false "Filter by game slug"
// @Success 200 {object} handlers.GuideListResponse "Guides"
// @Failure 502 {object} handlers.ErrorResponse "CMS unavailable"
// @Router /guides [get]
func NewListGuidesHandler(svc GuideReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		guides, err := svc.ListGuides(r.Context(), r.URL.Query().Get("game"))
		if err != nil {
			writeError(w, http.StatusBadGateway, "Content service unavailable")
			return
		}

		writeJSON(w, http.StatusOK, GuideListResponse{Guides: guides})
	}
}

// NewGetGuideHandler returns an HTTP handler for one full guide.
// @Summary Get a guide
// @Tags guides
// @Produce json
// @Param slug path string true "Guide slug"
// @Success 200 {object} models.Guide "Guide"
// @Failure 404 {object} handlers.ErrorResponse "Guide not found"
// @Failure 502 {object} handlers.ErrorResponse "CMS unavailable"
// @Router /guides/{slug} [get]
func NewGetGuideHandler(svc GuideReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		guide, err := svc.GetGuide(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			switch {
			case errors.Is(err, facades.ErrContentNotFound):
				writeError(w, http.StatusNotFound, "Guide not found")
			default:
				writeError(w, http.StatusBadGateway, "Content service unavailable")
			}
			return
		}

		writeJSON(w, http.StatusOK, guide)
	}
}
