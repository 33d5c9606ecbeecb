package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ggtips/gg-tips-backend/internal/facades"
	"github.com/ggtips/gg-tips-backend/internal/models"
)

// BookmakerReader defines the interface for bookmaker content.
type BookmakerReader interface {
	ListBookmakers(ctx context.Context) ([]models.Bookmaker, error)
	GetBookmaker(ctx context.Context, slug string) (*models.Bookmaker, error)
}

// ReviewAggregator returns the local rating summary for a bookmaker.
type ReviewAggregator interface {
	Aggregate(ctx context.Context, bookmakerID string) (*models.ReviewAggregate, error)
}

// BookmakerListResponse wraps the bookmaker list
// swagger:model BookmakerListResponse
type BookmakerListResponse struct {
	Bookmakers []models.Bookmaker `json:"bookmakers"`
}

// BookmakerResponse is one bookmaker with its local review summary
// swagger:model BookmakerResponse
type BookmakerResponse struct {
	Bookmaker models.Bookmaker       `json:"bookmaker"`
	Reviews   models.ReviewAggregate `json:"reviews"`
}

// NewListBookmakersHandler returns an HTTP handler for the bookmaker list.
// @Summary List bookmakers
// @Tags bookmakers
// @Produce json
// @Success 200 {object} handlers.BookmakerListResponse "Bookmakers"
// @Failure 502 {object} handlers.ErrorResponse "CMS unavailable"
// @Router /bookmakers [get]
func NewListBookmakersHandler(svc BookmakerReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookmakers, err := svc.ListBookmakers(r.Context())
		if err != nil {
			writeError(w, http.StatusBadGateway, "Content service unavailable")
			return
		}

		writeJSON(w, http.StatusOK, BookmakerListResponse{Bookmakers: bookmakers})
	}
}

// NewGetBookmakerHandler returns an HTTP handler for one bookmaker.
// @Summary Get a bookmaker with its review summary
// @Tags bookmakers
// @Produce json
// @Param slug path string true "Bookmaker slug"
// @Success 200 {object} handlers.BookmakerResponse "Bookmaker"
// @Failure 404 {object} handlers.ErrorResponse "Bookmaker not found"
// @Failure 502 {object} handlers.ErrorResponse "CMS unavailable"
// @Router /bookmakers/{slug} [get]
func NewGetBookmakerHandler(svc BookmakerReader, reviews ReviewAggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		bookmaker, err := svc.GetBookmaker(r.Context(), slug)
		if err != nil {
			switch {
			case errors.Is(err, facades.ErrContentNotFound):
				writeError(w, http.StatusNotFound, "Bookmaker not found")
			default:
				writeError(w, http.StatusBadGateway, "Content service unavailable")
			}
			return
		}

		agg, err := reviews.Aggregate(r.Context(), bookmaker.ID)
		if err != nil {
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, BookmakerResponse{
			Bookmaker: *bookmaker,
			Reviews:   *agg,
		})
	}
}
