package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ggtips/gg-tips-backend/internal/facades"
	"github.com/ggtips/gg-tips-backend/internal/models"
)

// MatchReader defines the interface for match lookups.
type MatchReader interface {
	ListMatches(ctx context.Context, gameSlug string) ([]models.Match, error)
	GetMatch(ctx context.Context, matchID string) (*models.Match, error)
}

// MatchListResponse wraps the match list
// swagger:model MatchListResponse
type MatchListResponse struct {
	Matches []models.Match `json:"matches"`
}

// NewListMatchesHandler returns an HTTP handler for the match list.
// @Summary List matches
// @Tags matches
// @Produce json
// @Param game query string false "Filter by game slug"
// @Success 200 {object} handlers.MatchListResponse "Matches"
// @Failure 502 {object} handlers.ErrorResponse "Matches service unavailable"
// @Router /matches [get]
func NewListMatchesHandler(svc MatchReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := svc.ListMatches(r.Context(), r.URL.Query().Get("game"))
		if err != nil {
			writeError(w, http.StatusBadGateway, "Matches service unavailable")
			return
		}

		writeJSON(w, http.StatusOK, MatchListResponse{Matches: matches})
	}
}

// NewGetMatchHandler returns an HTTP handler for one match.
// @Summary Get a match
// @Tags matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} models.Match "Match"
// @Failure 404 {object} handlers.ErrorResponse "Match not found"
// @Failure 502 {object} handlers.ErrorResponse "Matches service unavailable"
// @Router /matches/{id} [get]
func NewGetMatchHandler(svc MatchReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		match, err := svc.GetMatch(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			switch {
			case errors.Is(err, facades.ErrMatchNotFound):
				writeError(w, http.StatusNotFound, "Match not found")
			default:
				writeError(w, http.StatusBadGateway, "Matches service unavailable")
			}
			return
		}

		writeJSON(w, http.StatusOK, match)
	}
}
