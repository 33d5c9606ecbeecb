package handlers

import (
	"context"
	"net/http"

	"github.com/ggtips/gg-tips-backend/internal/models"
)

// RankingReader defines the interface for ranking lookups.
type RankingReader interface {
	GetRankings(ctx context.Context, gameSlug string) ([]models.Ranking, error)
}

// RankingListResponse wraps the ranking list
// swagger:model RankingListResponse
type RankingListResponse struct {
	Rankings []models.Ranking `json:"rankings"`
}

// NewRankingsHandler returns an HTTP handler for team rankings.
// @Summary List team rankings
// @Tags rankings
// @Produce json
// @Param game query string false "Filter by game slug"
// @Success 200 {object} handlers.RankingListResponse "Rankings"
// @Failure 502 {object} handlers.ErrorResponse "Matches service unavailable"
// @Router /rankings [get]
func NewRankingsHandler(svc RankingReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rankings, err := svc.GetRankings(r.Context(), r.URL.Query().Get("game"))
		if err != nil {
			writeError(w, http.StatusBadGateway, "Matches service unavailable")
			return
		}

		writeJSON(w, http.StatusOK, RankingListResponse{Rankings: rankings})
	}
}
