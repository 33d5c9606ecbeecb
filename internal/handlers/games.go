package handlers

import (
	"context"
	"net/http"

	"github.com/ggtips/gg-tips-backend/internal/models"
)

// GameLister defines the interface for game content.
type GameLister interface {
	ListGames(ctx context.Context) ([]models.Game, error)
}

// GameListResponse wraps the game list
// swagger:model GameListResponse
type GameListResponse struct {
	Games []models.Game `json:"games"`
}

// NewListGamesHandler returns an HTTP handler for supported games.
// @Summary List supported games
// @Tags games
// @Produce json
// @Success 200 {object} handlers.GameListResponse "Games"
// @Failure 502 {object} handlers.ErrorResponse "CMS unavailable"
// @Router /games [get]
func NewListGamesHandler(svc GameLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := svc.ListGames(r.Context())
		if err != nil {
			writeError(w, http.StatusBadGateway, "Content service unavailable")
			return
		}

		writeJSON(w, http.StatusOK, GameListResponse{Games: games})
	}
}
