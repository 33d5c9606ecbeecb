package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/ggtips/gg-tips-backend/internal/facades"
	"github.com/ggtips/gg-tips-backend/internal/models"
)

func TestListGamesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("returns games", func(t *testing.T) {
		mockSvc := NewMockGameLister(ctrl)
		mockSvc.EXPECT().
			ListGames(gomock.Any()).
			Return([]models.Game{{ID: "g-1", Slug: "cs2", Name: "Counter-Strike 2"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/games", nil)
		rec := httptest.NewRecorder()

		NewListGamesHandler(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp GameListResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Games, 1)
	})

	t.Run("cms unavailable", func(t *testing.T) {
		mockSvc := NewMockGameLister(ctrl)
		mockSvc.EXPECT().ListGames(gomock.Any()).Return(nil, errors.New("cms down"))

		req := httptest.NewRequest(http.MethodGet, "/games", nil)
		rec := httptest.NewRecorder()

		NewListGamesHandler(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestListGuidesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("returns guides filtered by game", func(t *testing.T) {
		mockSvc := NewMockGuideReader(ctrl)
		mockSvc.EXPECT().
			ListGuides(gomock.Any(), "cs2").
			Return([]models.Guide{{ID: "gd-1", Slug: "how-to-read-odds", GameSlug: "cs2"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/guides?game=cs2", nil)
		rec := httptest.NewRecorder()

		NewListGuidesHandler(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp GuideListResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Guides, 1)
	})

	t.Run("cms unavailable", func(t *testing.T) {
		mockSvc := NewMockGuideReader(ctrl)
		mockSvc.EXPECT().ListGuides(gomock.Any(), "").Return(nil, errors.New("cms down"))

		req := httptest.NewRequest(http.MethodGet, "/guides", nil)
		rec := httptest.NewRecorder()

		NewListGuidesHandler(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestGetGuideHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	newServer := func(svc GuideReader) *chi.Mux {
		r := chi.NewRouter()
		r.Get("/guides/{slug}", NewGetGuideHandler(svc))
		return r
	}

	t.Run("returns the full guide", func(t *testing.T) {
		mockSvc := NewMockGuideReader(ctrl)
		mockSvc.EXPECT().
			GetGuide(gomock.Any(), "how-to-read-odds").
			Return(&models.Guide{ID: "gd-1", Slug: "how-to-read-odds", Body: "Odds express probability."}, nil)

		req := httptest.NewRequest(http.MethodGet, "/guides/how-to-read-odds", nil)
		rec := httptest.NewRecorder()
		newServer(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var guide models.Guide
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &guide))
		assert.NotEmpty(t, guide.Body)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := NewMockGuideReader(ctrl)
		mockSvc.EXPECT().GetGuide(gomock.Any(), "ghost").Return(nil, facades.ErrContentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/guides/ghost", nil)
		rec := httptest.NewRecorder()
		newServer(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRankingsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("returns rankings", func(t *testing.T) {
		mockSvc := NewMockRankingReader(ctrl)
		mockSvc.EXPECT().
			GetRankings(gomock.Any(), "cs2").
			Return([]models.Ranking{{Position: 1, TeamName: "NAVI", GameSlug: "cs2"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/rankings?game=cs2", nil)
		rec := httptest.NewRecorder()

		NewRankingsHandler(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp RankingListResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Rankings, 1)
		assert.Equal(t, "NAVI", resp.Rankings[0].TeamName)
	})

	t.Run("matches service unavailable", func(t *testing.T) {
		mockSvc := NewMockRankingReader(ctrl)
		mockSvc.EXPECT().GetRankings(gomock.Any(), "").Return(nil, facades.ErrMatchesUnavailable)

		req := httptest.NewRequest(http.MethodGet, "/rankings", nil)
		rec := httptest.NewRecorder()

		NewRankingsHandler(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}
