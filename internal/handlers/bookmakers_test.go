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

func TestListBookmakersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("returns bookmakers", func(t *testing.T) {
		mockSvc := NewMockBookmakerReader(ctrl)
		mockSvc.EXPECT().
			ListBookmakers(gomock.Any()).
			Return([]models.Bookmaker{{ID: "bm-1", Slug: "ggbet", Name: "GG.Bet"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/bookmakers", nil)
		rec := httptest.NewRecorder()

		NewListBookmakersHandler(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp BookmakerListResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Bookmakers, 1)
	})

	t.Run("cms unavailable", func(t *testing.T) {
		mockSvc := NewMockBookmakerReader(ctrl)
		mockSvc.EXPECT().ListBookmakers(gomock.Any()).Return(nil, errors.New("cms down"))

		req := httptest.NewRequest(http.MethodGet, "/bookmakers", nil)
		rec := httptest.NewRecorder()

		NewListBookmakersHandler(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestGetBookmakerHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bookmaker := &models.Bookmaker{ID: "bm-1", Slug: "ggbet", Name: "GG.Bet"}

	newServer := func(svc BookmakerReader, reviews ReviewAggregator) *chi.Mux {
		r := chi.NewRouter()
		r.Get("/bookmakers/{slug}", NewGetBookmakerHandler(svc, reviews))
		return r
	}

	t.Run("returns bookmaker with review summary", func(t *testing.T) {
		mockSvc := NewMockBookmakerReader(ctrl)
		mockReviews := NewMockReviewAggregator(ctrl)

		mockSvc.EXPECT().GetBookmaker(gomock.Any(), "ggbet").Return(bookmaker, nil)
		mockReviews.EXPECT().
			Aggregate(gomock.Any(), "bm-1").
			Return(&models.ReviewAggregate{BookmakerID: "bm-1", Count: 3, AvgRating: 4.3}, nil)

		req := httptest.NewRequest(http.MethodGet, "/bookmakers/ggbet", nil)
		rec := httptest.NewRecorder()
		newServer(mockSvc, mockReviews).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp BookmakerResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "GG.Bet", resp.Bookmaker.Name)
		assert.Equal(t, 3, resp.Reviews.Count)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := NewMockBookmakerReader(ctrl)
		mockReviews := NewMockReviewAggregator(ctrl)

		mockSvc.EXPECT().GetBookmaker(gomock.Any(), "ghost").Return(nil, facades.ErrContentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/bookmakers/ghost", nil)
		rec := httptest.NewRecorder()
		newServer(mockSvc, mockReviews).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
