package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ggtips/gg-tips-backend/internal/facades"
	"github.com/ggtips/gg-tips-backend/internal/models"
	"github.com/ggtips/gg-tips-backend/internal/services"
)

func TestCreateReviewHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{UserID: uuid.New(), Username: "john_doe"}
	bookmaker := &models.Bookmaker{ID: "bm-1", Slug: "ggbet", Name: "GG.Bet"}

	newServer := func(svc ReviewCreator, content BookmakerReader) *chi.Mux {
		r := chi.NewRouter()
		r.Method(http.MethodPost, "/bookmakers/{slug}/reviews", authed(ctrl, user, NewCreateReviewHandler(svc, content)))
		return r
	}

	postReview := func(t *testing.T, r http.Handler, body CreateReviewRequest) *httptest.ResponseRecorder {
		t.Helper()
		raw, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, "/bookmakers/ggbet/reviews", bytes.NewReader(raw))
		req.Header.Set("Authorization", "Bearer token123")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockReviewCreator(ctrl)
		mockContent := NewMockBookmakerReader(ctrl)

		mockContent.EXPECT().GetBookmaker(gomock.Any(), "ggbet").Return(bookmaker, nil)
		mockSvc.EXPECT().
			CreateReview(gomock.Any(), user.UserID, "bm-1", 4, "solid odds").
			Return(&models.BookmakerReviewDB{ReviewID: uuid.New(), UserID: user.UserID, BookmakerID: "bm-1", Rating: 4, Text: "solid odds"}, nil)

		rec := postReview(t, newServer(mockSvc, mockContent), CreateReviewRequest{Rating: 4, Text: "solid odds"})
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("unknown bookmaker", func(t *testing.T) {
		mockSvc := NewMockReviewCreator(ctrl)
		mockContent := NewMockBookmakerReader(ctrl)

		mockContent.EXPECT().GetBookmaker(gomock.Any(), "ggbet").Return(nil, facades.ErrContentNotFound)

		rec := postReview(t, newServer(mockSvc, mockContent), CreateReviewRequest{Rating: 4})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("duplicate review", func(t *testing.T) {
		mockSvc := NewMockReviewCreator(ctrl)
		mockContent := NewMockBookmakerReader(ctrl)

		mockContent.EXPECT().GetBookmaker(gomock.Any(), "ggbet").Return(bookmaker, nil)
		mockSvc.EXPECT().
			CreateReview(gomock.Any(), user.UserID, "bm-1", 4, "").
			Return(nil, services.ErrReviewExists)

		rec := postReview(t, newServer(mockSvc, mockContent), CreateReviewRequest{Rating: 4})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("rating out of range", func(t *testing.T) {
		mockSvc := NewMockReviewCreator(ctrl)
		mockContent := NewMockBookmakerReader(ctrl)

		rec := postReview(t, newServer(mockSvc, mockContent), CreateReviewRequest{Rating: 6})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListReviewsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bookmaker := &models.Bookmaker{ID: "bm-1", Slug: "ggbet", Name: "GG.Bet"}

	t.Run("returns reviews with aggregate", func(t *testing.T) {
		mockSvc := NewMockReviewLister(ctrl)
		mockContent := NewMockBookmakerReader(ctrl)

		reviews := []models.BookmakerReviewDB{{ReviewID: uuid.New(), BookmakerID: "bm-1", Rating: 5}}
		agg := &models.ReviewAggregate{BookmakerID: "bm-1", Count: 1, AvgRating: 5}

		mockContent.EXPECT().GetBookmaker(gomock.Any(), "ggbet").Return(bookmaker, nil)
		mockSvc.EXPECT().ListReviews(gomock.Any(), "bm-1").Return(reviews, agg, nil)

		r := chi.NewRouter()
		r.Get("/bookmakers/{slug}/reviews", NewListReviewsHandler(mockSvc, mockContent))

		req := httptest.NewRequest(http.MethodGet, "/bookmakers/ggbet/reviews", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp ReviewListResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Reviews, 1)
		assert.Equal(t, 1, resp.Aggregate.Count)
	})

	t.Run("unknown bookmaker", func(t *testing.T) {
		mockSvc := NewMockReviewLister(ctrl)
		mockContent := NewMockBookmakerReader(ctrl)

		mockContent.EXPECT().GetBookmaker(gomock.Any(), "ghost").Return(nil, facades.ErrContentNotFound)

		r := chi.NewRouter()
		r.Get("/bookmakers/{slug}/reviews", NewListReviewsHandler(mockSvc, mockContent))

		req := httptest.NewRequest(http.MethodGet, "/bookmakers/ghost/reviews", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
