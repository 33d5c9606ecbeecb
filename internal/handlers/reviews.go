package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ggtips/gg-tips-backend/internal/facades"
	"github.com/ggtips/gg-tips-backend/internal/middlewares"
	"github.com/ggtips/gg-tips-backend/internal/models"
	"github.com/ggtips/gg-tips-backend/internal/services"
)

// ReviewCreator defines the interface for creating bookmaker reviews.
type ReviewCreator interface {
	CreateReview(ctx context.Context, userID uuid.UUID, bookmakerID string, rating int, text string) (*models.BookmakerReviewDB, error)
}

// ReviewLister defines the interface for listing bookmaker reviews.
type ReviewLister interface {
	ListReviews(ctx context.Context, bookmakerID string) ([]models.BookmakerReviewDB, *models.ReviewAggregate, error)
}

// CreateReviewRequest represents the JSON body for a new review
// swagger:model CreateReviewRequest
type CreateReviewRequest struct {
	// Rating from 1 to 5
	// required: true
	Rating int `json:"rating" validate:"required,min=1,max=5"`

	// Free-text review
	Text string `json:"text" validate:"max=2000"`
}

// ReviewListResponse wraps reviews with the rating aggregate
// swagger:model ReviewListResponse
type ReviewListResponse struct {
	Reviews   []models.BookmakerReviewDB `json:"reviews"`
	Aggregate models.ReviewAggregate     `json:"aggregate"`
}

// NewCreateReviewHandler returns an HTTP handler for posting a review.
// The bookmaker is resolved through the CMS first, so reviews can only be
// attached to content that actually exists.
// @Summary Review a bookmaker
// @Tags bookmakers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Bookmaker slug"
// @Param createReviewRequest body handlers.CreateReviewRequest true "Review"
// @Success 201 {object} models.BookmakerReviewDB "Review created"
// @Failure 400 {object} handlers.ValidationErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Bookmaker not found"
// @Failure 409 {object} handlers.ErrorResponse "Already reviewed"
// @Router /bookmakers/{slug}/reviews [post]
func NewCreateReviewHandler(svc ReviewCreator, content BookmakerReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req CreateReviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validateStruct(req); err != nil {
			writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{Errors: formatValidationError(err)})
			return
		}

		bookmaker, err := content.GetBookmaker(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			switch {
			case errors.Is(err, facades.ErrContentNotFound):
				writeError(w, http.StatusNotFound, "Bookmaker not found")
			default:
				writeError(w, http.StatusBadGateway, "Content service unavailable")
			}
			return
		}

		review, err := svc.CreateReview(r.Context(), user.UserID, bookmaker.ID, req.Rating, req.Text)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrReviewExists):
				writeError(w, http.StatusConflict, "You already reviewed this bookmaker")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, review)
	}
}

// NewListReviewsHandler returns an HTTP handler for a bookmaker's reviews.
// @Summary List reviews of a bookmaker
// @Tags bookmakers
// @Produce json
// @Param slug path string true "Bookmaker slug"
// @Success 200 {object} handlers.ReviewListResponse "Reviews"
// @Failure 404 {object} handlers.ErrorResponse "Bookmaker not found"
// @Router /bookmakers/{slug}/reviews [get]
func NewListReviewsHandler(svc ReviewLister, content BookmakerReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookmaker, err := content.GetBookmaker(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			switch {
			case errors.Is(err, facades.ErrContentNotFound):
				writeError(w, http.StatusNotFound, "Bookmaker not found")
			default:
				writeError(w, http.StatusBadGateway, "Content service unavailable")
			}
			return
		}

		reviews, agg, err := svc.ListReviews(r.Context(), bookmaker.ID)
		if err != nil {
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ReviewListResponse{Reviews: reviews, Aggregate: *agg})
	}
}
