package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/ggtips/gg-tips-backend/internal/middlewares"
	"github.com/ggtips/gg-tips-backend/internal/models"
)

// PredictionCreator defines the interface for posting predictions.
type PredictionCreator interface {
	CreatePrediction(ctx context.Context, userID uuid.UUID, matchID, pick, text string) (*models.PredictionDB, error)
}

// PredictionLister defines the interface for browsing predictions.
type PredictionLister interface {
	ListPredictions(ctx context.Context, matchID string) ([]models.PredictionDB, error)
}

// CreatePredictionRequest represents the JSON body for a new prediction
// swagger:model CreatePredictionRequest
type CreatePredictionRequest struct {
	// Match ID from the matches service
	// required: true
	MatchID string `json:"match_id" validate:"required,max=64"`

	// Predicted winner or outcome
	// required: true
	Pick string `json:"pick" validate:"required,max=64"`

	// Free-text reasoning
	Text string `json:"text" validate:"max=2000"`
}

// PredictionListResponse wraps the prediction list
// swagger:model PredictionListResponse
type PredictionListResponse struct {
	Predictions []models.PredictionDB `json:"predictions"`
}

// NewCreatePredictionHandler returns an HTTP handler for posting a prediction.
// @Summary Post a match prediction
// @Tags predictions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createPredictionRequest body handlers.CreatePredictionRequest true "Prediction"
// @Success 201 {object} models.PredictionDB "Prediction created"
// @Failure 400 {object} handlers.ValidationErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /predictions [post]
func NewCreatePredictionHandler(svc PredictionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req CreatePredictionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validateStruct(req); err != nil {
			writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{Errors: formatValidationError(err)})
			return
		}

		prediction, err := svc.CreatePrediction(r.Context(), user.UserID, req.MatchID, req.Pick, req.Text)
		if err != nil {
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, prediction)
	}
}

// NewListPredictionsHandler returns an HTTP handler for browsing predictions.
// @Summary List predictions for a match
// @Tags predictions
// @Produce json
// @Param match query string true "Match ID"
// @Success 200 {object} handlers.PredictionListResponse "Predictions"
// @Failure 400 {object} handlers.ErrorResponse "Missing match parameter"
// @Router /predictions [get]
func NewListPredictionsHandler(svc PredictionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.URL.Query().Get("match")
		if matchID == "" {
			writeError(w, http.StatusBadRequest, "match query parameter is required")
			return
		}

		predictions, err := svc.ListPredictions(r.Context(), matchID)
		if err != nil {
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, PredictionListResponse{Predictions: predictions})
	}
}
