package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ggtips/gg-tips-backend/internal/middlewares"
	"github.com/ggtips/gg-tips-backend/internal/models"
	"github.com/ggtips/gg-tips-backend/internal/services"
)

// SteamLinker defines the interface that the steam identity service must implement.
type SteamLinker interface {
	Link(ctx context.Context, caller *models.UserDB, steamID string) (*services.LinkResult, error)
}

// SteamAuthRequest represents the JSON body for steam authentication
// swagger:model SteamAuthRequest
type SteamAuthRequest struct {
	// Steam numeric ID
	// required: true
	// default: 76561198000000000
	SteamID string `json:"steam_id" validate:"required,numeric,min=10,max=20"`
}

// SteamAuthResponse represents a successful steam auth response
// swagger:model SteamAuthResponse
type SteamAuthResponse struct {
	// Access token; empty when linking onto an existing session
	Token string `json:"token,omitempty"`

	// The user the steam identity is attached to
	User UserResponse `json:"user"`
}

// NewSteamAuthHandler returns an HTTP handler for steam login/linking.
//
// The route is public: with a valid bearer token the steam identity is
// merged onto the caller; without one it logs in the existing holder of
// the steam ID or creates a fresh account.
//
// @Summary Steam login / identity linking
// @Description Attaches a Steam identity to the authenticated caller, or logs in (creating an account if needed) when called anonymously.
// @Tags auth
// @Accept json
// @Produce json
// @Param steamAuthRequest body handlers.SteamAuthRequest true "Steam auth request"
// @Success 200 {object} handlers.SteamAuthResponse "Identity linked or login succeeded"
// @Success 201 {object} handlers.SteamAuthResponse "New account created"
// @Failure 400 {object} handlers.ValidationErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Steam ID already linked to another account"
// @Failure 422 {object} handlers.ErrorResponse "Steam knows no such player"
// @Failure 502 {object} handlers.ErrorResponse "Steam platform unavailable"
// @Router /auth/steam [post]
func NewSteamAuthHandler(svc SteamLinker, tokener middlewares.Tokener, resolver middlewares.UserResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SteamAuthRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validateStruct(req); err != nil {
			writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{Errors: formatValidationError(err)})
			return
		}

		// Authentication is optional here; a present but invalid token is
		// still rejected rather than silently treated as anonymous.
		var caller *models.UserDB
		if r.Header.Get("Authorization") != "" {
			token, err := tokener.GetTokenFromRequest(r.Context(), r)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			caller, err = resolver.GetByAccessToken(r.Context(), token)
			if err != nil {
				writeInternalError(w, err)
				return
			}
			if caller == nil {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
		}

		result, err := svc.Link(r.Context(), caller, req.SteamID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSteamIDTaken):
				writeError(w, http.StatusConflict, "Steam ID already linked to another account")
			case errors.Is(err, services.ErrInvalidSteamID):
				writeError(w, http.StatusUnprocessableEntity, "Invalid steam ID")
			case errors.Is(err, services.ErrSteamUnavailable):
				writeError(w, http.StatusBadGateway, "Steam platform unavailable")
			default:
				writeInternalError(w, err)
			}
			return
		}

		status := http.StatusOK
		if result.Created {
			status = http.StatusCreated
		}
		writeJSON(w, status, SteamAuthResponse{
			Token: result.Token,
			User:  newUserResponse(result.User, ""),
		})
	}
}
