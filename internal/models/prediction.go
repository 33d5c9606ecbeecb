package models

import (
	"time"

	"github.com/google/uuid"
)

// PredictionDB represents a user prediction for a match.
// Match data lives in the matches microservice; only its identifier is stored.
type PredictionDB struct {
	PredictionID uuid.UUID `json:"id" db:"prediction_id"`
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	MatchID      string    `json:"match_id" db:"match_id"`
	Pick         string    `json:"pick" db:"pick"`
	Text         string    `json:"text" db:"text"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
