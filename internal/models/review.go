package models

import (
	"time"

	"github.com/google/uuid"
)

// BookmakerReviewDB represents a user review of a bookmaker.
// The bookmaker itself lives in the CMS; only its identifier is stored here.
// One review per user per bookmaker.
type BookmakerReviewDB struct {
	ReviewID    uuid.UUID `json:"id" db:"review_id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	BookmakerID string    `json:"bookmaker_id" db:"bookmaker_id"`
	Rating      int       `json:"rating" db:"rating"`
	Text        string    `json:"text" db:"text"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ReviewAggregate holds the locally computed rating summary for a bookmaker.
type ReviewAggregate struct {
	BookmakerID string  `json:"bookmaker_id" db:"bookmaker_id"`
	Count       int     `json:"count" db:"count"`
	AvgRating   float64 `json:"avg_rating" db:"avg_rating"`
}
