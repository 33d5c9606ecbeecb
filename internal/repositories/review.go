package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ggtips/gg-tips-backend/internal/logger"
	"github.com/ggtips/gg-tips-backend/internal/middlewares"
	"github.com/ggtips/gg-tips-backend/internal/models"
)

type ReviewReadRepository struct {
	db *sqlx.DB
}

func NewReviewReadRepository(db *sqlx.DB) *ReviewReadRepository {
	return &ReviewReadRepository{db: db}
}

// ListByBookmaker returns reviews for a bookmaker, newest first.
func (r *ReviewReadRepository) ListByBookmaker(ctx context.Context, bookmakerID string) ([]models.BookmakerReviewDB, error) {
	query := `
		SELECT review_id, user_id, bookmaker_id, rating, text, created_at, updated_at
		FROM bookmaker_reviews
		WHERE bookmaker_id = $1
		ORDER BY created_at DESC
	`

	reviews := []models.BookmakerReviewDB{}
	err := r.db.SelectContext(ctx, &reviews, query, bookmakerID)

	logger.Log.Infow("review query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{bookmakerID},
		"count", len(reviews),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// GetByUserAndBookmaker returns the user's review of a bookmaker, or nil.
func (r *ReviewReadRepository) GetByUserAndBookmaker(ctx context.Context, userID uuid.UUID, bookmakerID string) (*models.BookmakerReviewDB, error) {
	query := `
		SELECT review_id, user_id, bookmaker_id, rating, text, created_at, updated_at
		FROM bookmaker_reviews
		WHERE user_id = $1 AND bookmaker_id = $2
		LIMIT 1
	`

	var review models.BookmakerReviewDB
	var err error
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		err = tx.GetContext(ctx, &review, query, userID, bookmakerID)
	} else {
		err = r.db.GetContext(ctx, &review, query, userID, bookmakerID)
	}

	logger.Log.Infow("review query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, bookmakerID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// AggregateByBookmaker computes the local rating summary for a bookmaker.
func (r *ReviewReadRepository) AggregateByBookmaker(ctx context.Context, bookmakerID string) (*models.ReviewAggregate, error) {
	query := `
		SELECT bookmaker_id, COUNT(*) AS count, COALESCE(AVG(rating), 0) AS avg_rating
		FROM bookmaker_reviews
		WHERE bookmaker_id = $1
		GROUP BY bookmaker_id
	`

	var agg models.ReviewAggregate
	err := r.db.GetContext(ctx, &agg, query, bookmakerID)
	if errors.Is(err, sql.ErrNoRows) {
		return &models.ReviewAggregate{BookmakerID: bookmakerID}, nil
	}
	if err != nil {
		logger.Log.Errorw("review aggregate query failed", "bookmaker_id", bookmakerID, "error", err)
		return nil, err
	}
	return &agg, nil
}

type ReviewWriteRepository struct {
	db *sqlx.DB
}

func NewReviewWriteRepository(db *sqlx.DB) *ReviewWriteRepository {
	return &ReviewWriteRepository{db: db}
}

// Create inserts a review. The unique index on (user_id, bookmaker_id)
// enforces one review per user per bookmaker.
func (r *ReviewWriteRepository) Create(ctx context.Context, review *models.BookmakerReviewDB) error {
	query := `
		INSERT INTO bookmaker_reviews (review_id, user_id, bookmaker_id, rating, text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`
	args := []any{review.ReviewID, review.UserID, review.BookmakerID, review.Rating, review.Text}

	var err error
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		_, err = tx.ExecContext(ctx, query, args...)
	} else {
		_, err = r.db.ExecContext(ctx, query, args...)
	}

	logger.Log.Infow("review exec",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return asUniqueViolation(err)
}
