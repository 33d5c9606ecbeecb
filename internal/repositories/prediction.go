package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ggtips/gg-tips-backend/internal/logger"
	"github.com/ggtips/gg-tips-backend/internal/middlewares"
	"github.com/ggtips/gg-tips-backend/internal/models"
)

type PredictionReadRepository struct {
	db *sqlx.DB
}

func NewPredictionReadRepository(db *sqlx.DB) *PredictionReadRepository {
	return &PredictionReadRepository{db: db}
}

// ListByMatch returns predictions for a match, newest first.
func (r *PredictionReadRepository) ListByMatch(ctx context.Context, matchID string) ([]models.PredictionDB, error) {
	query := `
		SELECT prediction_id, user_id, match_id, pick, text, created_at, updated_at
		FROM predictions
		WHERE match_id = $1
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, matchID)
}

// ListByUser returns a user's predictions, newest first.
func (r *PredictionReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.PredictionDB, error) {
	query := `
		SELECT prediction_id, user_id, match_id, pick, text, created_at, updated_at
		FROM predictions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, userID)
}

func (r *PredictionReadRepository) list(ctx context.Context, query string, arg any) ([]models.PredictionDB, error) {
	predictions := []models.PredictionDB{}
	err := r.db.SelectContext(ctx, &predictions, query, arg)

	logger.Log.Infow("prediction query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{arg},
		"count", len(predictions),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return predictions, nil
}

type PredictionWriteRepository struct {
	db *sqlx.DB
}

func NewPredictionWriteRepository(db *sqlx.DB) *PredictionWriteRepository {
	return &PredictionWriteRepository{db: db}
}

// Create inserts a prediction.
func (r *PredictionWriteRepository) Create(ctx context.Context, p *models.PredictionDB) error {
	query := `
		INSERT INTO predictions (prediction_id, user_id, match_id, pick, text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`
	args := []any{p.PredictionID, p.UserID, p.MatchID, p.Pick, p.Text}

	var err error
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		_, err = tx.ExecContext(ctx, query, args...)
	} else {
		_, err = r.db.ExecContext(ctx, query, args...)
	}

	logger.Log.Infow("prediction exec",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return asUniqueViolation(err)
}
