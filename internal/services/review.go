package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/ggtips/gg-tips-backend/internal/logger"
	"github.com/ggtips/gg-tips-backend/internal/models"
	"github.com/ggtips/gg-tips-backend/internal/repositories"
)

// Error variables
var (
	ErrReviewExists = errors.New("user already reviewed this bookmaker")
)

// ReviewReader defines read operations for bookmaker reviews.
type ReviewReader interface {
	ListByBookmaker(ctx context.Context, bookmakerID string) ([]models.BookmakerReviewDB, error)
	GetByUserAndBookmaker(ctx context.Context, userID uuid.UUID, bookmakerID string) (*models.BookmakerReviewDB, error)
	AggregateByBookmaker(ctx context.Context, bookmakerID string) (*models.ReviewAggregate, error)
}

// ReviewWriter defines write operations for bookmaker reviews.
type ReviewWriter interface {
	Create(ctx context.Context, review *models.BookmakerReviewDB) error
}

// PredictionReader defines read operations for predictions.
type PredictionReader interface {
	ListByMatch(ctx context.Context, matchID string) ([]models.PredictionDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.PredictionDB, error)
}

// PredictionWriter defines write operations for predictions.
type PredictionWriter interface {
	Create(ctx context.Context, p *models.PredictionDB) error
}

// ReviewService handles bookmaker reviews and match predictions.
type ReviewService struct {
	reviewReader ReviewReader
	reviewWriter ReviewWriter
	predReader   PredictionReader
	predWriter   PredictionWriter
	events       KafkaWriter
	reviewTopic  string
}

// NewReviewService creates a new ReviewService instance. events may be nil.
func NewReviewService(
	reviewReader ReviewReader,
	reviewWriter ReviewWriter,
	predReader PredictionReader,
	predWriter PredictionWriter,
	events KafkaWriter,
	reviewTopic string,
) *ReviewService {
	return &ReviewService{
		reviewReader: reviewReader,
		reviewWriter: reviewWriter,
		predReader:   predReader,
		predWriter:   predWriter,
		events:       events,
		reviewTopic:  reviewTopic,
	}
}

// CreateReview stores a user's review of a bookmaker. One review per user
// per bookmaker: the pre-check is a fast path, the unique index decides.
func (svc *ReviewService) CreateReview(ctx context.Context, userID uuid.UUID, bookmakerID string, rating int, text string) (*models.BookmakerReviewDB, error) {
	existing, err := svc.reviewReader.GetByUserAndBookmaker(ctx, userID, bookmakerID)
	if err != nil {
		logger.Log.Errorw("failed to check existing review", "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrReviewExists
	}

	review := &models.BookmakerReviewDB{
		ReviewID:    uuid.New(),
		UserID:      userID,
		BookmakerID: bookmakerID,
		Rating:      rating,
		Text:        text,
	}

	if err := svc.reviewWriter.Create(ctx, review); err != nil {
		var uv *repositories.UniqueViolationError
		if errors.As(err, &uv) && uv.Constraint == repositories.ConstraintReviewBookmaker {
			return nil, ErrReviewExists
		}
		logger.Log.Errorw("failed to save review", "err", err)
		return nil, err
	}

	svc.publishReviewCreated(ctx, review)

	return review, nil
}

// ListReviews returns reviews for a bookmaker with the rating aggregate.
func (svc *ReviewService) ListReviews(ctx context.Context, bookmakerID string) ([]models.BookmakerReviewDB, *models.ReviewAggregate, error) {
	reviews, err := svc.reviewReader.ListByBookmaker(ctx, bookmakerID)
	if err != nil {
		return nil, nil, err
	}
	agg, err := svc.reviewReader.AggregateByBookmaker(ctx, bookmakerID)
	if err != nil {
		return nil, nil, err
	}
	return reviews, agg, nil
}

// Aggregate returns the rating summary for a bookmaker.
func (svc *ReviewService) Aggregate(ctx context.Context, bookmakerID string) (*models.ReviewAggregate, error) {
	return svc.reviewReader.AggregateByBookmaker(ctx, bookmakerID)
}

// CreatePrediction stores a user's match prediction.
func (svc *ReviewService) CreatePrediction(ctx context.Context, userID uuid.UUID, matchID, pick, text string) (*models.PredictionDB, error) {
	prediction := &models.PredictionDB{
		PredictionID: uuid.New(),
		UserID:       userID,
		MatchID:      matchID,
		Pick:         pick,
		Text:         text,
	}

	if err := svc.predWriter.Create(ctx, prediction); err != nil {
		logger.Log.Errorw("failed to save prediction", "err", err)
		return nil, err
	}

	return prediction, nil
}

// ListPredictions returns predictions for a match.
func (svc *ReviewService) ListPredictions(ctx context.Context, matchID string) ([]models.PredictionDB, error) {
	return svc.predReader.ListByMatch(ctx, matchID)
}

func (svc *ReviewService) publishReviewCreated(ctx context.Context, review *models.BookmakerReviewDB) {
	if svc.events == nil {
		return
	}

	payload, _ := json.Marshal(map[string]any{
		"review_id":    review.ReviewID.String(),
		"user_id":      review.UserID.String(),
		"bookmaker_id": review.BookmakerID,
		"rating":       review.Rating,
	})
	msg := kafka.Message{
		Topic: svc.reviewTopic,
		Key:   []byte(review.BookmakerID),
		Value: payload,
	}

	if err := svc.events.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish review.created", "err", err)
	}
}
