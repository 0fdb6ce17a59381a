package service

import (
	"context"
	"log/slog"

	"cinehub/internal/apperrors"
	"cinehub/internal/microservices/http-api/models"
	"cinehub/internal/microservices/http-api/repository"
)

const (
	minRating = 1
	maxRating = 5
)

type RatingService interface {
	Rate(ctx context.Context, userID string, contentID int64, value int) (*models.Rating, error)
	GetUserRating(ctx context.Context, userID string, contentID int64) (*models.Rating, error)
}

type ratingService struct {
	ratingRepo  repository.RatingRepository
	contentRepo repository.ContentRepository
	cache       *repository.RecommendationCache
	logger      *slog.Logger
}

func NewRatingService(
	ratingRepo repository.RatingRepository,
	contentRepo repository.ContentRepository,
	cache *repository.RecommendationCache,
	logger *slog.Logger,
) RatingService {
	return &ratingService{
		ratingRepo:  ratingRepo,
		contentRepo: contentRepo,
		cache:       cache,
		logger:      logger,
	}
}

// Rate creates the user's rating or overwrites its value. There is at most
// one rating per (user, content) regardless of how many times this runs.
func (s *ratingService) Rate(ctx context.Context, userID string, contentID int64, value int) (*models.Rating, error) {
	if value < minRating || value > maxRating {
		return nil, apperrors.Validation("rating_value", "rating must be between 1 and 5")
	}

	if _, err := s.contentRepo.GetByID(ctx, contentID); err != nil {
		return nil, notFoundOr(err, "content", contentID)
	}

	if err := s.ratingRepo.Upsert(ctx, &models.Rating{
		UserID:      userID,
		ContentID:   contentID,
		RatingValue: value,
	}); err != nil {
		return nil, apperrors.Internal(err)
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate recommendation cache", slog.String("error", err.Error()))
	}

	// reload so rating_date reflects the first rating, not this write
	rating, err := s.ratingRepo.GetByUserAndContent(ctx, userID, contentID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	s.logger.InfoContext(ctx, "rating upserted",
		slog.String("user_id", userID),
		slog.Int64("content_id", contentID),
		slog.Int("rating_value", value))
	return rating, nil
}

// GetUserRating retrieves a user's rating for a specific content
func (s *ratingService) GetUserRating(ctx context.Context, userID string, contentID int64) (*models.Rating, error) {
	rating, err := s.ratingRepo.GetByUserAndContent(ctx, userID, contentID)
	if err != nil {
		return nil, notFoundOr(err, "rating for content", contentID)
	}
	return rating, nil
}
