package repository

import (
	"context"
	"fmt"

	"cinehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository interface {
	Upsert(ctx context.Context, rating *models.Rating) error
	GetByUserAndContent(ctx context.Context, userID string, contentID int64) (*models.Rating, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]models.Rating, error)
	CountByContent(ctx context.Context, contentID int64) (int64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert writes the rating in a single INSERT ... ON CONFLICT statement keyed
// on (user_id, content_id). Concurrent writers never produce a duplicate row;
// the last committed value wins and rating_date keeps its original value.
func (r *ratingRepository) Upsert(ctx context.Context, rating *models.Rating) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "content_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating_value", "updated_at"}),
		}).
		Create(rating).Error
	if err != nil {
		return fmt.Errorf("upsert rating: %w", err)
	}
	return nil
}

// GetByUserAndContent retrieves a user's rating for a specific content
func (r *ratingRepository) GetByUserAndContent(ctx context.Context, userID string, contentID int64) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND content_id = ?", userID, contentID).
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// ListByUser returns the user's ratings newest first with their content
// preloaded. limit <= 0 returns every rating.
func (r *ratingRepository) ListByUser(ctx context.Context, userID string, limit int) ([]models.Rating, error) {
	var ratings []models.Rating
	query := r.db.WithContext(ctx).
		Preload("Content").
		Where("user_id = ?", userID).
		Order("rating_date DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&ratings).Error; err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	return ratings, nil
}

// CountByContent counts the total number of ratings for a content
func (r *ratingRepository) CountByContent(ctx context.Context, contentID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Rating{}).Where("content_id = ?", contentID).Count(&count).Error
	return count, err
}
