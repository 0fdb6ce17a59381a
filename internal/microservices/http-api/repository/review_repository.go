package repository

import (
	"context"
	"fmt"

	"cinehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

// ModerationFilter selects which reviews the moderation queue shows.
type ModerationFilter string

const (
	FilterPending  ModerationFilter = "pending"
	FilterApproved ModerationFilter = "approved"
	FilterAll      ModerationFilter = "all"
)

// ReviewCounts summarises the moderation queue.
type ReviewCounts struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
}

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id int64) (*models.Review, error)
	UpdateComment(ctx context.Context, review *models.Review) error
	Approve(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	ListApprovedByContent(ctx context.Context, contentID int64) ([]models.Review, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]models.Review, error)
	ListForModeration(ctx context.Context, filter ModerationFilter, limit int) ([]models.Review, error)
	Counts(ctx context.Context) (ReviewCounts, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create inserts a new review. Reviews carry no uniqueness constraint, so
// concurrent creates by the same user all persist.
func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// UpdateComment persists comment and is_approved. is_verified is never written after creation.
func (r *reviewRepository) UpdateComment(ctx context.Context, review *models.Review) error {
	result := r.db.WithContext(ctx).
		Model(review).
		Select("comment", "is_approved", "updated_at").
		Updates(map[string]any{
			"comment":     review.Comment,
			"is_approved": review.IsApproved,
		})
	if result.Error != nil {
		return fmt.Errorf("update review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *reviewRepository) Approve(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Model(&models.Review{}).Where("id = ?", id).Update("is_approved", true)
	if result.Error != nil {
		return fmt.Errorf("approve review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete hard-deletes the review row.
func (r *reviewRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Review{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListApprovedByContent returns the content's visible reviews newest first.
func (r *reviewRepository) ListApprovedByContent(ctx context.Context, contentID int64) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("content_id = ? AND is_approved = ?", contentID, true).
		Order("review_date DESC, id DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("list content reviews: %w", err)
	}
	return reviews, nil
}

// ListByUser returns the user's own reviews, approved or not. limit <= 0 means all.
func (r *reviewRepository) ListByUser(ctx context.Context, userID string, limit int) ([]models.Review, error) {
	var reviews []models.Review
	query := r.db.WithContext(ctx).
		Preload("Content").
		Where("user_id = ?", userID).
		Order("review_date DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("list user reviews: %w", err)
	}
	return reviews, nil
}

func (r *reviewRepository) ListForModeration(ctx context.Context, filter ModerationFilter, limit int) ([]models.Review, error) {
	var reviews []models.Review
	query := r.db.WithContext(ctx).
		Preload("User").
		Preload("Content").
		Order("review_date DESC, id DESC")

	switch filter {
	case FilterPending:
		query = query.Where("is_approved = ?", false)
	case FilterApproved:
		query = query.Where("is_approved = ?", true)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("list moderation queue: %w", err)
	}
	return reviews, nil
}

func (r *reviewRepository) Counts(ctx context.Context) (ReviewCounts, error) {
	var counts ReviewCounts
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("COUNT(*) AS total, " +
			"COUNT(*) FILTER (WHERE is_approved = false) AS pending, " +
			"COUNT(*) FILTER (WHERE is_approved = true) AS approved").
		Scan(&counts).Error
	if err != nil {
		return ReviewCounts{}, fmt.Errorf("count reviews: %w", err)
	}
	return counts, nil
}
