package repository

import (
	"context"
	"fmt"

	"cinehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WatchlistRepository interface {
	Add(ctx context.Context, userID string, contentID int64) (created bool, err error)
	Remove(ctx context.Context, userID string, contentID int64) (removed bool, err error)
	Exists(ctx context.Context, userID string, contentID int64) (bool, error)
	List(ctx context.Context, userID string, limit int) ([]models.WatchlistEntry, error)
}

type watchlistRepository struct {
	db *gorm.DB
}

func NewWatchlistRepository(db *gorm.DB) WatchlistRepository {
	return &watchlistRepository{db: db}
}

// Add inserts the membership unless it already exists. created is false for
// an existing entry, so repeated adds are idempotent.
func (r *watchlistRepository) Add(ctx context.Context, userID string, contentID int64) (bool, error) {
	entry := &models.WatchlistEntry{UserID: userID, ContentID: contentID}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(entry)
	if result.Error != nil {
		return false, fmt.Errorf("add to watchlist: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *watchlistRepository) Remove(ctx context.Context, userID string, contentID int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND content_id = ?", userID, contentID).
		Delete(&models.WatchlistEntry{})
	if result.Error != nil {
		return false, fmt.Errorf("remove from watchlist: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *watchlistRepository) Exists(ctx context.Context, userID string, contentID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.WatchlistEntry{}).
		Where("user_id = ? AND content_id = ?", userID, contentID).
		Count(&count).Error
	return count > 0, err
}

// List returns the user's watchlist newest first. limit <= 0 means all.
func (r *watchlistRepository) List(ctx context.Context, userID string, limit int) ([]models.WatchlistEntry, error) {
	var entries []models.WatchlistEntry
	query := r.db.WithContext(ctx).
		Preload("Content").
		Where("user_id = ?", userID).
		Order("added_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list watchlist: %w", err)
	}
	return entries, nil
}
