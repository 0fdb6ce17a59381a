package service

import (
	"context"
	"log/slog"

	"cinehub/internal/apperrors"
	"cinehub/internal/microservices/http-api/models"
	"cinehub/internal/microservices/http-api/repository"
)

type WatchlistService interface {
	Add(ctx context.Context, userID string, contentID int64) (created bool, err error)
	Remove(ctx context.Context, userID string, contentID int64) error
	List(ctx context.Context, userID string) ([]models.WatchlistEntry, error)
}

type watchlistService struct {
	watchlistRepo repository.WatchlistRepository
	contentRepo   repository.ContentRepository
	logger        *slog.Logger
}

func NewWatchlistService(watchlistRepo repository.WatchlistRepository, contentRepo repository.ContentRepository, logger *slog.Logger) WatchlistService {
	return &watchlistService{watchlistRepo: watchlistRepo, contentRepo: contentRepo, logger: logger}
}

// Add is get-or-create: adding an item twice leaves one entry.
func (s *watchlistService) Add(ctx context.Context, userID string, contentID int64) (bool, error) {
	if _, err := s.contentRepo.GetByID(ctx, contentID); err != nil {
		return false, notFoundOr(err, "content", contentID)
	}

	created, err := s.watchlistRepo.Add(ctx, userID, contentID)
	if err != nil {
		return false, apperrors.Internal(err)
	}
	if created {
		s.logger.InfoContext(ctx, "added to watchlist", slog.String("user_id", userID), slog.Int64("content_id", contentID))
	}
	return created, nil
}

// Remove is idempotent; removing an absent item succeeds.
func (s *watchlistService) Remove(ctx context.Context, userID string, contentID int64) error {
	removed, err := s.watchlistRepo.Remove(ctx, userID, contentID)
	if err != nil {
		return apperrors.Internal(err)
	}
	if removed {
		s.logger.InfoContext(ctx, "removed from watchlist", slog.String("user_id", userID), slog.Int64("content_id", contentID))
	}
	return nil
}

func (s *watchlistService) List(ctx context.Context, userID string) ([]models.WatchlistEntry, error) {
	entries, err := s.watchlistRepo.List(ctx, userID, 0)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return entries, nil
}
