package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"cinehub/internal/apperrors"
	"cinehub/internal/microservices/http-api/dto"
	"cinehub/internal/microservices/http-api/models"
	"cinehub/internal/microservices/http-api/repository"

	"gorm.io/gorm"
)

const (
	dashboardWatchlist   = 6
	dashboardRatings     = 5
	dashboardReviews     = 5
	creatorRecentContent = 10
	creatorRecentWindow  = 7 * 24 * time.Hour
)

type DashboardService interface {
	UserDashboard(ctx context.Context, userID string) (*dto.UserDashboard, error)
	CreatorDashboard(ctx context.Context, actor Actor) (*dto.CreatorDashboard, error)
}

type dashboardService struct {
	watchlistRepo   repository.WatchlistRepository
	ratingRepo      repository.RatingRepository
	reviewRepo      repository.ReviewRepository
	contentRepo     repository.ContentRepository
	profileRepo     repository.ProfileRepository
	recommendations RecommendationService
	roles           RoleResolver
	logger          *slog.Logger
	now             func() time.Time
}

func NewDashboardService(
	watchlistRepo repository.WatchlistRepository,
	ratingRepo repository.RatingRepository,
	reviewRepo repository.ReviewRepository,
	contentRepo repository.ContentRepository,
	profileRepo repository.ProfileRepository,
	recommendations RecommendationService,
	roles RoleResolver,
	logger *slog.Logger,
) DashboardService {
	return &dashboardService{
		watchlistRepo:   watchlistRepo,
		ratingRepo:      ratingRepo,
		reviewRepo:      reviewRepo,
		contentRepo:     contentRepo,
		profileRepo:     profileRepo,
		recommendations: recommendations,
		roles:           roles,
		logger:          logger,
		now:             time.Now,
	}
}

func (s *dashboardService) UserDashboard(ctx context.Context, userID string) (*dto.UserDashboard, error) {
	watchlist, err := s.watchlistRepo.List(ctx, userID, dashboardWatchlist)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	ratings, err := s.ratingRepo.ListByUser(ctx, userID, dashboardRatings)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	reviews, err := s.reviewRepo.ListByUser(ctx, userID, dashboardReviews)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	recs, err := s.recommendations.Recommend(ctx, userID)
	if err != nil {
		s.logger.WarnContext(ctx, "dashboard recommendations unavailable",
			slog.String("user_id", userID), slog.String("error", err.Error()))
		recs = nil
	}

	caps := s.roles.Capabilities(ctx, userID)
	return &dto.UserDashboard{
		Watchlist:       dto.FromWatchlist(watchlist),
		RecentRatings:   dto.FromRatings(ratings),
		RecentReviews:   dto.FromReviews(reviews),
		Recommendations: dto.FromContents(recs),
		IsReviewer:      caps.Reviewer.Active(),
		IsCreator:       caps.Creator.Active(),
	}, nil
}

// CreatorDashboard is open to staff and to holders of an active creator
// capability. Staff without a creator record get a nil Creator.
func (s *dashboardService) CreatorDashboard(ctx context.Context, actor Actor) (*dto.CreatorDashboard, error) {
	if !actor.IsStaff && !s.roles.HasCreatorCapability(ctx, actor.UserID) {
		return nil, apperrors.Forbidden("creator access required")
	}

	var creator *models.CreatorCapability
	profile, err := s.profileRepo.GetByUserID(ctx, actor.UserID)
	switch {
	case err == nil:
		creator = profile.Creator
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apperrors.Internal(err)
	}

	recent, err := s.contentRepo.Recent(ctx, creatorRecentContent)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	total, err := s.contentRepo.Count(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	lastWeek, err := s.contentRepo.CountSince(ctx, s.now().Add(-creatorRecentWindow))
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return &dto.CreatorDashboard{
		Creator:       creator,
		RecentContent: dto.FromContents(recent),
		TotalContent:  total,
		AddedLastWeek: lastWeek,
	}, nil
}
