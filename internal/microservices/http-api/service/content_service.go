package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cinehub/internal/apperrors"
	"cinehub/internal/microservices/http-api/dto"
	"cinehub/internal/microservices/http-api/models"
	"cinehub/internal/microservices/http-api/repository"

	"gorm.io/gorm"
)

const (
	similarLimit   = 4
	trendingLimit  = 8
	recentLimit    = 6
	topGenresLimit = 5
)

type ContentService interface {
	Create(ctx context.Context, actor Actor, req dto.ContentRequest) (*models.Content, error)
	Update(ctx context.Context, actor Actor, id int64, req dto.ContentRequest) (*models.Content, error)
	Delete(ctx context.Context, actor Actor, id int64) error
	Get(ctx context.Context, viewer Actor, id int64) (*dto.ContentDetail, error)
	List(ctx context.Context, filter repository.ContentFilter) (*dto.PaginatedContentResponse, error)
	Home(ctx context.Context) (*dto.HomeFeed, error)
	Streaming(ctx context.Context, platform string, freeOnly bool) (*dto.StreamingResponse, error)
}

type contentService struct {
	contentRepo   repository.ContentRepository
	ratingRepo    repository.RatingRepository
	reviewRepo    repository.ReviewRepository
	watchlistRepo repository.WatchlistRepository
	profileRepo   repository.ProfileRepository
	roles         RoleResolver
	cache         *repository.RecommendationCache
	logger        *slog.Logger
}

func NewContentService(
	contentRepo repository.ContentRepository,
	ratingRepo repository.RatingRepository,
	reviewRepo repository.ReviewRepository,
	watchlistRepo repository.WatchlistRepository,
	profileRepo repository.ProfileRepository,
	roles RoleResolver,
	cache *repository.RecommendationCache,
	logger *slog.Logger,
) ContentService {
	return &contentService{
		contentRepo:   contentRepo,
		ratingRepo:    ratingRepo,
		reviewRepo:    reviewRepo,
		watchlistRepo: watchlistRepo,
		profileRepo:   profileRepo,
		roles:         roles,
		cache:         cache,
		logger:        logger,
	}
}

// canManage: staff always, otherwise an active creator capability.
func (s *contentService) canManage(ctx context.Context, actor Actor) bool {
	if actor.Anonymous() {
		return false
	}
	return actor.IsStaff || s.roles.HasCreatorCapability(ctx, actor.UserID)
}

// validateContent checks enum membership, the release date and the
// per-type duration rule. It returns the parsed release date.
func validateContent(req *dto.ContentRequest) (time.Time, error) {
	req.Normalize()

	if req.Title == "" {
		return time.Time{}, apperrors.Validation("title", "title is required")
	}
	if req.Description == "" {
		return time.Time{}, apperrors.Validation("description", "description is required")
	}
	if !models.Genre(req.Genre).Valid() {
		return time.Time{}, apperrors.Validation("genre", fmt.Sprintf("unknown genre %q", req.Genre))
	}
	if !models.Language(req.Language).Valid() {
		return time.Time{}, apperrors.Validation("language", fmt.Sprintf("unknown language %q", req.Language))
	}
	ct := models.ContentType(req.ContentType)
	if !ct.Valid() {
		return time.Time{}, apperrors.Validation("content_type", fmt.Sprintf("unknown content type %q", req.ContentType))
	}

	release, err := time.Parse(dto.DateLayout, req.ReleaseDate)
	if err != nil {
		return time.Time{}, apperrors.Validation("release_date", "release_date must be YYYY-MM-DD")
	}

	hasDuration := req.Duration != nil && *req.Duration != ""
	switch ct {
	case models.ContentTypeMovie:
		if !hasDuration {
			return time.Time{}, apperrors.Validation("duration", "duration is required for movies (e.g. 2h 30m)")
		}
	case models.ContentTypeWebSeries:
		if !hasDuration {
			return time.Time{}, apperrors.Validation("duration", "season info is required for web series (e.g. Season 1)")
		}
	}

	if req.OTT != nil {
		req.OTT.PlatformName = strings.TrimSpace(req.OTT.PlatformName)
		if !models.OTTPlatform(req.OTT.PlatformName).Valid() {
			return time.Time{}, apperrors.Validation("ott.platform_name", fmt.Sprintf("unknown platform %q", req.OTT.PlatformName))
		}
	}
	return release, nil
}

func (s *contentService) Create(ctx context.Context, actor Actor, req dto.ContentRequest) (*models.Content, error) {
	if !s.canManage(ctx, actor) {
		return nil, apperrors.Forbidden("only staff or active creators can add content")
	}
	release, err := validateContent(&req)
	if err != nil {
		return nil, err
	}

	content := &models.Content{}
	req.ApplyTo(content, release)
	if ott := req.OTT.ToModel(); ott != nil {
		content.OTTPlatforms = []models.ContentOTT{*ott}
	}

	if err := s.contentRepo.Create(ctx, content); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.Conflict("content already exists")
		}
		return nil, apperrors.Internal(err)
	}

	if !actor.IsStaff {
		if err := s.profileRepo.IncrementContentsAdded(ctx, actor.UserID); err != nil {
			s.logger.WarnContext(ctx, "failed to bump creator counter",
				slog.String("user_id", actor.UserID), slog.String("error", err.Error()))
		}
	}
	s.invalidateRecommendations(ctx)

	s.logger.InfoContext(ctx, "content created",
		slog.Int64("content_id", content.ID),
		slog.String("title", content.Title),
		slog.String("user_id", actor.UserID))
	return content, nil
}

func (s *contentService) Update(ctx context.Context, actor Actor, id int64, req dto.ContentRequest) (*models.Content, error) {
	if !s.canManage(ctx, actor) {
		return nil, apperrors.Forbidden("only staff or active creators can edit content")
	}

	content, err := s.contentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "content", id)
	}

	release, err := validateContent(&req)
	if err != nil {
		return nil, err
	}
	req.ApplyTo(content, release)

	if err := s.contentRepo.Update(ctx, content, req.OTT.ToModel()); err != nil {
		return nil, apperrors.Internal(err)
	}
	s.invalidateRecommendations(ctx)

	s.logger.InfoContext(ctx, "content updated", slog.Int64("content_id", id), slog.String("user_id", actor.UserID))
	return content, nil
}

func (s *contentService) Delete(ctx context.Context, actor Actor, id int64) error {
	if !s.canManage(ctx, actor) {
		return apperrors.Forbidden("only staff or active creators can delete content")
	}

	if err := s.contentRepo.Delete(ctx, id); err != nil {
		return notFoundOr(err, "content", id)
	}
	s.invalidateRecommendations(ctx)

	s.logger.InfoContext(ctx, "content deleted", slog.Int64("content_id", id), slog.String("user_id", actor.UserID))
	return nil
}

// Get builds the detail page. The viewer's own rating and watchlist flag are
// only filled for authenticated viewers.
func (s *contentService) Get(ctx context.Context, viewer Actor, id int64) (*dto.ContentDetail, error) {
	content, err := s.contentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "content", id)
	}

	avg, err := s.contentRepo.AverageRating(ctx, id)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	count, err := s.ratingRepo.CountByContent(ctx, id)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	similar, err := s.contentRepo.Similar(ctx, content, similarLimit)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	reviews, err := s.reviewRepo.ListApprovedByContent(ctx, id)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	detail := &dto.ContentDetail{
		Content:       *content,
		ReleaseDate:   content.ReleaseDate.Format(dto.DateLayout),
		AverageRating: avg,
		RatingCount:   count,
		Similar:       dto.FromRankedContents(similar),
		Reviews:       dto.FromReviews(reviews),
	}

	if !viewer.Anonymous() {
		rating, err := s.ratingRepo.GetByUserAndContent(ctx, viewer.UserID, id)
		switch {
		case err == nil:
			detail.UserRating = &rating.RatingValue
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, apperrors.Internal(err)
		}

		inList, err := s.watchlistRepo.Exists(ctx, viewer.UserID, id)
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		detail.InWatchlist = inList
	}

	return detail, nil
}

func (s *contentService) List(ctx context.Context, f repository.ContentFilter) (*dto.PaginatedContentResponse, error) {
	if f.Genre != "" && !f.Genre.Valid() {
		return nil, apperrors.Validation("genre", fmt.Sprintf("unknown genre %q", f.Genre))
	}
	if f.Language != "" && !f.Language.Valid() {
		return nil, apperrors.Validation("language", fmt.Sprintf("unknown language %q", f.Language))
	}
	if f.ContentType != "" && !f.ContentType.Valid() {
		return nil, apperrors.Validation("content_type", fmt.Sprintf("unknown content type %q", f.ContentType))
	}
	if !repository.ValidSort(f.Sort) {
		return nil, apperrors.Validation("sort", fmt.Sprintf("unsupported sort %q", f.Sort))
	}
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 || f.PageSize > 100 {
		f.PageSize = 20
	}

	list, total, err := s.contentRepo.List(ctx, f)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return dto.NewPaginatedContentResponse(dto.FromRankedContents(list), int(total), f.Page, f.PageSize), nil
}

func (s *contentService) Home(ctx context.Context) (*dto.HomeFeed, error) {
	trending, err := s.contentRepo.Trending(ctx, trendingLimit)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	recent, err := s.contentRepo.Recent(ctx, recentLimit)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	genres, err := s.contentRepo.GenreCounts(ctx, topGenresLimit)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	total, err := s.contentRepo.Count(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return &dto.HomeFeed{
		Trending:     dto.FromRankedContents(trending),
		Recent:       dto.FromContents(recent),
		TopGenres:    genres,
		TotalContent: total,
	}, nil
}

// Streaming lists content with OTT availability. An empty platform means all.
func (s *contentService) Streaming(ctx context.Context, platform string, freeOnly bool) (*dto.StreamingResponse, error) {
	p := models.OTTPlatform(platform)
	if p != "" && !p.Valid() {
		return nil, apperrors.Validation("platform", fmt.Sprintf("unknown platform %q", platform))
	}

	items, err := s.contentRepo.ListStreaming(ctx, p, freeOnly)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &dto.StreamingResponse{
		Platforms: models.AllOTTPlatforms,
		Items:     items,
		Total:     len(items),
	}, nil
}

func (s *contentService) invalidateRecommendations(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate recommendation cache", slog.String("error", err.Error()))
	}
}
