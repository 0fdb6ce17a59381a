package service

import (
	"context"
	"time"

	"cinehub/internal/microservices/http-api/models"
	"cinehub/internal/microservices/http-api/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, search string, page, pageSize int) ([]models.User, int64, error) {
	args := m.Called(ctx, search, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) SetActive(ctx context.Context, id string, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func (m *MockUserRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockRefreshTokenRepository mocks the RefreshTokenRepository interface
type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) Create(ctx context.Context, token *models.RefreshToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) FindByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepository) Revoke(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) RevokeAllForUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRefreshTokenRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockProfileRepository mocks the ProfileRepository interface
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID string) (*models.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockProfileRepository) EnsureProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockProfileRepository) Capabilities(ctx context.Context, userID string) (models.Capabilities, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(models.Capabilities), args.Error(1)
}

func (m *MockProfileRepository) CapabilitiesFor(ctx context.Context, userIDs []string) (map[string]models.Capabilities, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]models.Capabilities), args.Error(1)
}

func (m *MockProfileRepository) GrantReviewer(ctx context.Context, userID string, expertise *string) (*models.ReviewerCapability, error) {
	args := m.Called(ctx, userID, expertise)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReviewerCapability), args.Error(1)
}

func (m *MockProfileRepository) GrantCreator(ctx context.Context, userID string, expertise *string) (*models.CreatorCapability, error) {
	args := m.Called(ctx, userID, expertise)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CreatorCapability), args.Error(1)
}

func (m *MockProfileRepository) IncrementContentsAdded(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockProfileRepository) CountReviewers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProfileRepository) CountCreators(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockContentRepository mocks the ContentRepository interface
type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) Create(ctx context.Context, c *models.Content) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContentRepository) Update(ctx context.Context, c *models.Content, ott *models.ContentOTT) error {
	args := m.Called(ctx, c, ott)
	return args.Error(0)
}

func (m *MockContentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentRepository) GetByID(ctx context.Context, id int64) (*models.Content, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Content), args.Error(1)
}

func (m *MockContentRepository) List(ctx context.Context, f repository.ContentFilter) ([]models.RankedContent, int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.RankedContent), args.Get(1).(int64), args.Error(2)
}

func (m *MockContentRepository) RankedCandidates(ctx context.Context, genre models.Genre, excludeIDs []int64, limit int) ([]models.RankedContent, error) {
	args := m.Called(ctx, genre, excludeIDs, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RankedContent), args.Error(1)
}

func (m *MockContentRepository) Trending(ctx context.Context, limit int) ([]models.RankedContent, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RankedContent), args.Error(1)
}

func (m *MockContentRepository) Recent(ctx context.Context, limit int) ([]models.Content, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Content), args.Error(1)
}

func (m *MockContentRepository) Similar(ctx context.Context, c *models.Content, limit int) ([]models.RankedContent, error) {
	args := m.Called(ctx, c, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RankedContent), args.Error(1)
}

func (m *MockContentRepository) GenreCounts(ctx context.Context, limit int) ([]models.GenreCount, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GenreCount), args.Error(1)
}

func (m *MockContentRepository) ListStreaming(ctx context.Context, platform models.OTTPlatform, freeOnly bool) ([]models.Content, error) {
	args := m.Called(ctx, platform, freeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Content), args.Error(1)
}

func (m *MockContentRepository) AverageRating(ctx context.Context, id int64) (float64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockContentRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContentRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

// MockRatingRepository mocks the RatingRepository interface
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Upsert(ctx context.Context, rating *models.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *MockRatingRepository) GetByUserAndContent(ctx context.Context, userID string, contentID int64) (*models.Rating, error) {
	args := m.Called(ctx, userID, contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) ListByUser(ctx context.Context, userID string, limit int) ([]models.Rating, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}

func (m *MockRatingRepository) CountByContent(ctx context.Context, contentID int64) (int64, error) {
	args := m.Called(ctx, contentID)
	return args.Get(0).(int64), args.Error(1)
}

// MockReviewRepository mocks the ReviewRepository interface
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) UpdateComment(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Approve(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReviewRepository) ListApprovedByContent(ctx context.Context, contentID int64) ([]models.Review, error) {
	args := m.Called(ctx, contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByUser(ctx context.Context, userID string, limit int) ([]models.Review, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) ListForModeration(ctx context.Context, filter repository.ModerationFilter, limit int) ([]models.Review, error) {
	args := m.Called(ctx, filter, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) Counts(ctx context.Context) (repository.ReviewCounts, error) {
	args := m.Called(ctx)
	return args.Get(0).(repository.ReviewCounts), args.Error(1)
}

// MockWatchlistRepository mocks the WatchlistRepository interface
type MockWatchlistRepository struct {
	mock.Mock
}

func (m *MockWatchlistRepository) Add(ctx context.Context, userID string, contentID int64) (bool, error) {
	args := m.Called(ctx, userID, contentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWatchlistRepository) Remove(ctx context.Context, userID string, contentID int64) (bool, error) {
	args := m.Called(ctx, userID, contentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWatchlistRepository) Exists(ctx context.Context, userID string, contentID int64) (bool, error) {
	args := m.Called(ctx, userID, contentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWatchlistRepository) List(ctx context.Context, userID string, limit int) ([]models.WatchlistEntry, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WatchlistEntry), args.Error(1)
}

// MockRoleResolver mocks the RoleResolver interface
type MockRoleResolver struct {
	mock.Mock
}

func (m *MockRoleResolver) HasReviewerCapability(ctx context.Context, userID string) bool {
	args := m.Called(ctx, userID)
	return args.Bool(0)
}

func (m *MockRoleResolver) HasCreatorCapability(ctx context.Context, userID string) bool {
	args := m.Called(ctx, userID)
	return args.Bool(0)
}

func (m *MockRoleResolver) Capabilities(ctx context.Context, userID string) models.Capabilities {
	args := m.Called(ctx, userID)
	return args.Get(0).(models.Capabilities)
}

func (m *MockRoleResolver) CapabilitiesFor(ctx context.Context, userIDs []string) map[string]models.Capabilities {
	args := m.Called(ctx, userIDs)
	return args.Get(0).(map[string]models.Capabilities)
}

// MockRecommendationService mocks the RecommendationService interface
type MockRecommendationService struct {
	mock.Mock
}

func (m *MockRecommendationService) Recommend(ctx context.Context, userID string) ([]models.Content, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Content), args.Error(1)
}
