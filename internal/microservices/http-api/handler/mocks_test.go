package handler_test

import (
	"context"
	"time"

	"cinehub/internal/microservices/http-api/dto"
	"cinehub/internal/microservices/http-api/models"
	"cinehub/internal/microservices/http-api/repository"
	"cinehub/internal/microservices/http-api/service"

	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, password, email string) (*models.User, error) {
	args := m.Called(ctx, username, password, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, string, *models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(2) == nil {
		return "", "", nil, args.Error(3)
	}
	return args.String(0), args.String(1), args.Get(2).(*models.User), args.Error(3)
}

func (m *MockAuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) RevokeToken(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

// ValidateToken is not mocked: two fixed tokens identify a user and a staff member.
func (m *MockAuthService) ValidateToken(token string) (*service.Claims, error) {
	switch token {
	case userToken:
		return &service.Claims{UserID: "u1", Username: "alice", Type: "access"}, nil
	case staffToken:
		return &service.Claims{UserID: "s1", Username: "root", IsStaff: true, Type: "access"}, nil
	}
	return nil, service.ErrInvalidToken
}

func (m *MockAuthService) AccessTokenTTL() time.Duration { return 15 * time.Minute }

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) Create(ctx context.Context, actor service.Actor, req dto.ContentRequest) (*models.Content, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Content), args.Error(1)
}

func (m *MockContentService) Update(ctx context.Context, actor service.Actor, id int64, req dto.ContentRequest) (*models.Content, error) {
	args := m.Called(ctx, actor, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Content), args.Error(1)
}

func (m *MockContentService) Delete(ctx context.Context, actor service.Actor, id int64) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockContentService) Get(ctx context.Context, viewer service.Actor, id int64) (*dto.ContentDetail, error) {
	args := m.Called(ctx, viewer, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ContentDetail), args.Error(1)
}

func (m *MockContentService) List(ctx context.Context, filter repository.ContentFilter) (*dto.PaginatedContentResponse, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedContentResponse), args.Error(1)
}

func (m *MockContentService) Home(ctx context.Context) (*dto.HomeFeed, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.HomeFeed), args.Error(1)
}

func (m *MockContentService) Streaming(ctx context.Context, platform string, freeOnly bool) (*dto.StreamingResponse, error) {
	args := m.Called(ctx, platform, freeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StreamingResponse), args.Error(1)
}

type MockRatingService struct {
	mock.Mock
}

func (m *MockRatingService) Rate(ctx context.Context, userID string, contentID int64, value int) (*models.Rating, error) {
	args := m.Called(ctx, userID, contentID, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingService) GetUserRating(ctx context.Context, userID string, contentID int64) (*models.Rating, error) {
	args := m.Called(ctx, userID, contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) AuthorizeNewReview(ctx context.Context, authorID string, contentID int64, comment string) (*models.Review, error) {
	args := m.Called(ctx, authorID, contentID, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewService) AuthorizeEditedReview(ctx context.Context, editorID string, reviewID int64, comment string) (*models.Review, error) {
	args := m.Called(ctx, editorID, reviewID, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewService) DeleteReview(ctx context.Context, actor service.Actor, reviewID int64) error {
	args := m.Called(ctx, actor, reviewID)
	return args.Error(0)
}

func (m *MockReviewService) ModeratorDecision(ctx context.Context, moderator service.Actor, reviewID int64, action string) error {
	args := m.Called(ctx, moderator, reviewID, action)
	return args.Error(0)
}

func (m *MockReviewService) ModerationQueue(ctx context.Context, moderator service.Actor, filter string) (*dto.ModerationQueue, error) {
	args := m.Called(ctx, moderator, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ModerationQueue), args.Error(1)
}

func (m *MockReviewService) ListForContent(ctx context.Context, contentID int64) ([]models.Review, error) {
	args := m.Called(ctx, contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewService) ListByUser(ctx context.Context, userID string) ([]models.Review, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

type MockWatchlistService struct {
	mock.Mock
}

func (m *MockWatchlistService) Add(ctx context.Context, userID string, contentID int64) (bool, error) {
	args := m.Called(ctx, userID, contentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWatchlistService) Remove(ctx context.Context, userID string, contentID int64) error {
	args := m.Called(ctx, userID, contentID)
	return args.Error(0)
}

func (m *MockWatchlistService) List(ctx context.Context, userID string) ([]models.WatchlistEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WatchlistEntry), args.Error(1)
}

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

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) UserDashboard(ctx context.Context, userID string) (*dto.UserDashboard, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserDashboard), args.Error(1)
}

func (m *MockDashboardService) CreatorDashboard(ctx context.Context, actor service.Actor) (*dto.CreatorDashboard, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CreatorDashboard), args.Error(1)
}

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) Stats(ctx context.Context) (*dto.AdminStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AdminStats), args.Error(1)
}

func (m *MockAdminService) ListUsers(ctx context.Context, search string, page, pageSize int) (*dto.UserListResponse, error) {
	args := m.Called(ctx, search, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserListResponse), args.Error(1)
}

func (m *MockAdminService) SetUserActive(ctx context.Context, actor service.Actor, userID string, active bool) error {
	args := m.Called(ctx, actor, userID, active)
	return args.Error(0)
}

func (m *MockAdminService) DeleteUser(ctx context.Context, actor service.Actor, userID string) error {
	args := m.Called(ctx, actor, userID)
	return args.Error(0)
}

func (m *MockAdminService) GrantRole(ctx context.Context, userID, role string, expertise *string) error {
	args := m.Called(ctx, userID, role, expertise)
	return args.Error(0)
}
