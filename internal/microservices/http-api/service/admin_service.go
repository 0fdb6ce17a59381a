package service

import (
	"context"
	"errors"
	"log/slog"

	"cinehub/internal/apperrors"
	"cinehub/internal/microservices/http-api/dto"
	"cinehub/internal/microservices/http-api/repository"

	"gorm.io/gorm"
)

const (
	adminRecentContent = 5
	adminRecentReviews = 5
)

// Role names accepted by GrantRole.
const (
	RoleReviewer = "reviewer"
	RoleCreator  = "creator"
)

type AdminService interface {
	Stats(ctx context.Context) (*dto.AdminStats, error)
	ListUsers(ctx context.Context, search string, page, pageSize int) (*dto.UserListResponse, error)
	SetUserActive(ctx context.Context, actor Actor, userID string, active bool) error
	DeleteUser(ctx context.Context, actor Actor, userID string) error
	GrantRole(ctx context.Context, userID, role string, expertise *string) error
}

type adminService struct {
	userRepo    repository.UserRepository
	tokenRepo   repository.RefreshTokenRepository
	profileRepo repository.ProfileRepository
	contentRepo repository.ContentRepository
	reviewRepo  repository.ReviewRepository
	roles       RoleResolver
	logger      *slog.Logger
}

func NewAdminService(
	userRepo repository.UserRepository,
	tokenRepo repository.RefreshTokenRepository,
	profileRepo repository.ProfileRepository,
	contentRepo repository.ContentRepository,
	reviewRepo repository.ReviewRepository,
	roles RoleResolver,
	logger *slog.Logger,
) AdminService {
	return &adminService{
		userRepo:    userRepo,
		tokenRepo:   tokenRepo,
		profileRepo: profileRepo,
		contentRepo: contentRepo,
		reviewRepo:  reviewRepo,
		roles:       roles,
		logger:      logger,
	}
}

func (s *adminService) Stats(ctx context.Context) (*dto.AdminStats, error) {
	stats := &dto.AdminStats{}
	var err error

	if stats.TotalUsers, err = s.userRepo.Count(ctx); err != nil {
		return nil, apperrors.Internal(err)
	}
	if stats.TotalContent, err = s.contentRepo.Count(ctx); err != nil {
		return nil, apperrors.Internal(err)
	}

	counts, err := s.reviewRepo.Counts(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	stats.TotalReviews = counts.Total
	stats.PendingReviews = counts.Pending
	stats.ApprovedReviews = counts.Approved

	if stats.ReviewerCount, err = s.profileRepo.CountReviewers(ctx); err != nil {
		return nil, apperrors.Internal(err)
	}
	if stats.CreatorCount, err = s.profileRepo.CountCreators(ctx); err != nil {
		return nil, apperrors.Internal(err)
	}

	recent, err := s.contentRepo.Recent(ctx, adminRecentContent)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	stats.RecentContent = dto.FromContents(recent)

	reviews, err := s.reviewRepo.ListForModeration(ctx, repository.FilterAll, adminRecentReviews)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	stats.RecentReviews = dto.FromReviews(reviews)

	return stats, nil
}

// ListUsers returns a page of users annotated with their resolved roles.
// Capabilities for the whole page are fetched in one batch.
func (s *adminService) ListUsers(ctx context.Context, search string, page, pageSize int) (*dto.UserListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	users, total, err := s.userRepo.List(ctx, search, page, pageSize)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	caps := s.roles.CapabilitiesFor(ctx, ids)

	rows := make([]dto.UserRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, dto.NewUserRow(u, caps[u.ID]))
	}

	return &dto.UserListResponse{Data: rows, Page: page, PageSize: pageSize, Total: total}, nil
}

// SetUserActive blocks or unblocks a user. Staff cannot block themselves.
// Blocking revokes the user's refresh tokens; access tokens already issued
// stay valid until they expire.
func (s *adminService) SetUserActive(ctx context.Context, actor Actor, userID string, active bool) error {
	if actor.UserID == userID && !active {
		return apperrors.Validation("user_id", "you cannot block your own account")
	}

	if err := s.userRepo.SetActive(ctx, userID, active); err != nil {
		return notFoundOr(err, "user", userID)
	}

	if !active {
		revoked, err := s.tokenRepo.RevokeAllForUser(ctx, userID)
		if err != nil {
			return apperrors.Internal(err)
		}
		s.logger.InfoContext(ctx, "refresh tokens revoked",
			slog.String("user_id", userID),
			slog.Int64("count", revoked))
	}

	s.logger.InfoContext(ctx, "user active flag changed",
		slog.String("user_id", userID),
		slog.Bool("active", active),
		slog.String("staff_id", actor.UserID))
	return nil
}

func (s *adminService) DeleteUser(ctx context.Context, actor Actor, userID string) error {
	if actor.UserID == userID {
		return apperrors.Validation("user_id", "you cannot delete your own account")
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return notFoundOr(err, "user", userID)
	}

	s.logger.InfoContext(ctx, "user deleted", slog.String("user_id", userID), slog.String("staff_id", actor.UserID))
	return nil
}

// GrantRole creates an active capability record. Granting a role that
// already has a record, active or not, is a conflict.
func (s *adminService) GrantRole(ctx context.Context, userID, role string, expertise *string) error {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return notFoundOr(err, "user", userID)
	}

	var err error
	switch role {
	case RoleReviewer:
		_, err = s.profileRepo.GrantReviewer(ctx, userID, expertise)
	case RoleCreator:
		_, err = s.profileRepo.GrantCreator(ctx, userID, expertise)
	default:
		return apperrors.Validation("role", "role must be reviewer or creator")
	}

	switch {
	case errors.Is(err, repository.ErrDuplicate):
		return apperrors.Conflict("user already has the " + role + " role")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.NotFound("user", userID)
	case err != nil:
		return apperrors.Internal(err)
	}

	s.logger.InfoContext(ctx, "role granted", slog.String("user_id", userID), slog.String("role", role))
	return nil
}
