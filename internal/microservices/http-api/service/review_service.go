package service

import (
	"context"
	"log/slog"
	"strings"

	"cinehub/internal/apperrors"
	"cinehub/internal/microservices/http-api/dto"
	"cinehub/internal/microservices/http-api/models"
	"cinehub/internal/microservices/http-api/repository"
)

// Moderator actions.
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
	ActionDelete  = "delete"
)

type ReviewService interface {
	AuthorizeNewReview(ctx context.Context, authorID string, contentID int64, comment string) (*models.Review, error)
	AuthorizeEditedReview(ctx context.Context, editorID string, reviewID int64, comment string) (*models.Review, error)
	DeleteReview(ctx context.Context, actor Actor, reviewID int64) error
	ModeratorDecision(ctx context.Context, moderator Actor, reviewID int64, action string) error
	ModerationQueue(ctx context.Context, moderator Actor, filter string) (*dto.ModerationQueue, error)
	ListForContent(ctx context.Context, contentID int64) ([]models.Review, error)
	ListByUser(ctx context.Context, userID string) ([]models.Review, error)
}

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	contentRepo repository.ContentRepository
	roles       RoleResolver
	logger      *slog.Logger
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	contentRepo repository.ContentRepository,
	roles RoleResolver,
	logger *slog.Logger,
) ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		contentRepo: contentRepo,
		roles:       roles,
		logger:      logger,
	}
}

func validComment(comment string) (string, error) {
	c := strings.TrimSpace(comment)
	if c == "" {
		return "", apperrors.Validation("comment", "comment must not be empty")
	}
	return c, nil
}

// AuthorizeNewReview creates a review whose approval is decided by the
// author's reviewer capability at this moment. is_verified is frozen here.
func (s *reviewService) AuthorizeNewReview(ctx context.Context, authorID string, contentID int64, comment string) (*models.Review, error) {
	text, err := validComment(comment)
	if err != nil {
		return nil, err
	}

	if _, err := s.contentRepo.GetByID(ctx, contentID); err != nil {
		return nil, notFoundOr(err, "content", contentID)
	}

	verified := s.roles.HasReviewerCapability(ctx, authorID)
	review := &models.Review{
		UserID:     authorID,
		ContentID:  contentID,
		Comment:    text,
		IsApproved: verified,
		IsVerified: verified,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, apperrors.Internal(err)
	}

	s.logger.InfoContext(ctx, "review created",
		slog.Int64("review_id", review.ID),
		slog.String("user_id", authorID),
		slog.Int64("content_id", contentID),
		slog.Bool("auto_approved", verified))
	return review, nil
}

// AuthorizeEditedReview lets only the author replace the comment. An editor
// without reviewer capability sends the review back to moderation; a
// reviewer keeps the current approval. is_verified is never touched.
func (s *reviewService) AuthorizeEditedReview(ctx context.Context, editorID string, reviewID int64, comment string) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, notFoundOr(err, "review", reviewID)
	}

	if editorID == "" || review.UserID != editorID {
		return nil, apperrors.Forbidden("only the author can edit this review")
	}

	text, err := validComment(comment)
	if err != nil {
		return nil, err
	}

	wasApproved := review.IsApproved
	review.Comment = text
	if !s.roles.HasReviewerCapability(ctx, editorID) {
		review.IsApproved = false
	}

	if err := s.reviewRepo.UpdateComment(ctx, review); err != nil {
		return nil, notFoundOr(err, "review", reviewID)
	}

	if wasApproved && !review.IsApproved {
		s.logger.InfoContext(ctx, "review returned to moderation", slog.Int64("review_id", reviewID), slog.String("user_id", editorID))
	}
	return review, nil
}

// DeleteReview removes a review on behalf of its author or staff.
func (s *reviewService) DeleteReview(ctx context.Context, actor Actor, reviewID int64) error {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return notFoundOr(err, "review", reviewID)
	}

	if actor.Anonymous() || (review.UserID != actor.UserID && !actor.IsStaff) {
		return apperrors.Forbidden("only the author or staff can delete this review")
	}

	if err := s.reviewRepo.Delete(ctx, reviewID); err != nil {
		return notFoundOr(err, "review", reviewID)
	}

	s.logger.InfoContext(ctx, "review deleted", slog.Int64("review_id", reviewID), slog.String("user_id", actor.UserID))
	return nil
}

// ModeratorDecision applies a staff decision. Reject and delete both remove
// the row; there is no retained rejected state.
func (s *reviewService) ModeratorDecision(ctx context.Context, moderator Actor, reviewID int64, action string) error {
	if moderator.Anonymous() || !moderator.IsStaff {
		return apperrors.Forbidden("only staff can moderate reviews")
	}

	action = strings.ToLower(strings.TrimSpace(action))
	switch action {
	case ActionApprove:
		if err := s.reviewRepo.Approve(ctx, reviewID); err != nil {
			return notFoundOr(err, "review", reviewID)
		}
		s.logger.InfoContext(ctx, "review approved", slog.Int64("review_id", reviewID), slog.String("moderator_id", moderator.UserID))
	case ActionReject, ActionDelete:
		if err := s.reviewRepo.Delete(ctx, reviewID); err != nil {
			return notFoundOr(err, "review", reviewID)
		}
		s.logger.InfoContext(ctx, "review removed by moderator",
			slog.Int64("review_id", reviewID),
			slog.String("action", action),
			slog.String("moderator_id", moderator.UserID))
	default:
		return apperrors.Validation("action", "action must be one of approve, reject, delete")
	}
	return nil
}

func (s *reviewService) ModerationQueue(ctx context.Context, moderator Actor, filter string) (*dto.ModerationQueue, error) {
	if moderator.Anonymous() || !moderator.IsStaff {
		return nil, apperrors.Forbidden("only staff can view the moderation queue")
	}

	f := repository.ModerationFilter(filter)
	switch f {
	case "":
		f = repository.FilterPending
	case repository.FilterPending, repository.FilterApproved, repository.FilterAll:
	default:
		return nil, apperrors.Validation("filter", "filter must be one of pending, approved, all")
	}

	reviews, err := s.reviewRepo.ListForModeration(ctx, f, 0)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	counts, err := s.reviewRepo.Counts(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return &dto.ModerationQueue{
		Filter:   string(f),
		Reviews:  dto.FromReviews(reviews),
		Total:    counts.Total,
		Pending:  counts.Pending,
		Approved: counts.Approved,
	}, nil
}

func (s *reviewService) ListForContent(ctx context.Context, contentID int64) ([]models.Review, error) {
	if _, err := s.contentRepo.GetByID(ctx, contentID); err != nil {
		return nil, notFoundOr(err, "content", contentID)
	}
	reviews, err := s.reviewRepo.ListApprovedByContent(ctx, contentID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return reviews, nil
}

func (s *reviewService) ListByUser(ctx context.Context, userID string) ([]models.Review, error) {
	reviews, err := s.reviewRepo.ListByUser(ctx, userID, 0)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return reviews, nil
}
