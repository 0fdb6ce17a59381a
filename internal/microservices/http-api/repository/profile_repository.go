package repository

import (
	"context"
	"errors"
	"fmt"

	"cinehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository reads and writes user profiles and their capability records.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.UserProfile, error)
	EnsureProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	Capabilities(ctx context.Context, userID string) (models.Capabilities, error)
	CapabilitiesFor(ctx context.Context, userIDs []string) (map[string]models.Capabilities, error)
	GrantReviewer(ctx context.Context, userID string, expertise *string) (*models.ReviewerCapability, error)
	GrantCreator(ctx context.Context, userID string, expertise *string) (*models.CreatorCapability, error)
	IncrementContentsAdded(ctx context.Context, userID string) error
	CountReviewers(ctx context.Context) (int64, error)
	CountCreators(ctx context.Context) (int64, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// GetByUserID loads the profile with both capability records preloaded.
func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.WithContext(ctx).
		Preload("Reviewer").
		Preload("Creator").
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// EnsureProfile returns the user's profile, creating an empty one if missing.
func (r *profileRepository) EnsureProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	profile := models.UserProfile{UserID: userID}
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).FirstOrCreate(&profile).Error; err != nil {
		return nil, fmt.Errorf("ensure profile: %w", err)
	}
	return &profile, nil
}

// Capabilities resolves both capability states. A user without a profile or
// without a capability record resolves to CapabilityNone, not an error.
func (r *profileRepository) Capabilities(ctx context.Context, userID string) (models.Capabilities, error) {
	profile, err := r.GetByUserID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Capabilities{}, nil
	}
	if err != nil {
		return models.Capabilities{}, fmt.Errorf("load capabilities: %w", err)
	}
	return capabilitiesOf(profile), nil
}

// CapabilitiesFor resolves a page of users in one query. Users missing from
// the result map have no profile and therefore no capabilities.
func (r *profileRepository) CapabilitiesFor(ctx context.Context, userIDs []string) (map[string]models.Capabilities, error) {
	out := make(map[string]models.Capabilities, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	var profiles []models.UserProfile
	err := r.db.WithContext(ctx).
		Preload("Reviewer").
		Preload("Creator").
		Where("user_id IN ?", userIDs).
		Find(&profiles).Error
	if err != nil {
		return nil, fmt.Errorf("load capabilities: %w", err)
	}

	for i := range profiles {
		out[profiles[i].UserID] = capabilitiesOf(&profiles[i])
	}
	return out, nil
}

func capabilitiesOf(profile *models.UserProfile) models.Capabilities {
	var caps models.Capabilities
	if profile.Reviewer != nil {
		caps.Reviewer = models.StateOf(true, profile.Reviewer.IsActive)
	}
	if profile.Creator != nil {
		caps.Creator = models.StateOf(true, profile.Creator.IsActive)
	}
	return caps
}

// GrantReviewer creates an active reviewer record. An existing record, active
// or not, is reported as ErrDuplicate and left untouched.
func (r *profileRepository) GrantReviewer(ctx context.Context, userID string, expertise *string) (*models.ReviewerCapability, error) {
	profile, err := r.EnsureProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	rc := &models.ReviewerCapability{UserProfileID: profile.ID, IsActive: true, ExpertiseArea: expertise}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(rc)
	if result.Error != nil {
		return nil, fmt.Errorf("grant reviewer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrDuplicate
	}
	return rc, nil
}

// GrantCreator creates an active creator record, same rules as GrantReviewer.
func (r *profileRepository) GrantCreator(ctx context.Context, userID string, expertise *string) (*models.CreatorCapability, error) {
	profile, err := r.EnsureProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	cc := &models.CreatorCapability{UserProfileID: profile.ID, IsActive: true, Expertise: expertise}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(cc)
	if result.Error != nil {
		return nil, fmt.Errorf("grant creator: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrDuplicate
	}
	return cc, nil
}

// IncrementContentsAdded bumps the creator's counter; a no-op for users without a creator record.
func (r *profileRepository) IncrementContentsAdded(ctx context.Context, userID string) error {
	sub := r.db.Model(&models.UserProfile{}).Select("id").Where("user_id = ?", userID)
	return r.db.WithContext(ctx).
		Model(&models.CreatorCapability{}).
		Where("user_profile_id IN (?)", sub).
		UpdateColumn("total_contents_added", gorm.Expr("total_contents_added + 1")).Error
}

// CountReviewers counts every reviewer record, active or not.
func (r *profileRepository) CountReviewers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ReviewerCapability{}).Count(&count).Error
	return count, err
}

// CountCreators counts every creator record, active or not.
func (r *profileRepository) CountCreators(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CreatorCapability{}).Count(&count).Error
	return count, err
}
