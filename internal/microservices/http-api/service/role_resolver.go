package service

import (
	"context"
	"log/slog"

	"cinehub/internal/microservices/http-api/models"
	"cinehub/internal/microservices/http-api/repository"
)

// RoleResolver answers "may this user act as a reviewer / creator". It is the
// single place capability records are interpreted; every gate in the
// application goes through it.
type RoleResolver interface {
	HasReviewerCapability(ctx context.Context, userID string) bool
	HasCreatorCapability(ctx context.Context, userID string) bool
	Capabilities(ctx context.Context, userID string) models.Capabilities
	CapabilitiesFor(ctx context.Context, userIDs []string) map[string]models.Capabilities
}

type roleResolver struct {
	profiles repository.ProfileRepository
	logger   *slog.Logger
}

func NewRoleResolver(profiles repository.ProfileRepository, logger *slog.Logger) RoleResolver {
	return &roleResolver{profiles: profiles, logger: logger}
}

// Capabilities never fails: an anonymous caller, a missing record and a
// store error all resolve to CapabilityNone. Store errors are logged.
func (r *roleResolver) Capabilities(ctx context.Context, userID string) models.Capabilities {
	if userID == "" {
		return models.Capabilities{}
	}
	caps, err := r.profiles.Capabilities(ctx, userID)
	if err != nil {
		r.logger.WarnContext(ctx, "capability lookup failed, treating as none",
			slog.String("user_id", userID),
			slog.String("error", err.Error()))
		return models.Capabilities{}
	}
	return caps
}

func (r *roleResolver) HasReviewerCapability(ctx context.Context, userID string) bool {
	return r.Capabilities(ctx, userID).Reviewer.Active()
}

func (r *roleResolver) HasCreatorCapability(ctx context.Context, userID string) bool {
	return r.Capabilities(ctx, userID).Creator.Active()
}

// CapabilitiesFor resolves a batch; every requested id is present in the result.
func (r *roleResolver) CapabilitiesFor(ctx context.Context, userIDs []string) map[string]models.Capabilities {
	out := make(map[string]models.Capabilities, len(userIDs))
	found, err := r.profiles.CapabilitiesFor(ctx, userIDs)
	if err != nil {
		r.logger.WarnContext(ctx, "batch capability lookup failed, treating as none",
			slog.Int("users", len(userIDs)),
			slog.String("error", err.Error()))
		found = nil
	}
	for _, id := range userIDs {
		out[id] = found[id]
	}
	return out
}
