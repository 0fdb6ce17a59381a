package service

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"slices"

	"cinehub/internal/apperrors"
	"cinehub/internal/microservices/http-api/models"
	"cinehub/internal/microservices/http-api/repository"
)

const (
	// affinityThreshold is the lowest rating that counts as liking a genre.
	affinityThreshold   = 4
	topGenreCount       = 2
	perGenreLimit       = 3
	recommendationLimit = 6
)

type RecommendationService interface {
	Recommend(ctx context.Context, userID string) ([]models.Content, error)
}

type recommendationService struct {
	ratingRepo  repository.RatingRepository
	contentRepo repository.ContentRepository
	cache       *repository.RecommendationCache
	logger      *slog.Logger
}

func NewRecommendationService(
	ratingRepo repository.RatingRepository,
	contentRepo repository.ContentRepository,
	cache *repository.RecommendationCache,
	logger *slog.Logger,
) RecommendationService {
	return &recommendationService{
		ratingRepo:  ratingRepo,
		contentRepo: contentRepo,
		cache:       cache,
		logger:      logger,
	}
}

// genreScore is one entry of the user's affinity profile.
type genreScore struct {
	genre models.Genre
	score int
}

// genreAffinity sums rating values per genre over ratings at or above the
// threshold and returns the n best genres by (score desc, name asc).
func genreAffinity(ratings []models.Rating, n int) []models.Genre {
	scores := make(map[models.Genre]int)
	for _, r := range ratings {
		if r.RatingValue < affinityThreshold || r.Content == nil {
			continue
		}
		scores[r.Content.Genre] += r.RatingValue
	}

	ranked := make([]genreScore, 0, len(scores))
	for g, s := range scores {
		ranked = append(ranked, genreScore{genre: g, score: s})
	}
	slices.SortFunc(ranked, func(a, b genreScore) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(a.genre, b.genre)
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	out := make([]models.Genre, 0, len(ranked))
	for _, gs := range ranked {
		out = append(out, gs.genre)
	}
	return out
}

// Recommend returns at most six distinct contents. Users with no strong
// ratings, including users with no ratings at all, get the popularity list.
// The result is never padded beyond what the catalog holds.
func (s *recommendationService) Recommend(ctx context.Context, userID string) ([]models.Content, error) {
	cached, gen, err := s.cache.Get(ctx, userID)
	switch {
	case err == nil:
		return cached, nil
	case !errors.Is(err, repository.ErrCacheMiss):
		s.logger.WarnContext(ctx, "recommendation cache read failed", slog.String("user_id", userID), slog.String("error", err.Error()))
	}
	// only a clean miss pins the generation the computed list belongs to
	store := errors.Is(err, repository.ErrCacheMiss)

	list, err := s.compute(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	if store {
		if err := s.cache.Set(ctx, gen, userID, list); err != nil {
			s.logger.WarnContext(ctx, "recommendation cache write failed", slog.String("user_id", userID), slog.String("error", err.Error()))
		}
	}
	return list, nil
}

func (s *recommendationService) compute(ctx context.Context, userID string) ([]models.Content, error) {
	var ratings []models.Rating
	if userID != "" {
		var err error
		ratings, err = s.ratingRepo.ListByUser(ctx, userID, 0)
		if err != nil {
			return nil, err
		}
	}

	rated := make([]int64, 0, len(ratings))
	for _, r := range ratings {
		rated = append(rated, r.ContentID)
	}

	chosen := make([]models.Content, 0, recommendationLimit)
	seen := make(map[int64]bool, recommendationLimit)
	add := func(candidates []models.RankedContent) {
		for _, c := range candidates {
			if len(chosen) == recommendationLimit {
				return
			}
			if seen[c.ID] {
				continue
			}
			seen[c.ID] = true
			chosen = append(chosen, c.Content)
		}
	}

	for _, genre := range genreAffinity(ratings, topGenreCount) {
		candidates, err := s.contentRepo.RankedCandidates(ctx, genre, rated, perGenreLimit)
		if err != nil {
			return nil, err
		}
		add(candidates)
	}

	// backfill by popularity; only ids already chosen are excluded here
	if missing := recommendationLimit - len(chosen); missing > 0 {
		exclude := make([]int64, 0, len(chosen))
		for _, c := range chosen {
			exclude = append(exclude, c.ID)
		}
		candidates, err := s.contentRepo.RankedCandidates(ctx, "", exclude, missing)
		if err != nil {
			return nil, err
		}
		add(candidates)
	}

	return chosen, nil
}
