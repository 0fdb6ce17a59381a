package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cinehub/internal/microservices/http-api/models"

	"github.com/redis/go-redis/v9"
)

const generationKey = "recs:generation"

// ErrCacheMiss is returned by Get when nothing is cached for the user.
var ErrCacheMiss = errors.New("recommendation cache miss")

// RecommendationCache stores computed recommendation lists in Redis. Every
// entry is keyed by the current generation; bumping the generation after a
// rating or catalog write makes all older entries unreachable at once.
// A nil cache, or one built with a nil client, is a no-op.
type RecommendationCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRecommendationCache(client *redis.Client, ttl time.Duration) *RecommendationCache {
	return &RecommendationCache{client: client, ttl: ttl}
}

func (r *RecommendationCache) enabled() bool {
	return r != nil && r.client != nil
}

func (r *RecommendationCache) generation(ctx context.Context) (int64, error) {
	gen, err := r.client.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func userKey(gen int64, userID string) string {
	return fmt.Sprintf("recs:g%d:user:%s", gen, userID)
}

// Get returns the cached list for the current generation or ErrCacheMiss,
// together with the generation it looked under. Callers that compute a list
// after a miss pass that generation back to Set, so a write landing during
// the computation leaves the result under an already orphaned key.
func (r *RecommendationCache) Get(ctx context.Context, userID string) ([]models.Content, int64, error) {
	if !r.enabled() {
		return nil, 0, ErrCacheMiss
	}

	gen, err := r.generation(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("read cache generation: %w", err)
	}

	data, err := r.client.Get(ctx, userKey(gen, userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, gen, ErrCacheMiss
	}
	if err != nil {
		return nil, gen, fmt.Errorf("read cached recommendations: %w", err)
	}

	var list []models.Content
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, gen, fmt.Errorf("decode cached recommendations: %w", err)
	}
	return list, gen, nil
}

// Set stores the list under generation gen with the configured TTL.
func (r *RecommendationCache) Set(ctx context.Context, gen int64, userID string, list []models.Content) error {
	if !r.enabled() {
		return nil
	}

	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode recommendations: %w", err)
	}
	return r.client.Set(ctx, userKey(gen, userID), data, r.ttl).Err()
}

// Invalidate advances the generation, orphaning every cached list.
func (r *RecommendationCache) Invalidate(ctx context.Context) error {
	if !r.enabled() {
		return nil
	}
	return r.client.Incr(ctx, generationKey).Err()
}
