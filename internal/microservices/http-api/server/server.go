// Package server wires repositories, services and the HTTP router together.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"cinehub/internal/config"
	"cinehub/internal/microservices/http-api/handler"
	"cinehub/internal/microservices/http-api/repository"
	"cinehub/internal/microservices/http-api/service"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// Repositories holds the gorm-backed stores and the recommendation cache.
type Repositories struct {
	Users         repository.UserRepository
	RefreshTokens repository.RefreshTokenRepository
	Profiles      repository.ProfileRepository
	Content       repository.ContentRepository
	Ratings       repository.RatingRepository
	Reviews       repository.ReviewRepository
	Watchlist     repository.WatchlistRepository
	Cache         *repository.RecommendationCache
}

// NewRepositories builds every store on db. rdb may be nil, which disables caching.
func NewRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) Repositories {
	return Repositories{
		Users:         repository.NewUserRepository(db),
		RefreshTokens: repository.NewRefreshTokenRepository(db),
		Profiles:      repository.NewProfileRepository(db),
		Content:       repository.NewContentRepository(db),
		Ratings:       repository.NewRatingRepository(db),
		Reviews:       repository.NewReviewRepository(db),
		Watchlist:     repository.NewWatchlistRepository(db),
		Cache:         repository.NewRecommendationCache(rdb, cfg.RecommendationCacheTTL),
	}
}

// NewServices builds the service layer over repos.
func NewServices(repos Repositories, cfg *config.Config, logger *slog.Logger) handler.Services {
	roles := service.NewRoleResolver(repos.Profiles, logger)
	recs := service.NewRecommendationService(repos.Ratings, repos.Content, repos.Cache, logger)

	return handler.Services{
		Auth:           service.NewAuthService(repos.Users, repos.RefreshTokens, cfg, logger),
		Content:        service.NewContentService(repos.Content, repos.Ratings, repos.Reviews, repos.Watchlist, repos.Profiles, roles, repos.Cache, logger),
		Rating:         service.NewRatingService(repos.Ratings, repos.Content, repos.Cache, logger),
		Review:         service.NewReviewService(repos.Reviews, repos.Content, roles, logger),
		Watchlist:      service.NewWatchlistService(repos.Watchlist, repos.Content, logger),
		Recommendation: recs,
		Dashboard:      service.NewDashboardService(repos.Watchlist, repos.Ratings, repos.Reviews, repos.Content, repos.Profiles, recs, roles, logger),
		Admin:          service.NewAdminService(repos.Users, repos.RefreshTokens, repos.Profiles, repos.Content, repos.Reviews, roles, logger),
	}
}

// Run serves the API until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, cfg *config.Config, svcs handler.Services, logger *slog.Logger) error {
	router := handler.NewRouter(svcs, handler.RouterOptions{
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		CORSOrigins:    cfg.CORSOrigins,
	}, logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting_http_server", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("received_shutdown_signal")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server_stopped_gracefully")
	return nil
}
