package handler

import (
	"log/slog"
	"net/http"
	"slices"

	"cinehub/internal/microservices/http-api/middleware"
	"cinehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

// Services bundles everything the HTTP layer calls into.
type Services struct {
	Auth           service.AuthService
	Content        service.ContentService
	Rating         service.RatingService
	Review         service.ReviewService
	Watchlist      service.WatchlistService
	Recommendation service.RecommendationService
	Dashboard      service.DashboardService
	Admin          service.AdminService
}

type RouterOptions struct {
	RateLimitRPS   float64
	RateLimitBurst int
	CORSOrigins    []string
}

// NewRouter builds the gin engine with every route under /api.
func NewRouter(svcs Services, opts RouterOptions, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors(opts.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	limiter := middleware.RateLimiter(opts.RateLimitRPS, opts.RateLimitBurst, logger)
	api := r.Group("/api")

	authGroup := api.Group("/auth", limiter)
	NewAuthHandler(svcs.Auth).RegisterRoutes(authGroup)

	public := api.Group("", middleware.OptionalAuth(svcs.Auth))
	private := api.Group("", middleware.AuthMiddleware(svcs.Auth), middleware.WritesOnly(limiter))

	NewContentHandler(svcs.Content).RegisterRoutes(public, private)
	NewRatingHandler(svcs.Rating).RegisterRoutes(private)

	reviews := NewReviewHandler(svcs.Review)
	reviews.RegisterRoutes(public, private)
	reviews.RegisterModerationRoutes(private.Group("/moderation", middleware.RequireStaff()))

	NewWatchlistHandler(svcs.Watchlist).RegisterRoutes(private.Group("/watchlist"))
	NewDashboardHandler(svcs.Dashboard, svcs.Recommendation).RegisterRoutes(private)
	NewAdminHandler(svcs.Admin).RegisterRoutes(private.Group("/admin", middleware.RequireStaff()))

	return r
}

func cors(origins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (slices.Contains(origins, origin) || slices.Contains(origins, "*")) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
			c.Header("Vary", "Origin")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
