package handler

import (
	"net/http"

	"cinehub/internal/microservices/http-api/dto"
	"cinehub/internal/microservices/http-api/middleware"
	"cinehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// RegisterRoutes registers rating routes on an authenticated group.
func (h *RatingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	ratings := rg.Group("/content/:content_id/rating")
	ratings.PUT("", h.Rate)
	ratings.GET("", h.GetUserRating)
}

// Rate creates or overwrites the caller's rating.
// PUT /api/content/:content_id/rating
func (h *RatingHandler) Rate(c *gin.Context) {
	contentID, ok := paramID(c, "content_id")
	if !ok {
		return
	}

	var req dto.RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	rating, err := h.ratingService.Rate(ctx, middleware.ActorFrom(c).UserID, contentID, req.RatingValue)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromRating(rating))
}

// GetUserRating retrieves the caller's rating for a content item.
// GET /api/content/:content_id/rating
func (h *RatingHandler) GetUserRating(c *gin.Context) {
	contentID, ok := paramID(c, "content_id")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	rating, err := h.ratingService.GetUserRating(ctx, middleware.ActorFrom(c).UserID, contentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromRating(rating))
}
