package handler

import (
	"net/http"

	"cinehub/internal/microservices/http-api/dto"
	"cinehub/internal/microservices/http-api/middleware"
	"cinehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	svc service.ReviewService
}

func NewReviewHandler(svc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

func (h *ReviewHandler) RegisterRoutes(public, private *gin.RouterGroup) {
	public.GET("/content/:content_id/reviews", h.ListForContent)

	private.POST("/content/:content_id/reviews", h.Create)
	private.PUT("/reviews/:review_id", h.Update)
	private.DELETE("/reviews/:review_id", h.Delete)
	private.GET("/me/reviews", h.ListMine)
}

// RegisterModerationRoutes mounts the staff queue. rg must require staff.
func (h *ReviewHandler) RegisterModerationRoutes(rg *gin.RouterGroup) {
	rg.GET("/reviews", h.Queue)
	rg.POST("/reviews/:review_id", h.Decide)
}

// ListForContent returns the approved reviews of a content item, newest first.
func (h *ReviewHandler) ListForContent(c *gin.Context) {
	contentID, ok := paramID(c, "content_id")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	reviews, err := h.svc.ListForContent(ctx, contentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromReviews(reviews))
}

// Create posts a review. Reviews by active reviewers are published at once,
// others wait for moderation.
func (h *ReviewHandler) Create(c *gin.Context) {
	contentID, ok := paramID(c, "content_id")
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	review, err := h.svc.AuthorizeNewReview(ctx, middleware.ActorFrom(c).UserID, contentID, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromReview(review))
}

func (h *ReviewHandler) Update(c *gin.Context) {
	reviewID, ok := paramID(c, "review_id")
	if !ok {
		return
	}

	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	review, err := h.svc.AuthorizeEditedReview(ctx, middleware.ActorFrom(c).UserID, reviewID, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromReview(review))
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	reviewID, ok := paramID(c, "review_id")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.svc.DeleteReview(ctx, middleware.ActorFrom(c), reviewID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReviewHandler) ListMine(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	reviews, err := h.svc.ListByUser(ctx, middleware.ActorFrom(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromReviews(reviews))
}

// Queue lists reviews for moderation.
// GET /api/moderation/reviews?filter=pending|approved|all
func (h *ReviewHandler) Queue(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	queue, err := h.svc.ModerationQueue(ctx, middleware.ActorFrom(c), c.Query("filter"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, queue)
}

// Decide applies approve, reject or delete to a review.
// POST /api/moderation/reviews/:review_id {"action": "approve"}
func (h *ReviewHandler) Decide(c *gin.Context) {
	reviewID, ok := paramID(c, "review_id")
	if !ok {
		return
	}

	var req dto.ModerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.svc.ModeratorDecision(ctx, middleware.ActorFrom(c), reviewID, req.Action); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"review_id": reviewID, "action": req.Action})
}
