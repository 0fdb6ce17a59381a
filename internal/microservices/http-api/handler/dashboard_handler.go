package handler

import (
	"net/http"

	"cinehub/internal/microservices/http-api/dto"
	"cinehub/internal/microservices/http-api/middleware"
	"cinehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboards      service.DashboardService
	recommendations service.RecommendationService
}

func NewDashboardHandler(dashboards service.DashboardService, recommendations service.RecommendationService) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards, recommendations: recommendations}
}

// RegisterRoutes registers routes on an authenticated group.
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.User)
	rg.GET("/dashboard/creator", h.Creator)
	rg.GET("/recommendations", h.Recommendations)
}

func (h *DashboardHandler) User(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	d, err := h.dashboards.UserDashboard(ctx, middleware.ActorFrom(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *DashboardHandler) Creator(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	d, err := h.dashboards.CreatorDashboard(ctx, middleware.ActorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// Recommendations returns up to six content items for the caller.
func (h *DashboardHandler) Recommendations(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	list, err := h.recommendations.Recommend(ctx, middleware.ActorFrom(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": dto.FromContents(list)})
}
