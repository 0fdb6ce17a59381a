package handler

import (
	"net/http"

	"cinehub/internal/microservices/http-api/dto"
	"cinehub/internal/microservices/http-api/middleware"
	"cinehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type WatchlistHandler struct {
	svc service.WatchlistService
}

func NewWatchlistHandler(svc service.WatchlistService) *WatchlistHandler {
	return &WatchlistHandler{svc: svc}
}

func (h *WatchlistHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Add)
	rg.GET("", h.List)
	rg.DELETE("/:content_id", h.Remove)
}

// Add puts content on the caller's watchlist. Adding twice is not an error;
// the status tells whether a new entry was created.
func (h *WatchlistHandler) Add(c *gin.Context) {
	var req dto.AddToWatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	created, err := h.svc.Add(ctx, middleware.ActorFrom(c).UserID, req.ContentID)
	if err != nil {
		respondError(c, err)
		return
	}

	if created {
		c.JSON(http.StatusCreated, gin.H{"message": "added to watchlist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "already in watchlist"})
}

func (h *WatchlistHandler) List(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	entries, err := h.svc.List(ctx, middleware.ActorFrom(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	items := dto.FromWatchlist(entries)
	c.JSON(http.StatusOK, dto.WatchlistResponse{Items: items, Total: len(items)})
}

func (h *WatchlistHandler) Remove(c *gin.Context) {
	contentID, ok := paramID(c, "content_id")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.svc.Remove(ctx, middleware.ActorFrom(c).UserID, contentID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
