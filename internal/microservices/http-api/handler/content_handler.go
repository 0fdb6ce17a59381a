package handler

import (
	"net/http"

	"cinehub/internal/microservices/http-api/dto"
	"cinehub/internal/microservices/http-api/middleware"
	"cinehub/internal/microservices/http-api/models"
	"cinehub/internal/microservices/http-api/repository"
	"cinehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	svc service.ContentService
}

func NewContentHandler(svc service.ContentService) *ContentHandler {
	return &ContentHandler{svc: svc}
}

// RegisterRoutes mounts the catalog under /content. public carries
// OptionalAuth, private requires a token.
func (h *ContentHandler) RegisterRoutes(public, private *gin.RouterGroup) {
	pub := public.Group("/content")
	pub.GET("", h.List)
	pub.GET("/home", h.Home)
	pub.GET("/streaming", h.Streaming)
	pub.GET("/options", h.Options)
	pub.GET("/:content_id", h.Get)

	priv := private.Group("/content")
	priv.POST("", h.Create)
	priv.PUT("/:content_id", h.Update)
	priv.DELETE("/:content_id", h.Delete)
}

// List returns a filtered, paginated page of content.
// GET /api/content?genre=&language=&content_type=&q=&sort=&page=&page_size=
func (h *ContentHandler) List(c *gin.Context) {
	filter := repository.ContentFilter{
		Genre:       models.Genre(c.Query("genre")),
		Language:    models.Language(c.Query("language")),
		ContentType: models.ContentType(c.Query("content_type")),
		Search:      c.Query("q"),
		Sort:        c.Query("sort"),
		Page:        queryInt(c, "page", 1),
		PageSize:    queryInt(c, "page_size", 20),
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := h.svc.List(ctx, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ContentHandler) Home(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	feed, err := h.svc.Home(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, feed)
}

// Streaming lists content with OTT availability.
// GET /api/content/streaming?platform=Netflix&free=true
func (h *ContentHandler) Streaming(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := h.svc.Streaming(ctx, c.Query("platform"), c.Query("free") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Options returns the accepted enum values for building forms and filters.
func (h *ContentHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"genres":        models.AllGenres,
		"languages":     models.AllLanguages,
		"content_types": models.AllContentTypes,
		"platforms":     models.AllOTTPlatforms,
	})
}

func (h *ContentHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "content_id")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	detail, err := h.svc.Get(ctx, middleware.ActorFrom(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *ContentHandler) Create(c *gin.Context) {
	var req dto.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	content, err := h.svc.Create(ctx, middleware.ActorFrom(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, content)
}

func (h *ContentHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "content_id")
	if !ok {
		return
	}

	var req dto.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	content, err := h.svc.Update(ctx, middleware.ActorFrom(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, content)
}

func (h *ContentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "content_id")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.svc.Delete(ctx, middleware.ActorFrom(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
