package handler

import (
	"net/http"

	"cinehub/internal/microservices/http-api/dto"
	"cinehub/internal/microservices/http-api/middleware"
	"cinehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.AdminService
}

func NewAdminHandler(svc service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// RegisterRoutes mounts staff-only routes. rg must run AuthMiddleware and RequireStaff.
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/stats", h.Stats)
	rg.GET("/users", h.ListUsers)
	rg.POST("/users/:user_id/block", h.Block)
	rg.POST("/users/:user_id/unblock", h.Unblock)
	rg.DELETE("/users/:user_id", h.DeleteUser)
	rg.POST("/users/:user_id/roles/:role", h.GrantRole)
}

func (h *AdminHandler) Stats(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	stats, err := h.svc.Stats(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListUsers GET /api/admin/users?search=&page=&page_size=
func (h *AdminHandler) ListUsers(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := h.svc.ListUsers(ctx, c.Query("search"), queryInt(c, "page", 1), queryInt(c, "page_size", 20))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) Block(c *gin.Context) {
	h.setActive(c, false)
}

func (h *AdminHandler) Unblock(c *gin.Context) {
	h.setActive(c, true)
}

func (h *AdminHandler) setActive(c *gin.Context, active bool) {
	ctx, cancel := requestContext(c)
	defer cancel()

	userID := c.Param("user_id")
	if err := h.svc.SetUserActive(ctx, middleware.ActorFrom(c), userID, active); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_id": userID, "is_active": active})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.svc.DeleteUser(ctx, middleware.ActorFrom(c), c.Param("user_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GrantRole POST /api/admin/users/:user_id/roles/reviewer|creator
func (h *AdminHandler) GrantRole(c *gin.Context) {
	var req dto.GrantRoleRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	userID, role := c.Param("user_id"), c.Param("role")
	if err := h.svc.GrantRole(ctx, userID, role, req.Expertise); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user_id": userID, "role": role})
}
