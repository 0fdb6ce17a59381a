package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"cinehub/internal/apperrors"

	"github.com/gin-gonic/gin"
)

const requestTimeout = 5 * time.Second

func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}

// respondError writes err as {"error": ..., "code": ...}. Internal causes are
// attached to the gin context for the request logger, never sent to clients.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an internal error occurred", "code": "INTERNAL_ERROR"})
		return
	}

	body := gin.H{"error": appErr.Message, "code": appErr.Code}
	if appErr.Field != "" {
		body["field"] = appErr.Field
	}
	c.JSON(appErr.Status, body)
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_ERROR"})
}

// paramID parses a positive int64 path parameter, answering 400 on failure.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name, "code": "VALIDATION_ERROR"})
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return def
	}
	return v
}
