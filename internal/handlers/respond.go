// Package handlers contains HTTP request handlers for the feed service.
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ishahbak/feed-service/pkg/logger"
)

// respondError sends a JSON error body with the given status.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// logAndRespondError logs the underlying error and sends a generic message
// to the client. Internal detail never crosses the API boundary.
func logAndRespondError(c *gin.Context, status int, err error, message string) {
	logger.Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
	respondError(c, status, message)
}
