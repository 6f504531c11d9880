package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MediaHandler is a stub; posts can carry a media URL but the service does
// not host uploads.
type MediaHandler struct{}

// NewMediaHandler creates a new MediaHandler instance.
func NewMediaHandler() *MediaHandler {
	return &MediaHandler{}
}

// Upload godoc
// @Summary Upload media (not implemented)
// @Tags media
// @Security BearerAuth
// @Produce json
// @Failure 501 {object} map[string]string
// @Router /media [post]
func (h *MediaHandler) Upload(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{"message": "media uploads are not available"})
}
