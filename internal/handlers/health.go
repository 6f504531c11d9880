package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ishahbak/feed-service/pkg/mongodb"
)

type HealthHandler struct {
	mongo *mongodb.Manager
}

func NewHealthHandler(mongo *mongodb.Manager) *HealthHandler {
	return &HealthHandler{mongo: mongo}
}

// Check godoc
// @Summary Health check
// @Description Report service health and database connection state
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	state := h.mongo.State()
	status := http.StatusOK
	health := "up"
	if state != mongodb.StateConnected {
		status = http.StatusServiceUnavailable
		health = "degraded"
	}

	c.JSON(status, gin.H{
		"status":   health,
		"database": state.String(),
	})
}
