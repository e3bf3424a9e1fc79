package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/beacondev/echobridge/pkg/alexa"
	"github.com/beacondev/echobridge/pkg/api/types"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	client *alexa.Client
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(client *alexa.Client) *HealthHandler {
	return &HealthHandler{client: client}
}

// Health handles GET /health
// @Summary      Health check
// @Description  Returns the health status of the bridge and whether upstream credentials are configured
// @Tags         health
// @Produce      json
// @Success      200  {object}  types.HealthResponse  "Service is healthy"
// @Failure      503  {object}  types.HealthResponse  "Credentials are missing"
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	credStatus := "missing"
	if h.client.HasCredentials() {
		credStatus = "configured"
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if credStatus != "configured" {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, types.HealthResponse{
		Status:      status,
		Credentials: credStatus,
		BaseURL:     h.client.BaseURL(),
		Timestamp:   time.Now(),
	})
}
