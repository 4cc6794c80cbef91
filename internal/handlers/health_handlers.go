package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fubolabs/retention-api/internal/config"
	"github.com/fubolabs/retention-api/internal/types"
)

type HealthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Use types from the centralized package
type HealthResponse = types.HealthResponse

// Health godoc
// @Summary Check the health of the server
// @Description Reports service status and whether provider credentials are configured. Makes no network calls.
// @Tags health
// @Produce json
// @Success 200 {object} types.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:            "healthy",
		WatsonxConfigured: h.cfg.WatsonxConfigured(),
		ResendConfigured:  h.cfg.ResendConfigured(),
	})
}

// Root godoc
// @Summary Service overview
// @Description Returns the service name and an endpoint directory
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Fubo Retention Email API",
		"endpoints": gin.H{
			"health":      "/health",
			"send_batch":  "POST /send-retention-emails",
			"send_single": "POST /send-single-email/{user_email}",
		},
	})
}
