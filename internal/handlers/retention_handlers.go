package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fubolabs/retention-api/internal/services"
)

// RetentionHandler exposes the email pipeline over HTTP.
type RetentionHandler struct {
	service *services.RetentionService
	logger  *zap.Logger
}

func NewRetentionHandler(service *services.RetentionService, logger *zap.Logger) *RetentionHandler {
	return &RetentionHandler{
		service: service,
		logger:  logger,
	}
}

// SendBatch godoc
// @Summary Send retention emails to all subscribers
// @Description Fetches subscribers and shows, generates one personalized email per subscriber and sends it. Per-subscriber failures are recorded in the result list and do not abort the batch.
// @Tags retention
// @Produce json
// @Success 200 {object} types.BatchEmailResponse
// @Failure 404 {object} types.ErrorResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /send-retention-emails [post]
func (h *RetentionHandler) SendBatch(c *gin.Context) {
	result, err := h.service.RunBatch(c.Request.Context())
	if err != nil {
		respondWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// SendSingle godoc
// @Summary Send a retention email to one subscriber
// @Description Looks up a subscriber by exact email address and runs the pipeline for just that subscriber. Useful for testing or manual triggers.
// @Tags retention
// @Produce json
// @Param user_email path string true "Subscriber email address"
// @Success 200 {object} types.SingleEmailResponse
// @Failure 404 {object} types.ErrorResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /send-single-email/{user_email} [post]
func (h *RetentionHandler) SendSingle(c *gin.Context) {
	userEmail := c.Param("user_email")

	result, err := h.service.RunSingle(c.Request.Context(), userEmail)
	if err != nil {
		respondWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
