package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fubolabs/retention-api/internal/services"
	"github.com/fubolabs/retention-api/internal/types"
)

// Use types from the centralized package
type ErrorResponse = types.ErrorResponse

// respondWithError translates a pipeline error into an HTTP error response.
// Lookup misses are 404; everything else (catalog, configuration, generation)
// is a 500 carrying the underlying message.
func respondWithError(c *gin.Context, logger *zap.Logger, err error) {
	status := http.StatusInternalServerError

	var notFound *services.NotFoundError
	if errors.As(err, &notFound) {
		status = http.StatusNotFound
	} else {
		logger.Error("request failed",
			zap.Error(err),
			zap.String("path", c.FullPath()))
	}

	c.JSON(status, ErrorResponse{Error: err.Error()})
}
