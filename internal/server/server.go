package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/fubolabs/retention-api/docs" // swagger docs
	"github.com/fubolabs/retention-api/internal/client/catalog"
	"github.com/fubolabs/retention-api/internal/client/httpclient"
	"github.com/fubolabs/retention-api/internal/client/watsonx"
	"github.com/fubolabs/retention-api/internal/config"
	"github.com/fubolabs/retention-api/internal/handlers"
	"github.com/fubolabs/retention-api/internal/logger"
	"github.com/fubolabs/retention-api/internal/pkg/metrics"
	"github.com/fubolabs/retention-api/internal/services"
)

// Handler Definitions
var (
	healthHandler    *handlers.HealthHandler
	retentionHandler *handlers.RetentionHandler
	collector        *metrics.Collector
)

// InitializeHandlers builds the client and service graph from configuration.
func InitializeHandlers(cfg *config.Config) {
	collector = metrics.NewCollector()

	catalogClient := catalog.NewClient(
		cfg.CatalogBaseURL,
		cfg.OwnerUserID,
		cfg.OwnerEmail,
		httpclient.WithMetricsCollector(collector),
	)

	watsonxClient := watsonx.NewClient(watsonx.Config{
		APIKey:      cfg.WatsonxAPIKey,
		ProjectID:   cfg.WatsonxProjectID,
		BaseURL:     cfg.WatsonxURL,
		IAMTokenURL: cfg.IAMTokenURL,
		ModelID:     cfg.ModelID,
	}, logger.Log, httpclient.WithMetricsCollector(collector))

	emailService := services.NewEmailService(cfg.ResendAPIKey, cfg.FromEmail, logger.Log)

	retentionService := services.NewRetentionService(catalogClient, watsonxClient, emailService, logger.Log)

	healthHandler = handlers.NewHealthHandler(cfg)
	retentionHandler = handlers.NewRetentionHandler(retentionService, logger.Log)
}

// InitializeRoutes registers middleware and the HTTP surface.
func InitializeRoutes(router *gin.Engine) {
	router.Use(configureCORS())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(collector.Handler()))

	router.GET("/", healthHandler.Root)
	router.GET("/health", healthHandler.Health)
	router.POST("/send-retention-emails", retentionHandler.SendBatch)
	router.POST("/send-single-email/:user_email", retentionHandler.SendSingle)
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
