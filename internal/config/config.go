package config

import "os"

// Defaults for environment-sourced settings. The catalog owner identity is
// the demo account the playground API expects as query parameters.
const (
	DefaultCatalogBaseURL = "https://watsonx-chat.20pttk3h2ear.us-south.codeengine.appdomain.cloud/"
	DefaultOwnerUserID    = "8J5526897"
	DefaultOwnerEmail     = "matt.acosta@ibm.com"
	DefaultWatsonxURL     = "https://us-south.ml.cloud.ibm.com"
	DefaultIAMTokenURL    = "https://iam.cloud.ibm.com/identity/token"
	DefaultModelID        = "ibm/granite-4-h-small"
	DefaultFromEmail      = "noreply@sunheart.tech"
	DefaultPort           = "8000"
)

// Config holds all process-wide configuration, read once from the environment
// at startup and passed explicitly into the components that need it.
type Config struct {
	Port string

	// Catalog service (subscribers and shows)
	CatalogBaseURL string
	OwnerUserID    string
	OwnerEmail     string

	// watsonx.ai text generation
	WatsonxAPIKey    string
	WatsonxProjectID string
	WatsonxURL       string
	IAMTokenURL      string
	ModelID          string

	// Resend transactional email
	ResendAPIKey string
	FromEmail    string
}

// Load reads configuration from the environment, applying defaults where a
// variable is unset. Missing credentials are not fatal here; the health
// endpoint reports their presence and the generation client enforces them.
func Load() *Config {
	return &Config{
		Port:             getEnvWithDefault("API_PORT", DefaultPort),
		CatalogBaseURL:   getEnvWithDefault("CATALOG_BASE_URL", DefaultCatalogBaseURL),
		OwnerUserID:      getEnvWithDefault("CATALOG_OWNER_USER_ID", DefaultOwnerUserID),
		OwnerEmail:       getEnvWithDefault("CATALOG_OWNER_EMAIL", DefaultOwnerEmail),
		WatsonxAPIKey:    os.Getenv("WATSONX_API_KEY"),
		WatsonxProjectID: os.Getenv("WATSONX_PROJECT_ID"),
		WatsonxURL:       getEnvWithDefault("WATSONX_URL", DefaultWatsonxURL),
		IAMTokenURL:      getEnvWithDefault("WATSONX_IAM_URL", DefaultIAMTokenURL),
		ModelID:          getEnvWithDefault("WATSONX_MODEL_ID", DefaultModelID),
		ResendAPIKey:     os.Getenv("RESEND_API_KEY"),
		FromEmail:        getEnvWithDefault("EMAIL_FROM", DefaultFromEmail),
	}
}

// WatsonxConfigured reports whether both generation credentials are present.
func (c *Config) WatsonxConfigured() bool {
	return c.WatsonxAPIKey != "" && c.WatsonxProjectID != ""
}

// ResendConfigured reports whether the delivery credential is present.
func (c *Config) ResendConfigured() bool {
	return c.ResendAPIKey != ""
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
