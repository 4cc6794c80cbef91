package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_PORT", "")
	t.Setenv("CATALOG_BASE_URL", "")
	t.Setenv("WATSONX_API_KEY", "")
	t.Setenv("WATSONX_PROJECT_ID", "")
	t.Setenv("WATSONX_URL", "")
	t.Setenv("WATSONX_MODEL_ID", "")
	t.Setenv("RESEND_API_KEY", "")
	t.Setenv("EMAIL_FROM", "")

	cfg := Load()

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultCatalogBaseURL, cfg.CatalogBaseURL)
	assert.Equal(t, DefaultOwnerUserID, cfg.OwnerUserID)
	assert.Equal(t, DefaultWatsonxURL, cfg.WatsonxURL)
	assert.Equal(t, DefaultIAMTokenURL, cfg.IAMTokenURL)
	assert.Equal(t, DefaultModelID, cfg.ModelID)
	assert.Equal(t, DefaultFromEmail, cfg.FromEmail)

	assert.False(t, cfg.WatsonxConfigured())
	assert.False(t, cfg.ResendConfigured())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("API_PORT", "9000")
	t.Setenv("CATALOG_BASE_URL", "https://catalog.example.com")
	t.Setenv("WATSONX_API_KEY", "wx-key")
	t.Setenv("WATSONX_PROJECT_ID", "wx-proj")
	t.Setenv("WATSONX_MODEL_ID", "meta-llama/llama-3-1-70b-instruct")
	t.Setenv("RESEND_API_KEY", "re_key")
	t.Setenv("EMAIL_FROM", "hello@example.com")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "https://catalog.example.com", cfg.CatalogBaseURL)
	assert.Equal(t, "meta-llama/llama-3-1-70b-instruct", cfg.ModelID)
	assert.Equal(t, "hello@example.com", cfg.FromEmail)

	assert.True(t, cfg.WatsonxConfigured())
	assert.True(t, cfg.ResendConfigured())
}

func TestWatsonxConfigured_RequiresBothCredentials(t *testing.T) {
	cfg := &Config{WatsonxAPIKey: "key"}
	assert.False(t, cfg.WatsonxConfigured())

	cfg.WatsonxProjectID = "proj"
	assert.True(t, cfg.WatsonxConfigured())
}
