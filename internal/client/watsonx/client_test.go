package watsonx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fubolabs/retention-api/internal/logger"
)

func init() {
	// Initialize logger for tests
	logger.InitLogger()
}

func newIAMServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "urn:ibm:params:oauth:grant-type:apikey", r.Form.Get("grant_type"))
		assert.Equal(t, "test-api-key", r.Form.Get("apikey"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token": "iam-token", "token_type": "Bearer", "expires_in": 3600}`))
	}))
}

func newClientForTest(iamURL, baseURL string) *Client {
	return NewClient(Config{
		APIKey:      "test-api-key",
		ProjectID:   "test-project",
		BaseURL:     baseURL,
		IAMTokenURL: iamURL,
		ModelID:     "ibm/granite-4-h-small",
	}, zap.NewNop())
}

func TestGenerateText_MissingCredentials(t *testing.T) {
	tests := []struct {
		name      string
		apiKey    string
		projectID string
	}{
		{name: "missing api key", apiKey: "", projectID: "proj"},
		{name: "missing project id", apiKey: "key", projectID: ""},
		{name: "missing both", apiKey: "", projectID: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(Config{
				APIKey:      tt.apiKey,
				ProjectID:   tt.projectID,
				BaseURL:     "http://127.0.0.1:1", // must never be dialed
				IAMTokenURL: "http://127.0.0.1:1",
				ModelID:     "ibm/granite-4-h-small",
			}, zap.NewNop())

			_, err := client.GenerateText(context.Background(), "prompt")
			require.ErrorIs(t, err, ErrMissingCredentials)
		})
	}
}

func TestGenerateText_Success(t *testing.T) {
	iam := newIAMServer(t)
	defer iam.Close()

	ml := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ml/v1/text/generation", r.URL.Path)
		assert.Equal(t, "2023-05-29", r.URL.Query().Get("version"))
		assert.Equal(t, "Bearer iam-token", r.Header.Get("Authorization"))

		var req generationRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ibm/granite-4-h-small", req.ModelID)
		assert.Equal(t, "test-project", req.ProjectID)
		assert.Equal(t, "write me an email", req.Input)
		assert.Equal(t, 1000, req.Parameters.MaxNewTokens)
		assert.InDelta(t, 0.7, req.Parameters.Temperature, 0.001)
		assert.InDelta(t, 0.9, req.Parameters.TopP, 0.001)
		assert.Equal(t, []string{"</html>"}, req.Parameters.StopSequences)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": [{"generated_text": "<html><body>hi</body></html>", "generated_token_count": 12, "stop_reason": "stop_sequence"}]}`))
	}))
	defer ml.Close()

	client := newClientForTest(iam.URL, ml.URL)

	text, err := client.GenerateText(context.Background(), "write me an email")
	require.NoError(t, err)
	assert.Equal(t, "<html><body>hi</body></html>", text)
}

func TestGenerateText_EmptyOutput(t *testing.T) {
	iam := newIAMServer(t)
	defer iam.Close()

	tests := []struct {
		name string
		body string
	}{
		{name: "whitespace only text", body: `{"results": [{"generated_text": "   \n  "}]}`},
		{name: "no results", body: `{"results": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ml := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.body))
			}))
			defer ml.Close()

			client := newClientForTest(iam.URL, ml.URL)

			_, err := client.GenerateText(context.Background(), "prompt")
			require.Error(t, err)

			var genErr *GenerationError
			require.ErrorAs(t, err, &genErr)
		})
	}
}

func TestGenerateText_ProviderError(t *testing.T) {
	iam := newIAMServer(t)
	defer iam.Close()

	ml := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors": [{"message": "model not found"}]}`, http.StatusNotFound)
	}))
	defer ml.Close()

	client := newClientForTest(iam.URL, ml.URL)

	_, err := client.GenerateText(context.Background(), "prompt")
	require.Error(t, err)

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Contains(t, genErr.Error(), "watsonx generation error")
}

func TestGenerateText_IAMFailure(t *testing.T) {
	iam := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errorMessage": "invalid api key"}`, http.StatusBadRequest)
	}))
	defer iam.Close()

	ml := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("generation endpoint must not be called when the token exchange fails")
	}))
	defer ml.Close()

	client := newClientForTest(iam.URL, ml.URL)

	_, err := client.GenerateText(context.Background(), "prompt")
	require.Error(t, err)

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Contains(t, err.Error(), "IAM token request failed")
}
