// Package watsonx is a client for the watsonx.ai text generation API. It
// exchanges an IBM Cloud API key for an IAM access token and submits a
// single unretried generation request per call.
package watsonx

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fubolabs/retention-api/internal/client/httpclient"
)

// API version pinned for the text generation endpoint.
const apiVersion = "2023-05-29"

// Generation parameters for retention email drafting. Generation stops at the
// closing html tag so the model cannot append trailing commentary.
const (
	maxNewTokens = 1000
	temperature  = 0.7
	topP         = 0.9
	stopSequence = "</html>"
)

// ErrMissingCredentials is returned before any network call when the API key
// or project ID is not configured.
var ErrMissingCredentials = errors.New("watsonx credentials not configured. Set WATSONX_API_KEY and WATSONX_PROJECT_ID")

// GenerationError indicates the generation provider failed or produced an
// empty result.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("watsonx generation error: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Config carries the settings the client needs. APIKey and ProjectID are
// required; the rest have working defaults supplied by the config package.
type Config struct {
	APIKey      string
	ProjectID   string
	BaseURL     string
	IAMTokenURL string
	ModelID     string
}

// Client submits text generation requests to watsonx.ai.
type Client struct {
	httpClient  *httpclient.Client
	iamTokenURL string
	apiKey      string
	projectID   string
	modelID     string
	logger      *zap.Logger
}

// NewClient creates a watsonx client. Credentials are validated lazily on
// each call so the service can boot (and report health) without them.
func NewClient(cfg Config, logger *zap.Logger, opts ...httpclient.ClientOption) *Client {
	options := append([]httpclient.ClientOption{
		httpclient.WithBaseURL(cfg.BaseURL),
		httpclient.WithTimeout(30 * time.Second),
	}, opts...)

	return &Client{
		httpClient:  httpclient.New(options...),
		iamTokenURL: cfg.IAMTokenURL,
		apiKey:      cfg.APIKey,
		projectID:   cfg.ProjectID,
		modelID:     cfg.ModelID,
		logger:      logger,
	}
}

type generationParameters struct {
	DecodingMethod string   `json:"decoding_method"`
	MaxNewTokens   int      `json:"max_new_tokens"`
	Temperature    float64  `json:"temperature"`
	TopP           float64  `json:"top_p"`
	StopSequences  []string `json:"stop_sequences"`
}

type generationRequest struct {
	ModelID    string               `json:"model_id"`
	Input      string               `json:"input"`
	Parameters generationParameters `json:"parameters"`
	ProjectID  string               `json:"project_id"`
}

type generationResponse struct {
	Results []struct {
		GeneratedText       string `json:"generated_text"`
		GeneratedTokenCount int    `json:"generated_token_count"`
		StopReason          string `json:"stop_reason"`
	} `json:"results"`
}

// GenerateText submits the prompt and returns the generated text. An empty
// or whitespace-only result is an error; callers never see a blank email.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" || c.projectID == "" {
		return "", ErrMissingCredentials
	}

	c.logger.Debug("submitting generation request",
		zap.Int("prompt_length", len(prompt)),
		zap.String("prompt_preview", preview(prompt, 500)),
		zap.String("model_id", c.modelID))

	token, err := c.fetchIAMToken(ctx)
	if err != nil {
		return "", &GenerationError{Err: err}
	}

	request := generationRequest{
		ModelID: c.modelID,
		Input:   prompt,
		Parameters: generationParameters{
			DecodingMethod: "sample",
			MaxNewTokens:   maxNewTokens,
			Temperature:    temperature,
			TopP:           topP,
			StopSequences:  []string{stopSequence},
		},
		ProjectID: c.projectID,
	}

	resp, err := c.httpClient.Post(
		ctx,
		fmt.Sprintf("/ml/v1/text/generation?version=%s", apiVersion),
		request,
		httpclient.WithBearerToken(token),
	)
	if err != nil {
		return "", &GenerationError{Err: err}
	}

	var response generationResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &response); err != nil {
		return "", &GenerationError{Err: fmt.Errorf("failed to process generation response: %w", err)}
	}

	if len(response.Results) == 0 {
		return "", &GenerationError{Err: errors.New("no results in generation response")}
	}

	generated := response.Results[0].GeneratedText
	if strings.TrimSpace(generated) == "" {
		return "", &GenerationError{Err: errors.New("watsonx returned empty response")}
	}

	c.logger.Debug("generation response received",
		zap.Int("response_length", len(generated)),
		zap.String("response_preview", preview(generated, 200)),
		zap.String("stop_reason", response.Results[0].StopReason))

	return generated, nil
}

func preview(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
