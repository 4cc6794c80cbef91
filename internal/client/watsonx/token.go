package watsonx

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type iamTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// fetchIAMToken exchanges the configured API key for a short-lived IAM access
// token. The exchange is form-encoded, so it bypasses the JSON client. A
// fresh token is fetched per generation call; nothing is cached across
// requests.
func (c *Client) fetchIAMToken(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "urn:ibm:params:oauth:grant-type:apikey")
	form.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.iamTokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "failed to create IAM token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "IAM token request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to read IAM token response")
	}

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("IAM token request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var tokenResponse iamTokenResponse
	if err := json.Unmarshal(body, &tokenResponse); err != nil {
		return "", errors.Wrap(err, "failed to parse IAM token response")
	}

	if tokenResponse.AccessToken == "" {
		return "", errors.New("IAM token response missing access_token")
	}

	return tokenResponse.AccessToken, nil
}
