// Package catalog talks to the playground catalog service that owns the
// subscriber and show records used for retention campaigns.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/fubolabs/retention-api/internal/client/httpclient"
	"github.com/fubolabs/retention-api/internal/types"
)

// FetchError indicates the catalog service was unreachable or returned a
// malformed response for the named resource.
type FetchError struct {
	Resource string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// The catalog API wraps every list in an items envelope. A missing items
// field decodes to a nil slice, which callers treat as empty.

// SubscribersResponse represents the response from the catalog subscribers endpoint
type SubscribersResponse struct {
	Items []types.Subscriber `json:"items"`
}

// ShowsResponse represents the response from the catalog shows endpoint
type ShowsResponse struct {
	Items []types.Show `json:"items"`
}

// Client fetches subscriber and show records. Each call is one synchronous
// GET authenticated as the configured owning account via query parameters.
type Client struct {
	httpClient  *httpclient.Client
	ownerUserID string
	ownerEmail  string
}

// NewClient creates a catalog client against the given base URL.
func NewClient(baseURL, ownerUserID, ownerEmail string, opts ...httpclient.ClientOption) *Client {
	options := append([]httpclient.ClientOption{
		httpclient.WithBaseURL(baseURL),
		httpclient.WithTimeout(30 * time.Second),
	}, opts...)

	return &Client{
		httpClient:  httpclient.New(options...),
		ownerUserID: ownerUserID,
		ownerEmail:  ownerEmail,
	}
}

// GetSubscribers retrieves all subscriber records. Missing optional fields
// are resolved to their defaults here, at the deserialization boundary.
func (c *Client) GetSubscribers(ctx context.Context) ([]types.Subscriber, error) {
	var response SubscribersResponse
	if err := c.getItems(ctx, "/api/playground/custom-tools/user", "subscribers", &response); err != nil {
		return nil, err
	}

	for i := range response.Items {
		response.Items[i].ApplyDefaults()
	}

	return response.Items, nil
}

// GetShows retrieves all show records with defaults resolved.
func (c *Client) GetShows(ctx context.Context) ([]types.Show, error) {
	var response ShowsResponse
	if err := c.getItems(ctx, "/api/playground/custom-tools/shows", "shows", &response); err != nil {
		return nil, err
	}

	for i := range response.Items {
		response.Items[i].ApplyDefaults()
	}

	return response.Items, nil
}

func (c *Client) getItems(ctx context.Context, path, resource string, target interface{}) error {
	resp, err := c.httpClient.Get(
		ctx,
		path,
		httpclient.WithQueryParam("userId", c.ownerUserID),
		httpclient.WithQueryParam("email", c.ownerEmail),
	)
	if err != nil {
		return &FetchError{Resource: resource, Err: err}
	}

	if err := c.httpClient.ProcessJSONResponse(resp, target); err != nil {
		return &FetchError{Resource: resource, Err: err}
	}

	return nil
}
