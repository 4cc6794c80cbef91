package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fubolabs/retention-api/internal/logger"
)

func init() {
	// Initialize logger for tests
	logger.InitLogger()
}

type recordingCollector struct {
	mu     sync.Mutex
	counts []int
	errors int
}

func (r *recordingCollector) RecordRequestDuration(method, path string, statusCode int, duration time.Duration) {
}

func (r *recordingCollector) RecordRequestCount(method, path string, statusCode int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts = append(r.counts, statusCode)
}

func (r *recordingCollector) RecordRequestError(method, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors++
}

func TestGet_AppliesOptionsAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/things", r.URL.Path)
		assert.Equal(t, "42", r.URL.Query().Get("page"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name": "thing"}`))
	}))
	defer srv.Close()

	client := New(WithBaseURL(srv.URL))

	resp, err := client.Get(
		context.Background(),
		"/things",
		WithQueryParam("page", "42"),
		WithBearerToken("secret"),
	)
	require.NoError(t, err)

	var target struct {
		Name string `json:"name"`
	}
	require.NoError(t, client.ProcessJSONResponse(resp, &target))
	assert.Equal(t, "thing", target.Name)
}

func TestPost_MarshalsJSONBody(t *testing.T) {
	type payload struct {
		Message string `json:"message"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got payload
		require.NoError(t, decodeJSON(r, &got))
		assert.Equal(t, "hello", got.Message)

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := New(WithBaseURL(srv.URL))

	_, err := client.Post(context.Background(), "/send", payload{Message: "hello"})
	require.NoError(t, err)
}

func TestDoRequest_HTTPError(t *testing.T) {
	collector := &recordingCollector{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := New(WithBaseURL(srv.URL), WithMetricsCollector(collector))

	_, err := client.Get(context.Background(), "/broken")
	require.Error(t, err)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadGateway, httpErr.StatusCode)
	assert.Equal(t, http.MethodGet, httpErr.Method)
	assert.Contains(t, httpErr.Body, "nope")

	assert.Equal(t, []int{http.StatusBadGateway}, collector.counts)
	assert.Equal(t, 1, collector.errors)
}

func TestDoRequest_TransportError(t *testing.T) {
	collector := &recordingCollector{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := New(WithBaseURL(srv.URL), WithMetricsCollector(collector))

	_, err := client.Get(context.Background(), "/anything")
	require.Error(t, err)
	assert.Equal(t, 1, collector.errors)
}

func TestDoRequest_InvalidPathWithoutBaseURL(t *testing.T) {
	client := New()

	_, err := client.Get(context.Background(), "not a url")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid path")
}

func TestWithDefaultHeaderAndTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "v1", r.Header.Get("X-Api-Version"))
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := New(
		WithBaseURL(srv.URL),
		WithDefaultHeader("X-Api-Version", "v1"),
		WithTimeout(5*time.Second),
	)

	_, err := client.Get(context.Background(), "/")
	require.NoError(t, err)
	assert.Equal(t, srv.URL, client.GetBaseURL())
}

func decodeJSON(r *http.Request, target interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}
