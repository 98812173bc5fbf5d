package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/freshsales-client/pkg/freshsales"
)

// NewTestClient creates a client pointed at a test server.
func NewTestClient(baseURL string) *Client {
	client, err := NewWithBaseURL(baseURL, &freshsales.Config{APIKey: "test-key"})
	if err != nil {
		panic(err)
	}

	return client
}

// viewPage builds one page of a view listing response with the records
// stored under resourceType and total_pages under meta.
func viewPage(resourceType string, totalPages int, records ...map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		resourceType: records,
		"meta": map[string]interface{}{
			"total_pages": totalPages,
		},
	}
}

// jsonHandler asserts method and path and serves a fixed JSON payload.
func jsonHandler(t *testing.T, method, path string, status int, payload interface{}) http.HandlerFunc {
	t.Helper()

	return func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, path, request.URL.Path)
		assert.Equal(t, method, request.Method)

		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(status)

		if payload != nil {
			_ = json.NewEncoder(writer).Encode(payload)
		}
	}
}

// decodeTestBody decodes a request body into a generic map.
func decodeTestBody(t *testing.T, request *http.Request) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}

	err := json.NewDecoder(request.Body).Decode(&body)
	require.NoError(t, err)

	return body
}

// newServerClient starts a test server with the given handler and
// returns a client wired to it. The server is closed via t.Cleanup.
func newServerClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewTestClient(server.URL)
}
