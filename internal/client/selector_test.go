package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/freshsales-client/pkg/freshsales"
)

func TestSelectorClient_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/selector/owners", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		response := map[string]interface{}{
			"users": []map[string]interface{}{
				{"id": 1, "display_name": "Sam"},
			},
		}
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	envelope, err := client.Selector().Fetch(context.Background(), "owners")
	require.NoError(t, err)
	require.Contains(t, envelope, "users")
}

func TestSelectorClient_Accessors(t *testing.T) {
	tests := []struct {
		name         string
		expectedPath string
		key          string
		call         func(freshsales.SelectorClient) ([]freshsales.Record, error)
	}{
		{
			name:         "owners",
			expectedPath: "/selector/owners",
			key:          "users",
			call: func(s freshsales.SelectorClient) ([]freshsales.Record, error) {
				return s.Owners(context.Background())
			},
		},
		{
			name:         "deal stages",
			expectedPath: "/selector/deal_stages",
			key:          "deal_stages",
			call: func(s freshsales.SelectorClient) ([]freshsales.Record, error) {
				return s.DealStages(context.Background())
			},
		},
		{
			name:         "currencies",
			expectedPath: "/selector/currencies",
			key:          "currencies",
			call: func(s freshsales.SelectorClient) ([]freshsales.Record, error) {
				return s.Currencies(context.Background())
			},
		},
		{
			name:         "deal reasons",
			expectedPath: "/selector/deal_reasons",
			key:          "deal_reasons",
			call: func(s freshsales.SelectorClient) ([]freshsales.Record, error) {
				return s.DealReasons(context.Background())
			},
		},
		{
			name:         "deal types",
			expectedPath: "/selector/deal_types",
			key:          "deal_types",
			call: func(s freshsales.SelectorClient) ([]freshsales.Record, error) {
				return s.DealTypes(context.Background())
			},
		},
		{
			name:         "deal pipelines",
			expectedPath: "/selector/deal_pipelines",
			key:          "deal_pipelines",
			call: func(s freshsales.SelectorClient) ([]freshsales.Record, error) {
				return s.DealPipelines(context.Background())
			},
		},
		{
			name:         "deal pipeline stages",
			expectedPath: "/selector/deal_pipelines/3/deal_stages",
			key:          "deal_stages",
			call: func(s freshsales.SelectorClient) ([]freshsales.Record, error) {
				return s.DealPipelineStages(context.Background(), 3)
			},
		},
		{
			name:         "sales activity types",
			expectedPath: "/selector/sales_activity_types",
			key:          "sales_activity_types",
			call: func(s freshsales.SelectorClient) ([]freshsales.Record, error) {
				return s.SalesActivityTypes(context.Background())
			},
		},
		{
			name:         "sales activity outcomes",
			expectedPath: "/selector/sales_activity_types/7/sales_activity_outcomes",
			key:          "sales_activity_outcomes",
			call: func(s freshsales.SelectorClient) ([]freshsales.Record, error) {
				return s.SalesActivityOutcomes(context.Background(), 7)
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, testCase.expectedPath, r.URL.Path)
				assert.Equal(t, "GET", r.Method)

				response := map[string]interface{}{
					testCase.key: []map[string]interface{}{
						{"id": 1, "name": "first"},
						{"id": 2, "name": "second"},
					},
				}
				_ = json.NewEncoder(w).Encode(response)
			}))
			defer server.Close()

			client := NewTestClient(server.URL)

			records, err := testCase.call(client.Selector())
			require.NoError(t, err)
			require.Len(t, records, 2)
			assert.Equal(t, "first", records[0]["name"])
		})
	}
}

func TestSelectorClient_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	_, err := client.Selector().Owners(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, freshsales.ErrMalformedResponse)
}
