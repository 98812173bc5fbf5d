package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountsClient_UsesSalesAccountsPaths(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sales_accounts/4", r.URL.Path)

		response := map[string]interface{}{
			"sales_account": map[string]interface{}{"id": 4, "name": "Acme"},
		}
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	account, err := client.Accounts().Get(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "Acme", account["name"])
}

func TestAccountsClient_Get_NormalizesIndustryType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := map[string]interface{}{
			"sales_account": map[string]interface{}{
				"id":               4,
				"owner_id":         5,
				"industry_type_id": 6,
			},
			"users": []map[string]interface{}{
				{"id": 5, "display_name": "Owner"},
			},
			"industry_types": []map[string]interface{}{
				{"id": 6, "name": "Software"},
			},
		}
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	account, err := client.Accounts().Get(context.Background(), 4)
	require.NoError(t, err)

	industry, ok := account["industry_type"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Software", industry["name"])
}

func TestAccountsClient_BulkDeleteWithAssociations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sales_accounts/bulk_destroy", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		body := decodeTestBody(t, r)
		assert.Equal(t, []interface{}{float64(1), float64(2)}, body["selected_ids"])
		assert.Equal(t, true, body["delete_associated_contacts_deals"])

		_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	envelope, err := client.Accounts().BulkDeleteWithAssociations(context.Background(), []int{1, 2}, true)
	require.NoError(t, err)
	assert.Equal(t, true, envelope["success"])
}
