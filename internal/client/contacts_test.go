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

func TestContactsClient_Get_Normalizes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/contacts/1", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "sales_accounts,appointments,owner,contact_status", r.URL.Query().Get("include"))

		response := map[string]interface{}{
			"contact": map[string]interface{}{
				"id":       1,
				"owner_id": 10,
			},
			"users": []map[string]interface{}{
				{"id": 10, "display_name": "Sam Owner"},
			},
		}
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	contact, err := client.Contacts().Get(context.Background(), 1)
	require.NoError(t, err)

	owner, ok := contact["owner"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Sam Owner", owner["display_name"])
}

func TestContactsClient_Activities(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/contacts/1/activities", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		response := map[string]interface{}{
			"activities": []map[string]interface{}{
				{"id": 100, "action": "email_sent"},
				{"id": 101, "action": "call_logged"},
			},
		}
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	activities, err := client.Contacts().Activities(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, "email_sent", activities[0]["action"])
}

func TestContactsClient_Appointments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/contacts/1/appointments", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		response := map[string]interface{}{
			"appointments": []map[string]interface{}{
				{"id": 200, "title": "Demo"},
			},
		}
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	appointments, err := client.Contacts().Appointments(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, "Demo", appointments[0]["title"])
}

func TestContactsClient_ListView_Normalizes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/contacts/view/5", r.URL.Path)

		response := map[string]interface{}{
			"contacts": []map[string]interface{}{
				{"id": 1, "owner_id": 10},
				{"id": 2, "owner_id": 11},
			},
			"users": []map[string]interface{}{
				{"id": 10, "display_name": "First Owner"},
			},
			"meta": map[string]interface{}{"total_pages": 1},
		}
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	contacts, err := client.Contacts().ListAll(context.Background(), 5, 0)
	require.NoError(t, err)
	require.Len(t, contacts, 2)

	owner, ok := contacts[0]["owner"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "First Owner", owner["display_name"])

	// owner 11 is not in the envelope; the reference resolves to nil
	require.Contains(t, contacts[1], "owner")
	assert.Nil(t, contacts[1]["owner"])
}
