package client

import (
	"context"

	internalhttp "github.com/fivetwenty-io/freshsales-client/internal/http"
	"github.com/fivetwenty-io/freshsales-client/pkg/freshsales"
)

// ContactsClient implements freshsales.ContactsClient.
type ContactsClient struct {
	*ResourceClient
}

// NewContactsClient creates a client for the contacts resource.
func NewContactsClient(httpClient *internalhttp.Client, perPage int) *ContactsClient {
	desc := resourceDescriptor{
		resourceType: "contacts",
		defaultParams: freshsales.Params{
			"include":   "sales_accounts,appointments,owner,contact_status",
			"sort":      "updated_at",
			"sort_type": "desc",
		},
		normalizer:    normalizeContact,
		canForget:     true,
		canBulkDelete: true,
	}

	return &ContactsClient{ResourceClient: NewResourceClient(httpClient, desc, perPage)}
}

// Activities lists the activity feed of one contact.
func (c *ContactsClient) Activities(ctx context.Context, id int) ([]freshsales.Record, error) {
	return c.listSubresource(ctx, id, "activities", "activities")
}

// Appointments lists the appointments of one contact.
func (c *ContactsClient) Appointments(ctx context.Context, id int) ([]freshsales.Record, error) {
	return c.listSubresource(ctx, id, "appointments", "appointments")
}
