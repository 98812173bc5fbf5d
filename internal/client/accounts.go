package client

import (
	"context"

	internalhttp "github.com/fivetwenty-io/freshsales-client/internal/http"
	"github.com/fivetwenty-io/freshsales-client/pkg/freshsales"
)

// AccountsClient implements freshsales.AccountsClient. The API calls the
// resource "sales_accounts".
type AccountsClient struct {
	*ResourceClient
}

// NewAccountsClient creates a client for the sales accounts resource.
func NewAccountsClient(httpClient *internalhttp.Client, perPage int) *AccountsClient {
	desc := resourceDescriptor{
		resourceType: "sales_accounts",
		defaultParams: freshsales.Params{
			"include":   "appointments,owner,industry_type",
			"sort":      "updated_at",
			"sort_type": "desc",
		},
		normalizer:    normalizeAccount,
		canForget:     true,
		canBulkDelete: true,
	}

	return &AccountsClient{ResourceClient: NewResourceClient(httpClient, desc, perPage)}
}

// BulkDeleteWithAssociations deletes several accounts and, when
// deleteAssociated is set, their associated contacts and deals.
func (c *AccountsClient) BulkDeleteWithAssociations(ctx context.Context, ids []int, deleteAssociated bool) (freshsales.Envelope, error) {
	return c.bulkDestroy(ctx, map[string]interface{}{
		"selected_ids":                     ids,
		"delete_associated_contacts_deals": deleteAssociated,
	})
}
