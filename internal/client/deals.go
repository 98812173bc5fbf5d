package client

import (
	internalhttp "github.com/fivetwenty-io/freshsales-client/internal/http"
	"github.com/fivetwenty-io/freshsales-client/pkg/freshsales"
)

// NewDealsClient creates a client for the deals resource.
func NewDealsClient(httpClient *internalhttp.Client, perPage int) *ResourceClient {
	desc := resourceDescriptor{
		resourceType: "deals",
		defaultParams: freshsales.Params{
			"include":   "sales_account,appointments,owner,deal_stage",
			"sort":      "updated_at",
			"sort_type": "desc",
		},
		normalizer:    normalizeDeal,
		canForget:     true,
		canBulkDelete: true,
	}

	return NewResourceClient(httpClient, desc, perPage)
}
